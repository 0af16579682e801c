// Package sorting implements the four catalog orderings.
//
// Each ordering has a pure entry point that leaves its argument untouched and
// returns a newly allocated slice. Insertion, merge and bubble sort also come
// in an explicitly named InPlace form that rearranges the given slice and
// returns it.
//
//	ByPrice          QuickSort      price ascending
//	ByStock          InsertionSort  stock ascending, stable
//	ByName           MergeSort      name ascending (byte order), stable
//	ByCompatibility  BubbleSort     brand ascending (byte order), stable
package sorting

import (
	"slices"

	"Inventory/internal/models"
)

// Func is the shape shared by all pure orderings.
type Func func([]models.Part) []models.Part

// Algorithm pairs an ordering with the name of the algorithm behind it.
// InPlace may rearrange its argument; QuickSort has no in-place form and
// uses the pure one.
type Algorithm struct {
	Name    string
	Key     string
	Sort    Func
	InPlace Func
}

// Algorithms lists the orderings in the order the benchmark runs them.
var Algorithms = []Algorithm{
	{Name: "QuickSort", Key: "price", Sort: ByPrice, InPlace: ByPrice},
	{Name: "MergeSort", Key: "name", Sort: ByName, InPlace: ByNameInPlace},
	{Name: "InsertionSort", Key: "stock", Sort: ByStock, InPlace: ByStockInPlace},
	{Name: "BubbleSort", Key: "compatibility", Sort: ByCompatibility, InPlace: ByCompatibilityInPlace},
}

// Lookup finds the algorithm sorting by key.
func Lookup(key string) (Algorithm, bool) {
	for _, a := range Algorithms {
		if a.Key == key {
			return a, true
		}
	}
	return Algorithm{}, false
}

// ByPrice returns parts ordered by ascending price. Parts with equal prices
// keep their input order.
func ByPrice(parts []models.Part) []models.Part {
	if len(parts) <= 1 {
		return slices.Clone(parts)
	}

	pivot := parts[len(parts)/2].Price
	var less, equal, greater []models.Part
	for _, p := range parts {
		switch p.Price.Cmp(pivot) {
		case -1:
			less = append(less, p)
		case 0:
			equal = append(equal, p)
		default:
			greater = append(greater, p)
		}
	}

	sorted := make([]models.Part, 0, len(parts))
	sorted = append(sorted, ByPrice(less)...)
	sorted = append(sorted, equal...)
	return append(sorted, ByPrice(greater)...)
}

// ByStock returns a copy of parts ordered by ascending stock.
func ByStock(parts []models.Part) []models.Part {
	return ByStockInPlace(slices.Clone(parts))
}

// ByStockInPlace insertion-sorts parts by stock and returns it.
func ByStockInPlace(parts []models.Part) []models.Part {
	for i := 1; i < len(parts); i++ {
		current := parts[i]
		j := i - 1
		for j >= 0 && parts[j].Stock > current.Stock {
			parts[j+1] = parts[j]
			j--
		}
		parts[j+1] = current
	}
	return parts
}

// ByName returns a copy of parts ordered by name.
func ByName(parts []models.Part) []models.Part {
	return ByNameInPlace(slices.Clone(parts))
}

// ByNameInPlace merge-sorts parts by name and returns it. Names compare as
// raw bytes, so "Zebra" sorts before "apple".
func ByNameInPlace(parts []models.Part) []models.Part {
	if len(parts) <= 1 {
		return parts
	}
	mid := len(parts) / 2
	left := ByNameInPlace(slices.Clone(parts[:mid]))
	right := ByNameInPlace(slices.Clone(parts[mid:]))

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		// Ties take the left element.
		if left[i].Name <= right[j].Name {
			parts[k] = left[i]
			i++
		} else {
			parts[k] = right[j]
			j++
		}
		k++
	}
	k += copy(parts[k:], left[i:])
	copy(parts[k:], right[j:])
	return parts
}

// ByCompatibility returns a copy of parts ordered by vehicle brand.
func ByCompatibility(parts []models.Part) []models.Part {
	return ByCompatibilityInPlace(slices.Clone(parts))
}

// ByCompatibilityInPlace bubble-sorts parts by the brand of their
// compatibility descriptor and returns it. Every pass runs; there is no early
// exit. Parts without a descriptor have the empty brand and sort first.
func ByCompatibilityInPlace(parts []models.Part) []models.Part {
	n := len(parts)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if parts[j].Brand() > parts[j+1].Brand() {
				parts[j], parts[j+1] = parts[j+1], parts[j]
			}
		}
	}
	return parts
}
