package models

// CatalogHandler defines the methods for reading the parts catalog
type CatalogHandler interface {
	GetParts() ([]Part, error)
}
