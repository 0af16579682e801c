// Package catalog reads and writes the spare parts CSV file.
//
// The file starts with the header
//
//	id,name,compatibility,price,stock,expiration_days
//
// and every following row is one part. expiration_days may be empty or
// missing. Any row that cannot be parsed stops the load with a *RowError.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"Inventory/internal/models"
)

// Header lists the catalog columns in file order.
var Header = []string{"id", "name", "compatibility", "price", "stock", "expiration_days"}

// CSVHandler reads parts from a catalog file on disk.
type CSVHandler struct {
	Path string
}

// CreateCatalogHandler returns a handler for the catalog file at path.
func CreateCatalogHandler(path string) *CSVHandler {
	return &CSVHandler{Path: path}
}

// GetParts loads every part from the handler's file.
func (handler *CSVHandler) GetParts() ([]models.Part, error) {
	return Load(handler.Path)
}

// Load opens the catalog file at path and parses it.
func Load(path string) ([]models.Part, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open catalog %q: %w", path, err)
	}
	defer file.Close()

	parts, err := Read(file)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d parts from %s", len(parts), path)
	return parts, nil
}

// Read parses a catalog from r. An input holding only the header yields an
// empty, non-nil slice.
func Read(r io.Reader) ([]models.Part, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	parts := []models.Part{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &RowError{Line: parseErr.Line, Err: parseErr.Err}
			}
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		part, err := parseRecord(record, line)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func checkHeader(header []string) error {
	if len(header) != len(Header) {
		return fmt.Errorf("%w: got %q, want %q", ErrInvalidHeader, strings.Join(header, ","), strings.Join(Header, ","))
	}
	for i, col := range header {
		// Some editors prepend a byte order mark to the first cell.
		col = strings.TrimPrefix(strings.TrimSpace(col), "\ufeff")
		if col != Header[i] {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrInvalidHeader, i+1, col, Header[i])
		}
	}
	return nil
}

func parseRecord(record []string, line int) (models.Part, error) {
	if len(record) != len(Header) && len(record) != len(Header)-1 {
		return models.Part{}, &RowError{
			Line: line,
			Err:  fmt.Errorf("got %d fields, want %d", len(record), len(Header)),
		}
	}

	var part models.Part
	var err error
	cell := func(i int) string { return strings.TrimSpace(record[i]) }
	fail := func(i int, cause error) error {
		return &RowError{Line: line, Column: Header[i], Value: record[i], Err: cause}
	}

	if part.ID, err = strconv.Atoi(cell(0)); err != nil {
		return models.Part{}, fail(0, err)
	}
	part.Name = record[1]
	part.Compatibility = record[2]

	if part.Price, err = decimal.NewFromString(cell(3)); err != nil {
		return models.Part{}, fail(3, err)
	}
	if part.Price.IsNegative() {
		return models.Part{}, fail(3, errors.New("price must not be negative"))
	}

	if part.Stock, err = strconv.Atoi(cell(4)); err != nil {
		return models.Part{}, fail(4, err)
	}
	if part.Stock < 0 {
		return models.Part{}, fail(4, errors.New("stock must not be negative"))
	}

	if len(record) == len(Header) && cell(5) != "" {
		days, err := strconv.Atoi(cell(5))
		if err != nil {
			return models.Part{}, fail(5, err)
		}
		part.ExpirationDays = &days
	}
	return part, nil
}

// Write encodes parts as a catalog, header first.
func Write(w io.Writer, parts []models.Part) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, part := range parts {
		expiration := ""
		if part.ExpirationDays != nil {
			expiration = strconv.Itoa(*part.ExpirationDays)
		}
		err := writer.Write([]string{
			strconv.Itoa(part.ID),
			part.Name,
			part.Compatibility,
			part.Price.StringFixed(2),
			strconv.Itoa(part.Stock),
			expiration,
		})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Save writes parts to a new catalog file at path, replacing any existing one.
func Save(path string, parts []models.Part) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create file %q: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot close file %q: %w", path, cerr)
		}
	}()
	if err := Write(file, parts); err != nil {
		return fmt.Errorf("cannot write catalog %q: %w", path, err)
	}
	log.Printf("Successfully wrote %d parts to the file %s.", len(parts), path)
	return nil
}
