package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"categories-api/internal/domain"
)

// CategoryWriter is the subset of the category repository the importer needs.
type CategoryWriter interface {
	CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
}

// CSVImporter creates one category per CSV row. The header row names the
// fields; a "status" column is parsed as an integer and every other non-empty
// cell becomes a string attribute.
type CSVImporter struct {
	reader *csv.Reader
	repo   CategoryWriter
}

// NewCSVImporter reads CSV from r and writes each row through repo.
func NewCSVImporter(r io.Reader, repo CategoryWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{reader: csvr, repo: repo}
}

// Run reads every row and returns how many categories were created.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	for n := range headers {
		headers[n] = strings.TrimSpace(headers[n])
	}

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line, err)
		}

		in, ok, err := parseRow(headers, record)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", line, err)
		}
		if !ok {
			continue
		}
		if _, err := i.repo.CreateCategory(ctx, in); err != nil {
			return imported, fmt.Errorf("create category from row %d: %w", line, err)
		}
		imported++
	}
	return imported, nil
}

// parseRow reports ok=false for rows with no usable cells.
func parseRow(headers, record []string) (domain.CategoryInput, bool, error) {
	in := domain.CategoryInput{Attributes: map[string]any{}}
	for pos, h := range headers {
		if h == "" || pos >= len(record) {
			continue
		}
		v := strings.TrimSpace(record[pos])
		if v == "" {
			continue
		}
		if h == "status" {
			status, err := strconv.Atoi(v)
			if err != nil {
				return domain.CategoryInput{}, false, fmt.Errorf("%w: status %q is not an integer", domain.ErrInvalidInput, v)
			}
			in.Status = &status
			continue
		}
		if domain.IsReservedKey(h) {
			continue
		}
		in.Attributes[h] = v
	}
	if len(in.Attributes) == 0 && in.Status == nil {
		return in, false, nil
	}
	return in, true, nil
}
