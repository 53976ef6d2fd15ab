// Package feed parses the semicolon-delimited vendor product feed into
// product records. The feed is fetched out of band; this package only
// consumes a local file or reader.
package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/northvac/taxon/internal/common"
	"github.com/northvac/taxon/internal/model"
)

// Column names as they appear in the vendor feed header.
const (
	columnSKU            = "SKU"
	columnTitleEN        = "ProductTitleEN"
	columnTitleFR        = "ProductTitleFR"
	columnDescriptionEN  = "ProductDescriptionEN"
	columnDescriptionFR  = "ProductDescriptionFR"
	columnSourceCategory = "ProductCategory"
	columnPrice          = "RegularPrice"
	columnWeight         = "Weight"
	columnLength         = "Length"
	columnWidth          = "Width"
	columnHeight         = "Height"
)

// ReadFile parses the feed at path. It returns the products plus the
// list of duplicate SKUs that were dropped (first occurrence wins).
func ReadFile(path string) ([]model.Product, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening feed: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close feed file", "path", path, "error", closeErr)
		}
	}()

	return Read(f)
}

// Read parses a feed from r.
func Read(r io.Reader) ([]model.Product, []string, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, common.ErrEmptyFeed
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading header: %v", common.ErrFeedParse, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	if _, ok := index[columnSKU]; !ok {
		return nil, nil, fmt.Errorf("%w: %w: feed header has no %s column", common.ErrFeedParse, common.ErrMissingSKU, columnSKU)
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var products []model.Product
	var duplicates []string
	seen := make(map[string]struct{})

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", common.ErrFeedParse, line, err)
		}

		sku := field(record, columnSKU)
		if sku == "" {
			continue
		}
		if _, dup := seen[sku]; dup {
			duplicates = append(duplicates, sku)
			continue
		}
		seen[sku] = struct{}{}

		products = append(products, model.Product{
			SKU:            sku,
			TitleEN:        field(record, columnTitleEN),
			TitleFR:        field(record, columnTitleFR),
			DescriptionEN:  CleanHTML(field(record, columnDescriptionEN)),
			DescriptionFR:  CleanHTML(field(record, columnDescriptionFR)),
			SourceCategory: field(record, columnSourceCategory),
			Price:          NormalizePrice(field(record, columnPrice)),
			Weight:         field(record, columnWeight),
			Length:         field(record, columnLength),
			Width:          field(record, columnWidth),
			Height:         field(record, columnHeight),
		})
	}

	if len(products) == 0 {
		return nil, duplicates, common.ErrEmptyFeed
	}

	slog.Info("Parsed product feed",
		"products", len(products),
		"duplicate_skus", len(duplicates))

	return products, duplicates, nil
}
