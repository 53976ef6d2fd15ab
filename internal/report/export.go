package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/northvac/taxon/internal/classify"
)

// WriteNeedsReview writes the products that landed in the needs-review
// bucket to w, one row per product. Returns how many rows were written.
func WriteNeedsReview(w io.Writer, batch []classify.Classified) (int, error) {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"SKU", "ProductTitleEN", "ProductTitleFR", "SourceCategory", "Reason"}); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	written := 0
	for _, item := range batch {
		if !item.Result.NeedsReview() {
			continue
		}
		row := []string{
			item.Product.SKU,
			item.Product.TitleEN,
			item.Product.TitleFR,
			item.Product.SourceCategory,
			item.Result.Reason,
		}
		if err := writer.Write(row); err != nil {
			return written, fmt.Errorf("writing row for %s: %w", item.Product.SKU, err)
		}
		written++
	}

	writer.Flush()
	return written, writer.Error()
}

// WriteResults writes every classification result, one row per product.
func WriteResults(w io.Writer, batch []classify.Classified) (int, error) {
	writer := csv.NewWriter(w)
	header := []string{"SKU", "ProductTitleEN", "ProductType", "Handle", "Confidence", "Source", "MatchedKeyword", "Reason"}
	if err := writer.Write(header); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	for _, item := range batch {
		row := []string{
			item.Product.SKU,
			item.Product.TitleEN,
			item.Result.ProductType,
			item.Result.Handle,
			string(item.Result.Confidence),
			string(item.Result.Source),
			item.Result.MatchedKeyword,
			item.Result.Reason,
		}
		if err := writer.Write(row); err != nil {
			return 0, fmt.Errorf("writing row for %s: %w", item.Product.SKU, err)
		}
	}

	writer.Flush()
	return len(batch), writer.Error()
}

// WriteSkipped writes the products the skip detector excluded.
func WriteSkipped(w io.Writer, skipped []classify.Skipped) (int, error) {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"SKU", "ProductTitleEN", "RegularPrice", "SkipReason"}); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	for _, item := range skipped {
		row := []string{
			item.Product.SKU,
			item.Product.TitleEN,
			item.Product.Price,
			item.Reason,
		}
		if err := writer.Write(row); err != nil {
			return 0, fmt.Errorf("writing row for %s: %w", item.Product.SKU, err)
		}
	}

	writer.Flush()
	return len(skipped), writer.Error()
}

// ExportNeedsReviewFile writes the needs-review export to a file.
func ExportNeedsReviewFile(path string, batch []classify.Classified) (int, error) {
	return exportFile(path, func(w io.Writer) (int, error) {
		return WriteNeedsReview(w, batch)
	})
}

// ExportResultsFile writes the full classification export to a file.
func ExportResultsFile(path string, batch []classify.Classified) (int, error) {
	return exportFile(path, func(w io.Writer) (int, error) {
		return WriteResults(w, batch)
	})
}

// ExportSkippedFile writes the skipped-products export to a file.
func ExportSkippedFile(path string, skipped []classify.Skipped) (int, error) {
	return exportFile(path, func(w io.Writer) (int, error) {
		return WriteSkipped(w, skipped)
	})
}

func exportFile(path string, write func(io.Writer) (int, error)) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating export: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close export file", "path", path, "error", closeErr)
		}
	}()

	n, err := write(f)
	if err != nil {
		return n, err
	}

	slog.Info("Wrote export", "path", path, "rows", n)
	return n, nil
}
