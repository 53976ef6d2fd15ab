package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/northvac/taxon/internal/classify"
	"github.com/northvac/taxon/internal/common"
	"github.com/northvac/taxon/internal/describe"
	"github.com/northvac/taxon/internal/feed"
	"github.com/northvac/taxon/internal/rules"
)

func describeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Generate description copy for a classified feed",
		Long: `Classify a feed and generate description copy for every product from
its assigned category. The same SKU always produces the same text, so
re-runs are safe.`,
		RunE: runDescribe,
	}

	cmd.Flags().StringP("rules", "r", "", "rule set file (JSON or YAML)")
	cmd.Flags().StringP("feed", "f", "", "vendor product feed (semicolon-delimited CSV)")
	cmd.Flags().StringP("out", "o", "", "write descriptions to a CSV file instead of stdout")
	cmd.Flags().Bool("html", false, "wrap descriptions in paragraph markup")

	return cmd
}

func runDescribe(cmd *cobra.Command, _ []string) error {
	classified, err := classifyFeed(cmd)
	if err != nil {
		return err
	}

	html, _ := cmd.Flags().GetBool("html")
	return writeGenerated(cmd, classified, []string{"SKU", "ProductType", "Description"},
		func(item classify.Classified) []string {
			gen := describe.Generate
			if html {
				gen = describe.GenerateHTML
			}
			return []string{
				item.Product.SKU,
				item.Result.ProductType,
				gen(item.Product, item.Result.ProductType),
			}
		})
}

// classifyFeed runs the shared rules+feed classification step used by
// the copy-generation commands.
func classifyFeed(cmd *cobra.Command) ([]classify.Classified, error) {
	rulesPath, _ := cmd.Flags().GetString("rules")
	feedPath, _ := cmd.Flags().GetString("feed")
	if rulesPath == "" || feedPath == "" {
		return nil, fmt.Errorf("%w: both --rules and --feed are required", common.ErrMissingConfig)
	}

	rs, err := rules.Load(rulesPath)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	products, _, err := feed.ReadFile(feedPath)
	if err != nil {
		return nil, fmt.Errorf("reading feed: %w", err)
	}

	classified, _, err := classify.New(rs).Run(cmd.Context(), products)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}
	return classified, nil
}

// writeGenerated streams one CSV row per classified product to --out or
// stdout.
func writeGenerated(cmd *cobra.Command, classified []classify.Classified, header []string, row func(classify.Classified) []string) error {
	var w io.Writer = cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		w = f
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, item := range classified {
		if err := writer.Write(row(item)); err != nil {
			return fmt.Errorf("writing row for %s: %w", item.Product.SKU, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
