package main

import (
	"github.com/spf13/cobra"

	"github.com/northvac/taxon/internal/classify"
	"github.com/northvac/taxon/internal/describe"
)

func seoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seo",
		Short: "Generate SEO titles and meta descriptions for a classified feed",
		RunE:  runSEO,
	}

	cmd.Flags().StringP("rules", "r", "", "rule set file (JSON or YAML)")
	cmd.Flags().StringP("feed", "f", "", "vendor product feed (semicolon-delimited CSV)")
	cmd.Flags().StringP("out", "o", "", "write SEO copy to a CSV file instead of stdout")

	return cmd
}

func runSEO(cmd *cobra.Command, _ []string) error {
	classified, err := classifyFeed(cmd)
	if err != nil {
		return err
	}

	return writeGenerated(cmd, classified, []string{"SKU", "ProductType", "SEOTitle", "SEODescription"},
		func(item classify.Classified) []string {
			return []string{
				item.Product.SKU,
				item.Result.ProductType,
				describe.GenerateSEOTitle(item.Product, item.Result.ProductType),
				describe.GenerateSEODescription(item.Product, item.Result.ProductType),
			}
		})
}
