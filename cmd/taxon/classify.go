// Package main contains the taxon CLI commands.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/northvac/taxon/internal/classify"
	"github.com/northvac/taxon/internal/common"
	"github.com/northvac/taxon/internal/feed"
	"github.com/northvac/taxon/internal/model"
	"github.com/northvac/taxon/internal/report"
	"github.com/northvac/taxon/internal/rules"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a product feed into the store taxonomy",
		Long: `Classify every product in a vendor feed using a rule set of direct
mappings and prioritized keyword categories.

Products that cannot be classified land in the needs-review bucket, and
categories that end up under their minimum population are demoted there
as well.

Examples:
  taxon classify --rules rules.json --feed products.csv
  taxon classify --rules rules.yaml --feed products.csv --language fr
  taxon classify --rules rules.json --feed products.csv --out results.csv`,
		RunE: runClassify,
	}

	// Flags
	cmd.Flags().StringP("rules", "r", "", "rule set file (JSON or YAML)")
	cmd.Flags().StringP("feed", "f", "", "vendor product feed (semicolon-delimited CSV)")
	cmd.Flags().StringP("language", "l", "en", "feed language to classify against (en, fr)")
	cmd.Flags().IntP("workers", "w", 4, "number of classification workers")
	cmd.Flags().Bool("skip-placeholders", true, "filter placeholder products before classifying")
	cmd.Flags().Bool("enforce-min-products", true, "demote under-populated categories to needs-review")
	cmd.Flags().String("out", "", "write all classification results to a CSV file")
	cmd.Flags().String("needs-review-out", "", "write needs-review products to a CSV file")
	cmd.Flags().String("skipped-out", "", "write skipped products to a CSV file")
	cmd.Flags().Bool("progress", true, "show a progress bar")

	// Bind to viper (errors are rare and can be ignored in practice)
	_ = viper.BindPFlag("classify.rules", cmd.Flags().Lookup("rules"))
	_ = viper.BindPFlag("classify.feed", cmd.Flags().Lookup("feed"))
	_ = viper.BindPFlag("classify.language", cmd.Flags().Lookup("language"))
	_ = viper.BindPFlag("classify.workers", cmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("classify.skip_placeholders", cmd.Flags().Lookup("skip-placeholders"))
	_ = viper.BindPFlag("classify.enforce_min_products", cmd.Flags().Lookup("enforce-min-products"))

	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	rulesPath := viper.GetString("classify.rules")
	feedPath := viper.GetString("classify.feed")
	if rulesPath == "" || feedPath == "" {
		return fmt.Errorf("%w: both --rules and --feed are required", common.ErrMissingConfig)
	}

	lang, err := parseLanguage(viper.GetString("classify.language"))
	if err != nil {
		return err
	}

	rs, err := rules.Load(rulesPath)
	if err != nil {
		return common.NewUserError("failed to load rule set", err)
	}
	slog.Info("Loaded rule set", "path", rulesPath, "categories", len(rs.Categories), "mappings", len(rs.Mappings))

	products, duplicates, err := feed.ReadFile(feedPath)
	if err != nil {
		return common.NewUserError("failed to read product feed", err)
	}
	if len(duplicates) > 0 {
		slog.Warn("Feed contains duplicate SKUs", "count", len(duplicates))
	}

	config := classify.Config{
		Language:           lang,
		Workers:            viper.GetInt("classify.workers"),
		SkipPlaceholders:   viper.GetBool("classify.skip_placeholders"),
		EnforceMinProducts: viper.GetBool("classify.enforce_min_products"),
	}

	showProgress, _ := cmd.Flags().GetBool("progress")
	if showProgress {
		bar := newClassifyBar(countClassifiable(rs, products, config.SkipPlaceholders))
		config.Progress = func() {
			if err := bar.Add(1); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
		}
	}

	engine := classify.NewWithConfig(rs, config)
	classified, skipped, err := engine.Run(ctx, products)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	stats := classify.Summarize(classified)
	fmt.Fprintln(cmd.OutOrStdout(), report.RenderSummary(stats, len(skipped)))

	if path, _ := cmd.Flags().GetString("out"); path != "" {
		if _, err := report.ExportResultsFile(path, classified); err != nil {
			return fmt.Errorf("writing results export: %w", err)
		}
	}
	if path, _ := cmd.Flags().GetString("needs-review-out"); path != "" {
		if _, err := report.ExportNeedsReviewFile(path, classified); err != nil {
			return fmt.Errorf("writing needs-review export: %w", err)
		}
	}
	if path, _ := cmd.Flags().GetString("skipped-out"); path != "" {
		if _, err := report.ExportSkippedFile(path, skipped); err != nil {
			return fmt.Errorf("writing skipped export: %w", err)
		}
	}

	return nil
}

func parseLanguage(s string) (model.Language, error) {
	switch s {
	case "en", "":
		return model.LanguageEN, nil
	case "fr":
		return model.LanguageFR, nil
	default:
		return "", fmt.Errorf("invalid language %q (use en or fr)", s)
	}
}

// countClassifiable returns how many products will actually reach the
// classifier, so the progress bar finishes exactly when the batch does.
func countClassifiable(rs *model.RuleSet, products []model.Product, skipPlaceholders bool) int {
	if !skipPlaceholders {
		return len(products)
	}
	classifier := classify.NewClassifier(rs)
	n := 0
	for _, product := range products {
		if skip, _ := classifier.ShouldSkip(product); !skip {
			n++
		}
	}
	return n
}

func newClassifyBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Classifying products...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
