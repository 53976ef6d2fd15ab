package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/northvac/taxon/internal/classify"
	"github.com/northvac/taxon/internal/collections"
	"github.com/northvac/taxon/internal/common"
	"github.com/northvac/taxon/internal/feed"
	"github.com/northvac/taxon/internal/report"
	"github.com/northvac/taxon/internal/rules"
)

func collectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collections",
		Short: "Plan collection definitions from a classified feed",
		Long: `Classify a feed and derive collection definitions for every category
whose product population meets its minimum. The plan is written as JSON;
fallback-tier categories never get collections of their own.`,
		RunE: runCollections,
	}

	cmd.Flags().StringP("rules", "r", "", "rule set file (JSON or YAML)")
	cmd.Flags().StringP("feed", "f", "", "vendor product feed (semicolon-delimited CSV)")
	cmd.Flags().StringP("out", "o", "", "write the plan to a JSON file instead of stdout")
	cmd.Flags().Bool("publish", false, "mark planned collections for publishing")

	return cmd
}

func runCollections(cmd *cobra.Command, _ []string) error {
	rulesPath, _ := cmd.Flags().GetString("rules")
	feedPath, _ := cmd.Flags().GetString("feed")
	if rulesPath == "" || feedPath == "" {
		return fmt.Errorf("%w: both --rules and --feed are required", common.ErrMissingConfig)
	}

	rs, err := rules.Load(rulesPath)
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}
	products, _, err := feed.ReadFile(feedPath)
	if err != nil {
		return fmt.Errorf("reading feed: %w", err)
	}

	classified, _, err := classify.New(rs).Run(cmd.Context(), products)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	publish, _ := cmd.Flags().GetBool("publish")
	stats := classify.Summarize(classified)
	defs, sum := collections.Plan(rs, stats.ByCategory, publish)

	var w io.Writer = cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(defs); err != nil {
		return fmt.Errorf("writing plan: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s %d planned, %d below threshold, %d fallback-tier\n",
		report.TitleStyle.Render("Collections:"), sum.Planned, sum.SkippedThreshold, sum.SkippedFallback)
	return nil
}
