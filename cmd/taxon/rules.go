package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/northvac/taxon/internal/report"
	"github.com/northvac/taxon/internal/rules"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and validate rule sets",
	}

	cmd.AddCommand(rulesValidateCmd())
	cmd.AddCommand(rulesShowCmd())

	return cmd
}

func rulesValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <rules-file>",
		Short: "Validate a rule set file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := rules.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d categories, %d mappings\n",
				report.TitleStyle.Render("Valid:"), len(rs.Categories), len(rs.Mappings))
			return nil
		},
	}
}

func rulesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <rules-file>",
		Short: "Show the evaluation order of a rule set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := rules.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.TitleStyle.Render("Categories (evaluation order)"))
			for _, cat := range rs.Categories {
				line := fmt.Sprintf("  %4d  %-30s %s", cat.Priority, cat.Handle, cat.ProductType)
				if cat.Priority <= rs.Settings.FallbackPriorityCutoff {
					line += report.SubtleStyle.Render("  (fallback tier)")
				}
				fmt.Fprintln(out, line)
			}

			if len(rs.Mappings) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, report.TitleStyle.Render("Direct mappings"))
				codes := make([]string, 0, len(rs.Mappings))
				for code := range rs.Mappings {
					codes = append(codes, code)
				}
				sort.Strings(codes)

				generic := 0
				for _, code := range codes {
					mapping := rs.Mappings[code]
					if mapping == nil {
						generic++
						continue
					}
					fmt.Fprintf(out, "  %-12s -> %s (%s)\n", code, mapping.ProductType, mapping.Confidence)
				}
				if generic > 0 {
					fmt.Fprintf(out, "  %s\n", report.SubtleStyle.Render(
						fmt.Sprintf("%d generic codes defer to keyword matching", generic)))
				}
			}

			if kw := rs.Settings.GlobalPartKeywords; len(kw) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintf(out, "%s %s\n", report.TitleStyle.Render("Global fallback keywords:"),
					strings.Join(kw, ", "))
			}

			return nil
		},
	}
}
