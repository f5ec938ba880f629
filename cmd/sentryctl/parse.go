package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sentrydesk/internal/bulkreport"
)

func newParseCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "parse <report-file>",
		Short: "Preview how a bulk report file splits into daily records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading report file: %w", err)
			}
			text := string(data)

			check := bulkreport.Validate(text)
			for _, msg := range check.Errors {
				fmt.Printf("ERROR: %s\n", msg)
			}
			for _, msg := range check.Warnings {
				fmt.Printf("WARNING: %s\n", msg)
			}

			result := bulkreport.Parse(text)
			fmt.Printf("Parsed %d day record(s), %d orphaned line(s)\n", len(result.Reports), result.Orphaned)

			for _, report := range result.Reports {
				if verbose {
					fmt.Printf("\n--- %s ---\n%s\n", report.Day, report.Content)
				} else {
					fmt.Printf("  %-9s %d words: %s\n", report.Day,
						len(strings.Fields(report.Content)), firstLine(report.Content))
				}
			}
			if result.Summary != "" {
				if verbose {
					fmt.Printf("\n--- Summary ---\n%s\n", result.Summary)
				} else {
					fmt.Printf("  %-9s %s\n", "Summary", firstLine(result.Summary))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print full day contents")
	return cmd
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 72 {
		s = s[:72] + "..."
	}
	return s
}
