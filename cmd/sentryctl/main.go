// Command sentryctl works with bulk report files offline: preview how a
// pasted report splits into days, or export it straight to CSV/XLSX without
// a running server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sentryctl",
		Short: "Offline tools for SentryDesk bulk report files",
		Long: `sentryctl parses bulk report text files the same way the portal does,
without needing a running server or database.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newExportCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
