package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "runlog",
	Short: "Render pipeline run results",
	Long:  "runlog collects categorized result messages for a pipeline run and renders them as console text, JSON, CSV or an HTML fragment.",
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to runlog.toml")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
