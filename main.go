package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "complexity-analyzer",
		Short:        "Measure how algorithm runtime grows with input size",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config/config.yaml", "path to the YAML config file")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newAnalyzeCmd(&configPath))
	return root
}
