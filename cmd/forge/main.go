package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "forge",
		Short: "Forge - monorepo scaffolding and reporting toolkit",
		Long: `Forge bootstraps multi-language monorepos and keeps them observable.
It scaffolds project skeletons with placeholder programs, renders themed
terminal banners, tracks repository statistics over time, and validates
documentation links.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
