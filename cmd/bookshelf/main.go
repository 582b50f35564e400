// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bookshelf CLI, which turns a CSV
// book catalog export into static-site book documents.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// newRootCmd builds the command tree. Each call gets its own viper instance
// so tests can run the CLI repeatedly without shared flag state.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "bookshelf",
		Short: "Generate static-site book pages from a catalog export",
		Long: `bookshelf reads a CSV export of a personal book catalog and writes one
Markdown document with book frontmatter per selected record, ready for a
static-site "book" collection.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			return initConfig(v, cfgFile)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bookshelf.yaml or ~/.config/bookshelf/bookshelf.yaml)")

	rootCmd.AddCommand(newConvertCmd(v))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("bookshelf")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "bookshelf"))
		}
	}

	v.SetEnvPrefix("BOOKSHELF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
