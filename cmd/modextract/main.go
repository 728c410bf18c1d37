package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lernziele/modextract/config"
)

var version = "0.1.0"

func main() {
	rootCmd := newRootCmd(config.LoadSettings())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(settings config.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modextract [pdf_file]",
		Short: "Extract module data from PDF module handbooks",
		Long: `modextract reads a PDF module handbook and extracts, for every module
description page, the module number, the title, the competencies and the
requirements.

Without -o the records are printed to standard output. With -o every module
gets a directory holding one text file per field, one sentence per line.

Settings can also be given as environment variables or in a .env file:
  MODEXTRACT_CACHE_DIR, MODEXTRACT_WORKERS, MODEXTRACT_LOG_LEVEL,
  MODEXTRACT_LOG_FORMAT, MODEXTRACT_TEMPLATE`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runExtract(cmd, args[0])
		},
	}

	rootCmd.PersistentFlags().String("log-level", settings.LogLevel, "Log level (debug, info, warning, error)")
	rootCmd.PersistentFlags().String("log-format", settings.LogFormat, "Log format (text, json)")
	rootCmd.PersistentFlags().String("cache-dir", settings.CacheDir, "Directory for the parse cache")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Do not read or write the parse cache")
	rootCmd.PersistentFlags().String("template", settings.TemplatePath, "YAML template file (default: built-in handbook template)")
	addExtractFlags(rootCmd, settings)

	rootCmd.AddCommand(extractCmd(settings))
	rootCmd.AddCommand(anchorsCmd())
	rootCmd.AddCommand(templateCmd())

	return rootCmd
}
