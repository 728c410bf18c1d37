package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lernziele/modextract"
	"github.com/lernziele/modextract/config"
	"github.com/lernziele/modextract/output"
	"github.com/lernziele/modextract/reader"
)

func extractCmd(settings config.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <pdf_file>",
		Short: "Extract module records from a handbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0])
		},
	}
	addExtractFlags(cmd, settings)
	return cmd
}

func addExtractFlags(cmd *cobra.Command, settings config.Settings) {
	cmd.Flags().StringP("output", "o", "", "Directory to write the extracted data to")
	cmd.Flags().StringP("format", "f", "text", "Output format when no directory is given (text, json, html)")
	cmd.Flags().IntSlice("pages", nil, "Pages to process (1-based, comma separated)")
	cmd.Flags().Int("workers", settings.Workers, "Number of pages processed concurrently")
}

func runExtract(cmd *cobra.Command, path string) error {
	outDir, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	pages, _ := cmd.Flags().GetIntSlice("pages")
	workers, _ := cmd.Flags().GetInt("workers")

	switch format {
	case "text", "json", "html":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	log, err := loggerFromFlags(cmd)
	if err != nil {
		return err
	}
	tmpl, err := templateFromFlags(cmd)
	if err != nil {
		return err
	}

	ext := modextract.Open(path).
		Logger(log).
		Template(tmpl).
		Workers(workers)
	if len(pages) > 0 {
		ext = ext.Pages(pages...)
	}
	if dir := cacheDirFromFlags(cmd); dir != "" {
		ext = ext.CacheDir(dir)
	}

	records, warnings, err := ext.Records()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"records":  len(records),
		"warnings": len(warnings),
	}).Info("extraction finished")

	if outDir != "" {
		if err := output.WriteTree(records, outDir); err != nil {
			return err
		}
		log.WithField("dir", outDir).Info("records written")
		return nil
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return output.WriteJSON(out, records)
	case "html":
		return output.WriteHTML(out, filepath.Base(path), records)
	default:
		return output.WriteText(out, records)
	}
}

func anchorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anchors <pdf_file>",
		Short: "List the text fragments of a page with their boxes",
		Long: `List every text fragment of one page together with its bounding box
(x0 y0 x1 y1, PDF points, origin bottom-left). Useful for calibrating the
deviations of a template.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetInt("page")

			log, err := loggerFromFlags(cmd)
			if err != nil {
				return err
			}

			var opts []reader.Option
			if dir := cacheDirFromFlags(cmd); dir != "" {
				cache, err := reader.NewCache(dir)
				if err != nil {
					return err
				}
				opts = append(opts, reader.WithCache(cache))
			}

			doc, err := reader.Load(args[0], opts...)
			if err != nil {
				return err
			}
			if page < 1 || page > doc.PageCount() {
				return fmt.Errorf("page %d out of range (1-%d)", page, doc.PageCount())
			}
			log.WithField("page", page).Debug("listing fragments")

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "X0\tY0\tX1\tY1\tTEXT")
			for _, e := range doc.GetPage(page - 1).Elements {
				fmt.Fprintf(tw, "%.1f\t%.1f\t%.1f\t%.1f\t%s\n", e.X0(), e.Y0(), e.X1(), e.Y1(), e.Text)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntP("page", "p", 1, "Page to list (1-based)")
	return cmd
}

func templateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print the active template as YAML",
		Long: `Print the template in use: the file given by --template or
MODEXTRACT_TEMPLATE, otherwise the built-in handbook template. The output
is a starting point for a custom template.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := templateFromFlags(cmd)
			if err != nil {
				return err
			}
			return tmpl.Encode(cmd.OutOrStdout())
		},
	}
}

func loggerFromFlags(cmd *cobra.Command) (*logrus.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	format, _ := cmd.Flags().GetString("log-format")
	return newLogger(cmd.ErrOrStderr(), level, format)
}

func templateFromFlags(cmd *cobra.Command) (config.Template, error) {
	path, _ := cmd.Flags().GetString("template")
	return config.Settings{TemplatePath: path}.Template()
}

func cacheDirFromFlags(cmd *cobra.Command) string {
	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
		return ""
	}
	dir, _ := cmd.Flags().GetString("cache-dir")
	return dir
}
