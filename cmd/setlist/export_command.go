package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"setlist/internal/catalog"
	"setlist/internal/config"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as CSV or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			format = strings.ToLower(strings.TrimSpace(format))
			switch format {
			case "csv", "json":
			default:
				return fmt.Errorf("export format %q not supported (csv or json)", format)
			}

			target, err := resolveExportPath(cfg, output, format)
			if err != nil {
				return err
			}

			return ctx.withStore(func(store *catalog.Store) error {
				entries, err := store.List(cmd.Context())
				if err != nil {
					return err
				}

				file, err := os.Create(target)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer file.Close()

				switch format {
				case "csv":
					err = catalog.WriteCSV(file, entries)
				case "json":
					err = catalog.WriteJSON(file, entries)
				}
				if err != nil {
					return err
				}
				if err := file.Close(); err != nil {
					return fmt.Errorf("flush export file: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(entries), target)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv or json")
	cmd.Flags().StringVarP(&output, "out", "o", "", "Destination file (defaults into the export directory)")
	return cmd
}

func resolveExportPath(cfg *config.Config, output, format string) (string, error) {
	if strings.TrimSpace(output) != "" {
		return config.ExpandPath(output)
	}
	name := fmt.Sprintf("setlist_%s.%s", time.Now().Format("20060102_150405"), format)
	return filepath.Join(cfg.Paths.ExportDir, name), nil
}
