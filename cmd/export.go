package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hakambing/bikebuddy-bot/internal/application"
	"github.com/hakambing/bikebuddy-bot/internal/domain"
	"github.com/spf13/cobra"
)

const stdoutPath = "-"

func newExportCmd(app *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole maintenance log as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.recordStore()
			if err != nil {
				return err
			}
			exporter := application.NewExporter(store)

			var buf bytes.Buffer
			var rows int
			run := func(ctx context.Context, progress func(int)) error {
				n, err := exporter.ExportWithProgress(ctx, &buf, progress)
				rows = n
				return err
			}

			if outPath == stdoutPath {
				err = run(cmd.Context(), nil)
			} else {
				err = runExportProgress(cmd.Context(), cmd.ErrOrStderr(), run)
			}
			if errors.Is(err, domain.ErrNothingToExport) {
				_, err = fmt.Fprintln(cmd.ErrOrStderr(), "Nothing to export yet.")
				return err
			}
			if err != nil {
				return err
			}

			if outPath == stdoutPath {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			path := outPath
			if path == "" {
				path = application.ExportFileName(app.clock.Now())
			}
			if err := writeExport(path, buf.Bytes()); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", rows, path)
			return err
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Output file, or - for stdout (default: maintenance_log_<date>.csv)")

	return cmd
}

func writeExport(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}
