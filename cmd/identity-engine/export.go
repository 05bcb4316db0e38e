package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaaryaa/identity-engine/constants"
	"github.com/kaaryaa/identity-engine/internal/common"
	"github.com/kaaryaa/identity-engine/internal/docintel"
	"github.com/kaaryaa/identity-engine/internal/export"
	"github.com/kaaryaa/identity-engine/internal/extract"
)

func newExportCmd(logger *slog.Logger) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <dir>",
		Short: "Batch-extract saved analysis payloads from a directory into an XLSX report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := os.ReadDir(args[0])
			if err != nil {
				return fmt.Errorf("read dir %s: %w", args[0], err)
			}

			cfg := common.LoadConfig()
			pipeline := extract.NewPipeline(cfg.Pipeline, logger)

			var records []*extract.Record
			for _, entry := range entries {
				if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
					continue
				}
				path := filepath.Join(args[0], entry.Name())
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				result, err := docintel.DecodeResult(data)
				if err != nil {
					logger.Warn("export.skip_undecodable", "path", path, "error", err)
					continue
				}
				records = append(records, pipeline.Run(cmd.Context(), result, constants.DocTypeAuto))
			}
			if len(records) == 0 {
				return fmt.Errorf("no analysis payloads found in %s", args[0])
			}

			buf, err := export.NewService(logger).RecordsXLSX(records)
			if err != nil {
				return fmt.Errorf("build report: %w", err)
			}
			if err := os.WriteFile(outPath, buf, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", len(records), outPath)
			return err
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "report.xlsx", "output workbook path")
	return cmd
}
