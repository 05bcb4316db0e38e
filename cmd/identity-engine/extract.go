package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaaryaa/identity-engine/constants"
	"github.com/kaaryaa/identity-engine/internal/common"
	"github.com/kaaryaa/identity-engine/internal/docintel"
	"github.com/kaaryaa/identity-engine/internal/extract"
)

func newExtractCmd(logger *slog.Logger) *cobra.Command {
	var declaredType string

	cmd := &cobra.Command{
		Use:   "extract <analyze-result.json>",
		Short: "Run the extraction pipeline offline on a saved analysis payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			declared, err := constants.ParseDocType(declaredType)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			result, err := docintel.DecodeResult(data)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			cfg := common.LoadConfig()
			rec := extract.NewPipeline(cfg.Pipeline, logger).Run(cmd.Context(), result, declared)
			return printRecord(cmd, rec)
		},
	}

	cmd.Flags().StringVar(&declaredType, "type", "auto", "declared document type (auto|pan|aadhaar|cheque|form16|itrv)")
	return cmd
}
