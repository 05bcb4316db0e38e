package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaaryaa/identity-engine/constants"
	"github.com/kaaryaa/identity-engine/internal/common"
	"github.com/kaaryaa/identity-engine/internal/docintel"
	"github.com/kaaryaa/identity-engine/internal/extract"
)

func newAnalyzeCmd(logger *slog.Logger) *cobra.Command {
	var declaredType string
	var modelID string

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Send a document to the analysis provider and print the extracted record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			declared, err := constants.ParseDocType(declaredType)
			if err != nil {
				return err
			}

			cfg := common.LoadConfig()
			if err := cfg.Validate(); err != nil {
				return err
			}

			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			analyzer := docintel.NewClient(cfg.DocIntel, nil, logger)
			result, err := analyzer.Analyze(cmd.Context(), content, modelID)
			if err != nil {
				return fmt.Errorf("analyze %s: %w", args[0], err)
			}

			rec := extract.NewPipeline(cfg.Pipeline, logger).Run(cmd.Context(), result, declared)
			return printRecord(cmd, rec)
		},
	}

	cmd.Flags().StringVar(&declaredType, "type", "auto", "declared document type (auto|pan|aadhaar|cheque|form16|itrv)")
	cmd.Flags().StringVar(&modelID, "model", "", "analysis model id (overrides AZURE_DOC_INTEL_MODEL)")
	return cmd
}

func printRecord(cmd *cobra.Command, rec *extract.Record) error {
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
