package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	root := &cobra.Command{
		Use:          "identity-engine",
		Short:        "Classify scanned financial/identity documents and extract structured fields",
		SilenceUsage: true,
	}
	root.AddCommand(
		newServeCmd(logger),
		newAnalyzeCmd(logger),
		newExtractCmd(logger),
		newExportCmd(logger),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
