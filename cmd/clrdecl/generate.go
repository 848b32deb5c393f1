package main

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/clrdecl/clrdecl"
	"github.com/clrdecl/clrdecl/logger"
	"github.com/clrdecl/clrdecl/typescript/sink"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the full pipeline and write declaration files",
	RunE: func(cmd *cobra.Command, args []string) error {
		runID := uuid.NewString()
		logger.Logger.Infow("generate started", "runId", runID, "inputs", cfg.Inputs)

		out := sink.NewFilesystemSink(cfg.OutDir)
		res, err := clrdecl.Generate(cmd.Context(), cfg, out, runID)
		if err != nil {
			return err
		}

		renderReport(res.Report)
		if res.Report.Blocked() {
			return errors.Newf("validation failed with %d error(s); no output written", res.Report.Errors)
		}

		pterm.Success.Printfln("wrote %d namespace file(s) to %s", len(res.Plan.Namespaces), cfg.OutDir)
		return nil
	},
}
