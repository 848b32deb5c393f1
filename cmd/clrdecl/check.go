package main

import (
	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/clrdecl/clrdecl"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the pipeline through validation without writing output",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := clrdecl.Check(cfg)
		if err != nil {
			return err
		}

		renderReport(res.Report)
		if res.Report.Blocked() {
			return errors.Newf("validation failed with %d error(s)", res.Report.Errors)
		}
		pterm.Success.Println("validation passed")
		return nil
	},
}
