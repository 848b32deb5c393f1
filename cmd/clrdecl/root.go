package main

import (
	"github.com/spf13/cobra"

	"github.com/clrdecl/clrdecl/config"
	"github.com/clrdecl/clrdecl/logger"
)

var (
	flagConfig string
	flagInputs []string
	flagOut    string
	flagDebug  bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:           "clrdecl",
	Short:         "Generate TypeScript declarations from CLR metadata exports",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Init(flagDebug); err != nil {
			return err
		}
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
		if len(flagInputs) > 0 {
			cfg.Inputs = flagInputs
		}
		if flagOut != "" {
			cfg.OutDir = flagOut
		}
		return cfg.Validate()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to clrdecl.yaml")
	rootCmd.PersistentFlags().StringSliceVarP(&flagInputs, "input", "i", nil, "metadata export file(s) (*.clrmeta.json)")
	rootCmd.PersistentFlags().StringVarP(&flagOut, "out", "o", "", "output directory")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
}
