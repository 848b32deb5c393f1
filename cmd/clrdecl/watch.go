package main

import (
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/clrdecl/clrdecl"
	"github.com/clrdecl/clrdecl/logger"
	"github.com/clrdecl/clrdecl/typescript/sink"
)

// debounce coalesces the write bursts editors and exporters produce
// into one regeneration.
const debounce = 300 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever a metadata export changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		for _, input := range cfg.Inputs {
			if err := watcher.Add(input); err != nil {
				return err
			}
		}

		regenerate := func() {
			runID := uuid.NewString()
			out := sink.NewFilesystemSink(cfg.OutDir)
			res, err := clrdecl.Generate(cmd.Context(), cfg, out, runID)
			if err != nil {
				pterm.Error.Printfln("regeneration failed: %v", err)
				return
			}
			renderReport(res.Report)
			if res.Report.Blocked() {
				pterm.Error.Printfln("validation failed with %d error(s); output unchanged", res.Report.Errors)
				return
			}
			pterm.Success.Printfln("regenerated %d namespace file(s)", len(res.Plan.Namespaces))
		}

		regenerate()
		pterm.Info.Printfln("watching %d export file(s)", len(cfg.Inputs))

		var timer *time.Timer
		pending := make(chan struct{}, 1)
		for {
			select {
			case <-cmd.Context().Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				logger.Logger.Debugw("export changed", "file", event.Name)
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, func() {
					select {
					case pending <- struct{}{}:
					default:
					}
				})
			case <-pending:
				regenerate()
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				pterm.Warning.Printfln("watch error: %v", err)
			}
		}
	},
}
