package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hfproviders/hfp/pkg/model"
	"github.com/hfproviders/hfp/pkg/status"
)

func newStatusCmd(jsonOut *bool) *cobra.Command {
	var watchSecs int

	cmd := &cobra.Command{
		Use:   "status <model>",
		Short: "Show live readiness and time-to-first-token for a model's providers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := modelJSONFlag(cmd)
			m, err := readModel(path)
			if err != nil {
				return err
			}
			if m.ID != args[0] {
				return errNotFound("model-json document is for %q, not %q", m.ID, args[0])
			}

			if err := printStatus(m.Providers, *jsonOut); err != nil {
				return err
			}
			if watchSecs <= 0 {
				return nil
			}

			// Re-reads the same file each tick: a live hub poller isn't
			// wired in yet, so this loop's "probe" is whatever the
			// caller's --model-json file reflects when the tick fires --
			// a concrete, file-based stand-in for Watch.Tick's
			// caller-supplied probe (pkg/status).
			ticker := time.NewTicker(time.Duration(watchSecs) * time.Second)
			defer ticker.Stop()
			for range ticker.C {
				m, err := readModel(path)
				if err != nil {
					fmt.Println("hfp:", err)
					continue
				}
				if err := printStatus(m.Providers, *jsonOut); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&watchSecs, "watch", 0, "re-poll every N seconds instead of printing once")
	return cmd
}

func printStatus(bindings []model.ProviderBinding, jsonOut bool) error {
	if jsonOut {
		return printJSON(bindings)
	}
	for _, p := range bindings {
		fmt.Printf("%-16s %-8s readiness=%s\n", p.Name, p.Status, status.Classify(p))
	}
	return nil
}
