package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hfproviders/hfp/pkg/estimate"
	"github.com/hfproviders/hfp/pkg/parser"
)

func newMachineCmd(jsonOut *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "machine <gpu> [model]",
		Short: "Show a fit/decode/prefill table for a GPU across reference models",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*jsonOut)
			if err != nil {
				return err
			}

			gpu, ok := a.hw.Find(args[0])
			if !ok {
				return errNotFound("unknown gpu %q", args[0])
			}

			report, err := estimate.RunMachineReport(gpu)
			if err != nil {
				return err
			}

			var targetParams int64
			var haveTarget bool
			if len(args) == 2 {
				m, err := readModel(modelJSONFlag(cmd))
				if err != nil {
					return err
				}
				if m.ID != args[1] {
					return errNotFound("model-json document is for %q, not %q", m.ID, args[1])
				}
				if m.SafetensorsParams != nil {
					targetParams, haveTarget = *m.SafetensorsParams, true
				} else if hint, ok := parser.ParamHint(m.ShortName()); ok {
					targetParams, haveTarget = hint, true
				}
			}

			if *jsonOut {
				out := struct {
					estimate.MachineReport
					Target *estimate.BestQuantResult `json:"target,omitempty"`
				}{MachineReport: report}
				if haveTarget {
					result, err := estimate.BestQuant(gpu, targetParams, estimate.AllowedRuntimes(gpu)[0], estimate.FP16)
					if err != nil {
						return err
					}
					out.Target = &result
				}
				return printJSON(out)
			}

			fmt.Printf("%s (%s, %.0f GB, %.0f GB/s, %.0f TFLOPS)\n",
				gpu.Name, gpu.Vendor, gpu.VRAMGB, gpu.MemBWGBs, gpu.FP16TFLOPs)
			printMachineBucket("comfortable", report.Comfortable)
			printMachineBucket("tight", report.Tight)
			printMachineBucket("won't run", report.WontRun)

			if haveTarget {
				result, err := estimate.BestQuant(gpu, targetParams, estimate.AllowedRuntimes(gpu)[0], estimate.FP16)
				if err != nil {
					return err
				}
				fmt.Printf("  target model: %-5s fits=%v decode=%.1f tok/s prefill=%.1f tok/s\n",
					result.Quant, result.Fits, result.Estimate.DecodeTokS, result.Estimate.PrefillTokS)
			}
			return nil
		},
	}
}

func printMachineBucket(label string, entries []estimate.MachineEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Printf("  %s:\n", label)
	for _, e := range entries {
		fmt.Printf("    %-20s %-5s %-10s decode=%.1f tok/s prefill=%.1f tok/s\n",
			e.Model.Name, e.Best.Quant, e.Runtime, e.Best.Estimate.DecodeTokS, e.Best.Estimate.PrefillTokS)
	}
}
