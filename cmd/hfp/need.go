package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hfproviders/hfp/pkg/cost"
	"github.com/hfproviders/hfp/pkg/estimate"
	"github.com/hfproviders/hfp/pkg/model"
	"github.com/hfproviders/hfp/pkg/parser"
)

func newNeedCmd(jsonOut *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "need <model>",
		Short: "Show a unified API/cloud/local cost view for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*jsonOut)
			if err != nil {
				return err
			}
			m, err := readModel(modelJSONFlag(cmd))
			if err != nil {
				return err
			}
			if m.ID != args[0] {
				return errNotFound("model-json document is for %q, not %q", m.ID, args[0])
			}

			options := buildCostOptions(a, m)
			if len(options) == 0 {
				return errNotFound("no cost data available for %q", m.ID)
			}
			ranked := cost.Cheapest(options)

			if *jsonOut {
				return printJSON(ranked)
			}
			for _, o := range ranked {
				fmt.Printf("%-8s %-20s $%.3f/1M out\n", o.Mode, o.Label, o.CostPerM)
			}
			return nil
		},
	}
}

// buildCostOptions assembles every priceable option for a model: its API
// provider bindings, any cloud offering whose GPUs (times its gpu_count)
// it fits on, and each GPU it fits on run locally -- all via the
// estimator for decode throughput.
func buildCostOptions(a *app, m *model.Model) []cost.Option {
	var options []cost.Option

	for _, p := range m.Providers {
		if price, ok := cost.API(p.OutputPrice); ok {
			options = append(options, cost.Option{Mode: cost.ModeAPI, Label: p.Name, CostPerM: price})
		}
	}

	var params int64
	if m.SafetensorsParams != nil {
		params = *m.SafetensorsParams
	} else if hint, ok := parser.ParamHint(m.ShortName()); ok {
		params = hint
	}
	if params <= 0 {
		return options
	}

	for _, gpu := range a.hw.Iter() {
		rt := estimate.AllowedRuntimes(gpu)[0]
		result, err := estimate.BestQuant(gpu, params, rt, estimate.FP16)
		if err != nil {
			continue
		}
		if result.Fits {
			if price, ok := cost.Local(gpu, result.Estimate.DecodeTokS, a.cfg.ElectricityRateUSDPerKWh); ok {
				options = append(options, cost.Option{Mode: cost.ModeLocal, Label: gpu.Key, CostPerM: price})
			}
		}

		for _, off := range a.cloud.ForGPU(gpu.Key) {
			// A multi-GPU offering can fit (and price) a model the lone
			// GPU can't -- re-run with the offering's gpu_count rather
			// than reusing the single-GPU estimate above.
			offResult, err := estimate.BestQuantCluster(gpu, params, rt, estimate.FP16, off.GPUCount)
			if err != nil || !offResult.Fits {
				continue
			}
			if price, ok := cost.Cloud(off, offResult.Estimate.DecodeTokS); ok {
				options = append(options, cost.Option{Mode: cost.ModeCloud, Label: off.Key, CostPerM: price})
			}
		}
	}
	return options
}
