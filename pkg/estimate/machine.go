package estimate

import "github.com/hfproviders/hfp/pkg/hardware"

// comfortableDecodeFloor is the decode tok/s threshold at or above which
// a fitting model is reported "comfortable" rather than "tight".
const comfortableDecodeFloor = 30.0

// MachineEntry is one reference model's best-quant outcome on a GPU.
type MachineEntry struct {
	Model   ReferenceModel
	Best    BestQuantResult
	Runtime Runtime
}

// MachineReport partitions the fixed reference-model list into
// comfortable, tight, and wont_run buckets for a given GPU.
type MachineReport struct {
	GPU         hardware.GpuSpec
	Comfortable []MachineEntry
	Tight       []MachineEntry
	WontRun     []MachineEntry
}

// RunMachineReport evaluates every reference model against gpu, picking
// the best quant across every runtime gpu allows, and partitions the
// results.
func RunMachineReport(gpu hardware.GpuSpec) (MachineReport, error) {
	report := MachineReport{GPU: gpu}

	for _, model := range ReferenceModels() {
		entry, err := bestAcrossRuntimes(gpu, model)
		if err != nil {
			return MachineReport{}, err
		}

		switch {
		case entry.Best.Fits && entry.Best.Estimate.DecodeTokS >= comfortableDecodeFloor:
			report.Comfortable = append(report.Comfortable, entry)
		case entry.Best.Fits:
			report.Tight = append(report.Tight, entry)
		default:
			report.WontRun = append(report.WontRun, entry)
		}
	}

	return report, nil
}

// bestAcrossRuntimes takes each allowed runtime's BestQuant pick (the
// highest-precision quant that fits) and keeps the one with the highest
// decode; on equal decode the earlier runtime in AllowedRuntimes wins.
func bestAcrossRuntimes(gpu hardware.GpuSpec, model ReferenceModel) (MachineEntry, error) {
	var best MachineEntry
	haveBest := false

	for _, rt := range AllowedRuntimes(gpu) {
		result, err := BestQuant(gpu, model.Params, rt, Q4)
		if err != nil {
			return MachineEntry{}, err
		}
		candidate := MachineEntry{Model: model, Best: result, Runtime: rt}

		if !haveBest {
			best = candidate
			haveBest = true
			continue
		}
		if better(candidate, best) {
			best = candidate
		}
	}

	return best, nil
}

// better reports whether a is a more useful outcome to report than b:
// fitting beats not-fitting, then higher decode wins.
func better(a, b MachineEntry) bool {
	if a.Best.Fits != b.Best.Fits {
		return a.Best.Fits
	}
	return a.Best.Estimate.DecodeTokS > b.Best.Estimate.DecodeTokS
}
