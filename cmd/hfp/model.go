package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hfproviders/hfp/pkg/model"
	"github.com/hfproviders/hfp/pkg/variant"
)

// modelDetail is the --json payload for the <model> command: the model
// itself plus its resolved variant siblings, never the registries this
// model never touches.
type modelDetail struct {
	*model.Model
	Variants []string `json:"variants,omitempty"`
}

func runModel(cmd *cobra.Command, jsonOut bool, modelID string) error {
	path := modelJSONFlag(cmd)
	m, err := readModel(path)
	if err != nil {
		return err
	}
	if m.ID != modelID {
		return errNotFound("model-json document is for %q, not %q", m.ID, modelID)
	}

	siblings, err := loadVariantCandidates(cmd)
	if err != nil {
		return err
	}
	variants := model.Trending(variant.Cluster(*m, siblings))

	if jsonOut {
		names := make([]string, len(variants))
		for i, v := range variants {
			names[i] = v.ID
		}
		return printJSON(modelDetail{Model: m, Variants: names})
	}
	printModelText(m)
	printVariantsText(variants)
	return nil
}

// loadVariantCandidates reads every hub JSON document under --variants-dir
// -- a local stand-in for the "recently seen models" set a live hub
// client would otherwise supply. A missing or empty flag yields no
// candidates rather than an error -- variant clustering is an
// enrichment, not a requirement, of the model detail view.
func loadVariantCandidates(cmd *cobra.Command) ([]model.Model, error) {
	dir, _ := cmd.Flags().GetString("variants-dir")
	if dir == "" {
		dir, _ = cmd.Root().PersistentFlags().GetString("variants-dir")
	}
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read variants-dir %s: %w", dir, err)
	}

	var candidates []model.Model
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		m, err := readModel(filepath.Join(dir, e.Name()))
		if err != nil {
			// One malformed sibling document never blocks the rest (spec
			// §7 "parse-level errors are isolated").
			fmt.Fprintf(os.Stderr, "hfp: skipping %s: %v\n", e.Name(), err)
			continue
		}
		candidates = append(candidates, *m)
	}
	return candidates, nil
}

func printVariantsText(variants []model.Model) {
	if len(variants) == 0 {
		return
	}
	fmt.Printf("  variants:\n")
	for _, v := range variants {
		fmt.Printf("    - %s\n", v.ID)
	}
}

func printModelText(m *model.Model) {
	fmt.Printf("%s\n", m.ID)
	if m.PipelineTag != "" {
		fmt.Printf("  pipeline:   %s\n", m.PipelineTag)
	}
	if m.LibraryName != "" {
		fmt.Printf("  library:    %s\n", m.LibraryName)
	}
	if m.License != "" {
		fmt.Printf("  license:    %s\n", m.License)
	}
	if m.SafetensorsParams != nil {
		fmt.Printf("  params:     %d\n", *m.SafetensorsParams)
	}
	fmt.Printf("  likes:      %d\n", m.Likes)
	fmt.Printf("  downloads:  %d\n", m.Downloads)
	fmt.Printf("  providers:  %d\n", len(m.Providers))
	for _, p := range m.Providers {
		fmt.Printf("    - %-16s %-8s readiness=%s\n", p.Name, p.Status, p.Readiness())
	}
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(b))
	return nil
}
