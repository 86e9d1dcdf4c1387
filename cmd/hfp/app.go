package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hfproviders/hfp/internal/regcache"
	"github.com/hfproviders/hfp/pkg/cloud"
	"github.com/hfproviders/hfp/pkg/config"
	"github.com/hfproviders/hfp/pkg/hardware"
	"github.com/hfproviders/hfp/pkg/model"
	"github.com/hfproviders/hfp/pkg/parser"
)

// app bundles the config and registries a subcommand needs. Each
// subcommand that uses them builds one with loadApp at the start of its
// RunE.
type app struct {
	cfg   *config.Config
	cache *regcache.Cache
	hw    *hardware.Registry
	cloud *cloud.Registry
	json  bool
}

func loadApp(asJSON bool) (*app, error) {
	cfg := config.LoadFromEnv()
	if path, ok := config.DefaultPath(); ok {
		if err := cfg.MergeFile(path); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cache, err := regcache.Open(regcache.Options{DataDir: cfg.CacheDir})
	if err != nil {
		// A broken cache directory must not take down lookups entirely;
		// fall back to the bundled defaults instead.
		cache = nil
	}

	hw, hwWarnings, err := cache.LoadHardware()
	if err != nil {
		return nil, fmt.Errorf("load hardware registry: %w", err)
	}
	for _, w := range hwWarnings {
		fmt.Fprintln(os.Stderr, "hfp:", w)
	}

	cr, cloudWarnings, err := cache.LoadCloud(hw)
	if err != nil {
		return nil, fmt.Errorf("load cloud registry: %w", err)
	}
	for _, w := range cloudWarnings {
		fmt.Fprintln(os.Stderr, "hfp:", w)
	}

	return &app{cfg: cfg, cache: cache, hw: hw, cloud: cr, json: asJSON}, nil
}

// readModel loads and parses the hub JSON document for a model id. A live
// hub client isn't wired in yet, so the document's path is given
// explicitly via --model-json rather than fetched.
func readModel(path string) (*model.Model, error) {
	if path == "" {
		return nil, fmt.Errorf("--model-json is required until a live hub client is wired in")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	m, err := parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

func newRootCmd() *cobra.Command {
	var jsonOut bool

	root := &cobra.Command{
		Use:   "hfp [model]",
		Short: "Performance and cost estimates for running Hugging Face models",
		Long: `hfp estimates inference performance and cost for a Hugging Face
model across hosted API providers, rented cloud GPUs, and local hardware.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runModel(cmd, jsonOut, args[0])
		},
	}
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON output")
	root.PersistentFlags().String("model-json", "", "path to a cached hub JSON document for the model")
	root.PersistentFlags().String("variants-dir", "", "directory of sibling hub JSON documents to cluster variants from")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newProvidersCmd(&jsonOut))
	root.AddCommand(newStatusCmd(&jsonOut))
	root.AddCommand(newMachineCmd(&jsonOut))
	root.AddCommand(newNeedCmd(&jsonOut))
	root.AddCommand(newSnippetCmd(&jsonOut))
	root.AddCommand(newSyncCmd(&jsonOut))
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hfp v%s (%s)\n", version, commit)
		},
	}
}

func modelJSONFlag(cmd *cobra.Command) string {
	v, _ := cmd.Flags().GetString("model-json")
	if v != "" {
		return v
	}
	v, _ = cmd.Root().PersistentFlags().GetString("model-json")
	return v
}
