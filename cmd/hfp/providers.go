package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProvidersCmd(jsonOut *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers [name]",
		Short: "List a model's inference providers, or drill into one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readModel(modelJSONFlag(cmd))
			if err != nil {
				return err
			}

			if len(args) == 0 {
				if *jsonOut {
					return printJSON(m.Providers)
				}
				for _, p := range m.Providers {
					fmt.Printf("%-16s %-8s readiness=%s\n", p.Name, p.Status, p.Readiness())
				}
				return nil
			}

			p, ok := m.Provider(args[0])
			if !ok {
				return errNotFound("model %q has no provider %q", m.ID, args[0])
			}
			if *jsonOut {
				return printJSON(p)
			}
			fmt.Printf("%-16s %-8s readiness=%s\n", p.Name, p.Status, p.Readiness())
			if p.InputPrice != nil {
				fmt.Printf("  input price:  $%.2f/1M tok\n", *p.InputPrice)
			}
			if p.OutputPrice != nil {
				fmt.Printf("  output price: $%.2f/1M tok\n", *p.OutputPrice)
			}
			if p.Throughput != nil {
				fmt.Printf("  throughput:   %.1f tok/s\n", *p.Throughput)
			}
			if p.LatencyS != nil {
				fmt.Printf("  ttft:         %.3fs\n", *p.LatencyS)
			}
			return nil
		},
	}
	return cmd
}
