package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/hfproviders/hfp/pkg/cloud"
	"github.com/hfproviders/hfp/pkg/hardware"
)

func newReader(b []byte) *bytes.Reader { return bytes.NewReader(b) }

const syncTimeout = 30 * time.Second

// newSyncCmd refreshes the on-disk user cache from a remote URL. Each
// table is parsed before it is written to the cache so a malformed
// remote document can never poison a previously good cache.
func newSyncCmd(jsonOut *bool) *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Refresh cached hardware and cloud registries from a remote URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(*jsonOut)
			if err != nil {
				return err
			}
			if url == "" {
				url = a.cfg.SyncURL
			}
			if url == "" {
				return fmt.Errorf("sync: no source URL configured; pass --url or set HFP_SYNC_URL")
			}
			if a.cache == nil {
				return fmt.Errorf("sync: cache directory unavailable, nothing to write into")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), syncTimeout)
			defer cancel()

			hwRaw, err := fetch(ctx, url+"/hardware.yaml")
			if err != nil {
				return fmt.Errorf("sync: fetch hardware table: %w", err)
			}
			hw, hwWarnings, err := hardware.Load(newReader(hwRaw), hardware.SourceCache)
			if err != nil {
				return fmt.Errorf("sync: hardware table rejected, cache left untouched: %w", err)
			}

			cloudRaw, err := fetch(ctx, url+"/cloud.yaml")
			if err != nil {
				return fmt.Errorf("sync: fetch cloud table: %w", err)
			}
			// Validate cloud offerings against the freshly synced hardware
			// table, not the previously cached/bundled one -- a sync that
			// adds a GPU and an offering for it in the same pass must not
			// drop that offering for "unresolved gpu".
			merged := hardware.Merge(a.hw, hw)
			_, cloudWarnings, err := cloud.Load(newReader(cloudRaw), merged)
			if err != nil {
				return fmt.Errorf("sync: cloud table rejected, cache left untouched: %w", err)
			}

			if err := a.cache.PutHardware(hwRaw); err != nil {
				return fmt.Errorf("sync: write hardware cache: %w", err)
			}
			if err := a.cache.PutCloud(cloudRaw); err != nil {
				return fmt.Errorf("sync: write cloud cache: %w", err)
			}

			report := syncReport{
				HardwareCount:    hw.Count(),
				HardwareWarnings: stringifyHW(hwWarnings),
				CloudWarnings:    stringifyCloud(cloudWarnings),
			}
			if *jsonOut {
				return printJSON(report)
			}
			fmt.Printf("synced %d hardware rows from %s\n", report.HardwareCount, url)
			for _, w := range report.HardwareWarnings {
				fmt.Println("  warning:", w)
			}
			for _, w := range report.CloudWarnings {
				fmt.Println("  warning:", w)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "remote registry source (defaults to HFP_SYNC_URL)")
	return cmd
}

type syncReport struct {
	HardwareCount    int      `json:"hardware_count"`
	HardwareWarnings []string `json:"hardware_warnings,omitempty"`
	CloudWarnings    []string `json:"cloud_warnings,omitempty"`
}

func stringifyHW(warnings []hardware.LoadWarning) []string {
	out := make([]string, len(warnings))
	for i, w := range warnings {
		out[i] = w.String()
	}
	return out
}

func stringifyCloud(warnings []cloud.LoadWarning) []string {
	out := make([]string, len(warnings))
	for i, w := range warnings {
		out[i] = w.String()
	}
	return out
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
