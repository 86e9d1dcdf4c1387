package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/hfproviders/hfp/pkg/model"
	"github.com/hfproviders/hfp/pkg/snippet"
)

// newSnippetCmd emits a ready-to-run API-call snippet for a model.
// Provider selection is plain comparison over model.ProviderBinding
// fields -- pkg/snippet itself stays a pure (model, provider, language)
// function and never picks a provider on its own.
func newSnippetCmd(jsonOut *bool) *cobra.Command {
	var cheapest, fastest bool
	var providerFlag, langFlag string

	cmd := &cobra.Command{
		Use:   "snippet <model>",
		Short: "Emit a ready-to-run API-call snippet for a model",
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

			provider, err := pickProvider(m, providerFlag, cheapest, fastest)
			if err != nil {
				return err
			}

			lang := snippet.Language(langFlag)
			if lang == "" {
				lang = a.cfg.SnippetLang
			} else if !slices.Contains(snippet.Languages(), lang) {
				return fmt.Errorf("unsupported --lang %q: want python, curl, or js", langFlag)
			}

			code := snippet.Generate(m.ID, provider, lang)
			if *jsonOut {
				return printJSON(struct {
					Model    string `json:"model"`
					Provider string `json:"provider"`
					Language string `json:"language"`
					Code     string `json:"code"`
				}{m.ID, provider, string(lang), code})
			}
			fmt.Print(code)
			return nil
		},
	}
	cmd.Flags().BoolVar(&cheapest, "cheapest", false, "pick the provider with the lowest known output price")
	cmd.Flags().BoolVar(&fastest, "fastest", false, "pick the provider with the highest known throughput")
	cmd.Flags().StringVar(&providerFlag, "provider", "", "pick a specific provider by name")
	cmd.Flags().StringVar(&langFlag, "lang", "", "output language: python, curl, or js")
	return cmd
}

// pickProvider resolves which provider name to pass to snippet.Generate.
// At most one of --provider/--cheapest/--fastest should be set; when none
// are, the first provider binding on the model is used, so the generator
// never has to turn an ambiguous choice into a failure.
func pickProvider(m *model.Model, explicit string, cheapest, fastest bool) (string, error) {
	if explicit != "" {
		if _, ok := m.Provider(explicit); !ok {
			return "", errNotFound("model %q has no provider %q", m.ID, explicit)
		}
		return explicit, nil
	}

	if cheapest {
		var best model.ProviderBinding
		found := false
		for _, p := range m.Providers {
			if p.OutputPrice == nil {
				continue
			}
			if !found || *p.OutputPrice < *best.OutputPrice {
				best, found = p, true
			}
		}
		if !found {
			return "", errNotFound("model %q has no provider with known pricing", m.ID)
		}
		return best.Name, nil
	}

	if fastest {
		var best model.ProviderBinding
		found := false
		for _, p := range m.Providers {
			if p.Throughput == nil {
				continue
			}
			if !found || *p.Throughput > *best.Throughput {
				best, found = p, true
			}
		}
		if !found {
			return "", errNotFound("model %q has no provider with known throughput", m.ID)
		}
		return best.Name, nil
	}

	if len(m.Providers) == 0 {
		return "", nil
	}
	return m.Providers[0].Name, nil
}
