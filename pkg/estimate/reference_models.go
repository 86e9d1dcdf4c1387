package estimate

// ReferenceModel is one entry in the fixed list MachineReport evaluates.
// The list is package data, not read from any registry, so a machine
// report always spans the same roughly 3B-671B spread regardless of
// what the caller happens to have installed.
type ReferenceModel struct {
	Name   string
	Params int64
}

// ReferenceModels is the fixed 3B-671B reference list.
func ReferenceModels() []ReferenceModel {
	return []ReferenceModel{
		{Name: "Qwen2.5-3B", Params: 3_000_000_000},
		{Name: "Llama-3.2-8B", Params: 8_000_000_000},
		{Name: "Mistral-NeMo-12B", Params: 12_000_000_000},
		{Name: "Gemma-2-27B", Params: 27_000_000_000},
		{Name: "Qwen2.5-32B", Params: 32_000_000_000},
		{Name: "Llama-3.3-70B", Params: 70_000_000_000},
		{Name: "Mixtral-8x22B", Params: 141_000_000_000},
		{Name: "Llama-3.1-405B", Params: 405_000_000_000},
		{Name: "DeepSeek-V3-671B", Params: 671_000_000_000},
	}
}
