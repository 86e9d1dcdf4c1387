package snippet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate("meta-llama/Llama-3.1-8B-Instruct", "together", Python)
	b := Generate("meta-llama/Llama-3.1-8B-Instruct", "together", Python)
	assert.Equal(t, a, b)
}

func TestGenerate_EveryLanguageContainsModelAndToken(t *testing.T) {
	for _, lang := range Languages() {
		snip := Generate("org/model", "together", lang)
		assert.Contains(t, snip, "org/model")
		assert.Contains(t, snip, "together")
		assert.Contains(t, snip, tokenEnvVar)
	}
}

func TestGenerate_UnknownProviderStillEmitsDefault(t *testing.T) {
	snip := Generate("org/model", "", Python)
	assert.NotEmpty(t, snip)
	assert.Contains(t, snip, "org/model")
	assert.False(t, strings.Contains(snip, "org/model:"))
}

func TestGenerate_UnrecognizedLanguageFallsBackToPython(t *testing.T) {
	snip := Generate("org/model", "together", Language("cobol"))
	assert.Contains(t, snip, "import os")
}
