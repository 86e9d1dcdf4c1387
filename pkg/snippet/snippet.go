// Package snippet generates ready-to-run API-call code samples for a
// (model, provider, language) triple. Generation is pure, deterministic,
// and performs no network I/O — it never fails: an unrecognized provider
// still gets a usable default snippet.
package snippet

import "fmt"

// Language is the closed set of output languages.
type Language string

const (
	Python Language = "python"
	Curl   Language = "curl"
	JS     Language = "js"
)

// Languages lists every supported language, for CLI --lang validation.
func Languages() []Language { return []Language{Python, Curl, JS} }

const routerBaseURL = "https://router.huggingface.co/v1"
const tokenEnvVar = "HF_TOKEN"
const defaultUserMessage = "Hello, how are you?"

// Generate emits a minimal, copy-pasteable snippet that calls the hub's
// inference routing endpoint for provider, with model=modelID and a
// trivial user message. It assumes an OpenAI-compatible chat-completion
// body and references a bearer token from an environment variable.
func Generate(modelID, provider string, lang Language) string {
	target := formatTarget(modelID, provider)
	switch lang {
	case Curl:
		return curlSnippet(target)
	case JS:
		return jsSnippet(target)
	case Python:
		fallthrough
	default:
		return pythonSnippet(target)
	}
}

// formatTarget builds the provider-qualified model identifier the router
// expects, falling back to the bare model id when provider is empty so
// the snippet is still usable. A non-empty provider is appended as given;
// it is not checked against any list of known providers.
func formatTarget(modelID, provider string) string {
	if provider == "" {
		return modelID
	}
	return fmt.Sprintf("%s:%s", modelID, provider)
}

func pythonSnippet(target string) string {
	return fmt.Sprintf(`import os
from openai import OpenAI

client = OpenAI(
    base_url="%s",
    api_key=os.environ["%s"],
)

completion = client.chat.completions.create(
    model="%s",
    messages=[{"role": "user", "content": "%s"}],
)

print(completion.choices[0].message.content)
`, routerBaseURL, tokenEnvVar, target, defaultUserMessage)
}

func curlSnippet(target string) string {
	return fmt.Sprintf(`curl %s/chat/completions \
  -H "Authorization: Bearer $%s" \
  -H "Content-Type: application/json" \
  -d '{
    "model": "%s",
    "messages": [{"role": "user", "content": "%s"}]
  }'
`, routerBaseURL, tokenEnvVar, target, defaultUserMessage)
}

func jsSnippet(target string) string {
	return fmt.Sprintf(`import OpenAI from "openai";

const client = new OpenAI({
  baseURL: "%s",
  apiKey: process.env.%s,
});

const completion = await client.chat.completions.create({
  model: "%s",
  messages: [{ role: "user", content: "%s" }],
});

console.log(completion.choices[0].message.content);
`, routerBaseURL, tokenEnvVar, target, defaultUserMessage)
}
