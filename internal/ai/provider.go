package ai

// Provider abstracts an AI backend capable of reading a prompt (and
// optionally a base64 data-URL image) and returning raw model output.
type Provider interface {
	ExtractData(prompt string, imageBase64 string) (string, error)
	Name() string
}
