package models

// Timing tells whether an item belongs to the main service or the
// pre-landing service of the flight.
type Timing string

const (
	TimingRegular    Timing = "regular"
	TimingPreLanding Timing = "pre-landing"
)

// LocalizedText holds a dish name and description in one language.
type LocalizedText struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// MenuItem is the final structured output of the parsing pipeline.
//
// Name and Description are in the item's detected source language. When the
// item matched the reference catalog, Translations carries the full bilingual
// pair and Name/Description equal the source-language entry. Unmatched items
// keep their raw OCR text and have no Category or Translations.
type MenuItem struct {
	Name         string                   `json:"name"`
	Description  string                   `json:"description"`
	Category     string                   `json:"category,omitempty"`
	Translations map[string]LocalizedText `json:"translations,omitempty"`
	Languages    []string                 `json:"languages,omitempty"`
	DietaryInfo  []string                 `json:"dietaryInfo"`
	Timing       Timing                   `json:"timing"`

	// Selected is owned by the presentation layer; the pipeline always
	// emits false and the API only flips it on client request.
	Selected bool `json:"selected"`
}

// RawCandidateItem is an intermediate item assembled by the text parser
// before catalog matching: a name line plus accumulated description lines.
type RawCandidateItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Timing      Timing `json:"timing"`
}

// ProcessRequest represents the input for menu processing
type ProcessRequest struct {
	// Image data (sent as multipart)
	ImageData []byte `json:"-"`

	// Configuration (optional)
	UseVisionModel bool   `json:"useVisionModel"` // Use vision AI directly (skip OCR)
	AIProvider     string `json:"aiProvider"`     // "openai", "gemini", "ollama"
	Model          string `json:"model"`          // Specific model name
	Language       string `json:"language"`       // OCR language (default: "tur+eng")
}

// ProcessResponse represents the output of menu processing
type ProcessResponse struct {
	Success bool       `json:"success"`
	Items   []MenuItem `json:"items,omitempty"`
	Error   string     `json:"error,omitempty"`

	// RetryHint is set when processing succeeded but no items were
	// recognized; an empty menu is not an error, the client should ask
	// the user for a clearer photo.
	RetryHint string `json:"retryHint,omitempty"`

	// Processing metadata
	OCRDuration   float64 `json:"ocrDuration,omitempty"` // OCR time in seconds
	AIDuration    float64 `json:"aiDuration,omitempty"`  // AI extraction time in seconds
	TotalDuration float64 `json:"totalDuration"`         // Total processing time
}

// Config represents the service configuration
type Config struct {
	// Server config
	Port int    `yaml:"port"`
	Host string `yaml:"host"`

	// OCR config
	OCR OCRConfig `yaml:"ocr"`

	// AI config
	AI AIConfig `yaml:"ai"`
}

// OCRConfig represents OCR-specific configuration
type OCRConfig struct {
	Engine   string `yaml:"engine"`   // "tesseract"
	Language string `yaml:"language"` // OCR language (default: "tur+eng")
}

// AIConfig represents AI provider configuration
type AIConfig struct {
	// OpenAI
	OpenAI OpenAIConfig `yaml:"openai"`

	// Gemini
	Gemini GeminiConfig `yaml:"gemini"`

	// Ollama (local)
	Ollama OllamaConfig `yaml:"ollama"`

	// Default provider
	DefaultProvider string `yaml:"default_provider"` // "openai", "gemini", "ollama"
}

// OpenAIConfig for OpenAI/Azure OpenAI
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url,omitempty"` // For custom endpoints
	Model   string `yaml:"model"`              // Default: "gpt-4o-mini"
}

// GeminiConfig for Google Gemini
type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"` // Default: "gemini-1.5-flash"
}

// OllamaConfig for local Ollama
type OllamaConfig struct {
	BaseURL string `yaml:"base_url"` // Default: "http://localhost:11434"
	Model   string `yaml:"model"`    // e.g., "llava", "llama3.2-vision"
}
