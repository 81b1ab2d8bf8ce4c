package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider calls Google Gemini, which reads menu photos directly.
type GeminiProvider struct {
	apiKey string
	model  string
}

// NewGeminiProvider creates a Gemini provider
func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiProvider{
		apiKey: apiKey,
		model:  model,
	}
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

// ExtractData sends the prompt and optional image to Gemini.
func (p *GeminiProvider) ExtractData(prompt string, imageBase64 string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(p.model)
	parts := []genai.Part{genai.Text(prompt)}

	if imageBase64 != "" {
		imageBytes, mimeType, err := decodeDataURL(imageBase64)
		if err != nil {
			return "", err
		}
		parts = append(parts, genai.ImageData(mimeType, imageBytes))
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

// decodeDataURL splits a "data:image/jpeg;base64,..." URL into raw bytes and
// the bare format name genai expects ("jpeg", not "image/jpeg").
func decodeDataURL(dataURL string) ([]byte, string, error) {
	mimeType := "jpeg"
	payload := dataURL

	if strings.HasPrefix(dataURL, "data:") {
		idx := strings.Index(dataURL, ",")
		if idx < 0 {
			return nil, "", fmt.Errorf("malformed data URL")
		}
		header := dataURL[5:idx]
		payload = dataURL[idx+1:]
		if slash := strings.Index(header, "/"); slash >= 0 {
			mimeType = header[slash+1:]
			if semi := strings.Index(mimeType, ";"); semi >= 0 {
				mimeType = mimeType[:semi]
			}
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image data: %w", err)
	}
	return raw, mimeType, nil
}
