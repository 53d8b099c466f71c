package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	defaultImagesURL = "https://api.openai.com/v1/images/generations"

	model = "dall-e-3"
	size  = "1792x1024"
)

// OpenAIConfig configures the OpenAI images endpoint and HTTP behavior.
type OpenAIConfig struct {
	APIKey     string
	ImagesURL  string
	HTTPClient *http.Client
}

type openAIGenerator struct {
	cfg OpenAIConfig
}

// NewOpenAIGenerator builds a Generator backed by the OpenAI images API.
func NewOpenAIGenerator(cfg OpenAIConfig) Generator {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.ImagesURL) == "" {
		cfg.ImagesURL = defaultImagesURL
	}
	return &openAIGenerator{cfg: cfg}
}

type imagesRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imagesResponse struct {
	Data []struct {
		URL           string `json:"url"`
		RevisedPrompt string `json:"revised_prompt"`
	} `json:"data"`
}

func (g *openAIGenerator) Generate(ctx context.Context, prompt string) (*Result, error) {
	body, err := json.Marshal(imagesRequest{
		Model:  model,
		Prompt: prompt,
		N:      1,
		Size:   size,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.ImagesURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("image provider returned %s: %s", resp.Status, string(b))
	}

	var parsed imagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding provider response: %w", err)
	}
	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("image provider returned no images")
	}

	return &Result{
		URL:           parsed.Data[0].URL,
		RevisedPrompt: parsed.Data[0].RevisedPrompt,
	}, nil
}
