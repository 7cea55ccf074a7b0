package enricher

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Definition is one word's enrichment as returned by the LLM.
type Definition struct {
	Word                string `json:"word"`
	IPAPronunciation    string `json:"ipa_pronunciation"`
	KoreanPronunciation string `json:"korean_pronunciation"`
	DefinitionKorean    string `json:"definition_korean"`
}

// DefinitionClient produces definitions for a batch of words.
type DefinitionClient interface {
	Define(ctx context.Context, words []string) ([]Definition, error)
}

// AnthropicClient implements DefinitionClient against the Anthropic API.
type AnthropicClient struct {
	client    anthropic.Client
	model     string
	maxTokens int
	timeout   time.Duration
}

// NewAnthropicClient creates a client from the enrichment config.
func NewAnthropicClient(cfg *Config) *AnthropicClient {
	return &AnthropicClient{
		client:    anthropic.NewClient(option.WithAPIKey(cfg.LLMAPIKey)),
		model:     cfg.LLMModel,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.RequestTimeout,
	}
}

// Define sends one batch of words and parses the JSON array response.
func (c *AnthropicClient) Define(ctx context.Context, words []string) ([]Definition, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(c.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(words))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("llm api call: %w", err)
	}
	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("empty response")
	}

	jsonStr, err := extractJSONArray(msg.Content[0].Text)
	if err != nil {
		return nil, err
	}

	var defs []Definition
	if err := json.Unmarshal([]byte(jsonStr), &defs); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	for _, d := range defs {
		if d.Word == "" {
			return nil, fmt.Errorf("response entry missing word field")
		}
	}
	return defs, nil
}

// buildPrompt creates the batch prompt for Korean learner definitions.
func buildPrompt(words []string) string {
	return fmt.Sprintf(`You are a professional English-Korean dictionary editor.

For each of the following English words, provide its IPA pronunciation,
a Korean rendering of the pronunciation (hangul), and a concise Korean
definition suitable for language learners.

Words:
%s

Output ONLY a valid JSON array matching this exact schema:
[
  {
    "word": "<word>",
    "ipa_pronunciation": "<IPA, e.g. /wɜːrd/>",
    "korean_pronunciation": "<hangul rendering>",
    "definition_korean": "<Korean definition, one short sentence>"
  }
]

Rules:
- Include every listed word exactly once, spelled exactly as given
- Definitions are in Korean only
- Output ONLY the JSON array, no markdown, no explanations`, strings.Join(words, "\n"))
}

// extractJSONArray finds the first complete JSON array in a string.
func extractJSONArray(s string) (string, error) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON array found in response")
	}
	return s[start : end+1], nil
}
