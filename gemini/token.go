package gemini

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/skim"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ skim.TokenCounter = (*TokenCounter)(nil)

// TokenCounter reports how many Gemini tokens a summary costs. Counting
// happens locally; no API key is needed.
type TokenCounter struct {
	mu  sync.Mutex
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a TokenCounter for model. An empty model selects
// DefaultModel. The tokenizer vocabulary is downloaded on first use and
// cached.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, skim.Errorf(skim.EINVALID, "no local tokenizer for model %q: %v", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens returns the token count of text. Blank text counts as zero.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	tc.mu.Lock()
	defer tc.mu.Unlock()

	result, err := tc.tok.CountTokens([]*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}, nil)
	if err != nil {
		return 0, err
	}
	return int(result.TotalTokens), nil
}
