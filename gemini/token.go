package gemini

import (
	"context"

	"github.com/fwojciec/jobsnap"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ jobsnap.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts prompt tokens locally with the Gemini tokenizer, so
// oversized postings are rejected without an API round trip.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the number of tokens in text sent as a user turn.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}, nil)
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}
