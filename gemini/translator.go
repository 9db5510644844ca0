// Package gemini implements translation and token counting with Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/skim"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for translation.
const DefaultModel = "gemini-2.5-flash"

// Ensure Translator implements skim.Translator at compile time.
var _ skim.Translator = (*Translator)(nil)

// Translator implements skim.Translator using Google Gemini.
type Translator struct {
	client *genai.Client
	model  string
}

// NewTranslator creates a new Translator. An empty model selects DefaultModel.
func NewTranslator(client *genai.Client, model string) *Translator {
	if model == "" {
		model = DefaultModel
	}
	return &Translator{client: client, model: model}
}

// Translate returns text translated into targetLang.
// Blank text is returned as an empty string without calling the API.
func (t *Translator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if strings.TrimSpace(targetLang) == "" {
		return "", skim.Errorf(skim.EINVALID, "target language required")
	}

	result, err := t.client.Models.GenerateContent(ctx, t.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildPrompt(text, targetLang)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", skim.Errorf(skim.EUPSTREAM, "gemini returned nil result")
	}

	translated := strings.TrimSpace(result.Text())
	if translated == "" {
		return "", skim.Errorf(skim.EUPSTREAM, "gemini returned an empty translation")
	}
	return translated, nil
}

// BuildConfig returns the GenerateContentConfig for translation calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a professional translator. Translate the text you are given faithfully, keeping its meaning and sentence order. Reply with the translation only, without notes or quotation marks.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildPrompt builds the user prompt asking for text in targetLang.
func BuildPrompt(text, targetLang string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Target language: %s\n\n", targetLang)
	sb.WriteString("<text>\n")
	sb.WriteString(text)
	sb.WriteString("\n</text>")
	return sb.String()
}
