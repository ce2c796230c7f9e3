// Package gemini implements bungo.Recognizer with Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/bungo"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Recognizer implements bungo.Recognizer at compile time.
var _ bungo.Recognizer = (*Recognizer)(nil)

// Recognizer tags place names in Japanese sentences with a Gemini model.
type Recognizer struct {
	client *genai.Client
	model  string
}

// NewRecognizer verifies that model is reachable with client and returns a
// Recognizer. A missing client or unknown model is an ECONFIG error.
func NewRecognizer(ctx context.Context, client *genai.Client, model string) (*Recognizer, error) {
	if client == nil {
		return nil, bungo.Errorf(bungo.ECONFIG, "gemini client required")
	}
	if model == "" {
		model = DefaultModel
	}
	if _, err := client.Models.Get(ctx, model, nil); err != nil {
		return nil, bungo.Errorf(bungo.ECONFIG, "gemini model %q unavailable: %v", model, err)
	}
	return &Recognizer{client: client, model: model}, nil
}

// Sentences splits text locally; the model is only consulted for entities.
func (r *Recognizer) Sentences(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return bungo.SplitSentences(text), nil
}

// Entities asks the model for the places mentioned in sentence.
func (r *Recognizer) Entities(ctx context.Context, sentence string) ([]bungo.Entity, error) {
	result, err := r.client.Models.GenerateContent(ctx, r.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildEntityPrompt(sentence)}},
		}},
		BuildEntityConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, bungo.Errorf(bungo.EINTERNAL, "gemini returned nil result")
	}
	return ParseEntities(result.Text(), sentence)
}

// BuildEntityConfig returns the GenerateContentConfig for entity requests.
// The response is constrained to a JSON array of {text, label} objects.
func BuildEntityConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	labels := []string{
		string(bungo.LabelProvince),
		string(bungo.LabelCity),
		string(bungo.LabelCounty),
		string(bungo.LabelGPE),
		string(bungo.LabelLOC),
	}
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You tag place names in sentences from Japanese literature. Return only spans copied verbatim from the sentence. Do not tag people, organizations or works.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"text":  {Type: genai.TypeString},
					"label": {Type: genai.TypeString, Enum: labels},
				},
				Required: []string{"text", "label"},
			},
		},
	}
}

// BuildEntityPrompt builds the user prompt for one sentence.
func BuildEntityPrompt(sentence string) string {
	var sb strings.Builder
	sb.WriteString("Label each place name in the sentence as Province, City, County, GPE or LOC.\n\n")
	fmt.Fprintf(&sb, "<sentence>%s</sentence>", sentence)
	return sb.String()
}

// ParseEntities decodes a model response. Spans that do not occur in
// sentence are dropped.
func ParseEntities(raw, sentence string) ([]bungo.Entity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var decoded []bungo.Entity
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, bungo.Errorf(bungo.EINTERNAL, "decode gemini entities: %v", err)
	}
	entities := decoded[:0]
	for _, e := range decoded {
		e.Text = strings.TrimSpace(e.Text)
		if e.Text == "" || !strings.Contains(sentence, e.Text) {
			continue
		}
		entities = append(entities, e)
	}
	return entities, nil
}
