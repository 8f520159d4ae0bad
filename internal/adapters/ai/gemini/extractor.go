package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/fince/internal/core/domain"
	portssvc "github.com/SscSPs/fince/internal/core/ports/services"
	"github.com/SscSPs/fince/internal/middleware"
)

const extractionInstruction = `You are a financial data extractor. You must respond ONLY in %[1]s.

RULES:
- Extract all expenses and income from the user's text
- Return a JSON array: [{"category": "food", "amount": -10, "label": "pizza"}]
- Expenses are negative numbers, income is positive
- "category" and "label" must be in %[1]s
- Be concise in labels (2-4 words max)
- Return ONLY valid raw JSON, without Markdown code fences`

// Extractor turns free text into transaction drafts.
type Extractor struct {
	generator TextGenerator
	model     string
}

var _ portssvc.Extractor = (*Extractor)(nil)

// NewExtractor creates an extractor that queries model through generator.
func NewExtractor(generator TextGenerator, model string) *Extractor {
	return &Extractor{generator: generator, model: model}
}

// Extract never fails. Empty input, service errors and unusable replies yield an empty slice.
func (e *Extractor) Extract(ctx context.Context, text string, language domain.Language) []domain.TransactionDraft {
	text = strings.TrimSpace(text)
	if text == "" {
		return []domain.TransactionDraft{}
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	reply, err := e.generator.Generate(ctx, GenerateRequest{
		Model:             e.model,
		SystemInstruction: fmt.Sprintf(extractionInstruction, language.Name()),
		Prompt:            text,
		JSON:              true,
	})
	if err != nil {
		logger.Warn("Extraction request failed", slog.String("error", err.Error()))
		return []domain.TransactionDraft{}
	}

	drafts, err := ParseDrafts(reply)
	if err != nil {
		logger.Warn("Extraction reply could not be parsed", slog.String("error", err.Error()))
		return []domain.TransactionDraft{}
	}
	return drafts
}

// ParseDrafts decodes a model reply into drafts. The reply may be a JSON array,
// an object wrapping an array in any field, or a single transaction object.
// Elements without an amount are dropped.
func ParseDrafts(reply string) ([]domain.TransactionDraft, error) {
	items, err := unwrapItems([]byte(cleanModelJSON(reply)))
	if err != nil {
		return nil, err
	}

	drafts := make([]domain.TransactionDraft, 0, len(items))
	for _, raw := range items {
		if d, ok := draftFrom(raw); ok {
			drafts = append(drafts, d)
		}
	}
	return drafts, nil
}

// unwrapItems returns the array elements held by the reply document.
func unwrapItems(doc []byte) ([]json.RawMessage, error) {
	doc = bytes.TrimSpace(doc)
	if len(doc) == 0 {
		return nil, fmt.Errorf("empty reply")
	}

	switch doc[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(doc, &items); err != nil {
			return nil, fmt.Errorf("decode array: %w", err)
		}
		return items, nil
	case '{':
		return unwrapObject(doc)
	default:
		return []json.RawMessage{}, nil
	}
}

// unwrapObject takes the first array-valued field in document order, or wraps
// the object itself when its amount is set and not zero, false or empty.
func unwrapObject(doc []byte) ([]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}

	hasAmount := false
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode object key: %w", err)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode object value: %w", err)
		}
		value = bytes.TrimSpace(value)
		if len(value) > 0 && value[0] == '[' {
			var items []json.RawMessage
			if err := json.Unmarshal(value, &items); err != nil {
				return nil, fmt.Errorf("decode field %v: %w", key, err)
			}
			return items, nil
		}
		if key == "amount" {
			hasAmount = isSet(value)
		}
	}
	if hasAmount {
		return []json.RawMessage{json.RawMessage(doc)}, nil
	}
	return []json.RawMessage{}, nil
}

// isSet reports whether a JSON value is neither null, false, zero nor "".
func isSet(value json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(value, &v); err != nil {
		return false
	}
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return true
	}
}

func draftFrom(raw json.RawMessage) (domain.TransactionDraft, bool) {
	var fields map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return domain.TransactionDraft{}, false
	}

	var amount json.Number
	switch v := fields["amount"].(type) {
	case json.Number:
		amount = v
	case string:
		amount = json.Number(strings.TrimSpace(v))
	case nil:
		return domain.TransactionDraft{}, false
	default:
		amount = json.Number(fmt.Sprint(v))
	}

	return domain.TransactionDraft{
		Label:    stringField(fields, "label"),
		Category: stringField(fields, "category"),
		Amount:   amount,
	}, true
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return strings.TrimSpace(s)
}

// cleanModelJSON strips Markdown code fences the model may add despite instructions.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		idx := strings.Index(s, "\n")
		if idx == -1 {
			return s
		}
		s = strings.TrimSpace(s[idx+1:])
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
