package services

import (
	"context"

	"github.com/SscSPs/fince/internal/core/domain"
)

// Extractor turns free text into transaction drafts.
// Implementations never fail: any problem yields an empty slice.
type Extractor interface {
	Extract(ctx context.Context, text string, language domain.Language) []domain.TransactionDraft
}

// Advisor produces free-form financial advice.
// Implementations never fail: any problem yields a localized fallback message.
type Advisor interface {
	Advise(ctx context.Context, req domain.AdviceRequest) string
}
