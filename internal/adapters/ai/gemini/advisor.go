package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/fince/internal/core/domain"
	portssvc "github.com/SscSPs/fince/internal/core/ports/services"
	"github.com/SscSPs/fince/internal/middleware"
)

const adviceInstruction = `You are a premium personal finance coach.

CRITICAL RULE: You must respond ONLY in %[1]s.
Even if the user asks in another language, your entire response must be in %[1]s.

CONTEXT:
- User's Current Balance: %[2]s
- Recent Activity: %[3]s (last %[4]d transactions)
- Topic to discuss: %[5]q

INSTRUCTIONS:
- Be concise and professional (max 150 words).
- Use bullet points if necessary.
- If balance is negative, show concern and suggest urgent saving strategies.
- Be encouraging and supportive.`

var adviceFallbacks = map[domain.Language]string{
	domain.LanguageSpanish: "No pude conectar con el asesor. Intenta de nuevo.",
	domain.LanguageEnglish: "Could not connect with the advisor. Please try again.",
	domain.LanguageGerman:  "Konnte keine Verbindung zum Berater herstellen. Versuchen Sie es erneut.",
	domain.LanguageChinese: "无法连接顾问。请重试。",
}

// AdviceFallback returns the message shown when the advisor cannot answer.
func AdviceFallback(language domain.Language) string {
	if msg, ok := adviceFallbacks[language]; ok {
		return msg
	}
	return adviceFallbacks[domain.DefaultLanguage]
}

// Advisor answers finance questions with the ledger's recent activity as context.
type Advisor struct {
	generator TextGenerator
	model     string
}

var _ portssvc.Advisor = (*Advisor)(nil)

// NewAdvisor creates an advisor that queries model through generator.
func NewAdvisor(generator TextGenerator, model string) *Advisor {
	return &Advisor{generator: generator, model: model}
}

// Advise never fails: errors and empty replies yield the localized fallback.
func (a *Advisor) Advise(ctx context.Context, req domain.AdviceRequest) string {
	recent := req.Recent
	if len(recent) > domain.AdviceRecentLimit {
		recent = recent[len(recent)-domain.AdviceRecentLimit:]
	}
	activity, err := json.Marshal(recent)
	if err != nil {
		activity = []byte("[]")
	}

	reply, err := a.generator.Generate(ctx, GenerateRequest{
		Model:             a.model,
		SystemInstruction: fmt.Sprintf(adviceInstruction, req.Language.Name(), req.Balance.String(), activity, len(recent), req.Topic),
		Prompt:            req.Topic,
	})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Advice request failed", slog.String("error", err.Error()))
		return AdviceFallback(req.Language)
	}
	if reply = strings.TrimSpace(reply); reply == "" {
		return AdviceFallback(req.Language)
	}
	return reply
}
