package assistant

import (
	"context"
	"log/slog"
	"strings"

	"github.com/arohealth/healthbot/internal/config"
	"github.com/arohealth/healthbot/internal/domain"
	"github.com/arohealth/healthbot/internal/llm"
)

// ChatModel is the external text-generation collaborator.
type ChatModel interface {
	Complete(ctx context.Context, system string, msgs []llm.Message, temperature float32) (string, error)
}

// medicalKeywords short-circuits classification for obviously in-domain
// questions. The remote classifier is known to miss short queries like
// "fever?", so any keyword hit skips it entirely.
var medicalKeywords = []string{
	"medicine", "medication", "tablet", "capsule", "syrup", "drug",
	"dose", "dosage", "prescription", "side effect", "contraindication",
	"fever", "cough", "cold", "pain", "headache", "bp", "sugar",
	"infection", "disease", "symptom", "treatment", "diagnosis",
	"antibiotic", "paracetamol", "ibuprofen", "dolo", "azith",
	"rash", "vomit", "diarrhea", "asthma", "diabetes", "hypertension",
	"what is this medicine", "what is this tablet",
}

// docPhrases marks questions about an uploaded file. The list is hand-curated
// and deliberately narrow; it is only consulted when the chat actually has
// documents attached.
var docPhrases = []string{
	"this pdf", "in this pdf", "from this pdf",
	"this file", "in this file", "from this file",
	"this document", "in this document", "from this document",
	"this image", "in this image", "from this image",
	"this photo", "in this photo", "from this photo",
	"uploaded file", "uploaded", "upload", "attachment",
	"above image", "given image",
	"extract", "summarize", "summary", "explain this",
	"what is written", "what does it say",
	"medicine name", "tablet name", "drug name",
}

// IsDocQuestion reports whether the message refers to an uploaded document.
func IsDocQuestion(text string) bool {
	t := strings.ToLower(text)
	for _, w := range docPhrases {
		if strings.Contains(t, w) {
			return true
		}
	}
	return false
}

// Classifier decides whether a message is health-related before any
// generation is attempted.
type Classifier struct {
	model ChatModel
}

func NewClassifier(model ChatModel) *Classifier {
	return &Classifier{model: model}
}

// IsInDomain runs the keyword allowlist first and falls back to a single-turn
// remote YES/NO classification. Anything other than an exact (case-insensitive)
// YES counts as out of domain, remote failures included: a false negative only
// refuses a valid question, while a false positive produces unscoped
// medical-sounding content.
func (c *Classifier) IsInDomain(ctx context.Context, text string) bool {
	q := strings.ToLower(strings.TrimSpace(text))
	for _, k := range medicalKeywords {
		if strings.Contains(q, k) {
			return true
		}
	}

	out, err := c.model.Complete(ctx, "", []llm.Message{
		{Role: domain.RoleUser, Content: classifierPrompt(text)},
	}, config.ClassifierTemp)
	if err != nil {
		slog.Warn("intent classifier unavailable, failing closed", "error", err)
		return false
	}

	return strings.EqualFold(strings.TrimSpace(out), "YES")
}
