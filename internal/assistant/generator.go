package assistant

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arohealth/healthbot/internal/config"
	"github.com/arohealth/healthbot/internal/domain"
	"github.com/arohealth/healthbot/internal/llm"
)

// Pipeline states. Each user message walks
// classify → (refused | retrieve → grounded → (done | fallback → done));
// refused and done are terminal.
type state int

const (
	stateClassify state = iota
	stateRefused
	stateRetrieve
	stateGenerateGrounded
	stateGenerateFallback
	stateDone
)

// Request carries everything the pipeline needs for one user message.
// History must already be in creation order; the generator never reorders it.
type Request struct {
	ChatID       int64
	Message      string
	History      []domain.Message
	Language     string
	HasDocuments bool
}

// reply is the pipeline-local state threaded through transitions.
type reply struct {
	req     Request
	context string
	text    string
}

// Generator orchestrates the answer pipeline: intent gate, two-level context
// retrieval, grounded generation with a sentinel escape hatch, and an
// ungrounded safety fallback.
type Generator struct {
	model           ChatModel
	classifier      *Classifier
	retriever       *Retriever
	globalNamespace string
}

func NewGenerator(model ChatModel, classifier *Classifier, retriever *Retriever, globalNamespace string) *Generator {
	return &Generator{
		model:           model,
		classifier:      classifier,
		retriever:       retriever,
		globalNamespace: globalNamespace,
	}
}

// Respond produces exactly one reply for one user message. refused reports
// that the fixed refusal text was returned instead of a generated answer, so
// the caller can skip anything reserved for real answers (like titling the
// chat). The returned error is a remote-collaborator failure during retrieval
// or generation; the caller surfaces a generic try-again reply and persists
// nothing for the attempt.
func (g *Generator) Respond(ctx context.Context, req Request) (text string, refused bool, err error) {
	r := &reply{req: req}

	for st := stateClassify; ; {
		next, err := g.step(ctx, st, r)
		if err != nil {
			return "", false, err
		}
		switch next {
		case stateRefused:
			return RefusalMessage, true, nil
		case stateDone:
			return r.text, false, nil
		}
		st = next
	}
}

// step is the single transition function of the pipeline.
func (g *Generator) step(ctx context.Context, st state, r *reply) (state, error) {
	switch st {
	case stateClassify:
		// Document questions bypass the topic gate entirely so that Q&A over
		// an uploaded file is never blocked by the classifier.
		if r.req.HasDocuments && IsDocQuestion(r.req.Message) {
			return stateRetrieve, nil
		}
		if g.classifier.IsInDomain(ctx, r.req.Message) {
			return stateRetrieve, nil
		}
		return stateRefused, nil

	case stateRetrieve:
		// The chat's own uploads are more authoritative than the shared
		// corpus: first non-empty result wins, the two are never merged.
		text, err := g.retriever.RetrieveForChat(ctx, r.req.ChatID, r.req.Message)
		if err != nil {
			return 0, fmt.Errorf("retrieve chat context: %w", err)
		}
		if text == "" {
			text, err = g.retriever.Retrieve(ctx, g.globalNamespace, r.req.Message)
			if err != nil {
				return 0, fmt.Errorf("retrieve global context: %w", err)
			}
		}
		r.context = text
		// Character count, not bytes: Telugu or Hindi passages would
		// otherwise clear the bar at a third of the intended length.
		if utf8.RuneCountInString(strings.TrimSpace(r.context)) >= config.MinContextChars {
			return stateGenerateGrounded, nil
		}
		return stateGenerateFallback, nil

	case stateGenerateGrounded:
		msgs := lastTurns(r.req.History, config.MaxHistoryTurns)
		msgs = append(msgs, llm.Message{
			Role:    domain.RoleUser,
			Content: groundedPrompt(r.context, r.req.Message),
		})

		out, err := g.model.Complete(ctx, systemPrompt(ResolveLanguage(r.req.Language)), msgs, config.AnswerTemp)
		if err != nil {
			return 0, fmt.Errorf("grounded generation: %w", err)
		}
		if strings.TrimSpace(out) == Sentinel {
			return stateGenerateFallback, nil
		}
		r.text = strings.TrimSpace(out)
		return stateDone, nil

	case stateGenerateFallback:
		// Single-turn on purpose: history is not replayed here so the
		// ungrounded answer cannot echo earlier context-grounded claims.
		out, err := g.model.Complete(ctx, systemPrompt(ResolveLanguage(r.req.Language)), []llm.Message{
			{Role: domain.RoleUser, Content: fallbackPrompt(r.req.Message)},
		}, config.AnswerTemp)
		if err != nil {
			return 0, fmt.Errorf("fallback generation: %w", err)
		}
		r.text = strings.TrimSpace(out)
		return stateDone, nil
	}

	return 0, fmt.Errorf("answer pipeline: unexpected state %d", st)
}

func lastTurns(history []domain.Message, n int) []llm.Message {
	if len(history) > n {
		history = history[len(history)-n:]
	}
	msgs := make([]llm.Message, 0, len(history)+1)
	for _, m := range history {
		msgs = append(msgs, llm.Message{Role: m.Role, Content: m.Content})
	}
	return msgs
}
