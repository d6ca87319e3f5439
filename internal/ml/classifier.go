package ml

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/arohealth/healthbot/internal/config"
)

// Model is the trained artifact exported by the offline training script:
// a TF-IDF vocabulary with idf weights plus a linear classifier over it.
// Coef is classes x features.
type Model struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	Classes    []string       `json:"classes"`
	Coef       [][]float64    `json:"coef"`
	Intercept  []float64      `json:"intercept"`
}

// Prediction is one ranked disease guess.
type Prediction struct {
	Disease    string  `json:"disease"`
	Confidence float64 `json:"confidence"`
}

// Classifier runs pass-through inference: vectorize, score, decode labels.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	model Model
}

func Load(path string) (*Classifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}

	var m Model
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}

	if len(m.Classes) == 0 || len(m.Coef) != len(m.Classes) || len(m.Intercept) != len(m.Classes) {
		return nil, fmt.Errorf("model dimensions mismatch: %d classes, %d coef rows, %d intercepts",
			len(m.Classes), len(m.Coef), len(m.Intercept))
	}
	for i, row := range m.Coef {
		if len(row) != len(m.IDF) {
			return nil, fmt.Errorf("coef row %d has %d features, idf has %d", i, len(row), len(m.IDF))
		}
	}

	return &Classifier{model: m}, nil
}

// Predict joins the selected symptoms into one text, vectorizes it the same
// way the trainer did and returns the topK most probable diseases. topK is
// clamped to 1..10; zero falls back to the default of 5.
func (c *Classifier) Predict(symptoms []string, topK int) []Prediction {
	if topK <= 0 {
		topK = config.DefaultPredictTopK
	}
	if topK > config.MaxPredictTopK {
		topK = config.MaxPredictTopK
	}

	x := c.vectorize(symptomsText(symptoms))
	probs := c.probabilities(x)

	idx := make([]int, len(probs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return probs[idx[a]] > probs[idx[b]] })

	if topK > len(idx) {
		topK = len(idx)
	}
	preds := make([]Prediction, topK)
	for i := 0; i < topK; i++ {
		preds[i] = Prediction{
			Disease:    c.model.Classes[idx[i]],
			Confidence: math.Round(probs[idx[i]]*10000) / 10000,
		}
	}
	return preds
}

func symptomsText(symptoms []string) string {
	parts := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// vectorize produces an L2-normalised TF-IDF vector. The trainer strips
// everything but lowercase letters and whitespace and tokenizes on words of
// at least two characters; inference must match exactly.
func (c *Classifier) vectorize(text string) []float64 {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || r == ' ' || r == '\t' || r == '\n' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	x := make([]float64, len(c.model.IDF))
	for _, tok := range strings.Fields(b.String()) {
		if len(tok) < 2 {
			continue
		}
		if i, ok := c.model.Vocabulary[tok]; ok && i < len(x) {
			x[i] += c.model.IDF[i]
		}
	}

	var norm float64
	for _, v := range x {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range x {
			x[i] /= norm
		}
	}
	return x
}

// probabilities applies the linear layer and a softmax over class scores.
func (c *Classifier) probabilities(x []float64) []float64 {
	scores := make([]float64, len(c.model.Classes))
	maxScore := math.Inf(-1)
	for i, row := range c.model.Coef {
		s := c.model.Intercept[i]
		for j, w := range row {
			if x[j] != 0 {
				s += w * x[j]
			}
		}
		scores[i] = s
		if s > maxScore {
			maxScore = s
		}
	}

	var sum float64
	for i, s := range scores {
		scores[i] = math.Exp(s - maxScore)
		sum += scores[i]
	}
	for i := range scores {
		scores[i] /= sum
	}
	return scores
}
