package ml

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModel(t *testing.T, m Model) string {
	t.Helper()
	raw, err := json.Marshal(m)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func testModel() Model {
	return Model{
		Vocabulary: map[string]int{"fever": 0, "cough": 1, "rash": 2},
		IDF:        []float64{1, 1, 1},
		Classes:    []string{"flu", "measles", "allergy"},
		Coef: [][]float64{
			{2, 2, -1},
			{-1, -1, 3},
			{-1, -1, 1},
		},
		Intercept: []float64{0, 0, 0},
	}
}

func TestLoadRejectsBadDimensions(t *testing.T) {
	m := testModel()
	m.Intercept = []float64{0}
	_, err := Load(writeModel(t, m))
	assert.Error(t, err)

	m = testModel()
	m.Coef[1] = []float64{1}
	_, err = Load(writeModel(t, m))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestPredictRanksByProbability(t *testing.T) {
	c, err := Load(writeModel(t, testModel()))
	require.NoError(t, err)

	preds := c.Predict([]string{"Fever", " COUGH "}, 3)
	require.Len(t, preds, 3)

	assert.Equal(t, "flu", preds[0].Disease)
	assert.Greater(t, preds[0].Confidence, preds[1].Confidence)
	assert.GreaterOrEqual(t, preds[1].Confidence, preds[2].Confidence)

	var sum float64
	for _, p := range preds {
		sum += p.Confidence
	}
	assert.InDelta(t, 1.0, sum, 0.001, "softmax confidences sum to one")
}

func TestPredictTopKClamping(t *testing.T) {
	c, err := Load(writeModel(t, testModel()))
	require.NoError(t, err)

	// Zero falls back to the default, then gets capped by the class count.
	assert.Len(t, c.Predict([]string{"rash"}, 0), 3)
	assert.Len(t, c.Predict([]string{"rash"}, 1), 1)
	assert.Len(t, c.Predict([]string{"rash"}, 50), 3)
}

func TestPredictIgnoresUnknownTokens(t *testing.T) {
	c, err := Load(writeModel(t, testModel()))
	require.NoError(t, err)

	a := c.Predict([]string{"rash"}, 3)
	b := c.Predict([]string{"rash", "xyzzy", "?!"}, 3)
	assert.Equal(t, a, b)
	assert.Equal(t, "measles", a[0].Disease)
}
