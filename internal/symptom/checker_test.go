package symptom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohealth/healthbot/internal/domain"
)

func TestAnalyzeScoresKeySymptomsDouble(t *testing.T) {
	a := Analyze([]string{"fever", "cough", "body pain", "fatigue"})

	require.NotEmpty(t, a.Results)
	top := a.Results[0]
	assert.Equal(t, "Influenza (Flu)", top.Name)
	// Four key-symptom hits at weight 2 plus four plain hits.
	assert.Equal(t, 12, top.Score)
	assert.Equal(t, "High", top.Risk)
}

func TestAnalyzeRiskBands(t *testing.T) {
	a := Analyze([]string{"dizziness"})
	require.NotEmpty(t, a.Results)
	for _, r := range a.Results {
		assert.Equal(t, "Low", r.Risk, r.Name)
	}

	a = Analyze([]string{"fever", "cough"})
	require.NotEmpty(t, a.Results)
	assert.Equal(t, "Medium", a.Results[0].Risk)
}

func TestAnalyzeCapsResultsAtSix(t *testing.T) {
	// "fever" alone matches seven diseases in the table.
	a := Analyze([]string{"fever"})
	assert.Len(t, a.Results, 6)
}

func TestAnalyzeShowsAtMostThreeMatches(t *testing.T) {
	a := Analyze([]string{"fever", "cough", "sore throat", "body pain", "fatigue", "headache"})

	require.NotEmpty(t, a.Results)
	for _, r := range a.Results {
		assert.LessOrEqual(t, len(r.MatchedSymptoms), 3, r.Name)
	}
}

func TestAnalyzeNormalizesInput(t *testing.T) {
	a := Analyze([]string{"  FeVeR ", "COUGH"})
	b := Analyze([]string{"fever", "cough"})
	assert.Equal(t, b.Results, a.Results)
}

func TestAnalyzeNoMatches(t *testing.T) {
	a := Analyze([]string{"itchy elbow"})
	assert.Empty(t, a.Results)
	assert.NotEmpty(t, a.HomeRemedies)
	assert.NotEmpty(t, a.WhenToVisitDoctor)
}

func TestListDiseasesFilters(t *testing.T) {
	all := ListDiseases("", "")
	assert.Len(t, all, 11)

	assert.Equal(t, all, ListDiseases("", "All"))

	chronic := ListDiseases("", "Chronic Diseases")
	require.Len(t, chronic, 2)
	for _, d := range chronic {
		assert.Equal(t, "Chronic Diseases", d.Category)
	}

	byName := ListDiseases("dengue", "")
	require.Len(t, byName, 1)
	assert.Equal(t, "Dengue", byName[0].Name)
}

func TestGetDisease(t *testing.T) {
	d, err := GetDisease(2)
	require.NoError(t, err)
	assert.Equal(t, "Dengue", d.Name)
	assert.NotEmpty(t, d.Medicines)

	_, err = GetDisease(999)
	assert.ErrorIs(t, err, domain.ErrDiseaseNotFound)
}
