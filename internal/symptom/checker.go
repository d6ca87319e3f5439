package symptom

import (
	"sort"
	"strings"

	"github.com/arohealth/healthbot/internal/domain"
)

// DiseaseSummary is the directory list view.
type DiseaseSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// Risk assessment for one matched disease.
type Risk struct {
	Name            string   `json:"name"`
	Risk            string   `json:"risk"`
	Score           int      `json:"score"`
	Reason          string   `json:"reason"`
	MatchedSymptoms []string `json:"matched_symptoms"`
}

// Assessment is the full symptom-checker response.
type Assessment struct {
	Results           []Risk   `json:"results"`
	HomeRemedies      []string `json:"home_remedies"`
	WhenToVisitDoctor []string `json:"when_to_visit_doctor"`
}

const (
	highRiskScore   = 8
	mediumRiskScore = 5
	maxResults      = 6
	maxShownMatches = 3
)

var homeRemedies = []string{
	"Drink plenty of fluids (water/ORS).",
	"Take adequate rest and sleep.",
	"Eat light foods (khichdi/soup/curd rice).",
	"Avoid oily/spicy food if nausea.",
}

var whenToVisitDoctor = []string{
	"Breathing difficulty / chest pain.",
	"Very high fever lasting >2 days.",
	"Severe vomiting or cannot drink fluids.",
	"Drowsiness, confusion, or fainting.",
	"Any bleeding or severe weakness (urgent).",
}

// Fixed per-disease explanations shown with a match. Diseases without an
// entry get the generic line.
var fixedReasons = map[string]string{
	"Influenza (Flu)": "Fever and cough are common symptoms of influenza, especially if accompanied by body aches or fatigue.",
	"COVID-19":        "Fever and cough can be symptoms of COVID-19, especially if there are additional symptoms like loss of taste or smell.",
	"Common Cold":     "Fever and cough are common symptoms of a cold, often with mild fatigue or headache.",
	"Pneumonia":       "Cough and fever can indicate pneumonia, particularly if there is chest pain or breathing difficulty.",
	"Bronchitis":      "Persistent cough with fever or fatigue may suggest bronchitis, especially if mucus production occurs.",
	"Food Poisoning":  "Nausea, vomiting, and fever often indicate food poisoning, especially after contaminated food.",
	"Hypertension":    "Hypertension usually has no symptoms, but dizziness or headaches can sometimes occur.",
	"Diabetes":        "Fatigue or dizziness may occur in diabetes, though proper diagnosis requires medical tests.",
	"Dengue":          "High fever with severe headache and body pain can be seen in dengue, especially if there is rash or nausea.",
}

const genericReason = "Some of the selected symptoms are associated with this condition. Consult a doctor for confirmation."

func reasonFor(name string) string {
	if r, ok := fixedReasons[strings.TrimSpace(name)]; ok {
		return r
	}
	return genericReason
}

func riskFromScore(score int) string {
	switch {
	case score >= highRiskScore:
		return "High"
	case score >= mediumRiskScore:
		return "Medium"
	default:
		return "Low"
	}
}

// Analyze matches the selected symptoms against the static disease table.
// Key symptoms weigh double; only the top six scoring diseases are returned.
func Analyze(selected []string) Assessment {
	selectedSet := make(map[string]bool)
	for _, s := range selected {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			selectedSet[s] = true
		}
	}

	var results []Risk
	for _, d := range diseases {
		matchedAll := intersect(selectedSet, d.Symptoms)
		if len(matchedAll) == 0 {
			continue
		}
		matchedKey := intersect(selectedSet, d.KeySymptoms)

		shown := matchedKey
		if len(shown) == 0 {
			shown = matchedAll
		}
		if len(shown) > maxShownMatches {
			shown = shown[:maxShownMatches]
		}

		score := len(matchedKey)*2 + len(matchedAll)

		results = append(results, Risk{
			Name:            d.Name,
			Risk:            riskFromScore(score),
			Score:           score,
			Reason:          reasonFor(d.Name),
			MatchedSymptoms: shown,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	return Assessment{
		Results:           results,
		HomeRemedies:      homeRemedies,
		WhenToVisitDoctor: whenToVisitDoctor,
	}
}

func intersect(selected map[string]bool, symptoms []string) []string {
	var matched []string
	for _, s := range symptoms {
		if selected[strings.ToLower(strings.TrimSpace(s))] {
			matched = append(matched, strings.ToLower(strings.TrimSpace(s)))
		}
	}
	sort.Strings(matched)
	return matched
}

// ListDiseases filters the directory by name substring and category.
func ListDiseases(query, category string) []DiseaseSummary {
	query = strings.ToLower(strings.TrimSpace(query))
	category = strings.TrimSpace(category)

	out := make([]DiseaseSummary, 0, len(diseases))
	for _, d := range diseases {
		if category != "" && category != "All" && d.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(d.Name), query) {
			continue
		}
		out = append(out, DiseaseSummary{ID: d.ID, Name: d.Name, Category: d.Category, Image: d.Image})
	}
	return out
}

// GetDisease returns one directory entry by id.
func GetDisease(id int64) (*Disease, error) {
	for i := range diseases {
		if diseases[i].ID == id {
			return &diseases[i], nil
		}
	}
	return nil, domain.ErrDiseaseNotFound
}
