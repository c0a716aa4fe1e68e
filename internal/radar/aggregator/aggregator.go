// Package aggregator turns questionnaire answers into a radar profile.
//
// Everything here is pure. Scores are computed from plaintext at submission
// and stored next to the answer, so completion can aggregate from stored
// scores without decrypting sensitive answers. Compute(a) and
// ComputeFromScores(Score(a)) always agree.
package aggregator

import (
	"fmt"
	"sort"

	"radar/internal/radar/models"
	dErrors "radar/pkg/domain-errors"
)

type Aggregator struct {
	mapping *Mapping
}

func New(m *Mapping) *Aggregator {
	return &Aggregator{mapping: m}
}

// Questions returns the questionnaire in question order.
func (a *Aggregator) Questions() []Question {
	out := make([]Question, len(a.mapping.Questions))
	copy(out, a.mapping.Questions)
	return out
}

func (a *Aggregator) Question(number int) (Question, bool) {
	return a.mapping.Question(number)
}

// ScoreAnswer scores one answer. Unknown questions return CodeNotFound.
func (a *Aggregator) ScoreAnswer(questionNumber int, text string) (float64, error) {
	q, ok := a.mapping.Question(questionNumber)
	if !ok {
		return 0, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("question %d not found", questionNumber))
	}
	return models.Round4(q.Scorer.score(text)), nil
}

// Score maps answers to their per-question scores, sorted by question.
func (a *Aggregator) Score(answers []models.AnswerInput) ([]models.QuestionScore, error) {
	out := make([]models.QuestionScore, 0, len(answers))
	for _, ans := range answers {
		s, err := a.ScoreAnswer(ans.QuestionNumber, ans.Text)
		if err != nil {
			return nil, err
		}
		out = append(out, models.QuestionScore{QuestionNumber: ans.QuestionNumber, Score: s})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].QuestionNumber < out[j].QuestionNumber })
	return out, nil
}

// Compute aggregates plaintext answers. Every required question must be
// answered exactly once.
func (a *Aggregator) Compute(answers []models.AnswerInput) (*models.Profile, error) {
	scores, err := a.Score(answers)
	if err != nil {
		return nil, err
	}
	return a.ComputeFromScores(scores)
}

// ComputeFromScores aggregates stored per-question scores.
func (a *Aggregator) ComputeFromScores(scores []models.QuestionScore) (*models.Profile, error) {
	byQuestion := make(map[int]float64, len(scores))
	for _, s := range scores {
		if _, ok := a.mapping.Question(s.QuestionNumber); !ok {
			return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("question %d not found", s.QuestionNumber))
		}
		if _, dup := byQuestion[s.QuestionNumber]; dup {
			return nil, dErrors.New(dErrors.CodeIncompleteAssessment, fmt.Sprintf("question %d answered more than once", s.QuestionNumber))
		}
		byQuestion[s.QuestionNumber] = models.Clamp01(s.Score)
	}
	if missing := a.missing(byQuestion); len(missing) > 0 {
		return nil, dErrors.New(dErrors.CodeIncompleteAssessment, fmt.Sprintf("missing required answers: %v", missing))
	}

	dims := make(map[models.Dimension]float64, len(a.mapping.Dimensions))
	for _, d := range models.Dimensions() {
		var total, weights float64
		for _, c := range a.mapping.Dimensions[d] {
			total += c.Weight * byQuestion[c.Question]
			weights += c.Weight
		}
		dims[d] = models.Round4(models.Clamp01(total / weights))
	}
	return &models.Profile{Dimensions: dims}, nil
}

// missing lists required question numbers absent from answered, in order.
func (a *Aggregator) missing(answered map[int]float64) []int {
	var missing []int
	for _, q := range a.mapping.Questions {
		if _, ok := answered[q.Number]; q.Required && !ok {
			missing = append(missing, q.Number)
		}
	}
	return missing
}
