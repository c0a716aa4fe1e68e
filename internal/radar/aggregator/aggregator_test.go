package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radar/internal/radar/models"
	dErrors "radar/pkg/domain-errors"
)

func newDefault(t *testing.T) *Aggregator {
	t.Helper()
	m, err := DefaultMapping()
	require.NoError(t, err)
	return New(m)
}

func fourAnswers() []models.AnswerInput {
	return []models.AnswerInput{
		{QuestionNumber: 4, Text: "I introduce myself and invite newcomers to dinner"},
		{QuestionNumber: 1, Text: "Participation means showing up and giving what I can"},
		{QuestionNumber: 3, Text: "I asked and then stopped when they hesitated"},
		{QuestionNumber: 2, Text: "I built the shade structure and cooked for our team"},
	}
}

func TestScoreAnswer(t *testing.T) {
	a := newDefault(t)

	tests := []struct {
		name     string
		question int
		text     string
		want     float64
	}{
		{"length scales with words", 1, "Participation means showing up and giving what I can", 0.225},
		{"length saturates", 1, longText(50), 1},
		{"keywords count distinct hits", 2, "I built the shade structure and cooked for our team", 0.75},
		{"repeated keyword counts once", 2, "built built built", 0.25},
		{"negative keywords subtract", 3, "I asked but then pushed anyway", 0},
		{"negative only clamps at zero", 3, "I assumed it was fine and pushed on", 0},
		{"keywords match whole words", 3, "I basked in the sun", 0},
		{"affirmation yes", 5, "Yes, two burns at gate", 1},
		{"affirmation no", 5, "No", 0},
		{"affirmation unclear", 5, "Kind of", 0.5},
		{"empty answer", 5, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.ScoreAnswer(tt.question, tt.text)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestScoreAnswerUnknownQuestion(t *testing.T) {
	_, err := newDefault(t).ScoreAnswer(99, "hello")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestCompute(t *testing.T) {
	a := newDefault(t)

	profile, err := a.Compute(fourAnswers())
	require.NoError(t, err)

	want := map[models.Dimension]float64{
		models.DimensionParticipation:          0.54,
		models.DimensionConsentLiteracy:        0.6667,
		models.DimensionCommunalResponsibility: 0.375,
		models.DimensionInclusionAwareness:     1,
		models.DimensionSelfRegulation:         0.2,
		models.DimensionOpennessToLearning:     0.6125,
		models.DimensionGateExperience:         0,
	}
	require.Len(t, profile.Dimensions, len(models.Dimensions()))
	for d, v := range want {
		assert.InDelta(t, v, profile.Dimensions[d], 1e-9, string(d))
	}
}

func TestComputeMatchesStoredScores(t *testing.T) {
	a := newDefault(t)
	inputs := [][]models.AnswerInput{
		fourAnswers(),
		append(fourAnswers(),
			models.AnswerInput{QuestionNumber: 5, Text: "yes at the gate"},
			models.AnswerInput{QuestionNumber: 6, Text: "water, rest and checking on friends"}),
		{
			{QuestionNumber: 1, Text: ""},
			{QuestionNumber: 2, Text: "nothing"},
			{QuestionNumber: 3, Text: "I ignored it"},
			{QuestionNumber: 4, Text: "people who are weird"},
		},
	}
	for _, answers := range inputs {
		direct, err := a.Compute(answers)
		require.NoError(t, err)
		scores, err := a.Score(answers)
		require.NoError(t, err)
		fromScores, err := a.ComputeFromScores(scores)
		require.NoError(t, err)
		assert.Equal(t, direct.Dimensions, fromScores.Dimensions)
		for _, v := range direct.Dimensions {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestComputeMissingRequired(t *testing.T) {
	a := newDefault(t)
	answers := fourAnswers()[:3]

	_, err := a.Compute(answers)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeIncompleteAssessment))
	assert.Contains(t, err.Error(), "[2]")
}

func TestComputeDuplicateAnswer(t *testing.T) {
	a := newDefault(t)
	answers := append(fourAnswers(), models.AnswerInput{QuestionNumber: 1, Text: "again"})

	_, err := a.Compute(answers)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeIncompleteAssessment))
}

func TestComputeFromScoresClampsOutOfRange(t *testing.T) {
	a := newDefault(t)
	profile, err := a.ComputeFromScores([]models.QuestionScore{
		{QuestionNumber: 1, Score: 3},
		{QuestionNumber: 2, Score: -1},
		{QuestionNumber: 3, Score: 1},
		{QuestionNumber: 4, Score: 1},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.4, profile.Dimensions[models.DimensionParticipation], 1e-9)
}

func TestQuestions(t *testing.T) {
	a := newDefault(t)
	qs := a.Questions()
	require.NotEmpty(t, qs)
	for i := 1; i < len(qs); i++ {
		assert.Less(t, qs[i-1].Number, qs[i].Number)
	}
	q3, ok := a.Question(3)
	require.True(t, ok)
	assert.True(t, q3.Sensitive)
	assert.True(t, q3.Required)
	_, ok = a.Question(42)
	assert.False(t, ok)
}

func longText(words int) string {
	out := make([]byte, 0, words*5)
	for i := 0; i < words; i++ {
		out = append(out, "word "...)
	}
	return string(out)
}
