package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radar/internal/flags/models"
	dErrors "radar/pkg/domain-errors"
	"radar/pkg/testutil"
)

func defaultEngine(t *testing.T) *RuleEngine {
	t.Helper()
	e, err := LoadRuleEngine("")
	require.NoError(t, err)
	return e
}

func types(findings []models.Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Type)
	}
	return out
}

func TestDefaultRules(t *testing.T) {
	e := defaultEngine(t)

	testutil.Given(t, "a thoughtful answer", func(t *testing.T) {
		testutil.Then(t, "no flags are raised", func(t *testing.T) {
			assert.Empty(t, e.Derive(1, "I help set up the camp kitchen and check in with newcomers every evening."))
		})
	})

	testutil.Given(t, "an answer describing acting without asking", func(t *testing.T) {
		findings := e.Derive(3, "I hugged someone without asking and they looked uncomfortable")
		testutil.Then(t, "a high severity consent flag is raised", func(t *testing.T) {
			require.Equal(t, []string{"consent_concern"}, types(findings))
			assert.Equal(t, models.SeverityHigh, findings[0].Severity)
			assert.Equal(t, 3, findings[0].QuestionNumber)
		})
	})

	testutil.Given(t, "keywords embedded in other words", func(t *testing.T) {
		testutil.Then(t, "they do not match", func(t *testing.T) {
			assert.NotContains(t, types(e.Derive(2, "we stayed in a highrise and watched the shutters")), "substance_use")
		})
	})

	testutil.Given(t, "a question-scoped rule", func(t *testing.T) {
		testutil.Then(t, "it only fires for its questions", func(t *testing.T) {
			assert.Contains(t, types(e.Derive(2, "I got really drunk at the burn last year")), "substance_use")
			assert.NotContains(t, types(e.Derive(4, "I got really drunk at the burn last year")), "substance_use")
		})
	})

	testutil.Given(t, "a very short answer", func(t *testing.T) {
		testutil.Then(t, "a low effort flag is raised", func(t *testing.T) {
			assert.Equal(t, []string{"low_effort"}, types(e.Derive(1, "yes")))
			assert.Equal(t, []string{"low_effort"}, types(e.Derive(1, "")))
		})
	})

	testutil.Given(t, "an answer matching several rules", func(t *testing.T) {
		findings := e.Derive(5, "I felt unsafe because someone drunk touched me without consent")
		testutil.Then(t, "flags come out in rule order", func(t *testing.T) {
			assert.Equal(t, []string{"safety_concern", "consent_concern", "substance_use"}, types(findings))
		})
	})
}

func TestDeriveIsDeterministic(t *testing.T) {
	e := defaultEngine(t)
	text := "They shouldn't be allowed back, I felt harassed"
	first := e.Derive(4, text)
	for range 10 {
		assert.Equal(t, first, e.Derive(4, text))
	}
	assert.Equal(t, []string{"safety_concern", "exclusion"}, types(first))
}

func TestChain(t *testing.T) {
	custom, err := NewRuleEngine([]RuleConfig{{Type: "mentions_gate", Severity: "low", Keywords: []string{"gate"}}})
	require.NoError(t, err)
	chain := Chain{defaultEngine(t), custom}

	assert.Equal(t, []string{"low_effort", "mentions_gate"}, types(chain.Derive(7, "gate shift")))
}

func TestRuleValidation(t *testing.T) {
	cases := map[string]RuleConfig{
		"missing type":       {Severity: "low", Keywords: []string{"x"}},
		"bad severity":       {Type: "x", Severity: "urgent", Keywords: []string{"x"}},
		"no matcher":         {Type: "x", Severity: "low"},
		"invalid expression": {Type: "x", Severity: "low", Patterns: []string{"("}},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewRuleEngine([]RuleConfig{cfg})
			assert.True(t, dErrors.HasCode(err, dErrors.CodeConfiguration))
		})
	}
}

func TestLoadRuleEngineFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - type: cats\n    severity: medium\n    keywords: [cat]\n"), 0o600))

	e, err := LoadRuleEngine(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cats"}, types(e.Derive(1, "my cat came to camp with me")))

	_, err = LoadRuleEngine(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConfiguration))
}
