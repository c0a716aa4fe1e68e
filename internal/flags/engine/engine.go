// Package engine derives review flags from answer plaintext.
//
// Derivation is pure: the same question and text always give the same
// findings in the same order. It runs before any encryption and never
// blocks a submission.
package engine

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"radar/internal/flags/models"
	dErrors "radar/pkg/domain-errors"
	"radar/pkg/textnorm"
)

// Deriver turns one answer into zero or more findings.
type Deriver interface {
	Derive(questionNumber int, answer string) []models.Finding
}

// Chain runs derivers in order and concatenates their findings.
type Chain []Deriver

func (c Chain) Derive(questionNumber int, answer string) []models.Finding {
	var out []models.Finding
	for _, d := range c {
		out = append(out, d.Derive(questionNumber, answer)...)
	}
	return out
}

//go:embed rules.yaml
var defaultRules []byte

// RuleConfig is one rule as written in YAML.
type RuleConfig struct {
	Type      string   `yaml:"type"`
	Severity  string   `yaml:"severity"`
	Reason    string   `yaml:"reason"`
	Questions []int    `yaml:"questions"`
	Keywords  []string `yaml:"keywords"`
	Patterns  []string `yaml:"patterns"`
	MaxWords  int      `yaml:"max_words"`
}

type rulesFile struct {
	Rules []RuleConfig `yaml:"rules"`
}

type rule struct {
	typ       string
	severity  models.Severity
	reason    string
	questions map[int]bool
	keywords  []string
	patterns  []*regexp.Regexp
	maxWords  int
}

// RuleEngine is the default Deriver.
type RuleEngine struct {
	rules []rule
}

// LoadRuleEngine reads rules from path, or the embedded defaults when path is empty.
func LoadRuleEngine(path string) (*RuleEngine, error) {
	raw := defaultRules
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeConfiguration, "failed to read flag rules")
		}
		raw = b
	}
	return ParseRules(raw)
}

// ParseRules builds a RuleEngine from YAML.
func ParseRules(raw []byte) (*RuleEngine, error) {
	var f rulesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeConfiguration, "invalid flag rules yaml")
	}
	return NewRuleEngine(f.Rules)
}

func NewRuleEngine(configs []RuleConfig) (*RuleEngine, error) {
	e := &RuleEngine{rules: make([]rule, 0, len(configs))}
	for i, c := range configs {
		r, err := compileRule(c)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeConfiguration, fmt.Sprintf("flag rule %d (%s)", i, c.Type))
		}
		e.rules = append(e.rules, r)
	}
	return e, nil
}

func compileRule(c RuleConfig) (rule, error) {
	if c.Type == "" {
		return rule{}, fmt.Errorf("type is required")
	}
	sev, err := models.ParseSeverity(c.Severity)
	if err != nil {
		return rule{}, err
	}
	if len(c.Keywords) == 0 && len(c.Patterns) == 0 && c.MaxWords <= 0 {
		return rule{}, fmt.Errorf("rule needs keywords, patterns or max_words")
	}
	r := rule{typ: c.Type, severity: sev, reason: c.Reason, maxWords: c.MaxWords}
	if r.reason == "" {
		r.reason = c.Type
	}
	if len(c.Questions) > 0 {
		r.questions = make(map[int]bool, len(c.Questions))
		for _, q := range c.Questions {
			r.questions[q] = true
		}
	}
	for _, kw := range c.Keywords {
		if norm := textnorm.Normalize(kw); norm != " " {
			r.keywords = append(r.keywords, norm)
		}
	}
	for _, p := range c.Patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return rule{}, fmt.Errorf("pattern %q: %w", p, err)
		}
		r.patterns = append(r.patterns, re)
	}
	return r, nil
}

func (e *RuleEngine) Derive(questionNumber int, answer string) []models.Finding {
	norm := textnorm.Normalize(answer)
	words := len(strings.Fields(norm))

	var out []models.Finding
	for _, r := range e.rules {
		if r.questions != nil && !r.questions[questionNumber] {
			continue
		}
		if r.matches(answer, norm, words) {
			out = append(out, models.Finding{
				QuestionNumber: questionNumber,
				Type:           r.typ,
				Severity:       r.severity,
				Reason:         r.reason,
			})
		}
	}
	return out
}

func (r rule) matches(raw, norm string, words int) bool {
	if r.maxWords > 0 && words <= r.maxWords {
		return true
	}
	for _, kw := range r.keywords {
		if textnorm.ContainsPhrase(norm, kw) {
			return true
		}
	}
	for _, re := range r.patterns {
		if re.MatchString(raw) {
			return true
		}
	}
	return false
}
