package aggregator

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"radar/internal/radar/models"
	dErrors "radar/pkg/domain-errors"
	"radar/pkg/textnorm"
)

//go:embed mapping.yaml
var defaultMapping []byte

// Scorer kinds understood by the aggregator.
const (
	ScorerLength      = "length"
	ScorerKeywords    = "keywords"
	ScorerAffirmation = "affirmation"
)

type ScorerConfig struct {
	Kind        string   `yaml:"kind"`
	TargetWords int      `yaml:"target_words"`
	Positive    []string `yaml:"positive"`
	Negative    []string `yaml:"negative"`
	Saturation  int      `yaml:"saturation"`
}

// Question is one questionnaire entry.
type Question struct {
	Number    int          `yaml:"number" json:"number"`
	Text      string       `yaml:"text" json:"text"`
	Required  bool         `yaml:"required" json:"required"`
	Sensitive bool         `yaml:"sensitive" json:"sensitive"`
	Scorer    ScorerConfig `yaml:"scorer" json:"-"`
}

type Contribution struct {
	Question int     `yaml:"question"`
	Weight   float64 `yaml:"weight"`
}

// Mapping is the parsed questionnaire plus dimension weights.
type Mapping struct {
	Questions  []Question                          `yaml:"questions"`
	Dimensions map[models.Dimension][]Contribution `yaml:"dimensions"`
}

// DefaultMapping returns the embedded mapping.
func DefaultMapping() (*Mapping, error) {
	return ParseMapping(defaultMapping)
}

// LoadMapping reads a mapping from path, or the embedded default when path is empty.
func LoadMapping(path string) (*Mapping, error) {
	if path == "" {
		return DefaultMapping()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeConfiguration, "read radar mapping")
	}
	return ParseMapping(raw)
}

func ParseMapping(raw []byte) (*Mapping, error) {
	var m Mapping
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeConfiguration, "parse radar mapping")
	}
	if err := m.validate(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeConfiguration, "invalid radar mapping")
	}
	sort.Slice(m.Questions, func(i, j int) bool { return m.Questions[i].Number < m.Questions[j].Number })
	return &m, nil
}

func (m *Mapping) validate() error {
	if len(m.Questions) == 0 {
		return fmt.Errorf("no questions")
	}
	seen := make(map[int]bool, len(m.Questions))
	for _, q := range m.Questions {
		if q.Number < 1 {
			return fmt.Errorf("question number %d must be positive", q.Number)
		}
		if seen[q.Number] {
			return fmt.Errorf("question %d defined twice", q.Number)
		}
		seen[q.Number] = true
		if err := q.Scorer.validate(); err != nil {
			return fmt.Errorf("question %d: %w", q.Number, err)
		}
	}
	for _, d := range models.Dimensions() {
		contributions, ok := m.Dimensions[d]
		if !ok || len(contributions) == 0 {
			return fmt.Errorf("dimension %s has no questions", d)
		}
		for _, c := range contributions {
			if !seen[c.Question] {
				return fmt.Errorf("dimension %s references unknown question %d", d, c.Question)
			}
			if c.Weight <= 0 {
				return fmt.Errorf("dimension %s: weight for question %d must be positive", d, c.Question)
			}
		}
	}
	for d := range m.Dimensions {
		if !d.IsValid() {
			return fmt.Errorf("unknown dimension %q", d)
		}
	}
	return nil
}

func (c ScorerConfig) validate() error {
	switch c.Kind {
	case ScorerLength:
		if c.TargetWords <= 0 {
			return fmt.Errorf("length scorer needs target_words > 0")
		}
	case ScorerKeywords:
		if c.Saturation <= 0 {
			return fmt.Errorf("keywords scorer needs saturation > 0")
		}
		if len(c.Positive) == 0 {
			return fmt.Errorf("keywords scorer needs positive keywords")
		}
	case ScorerAffirmation:
	default:
		return fmt.Errorf("unknown scorer %q", c.Kind)
	}
	return nil
}

// Question looks up a question by number.
func (m *Mapping) Question(number int) (Question, bool) {
	for _, q := range m.Questions {
		if q.Number == number {
			return q, true
		}
	}
	return Question{}, false
}

// score applies the question's scorer to plaintext. The result is in [0,1].
func (c ScorerConfig) score(text string) float64 {
	norm := textnorm.Normalize(text)
	switch c.Kind {
	case ScorerLength:
		words := len(textnorm.Words(text))
		return models.Clamp01(float64(words) / float64(c.TargetWords))
	case ScorerKeywords:
		hits := countPresent(norm, c.Positive) - countPresent(norm, c.Negative)
		return models.Clamp01(float64(hits) / float64(c.Saturation))
	case ScorerAffirmation:
		return affirmation(text)
	}
	return 0
}

func countPresent(norm string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if textnorm.ContainsPhrase(norm, textnorm.Normalize(kw)) {
			n++
		}
	}
	return n
}

var (
	yesWords = map[string]bool{"yes": true, "yeah": true, "yep": true, "y": true, "absolutely": true, "definitely": true, "sure": true, "many": true}
	noWords  = map[string]bool{"no": true, "nope": true, "never": true, "n": true, "not": true, "nah": true}
)

// affirmation reads the leading word of a yes/no answer. Anything that is
// neither counts as half.
func affirmation(text string) float64 {
	words := textnorm.Words(text)
	if len(words) == 0 {
		return 0
	}
	switch {
	case yesWords[words[0]]:
		return 1
	case noWords[words[0]]:
		return 0
	default:
		return 0.5
	}
}
