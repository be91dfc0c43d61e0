package db_models

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

type QuestionType string

const (
	QuestionBoolean      QuestionType = "boolean"
	QuestionSingleChoice QuestionType = "single_choice"
	QuestionNumber       QuestionType = "number"
)

// LocalizedText maps a language code ("en", "tr") to display text.
type LocalizedText map[string]string

// In returns the text for a language, falling back to English.
func (t LocalizedText) In(language string) string {
	if t == nil {
		return ""
	}
	if v, ok := t[language]; ok && v != "" {
		return v
	}
	return t["en"]
}

type QuestionOption struct {
	ID    string        `json:"id"`
	Label LocalizedText `json:"label"`
}

// Dependency gates a question on an earlier answer. Eq may be a bool or a
// string depending on the referenced question's type.
type Dependency struct {
	ID string `json:"id"`
	Eq any    `json:"eq"`
}

type SingleChoiceSpec struct {
	Options []QuestionOption `json:"options"`
}

type NumberSpec struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// QuestionSpec is one clarifying question's declarative definition. The wire
// format is flat (options/min/max sit next to "type"), but in Go the
// per-type fields live on exactly one non-nil variant so boolean questions
// cannot grow options and number bounds cannot leak into choices.
type QuestionSpec struct {
	ID        string
	Type      QuestionType
	Label     LocalizedText
	Weight    float64
	Mandatory bool
	Emoji     string
	Tooltip   LocalizedText
	DependsOn []Dependency

	Choice *SingleChoiceSpec // set iff Type == single_choice
	Number *NumberSpec       // set iff Type == number
}

const (
	DefaultWeight    = 1.0
	DefaultNumberMin = 0
	DefaultNumberMax = 100
)

type questionSpecWire struct {
	ID        string           `json:"id"`
	Type      QuestionType     `json:"type"`
	Label     LocalizedText    `json:"label"`
	Weight    *float64         `json:"weight,omitempty"`
	Mandatory bool             `json:"mandatory,omitempty"`
	Emoji     string           `json:"emoji,omitempty"`
	Tooltip   LocalizedText    `json:"tooltip,omitempty"`
	DependsOn []Dependency     `json:"depends_on,omitempty"`
	Options   []QuestionOption `json:"options,omitempty"`
	Min       *int             `json:"min,omitempty"`
	Max       *int             `json:"max,omitempty"`
}

func (q *QuestionSpec) UnmarshalJSON(data []byte) error {
	var wire questionSpecWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	q.ID = wire.ID
	q.Type = wire.Type
	q.Label = wire.Label
	q.Mandatory = wire.Mandatory
	q.Emoji = wire.Emoji
	q.Tooltip = wire.Tooltip
	q.DependsOn = wire.DependsOn
	q.Weight = DefaultWeight
	if wire.Weight != nil {
		q.Weight = *wire.Weight
	}
	q.Choice = nil
	q.Number = nil

	switch wire.Type {
	case QuestionBoolean:
	case QuestionSingleChoice:
		q.Choice = &SingleChoiceSpec{Options: wire.Options}
	case QuestionNumber:
		num := &NumberSpec{Min: DefaultNumberMin, Max: DefaultNumberMax}
		if wire.Min != nil {
			num.Min = *wire.Min
		}
		if wire.Max != nil {
			num.Max = *wire.Max
		}
		q.Number = num
	default:
		return fmt.Errorf("question %q: unknown type %q", wire.ID, wire.Type)
	}

	return nil
}

func (q QuestionSpec) MarshalJSON() ([]byte, error) {
	weight := q.Weight
	wire := questionSpecWire{
		ID:        q.ID,
		Type:      q.Type,
		Label:     q.Label,
		Weight:    &weight,
		Mandatory: q.Mandatory,
		Emoji:     q.Emoji,
		Tooltip:   q.Tooltip,
		DependsOn: q.DependsOn,
	}
	if q.Choice != nil {
		wire.Options = q.Choice.Options
	}
	if q.Number != nil {
		min, max := q.Number.Min, q.Number.Max
		wire.Min, wire.Max = &min, &max
	}
	return json.Marshal(wire)
}

// Category is a named product type with an ordered set of clarifying
// questions and per-language budget bands.
type Category struct {
	Name        string              `json:"name"`
	Specs       []QuestionSpec      `json:"specs"`
	BudgetBands map[string][]string `json:"budget_bands,omitempty"`
}

// Validate rejects schemas the dialogue engine could never finish: duplicate
// spec ids and dependencies that do not reference a strictly earlier spec.
func (c Category) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("category name is empty")
	}
	seen := make(map[string]bool, len(c.Specs))
	for _, spec := range c.Specs {
		if spec.ID == "" {
			return fmt.Errorf("category %q: spec with empty id", c.Name)
		}
		if seen[spec.ID] {
			return fmt.Errorf("category %q: duplicate spec id %q", c.Name, spec.ID)
		}
		for _, dep := range spec.DependsOn {
			if !seen[dep.ID] {
				return fmt.Errorf("category %q: spec %q depends on %q which is not an earlier spec", c.Name, spec.ID, dep.ID)
			}
		}
		if spec.Type == QuestionSingleChoice && spec.Choice != nil {
			optSeen := make(map[string]bool)
			for _, opt := range spec.Choice.Options {
				if optSeen[opt.ID] {
					return fmt.Errorf("category %q: spec %q has duplicate option id %q", c.Name, spec.ID, opt.ID)
				}
				optSeen[opt.ID] = true
			}
		}
		seen[spec.ID] = true
	}
	return nil
}

// CategoryRecord is the persisted row; the spec list and budget bands are
// stored as JSONB documents so schema edits are whole-document overwrites.
type CategoryRecord struct {
	BaseModel
	Name        string         `gorm:"uniqueIndex;not null"`
	Specs       datatypes.JSON `gorm:"type:jsonb"`
	BudgetBands datatypes.JSON `gorm:"type:jsonb"`
}

func (CategoryRecord) TableName() string {
	return "categories"
}

func (r CategoryRecord) ToCategory() (Category, error) {
	category := Category{Name: r.Name}
	if len(r.Specs) > 0 {
		if err := json.Unmarshal(r.Specs, &category.Specs); err != nil {
			return Category{}, fmt.Errorf("category %q: decode specs: %w", r.Name, err)
		}
	}
	if len(r.BudgetBands) > 0 {
		if err := json.Unmarshal(r.BudgetBands, &category.BudgetBands); err != nil {
			return Category{}, fmt.Errorf("category %q: decode budget bands: %w", r.Name, err)
		}
	}
	return category, nil
}

func NewCategoryRecord(category Category) (CategoryRecord, error) {
	specs, err := json.Marshal(category.Specs)
	if err != nil {
		return CategoryRecord{}, err
	}
	record := CategoryRecord{Name: category.Name, Specs: specs}
	if category.BudgetBands != nil {
		bands, err := json.Marshal(category.BudgetBands)
		if err != nil {
			return CategoryRecord{}, err
		}
		record.BudgetBands = bands
	}
	return record, nil
}
