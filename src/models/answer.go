package models

import "strings"

// AnswerKind discriminates the payload shape of an Answer.
type AnswerKind string

const (
	AnswerChoice AnswerKind = "choice" // tiles / single: one option id
	AnswerMulti  AnswerKind = "multi"  // multi: selected option ids
	AnswerText   AnswerKind = "text"   // free text
	AnswerColor  AnswerKind = "color"  // structured color selection
)

// Answer is a tagged union keyed by question type. Exactly one payload
// field is meaningful for a given Kind.
type Answer struct {
	Kind    AnswerKind   `json:"kind"`
	Value   string       `json:"value,omitempty"`   // choice / text
	Options []string     `json:"options,omitempty"` // multi, selection order preserved
	Color   *ColorAnswer `json:"color,omitempty"`   // color-picker
}

// ColorAnswer mirrors the wire shape produced by the color-picker question.
type ColorAnswer struct {
	Selected    []string `json:"cor_preferida_lista"`
	BrandColors bool     `json:"cor_marca_flag"`
	Codes       string   `json:"cor_codigos"`
}

// Joined returns the canonical string form of the answer: the raw value
// for choice/text, comma-joined option ids for multi.
func (a Answer) Joined() string {
	if a.Kind == AnswerMulti {
		return strings.Join(a.Options, ",")
	}
	return a.Value
}

// AnswerStore maps question id to the confirmed answer. A value is only
// replaced by an explicit re-answer after going back.
type AnswerStore map[int]Answer

// ValueOf returns the canonical string at id, or the fallback when unanswered.
func (s AnswerStore) ValueOf(id int, fallback string) string {
	if a, ok := s[id]; ok {
		if v := a.Joined(); v != "" {
			return v
		}
	}
	return fallback
}

// ColorOf returns the structured color answer at id, or a neutral default.
func (s AnswerStore) ColorOf(id int) ColorAnswer {
	if a, ok := s[id]; ok && a.Color != nil {
		return *a.Color
	}
	return ColorAnswer{Selected: []string{}}
}
