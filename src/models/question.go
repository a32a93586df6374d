package models

// Question types used by the diagnostic funnel
const (
	QuestionTiles       = "tiles"
	QuestionSingle      = "single"
	QuestionMulti       = "multi"
	QuestionText        = "text"
	QuestionColorPicker = "color-picker"
	QuestionFileUpload  = "file-upload"
)

// --- Question ---
type Question struct {
	ID       int              `json:"id"`
	Phase    int              `json:"phase"`
	Type     string           `json:"type"`
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle"`
	Options  []QuestionOption `json:"options,omitempty"`

	Placeholder string `json:"placeholder,omitempty"`
}

// --- QuestionOption ---
type QuestionOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// --- ColorOption ---
type ColorOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Hex   string `json:"hex"`
}
