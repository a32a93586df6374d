package models

import "time"

// Funnel steps. Success and Error are the terminal states; Error is
// retryable and bounces back to Capture on resubmit.
type Step string

const (
	StepIntro      Step = "intro"
	StepQuestions  Step = "questions"
	StepProducts   Step = "products"
	StepProcessing Step = "processing"
	StepResults    Step = "results"
	StepCapture    Step = "capture"
	StepSuccess    Step = "success"
	StepError      Step = "error"
)

// --- Session ---
// One visitor's run through the funnel. Held in memory only: discarded
// once the submission succeeds or the visitor abandons.
type Session struct {
	ID    string `json:"id"`
	Step  Step   `json:"step"`
	Index int    `json:"index"` // current question index while Step == questions

	Answers          AnswerStore       `json:"answers"`
	PendingFileURLs  []string          `json:"pendingFileUrls,omitempty"` // one batch per session, last write wins
	SelectedProducts []SelectedProduct `json:"selectedProducts"`
	SelectedPath     string            `json:"selectedPath,omitempty"`
	Result           *DiagnosticResult `json:"result,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
