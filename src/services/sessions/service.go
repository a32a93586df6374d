package sessions

import (
	"errors"
	"log"
	"sync"
	"time"

	"Backend-Curadoria-AF/src/models"
	"Backend-Curadoria-AF/src/services/questions"
	"Backend-Curadoria-AF/src/services/results"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidStep     = errors.New("action not allowed in current step")
	ErrUnknownQuestion = errors.New("unknown question id")
	ErrEmptySelection  = errors.New("selection is empty")
)

// Notifier receives side-effect signals from the state machine (audio /
// analytics collaborators). Implementations must never block the funnel.
type Notifier interface {
	NotifyTransition(sessionID string)
	NotifyCelebration(sessionID string)
}

// NopNotifier ignores every signal. Used in tests and when no analytics
// sink is configured.
type NopNotifier struct{}

func (NopNotifier) NotifyTransition(string)  {}
func (NopNotifier) NotifyCelebration(string) {}

// Store holds the active funnel sessions in memory. Sessions are ephemeral:
// dropped on success and swept when abandoned. One store per process.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
	notifier Notifier
}

// NewStore creates a session store wired to the given notifier.
func NewStore(n Notifier) *Store {
	if n == nil {
		n = NopNotifier{}
	}
	return &Store{
		sessions: make(map[string]*models.Session),
		notifier: n,
	}
}

// Create opens a new session at the intro step.
func (st *Store) Create() *models.Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now()
	s := &models.Session{
		ID:               uuid.NewString(),
		Step:             models.StepIntro,
		Answers:          models.AnswerStore{},
		SelectedProducts: []models.SelectedProduct{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	st.sessions[s.ID] = s
	return s
}

// Get returns a snapshot of the session.
func (st *Store) Get(id string) (models.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	return *s, nil
}

// Start moves intro → questions(0).
func (st *Store) Start(id string) (models.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	if s.Step != models.StepIntro {
		return models.Session{}, ErrInvalidStep
	}

	s.Step = models.StepQuestions
	s.Index = 0
	s.UpdatedAt = time.Now()
	return *s, nil
}

// Advance records the answer for questionID and moves forward: to the next
// question, or to product selection after the last one. Uploaded file URLs
// overwrite the single pending batch. A confirmed answer is only replaced
// by answering the same question again after going back.
func (st *Store) Advance(id string, questionID int, answer models.Answer, fileURLs []string) (models.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	if s.Step != models.StepQuestions {
		return models.Session{}, ErrInvalidStep
	}
	if _, ok := questions.ByID(questionID); !ok {
		return models.Session{}, ErrUnknownQuestion
	}

	s.Answers[questionID] = answer
	if len(fileURLs) > 0 {
		s.PendingFileURLs = fileURLs
	}

	if s.Index+1 < questions.Count() {
		s.Index++
		st.notifier.NotifyTransition(s.ID)
	} else {
		s.Step = models.StepProducts
		st.notifier.NotifyTransition(s.ID)
	}
	s.UpdatedAt = time.Now()
	return *s, nil
}

// Retreat moves back one question. A no-op at index 0. Stored answers are
// kept: the answer previously given for the question being returned to is
// exposed again so the renderer can pre-populate it.
func (st *Store) Retreat(id string) (models.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	if s.Step != models.StepQuestions {
		return models.Session{}, ErrInvalidStep
	}
	if s.Index == 0 {
		return *s, nil
	}

	s.Index--
	s.UpdatedAt = time.Now()
	st.notifier.NotifyTransition(s.ID)
	return *s, nil
}

// ConfirmProducts stores the visitor's picks (empty = skip, still valid)
// and runs the derivation engine. Processing has no user input branch, so
// the session lands directly on the results step.
func (st *Store) ConfirmProducts(id string, selection []models.SelectedProduct) (models.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	if s.Step != models.StepProducts {
		return models.Session{}, ErrInvalidStep
	}

	if selection == nil {
		selection = []models.SelectedProduct{}
	}
	s.SelectedProducts = selection
	s.Step = models.StepProcessing

	result := results.Derive(s.Answers)
	s.Result = &result
	s.Step = models.StepResults

	s.UpdatedAt = time.Now()
	st.notifier.NotifyTransition(s.ID)
	return *s, nil
}

// SelectPath records the chosen curation path and opens the capture step.
// The title is advisory metadata: it is folded into the submission as-is,
// not re-validated against the result's path list.
func (st *Store) SelectPath(id, pathTitle string) (models.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	if s.Step != models.StepResults {
		return models.Session{}, ErrInvalidStep
	}

	s.SelectedPath = pathTitle
	s.Step = models.StepCapture
	s.UpdatedAt = time.Now()
	return *s, nil
}

// BeginSubmit checks the session is in a submittable state. Error is a
// retryable step, so resubmitting from there is allowed indefinitely.
func (st *Store) BeginSubmit(id string) (models.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	if s.Step != models.StepCapture && s.Step != models.StepError {
		return models.Session{}, ErrInvalidStep
	}
	return *s, nil
}

// FinishSubmit records the submission outcome. Success celebrates and
// discards the session; failure parks it on the retryable error step with
// everything captured so far retained.
func (st *Store) FinishSubmit(id string, success bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return
	}
	if success {
		s.Step = models.StepSuccess
		delete(st.sessions, id)
		st.notifier.NotifyCelebration(id)
		return
	}
	s.Step = models.StepError
	s.UpdatedAt = time.Now()
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// StartSweeper drops sessions idle for longer than maxAge. Abandoned
// sessions have no resume-later capability, so sweeping loses nothing.
func (st *Store) StartSweeper(interval, maxAge time.Duration) {
	go func() {
		for range time.Tick(interval) {
			cutoff := time.Now().Add(-maxAge)
			st.mu.Lock()
			for id, s := range st.sessions {
				if s.UpdatedAt.Before(cutoff) {
					delete(st.sessions, id)
					log.Println("🧹 Swept abandoned session:", id)
				}
			}
			st.mu.Unlock()
		}
	}()
}
