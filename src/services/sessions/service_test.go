package sessions

import (
	"testing"

	"Backend-Curadoria-AF/src/models"
	"Backend-Curadoria-AF/src/services/questions"

	"github.com/stretchr/testify/assert"
)

func newTestStore() *Store {
	return NewStore(nil)
}

func answer(v string) models.Answer {
	return models.Answer{Kind: models.AnswerChoice, Value: v}
}

// walk answers every question in order and leaves the session on the
// product selection step.
func walk(t *testing.T, st *Store, id string) models.Session {
	t.Helper()
	s, err := st.Start(id)
	assert.NoError(t, err)

	for i := 0; i < questions.Count(); i++ {
		q, ok := questions.At(i)
		assert.True(t, ok)
		s, err = st.Advance(id, q.ID, answer("x"), nil)
		assert.NoError(t, err)
	}
	assert.Equal(t, models.StepProducts, s.Step)
	return s
}

func TestCreateOpensAtIntro(t *testing.T) {
	st := newTestStore()
	s := st.Create()

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, models.StepIntro, s.Step)
	assert.Equal(t, 0, s.Index)
	assert.Empty(t, s.Answers)
}

func TestStartOnlyFromIntro(t *testing.T) {
	st := newTestStore()
	s := st.Create()

	started, err := st.Start(s.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StepQuestions, started.Step)
	assert.Equal(t, 0, started.Index)

	_, err = st.Start(s.ID)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestAdvanceThroughAllQuestions(t *testing.T) {
	st := newTestStore()
	s := st.Create()
	final := walk(t, st, s.ID)

	assert.Len(t, final.Answers, questions.Count())
}

func TestAdvanceRejectsUnknownQuestion(t *testing.T) {
	st := newTestStore()
	s := st.Create()
	_, err := st.Start(s.ID)
	assert.NoError(t, err)

	_, err = st.Advance(s.ID, 999, answer("x"), nil)
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestRetreatIsNoOpOnFirstQuestion(t *testing.T) {
	st := newTestStore()
	s := st.Create()
	_, err := st.Start(s.ID)
	assert.NoError(t, err)

	back, err := st.Retreat(s.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, back.Index)
	assert.Equal(t, models.StepQuestions, back.Step)
}

func TestRetreatKeepsStoredAnswer(t *testing.T) {
	st := newTestStore()
	s := st.Create()
	_, err := st.Start(s.ID)
	assert.NoError(t, err)

	_, err = st.Advance(s.ID, 1, answer("encantar"), nil)
	assert.NoError(t, err)

	back, err := st.Retreat(s.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, back.Index)
	// The earlier answer survives going back, so it can be pre-populated.
	assert.Equal(t, "encantar", back.Answers[1].Value)

	// Re-answering overwrites it.
	next, err := st.Advance(s.ID, 1, answer("fidelizar"), nil)
	assert.NoError(t, err)
	assert.Equal(t, "fidelizar", next.Answers[1].Value)
	assert.Equal(t, 1, next.Index)
}

func TestFileURLsOverwritePendingBatch(t *testing.T) {
	st := newTestStore()
	s := st.Create()
	_, err := st.Start(s.ID)
	assert.NoError(t, err)

	_, err = st.Advance(s.ID, 10, answer(""), []string{"http://x/a.png"})
	assert.NoError(t, err)
	next, err := st.Advance(s.ID, 10, answer(""), []string{"http://x/b.png", "http://x/c.pdf"})
	assert.NoError(t, err)

	assert.Equal(t, []string{"http://x/b.png", "http://x/c.pdf"}, next.PendingFileURLs)
}

func TestConfirmProductsRunsDerivation(t *testing.T) {
	st := newTestStore()
	s := st.Create()
	walk(t, st, s.ID)

	picks := []models.SelectedProduct{{ID: "kit-corporativo", Name: "Kit Corporativo", SKU: "kits-corporativos"}}
	confirmed, err := st.ConfirmProducts(s.ID, picks)
	assert.NoError(t, err)

	assert.Equal(t, models.StepResults, confirmed.Step)
	assert.NotNil(t, confirmed.Result)
	assert.Len(t, confirmed.Result.Paths, 3)
	assert.Equal(t, picks, confirmed.SelectedProducts)
}

func TestConfirmProductsAcceptsEmptySelection(t *testing.T) {
	st := newTestStore()
	s := st.Create()
	walk(t, st, s.ID)

	confirmed, err := st.ConfirmProducts(s.ID, nil)
	assert.NoError(t, err)
	assert.Equal(t, models.StepResults, confirmed.Step)
	assert.Empty(t, confirmed.SelectedProducts)
	assert.NotNil(t, confirmed.Result)
}

func TestSelectPathOpensCapture(t *testing.T) {
	st := newTestStore()
	s := st.Create()
	walk(t, st, s.ID)
	_, err := st.ConfirmProducts(s.ID, nil)
	assert.NoError(t, err)

	captured, err := st.SelectPath(s.ID, "Caminho Moderado")
	assert.NoError(t, err)
	assert.Equal(t, models.StepCapture, captured.Step)
	assert.Equal(t, "Caminho Moderado", captured.SelectedPath)
}

func TestSubmitLifecycle(t *testing.T) {
	st := newTestStore()
	s := st.Create()
	walk(t, st, s.ID)
	_, err := st.ConfirmProducts(s.ID, nil)
	assert.NoError(t, err)
	_, err = st.SelectPath(s.ID, "Caminho Ousado / Premium Impacto")
	assert.NoError(t, err)

	_, err = st.BeginSubmit(s.ID)
	assert.NoError(t, err)

	// A failed submission parks the session on the retryable error step.
	st.FinishSubmit(s.ID, false)
	parked, err := st.Get(s.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StepError, parked.Step)

	// Retrying from the error step is allowed.
	_, err = st.BeginSubmit(s.ID)
	assert.NoError(t, err)

	// Success discards the session.
	st.FinishSubmit(s.ID, true)
	_, err = st.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestBeginSubmitRejectsWrongStep(t *testing.T) {
	st := newTestStore()
	s := st.Create()

	_, err := st.BeginSubmit(s.ID)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestStepGuards(t *testing.T) {
	st := newTestStore()
	s := st.Create()

	_, err := st.Advance(s.ID, 1, answer("x"), nil)
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = st.ConfirmProducts(s.ID, nil)
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = st.SelectPath(s.ID, "x")
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestUnknownSession(t *testing.T) {
	st := newTestStore()

	_, err := st.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = st.Start("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

type recordingNotifier struct {
	transitions  int
	celebrations int
}

func (n *recordingNotifier) NotifyTransition(string)  { n.transitions++ }
func (n *recordingNotifier) NotifyCelebration(string) { n.celebrations++ }

func TestNotifierSignals(t *testing.T) {
	notifier := &recordingNotifier{}
	st := NewStore(notifier)
	s := st.Create()
	walk(t, st, s.ID)
	_, err := st.ConfirmProducts(s.ID, nil)
	assert.NoError(t, err)
	_, err = st.SelectPath(s.ID, "Caminho Conservador")
	assert.NoError(t, err)
	st.FinishSubmit(s.ID, true)

	// One transition per answered question plus the results reveal.
	assert.Equal(t, questions.Count()+1, notifier.transitions)
	assert.Equal(t, 1, notifier.celebrations)
}
