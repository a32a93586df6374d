package questions

import (
	"testing"

	"Backend-Curadoria-AF/src/models"

	"github.com/stretchr/testify/assert"
)

func TestCatalogShape(t *testing.T) {
	assert.Equal(t, 10, Count())

	// Ids are sequential and match presentation order.
	for i, q := range All {
		assert.Equal(t, i+1, q.ID)
		assert.NotEmpty(t, q.Title)
		assert.Contains(t, PhaseNames, q.Phase)
	}
}

func TestCatalogPhases(t *testing.T) {
	wantPhases := []int{1, 1, 2, 2, 3, 3, 4, 5, 5, 5}
	for i, q := range All {
		assert.Equal(t, wantPhases[i], q.Phase, "question %d", q.ID)
	}
}

func TestChoiceQuestionsHaveOptions(t *testing.T) {
	for _, q := range All {
		switch q.Type {
		case models.QuestionTiles, models.QuestionSingle, models.QuestionMulti:
			assert.NotEmpty(t, q.Options, "question %d must offer options", q.ID)
		case models.QuestionText:
			assert.NotEmpty(t, q.Placeholder, "text question %d needs a placeholder", q.ID)
		}
	}
}

func TestCategoryQuestionCarriesSuggestion(t *testing.T) {
	q, ok := ByID(8)
	assert.True(t, ok)
	assert.Equal(t, models.QuestionMulti, q.Type)

	found := false
	for _, opt := range q.Options {
		if opt.ID == SuggestionOption {
			found = true
		}
	}
	assert.True(t, found, "category question must offer the suggestion option")
}

func TestLookupBounds(t *testing.T) {
	_, ok := At(-1)
	assert.False(t, ok)
	_, ok = At(Count())
	assert.False(t, ok)

	first, ok := At(0)
	assert.True(t, ok)
	assert.Equal(t, 1, first.ID)

	_, ok = ByID(0)
	assert.False(t, ok)
	_, ok = ByID(11)
	assert.False(t, ok)
}

func TestColorOptions(t *testing.T) {
	assert.Len(t, ColorOptions, 13)
	for _, c := range ColorOptions {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Label)
		assert.Regexp(t, `^#[0-9A-F]{6}$`, c.Hex)
	}
}
