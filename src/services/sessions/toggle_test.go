package sessions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleCategory(t *testing.T) {
	t.Run("AddAndRemove", func(t *testing.T) {
		sel := ToggleCategory(nil, "kits")
		assert.Equal(t, []string{"kits"}, sel)

		sel = ToggleCategory(sel, "facas")
		assert.Equal(t, []string{"kits", "facas"}, sel)

		sel = ToggleCategory(sel, "kits")
		assert.Equal(t, []string{"facas"}, sel)
	})

	t.Run("SuggestionWinsImmediately", func(t *testing.T) {
		sel := ToggleCategory([]string{"kits", "facas", "copos"}, "sugestao")
		assert.Equal(t, []string{"sugestao"}, sel)
	})

	t.Run("NormalOptionDropsSuggestion", func(t *testing.T) {
		sel := ToggleCategory([]string{"sugestao"}, "garrafas")
		assert.Equal(t, []string{"garrafas"}, sel)
	})

	t.Run("SuggestionIsIdempotent", func(t *testing.T) {
		sel := ToggleCategory([]string{"sugestao"}, "sugestao")
		assert.Equal(t, []string{"sugestao"}, sel)
	})
}

func TestCanConfirmSelection(t *testing.T) {
	assert.False(t, CanConfirmSelection(nil))
	assert.False(t, CanConfirmSelection([]string{}))
	assert.True(t, CanConfirmSelection([]string{"kits"}))
	assert.True(t, CanConfirmSelection([]string{"sugestao"}))
}
