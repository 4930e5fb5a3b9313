package themes

import (
	"testing"

	"github.com/Veraticus/ecosmart/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	assert.Equal(t, CatppuccinMocha.Primary, GetTheme("catppuccin-mocha").Primary)
	assert.Equal(t, Default.Primary, GetTheme("default").Primary)
	assert.Equal(t, Default.Primary, GetTheme("solarized").Primary)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"catppuccin-mocha", "default"}, Names())
	assert.True(t, Exists("default"))
	assert.False(t, Exists("solarized"))
}

func TestStyleFor(t *testing.T) {
	tests := []struct {
		category model.Category
		wantIcon string
		wantIdx  int
	}{
		{category: model.CategoryBiodegradable, wantIcon: "🍃", wantIdx: 0},
		{category: model.CategoryNonBiodegradable, wantIcon: "🗑", wantIdx: 1},
		{category: model.CategoryEWaste, wantIcon: "⚡", wantIdx: 2},
		{category: model.CategoryRecyclable, wantIcon: "♻", wantIdx: 3},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			style := Default.StyleFor(tt.category)
			assert.Equal(t, tt.wantIcon, style.Icon)
			assert.Equal(t, Default.Chart[tt.wantIdx], style.Color)
			assert.Equal(t, tt.category.String(), style.Label)
		})
	}
}

func TestStyleFor_Fallback(t *testing.T) {
	for _, c := range []model.Category{model.CategoryUnknown, model.Category(17)} {
		style := Default.StyleFor(c)
		assert.Equal(t, "⚠", style.Icon)
		assert.Equal(t, Default.Muted, style.Color)
		assert.Equal(t, "Unknown", style.Label)
	}
}
