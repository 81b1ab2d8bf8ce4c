package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightmenu/menu-ocr-service/internal/models"
)

func TestToggleSelection(t *testing.T) {
	items := []models.MenuItem{
		{Name: "Vegetable Salad", Category: "Salads", Timing: models.TimingRegular},
		{Name: "Basa Fish", Category: "Main Courses", Timing: models.TimingRegular},
		{Name: "Penne with Tomato Sauce", Category: "Main Courses", Timing: models.TimingRegular},
		{Name: "Rice Congee", Category: "Side Dishes", Timing: models.TimingPreLanding},
	}

	require.NoError(t, ToggleSelection(items, 1))
	assert.True(t, items[1].Selected)

	// picking another main course in the same service replaces the first
	require.NoError(t, ToggleSelection(items, 2))
	assert.True(t, items[2].Selected)
	assert.False(t, items[1].Selected)

	// non-main selections stack freely
	require.NoError(t, ToggleSelection(items, 0))
	assert.True(t, items[0].Selected)
	assert.True(t, items[2].Selected)

	// toggling off
	require.NoError(t, ToggleSelection(items, 0))
	assert.False(t, items[0].Selected)
}

func TestToggleSelectionOutOfRange(t *testing.T) {
	assert.Error(t, ToggleSelection(nil, 0))
	assert.Error(t, ToggleSelection([]models.MenuItem{{Name: "x"}}, -1))
}
