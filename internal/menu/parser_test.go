package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightmenu/menu-ocr-service/internal/models"
)

func TestParseCandidatesAccumulatesDescriptions(t *testing.T) {
	got := parseCandidates([]string{
		"Main Courses",
		"Basa Fish",
		"with tomato sauce",
		"and fresh herbs",
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Basa Fish", got[0].Name)
	assert.Equal(t, "with tomato sauce and fresh herbs", got[0].Description)
	assert.Equal(t, "Main Courses", got[0].Category)
	assert.Equal(t, models.TimingRegular, got[0].Timing)
}

func TestParseCandidatesSkipsShortLines(t *testing.T) {
	assert.Empty(t, parseCandidates([]string{"ab "}))
	assert.Empty(t, parseCandidates([]string{"", "  ", "x", "---"}))
}

func TestParseCandidatesDefaultCategory(t *testing.T) {
	got := parseCandidates([]string{"Steamed Rice"})
	require.Len(t, got, 1)
	assert.Equal(t, DefaultCategory, got[0].Category)
}

func TestParseCandidatesFlushesOpenItemOnSectionMarker(t *testing.T) {
	// the marker flushes the open item first, then flips the timing
	got := parseCandidates([]string{
		"Grilled Chicken Breast",
		"with lemon sauce",
		"Before landing",
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Grilled Chicken Breast", got[0].Name)
	assert.Equal(t, "with lemon sauce", got[0].Description)
	assert.Equal(t, models.TimingRegular, got[0].Timing)
}

func TestParseCandidatesTimingIsMonotonic(t *testing.T) {
	got := parseCandidates([]string{
		"Bread and Butter",
		"Before landing",
		"Scrambled Eggs",
		"Cheese Plate",
	})
	require.Len(t, got, 3)
	assert.Equal(t, models.TimingRegular, got[0].Timing)
	assert.Equal(t, models.TimingPreLanding, got[1].Timing)
	assert.Equal(t, models.TimingPreLanding, got[2].Timing)
}

func TestParseCandidatesIgnoresOrphanContinuation(t *testing.T) {
	assert.Empty(t, parseCandidates([]string{"with lemon sauce"}))
}
