package menu

import (
	"fmt"

	"github.com/flightmenu/menu-ocr-service/internal/models"
)

// mainCourseCategory is the catalog category with an exclusive-choice rule.
const mainCourseCategory = "Main Courses"

// ToggleSelection flips the Selected flag of the item at index in place.
// Selecting a main course deselects any other selected main course with the
// same timing: passengers pick exactly one main per service.
func ToggleSelection(items []models.MenuItem, index int) error {
	if index < 0 || index >= len(items) {
		return fmt.Errorf("item index %d out of range", index)
	}
	target := &items[index]
	target.Selected = !target.Selected

	if target.Selected && target.Category == mainCourseCategory {
		for i := range items {
			if i == index {
				continue
			}
			if items[i].Category == mainCourseCategory && items[i].Timing == target.Timing {
				items[i].Selected = false
			}
		}
	}
	return nil
}
