package views

import (
	"testing"

	"cwc-viewer/internal/controllers"
	"cwc-viewer/internal/models"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func TestMainViewApplyState(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewTempWindow(t, widget.NewLabel(""))
	mv := NewMainView(w)

	mv.apply(controllers.ViewState{
		Clubs:  []string{"Al Hilal", "Club América"},
		Cities: []string{"Los Angeles"},
		Rows: []models.Match{
			{Date: "June 18, 2025", HomeClub: "Al Hilal", AwayClub: "Club América", VenueCity: "Miami"},
		},
		VenueInfo:    "No stadium information for Miami",
		ImageMessage: "",
		Status:       "No stadium listed for Miami",
	})

	assert.Equal(t, 1, mv.matchTable.RowCount())
	assert.Equal(t, "No stadium listed for Miami", mv.statusBar.GetStatus())
	assert.Equal(t, mv.mainContainer, w.Content())
}
