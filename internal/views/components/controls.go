package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ControlBar holds the club selector and the table actions.
type ControlBar struct {
	container   *fyne.Container
	clubSelect  *widget.Select
	showAllBtn  *widget.Button
	filterBtn   *widget.Button
	clearBtn    *widget.Button
	clubOptions []string

	// Event handlers
	clubSelectedHandler func(string)
	showAllHandler      func()
	filterHandler       func()
	clearHandler        func()
}

// NewControlBar creates a new control bar component
func NewControlBar() *ControlBar {
	cb := &ControlBar{}
	cb.createComponents()
	cb.buildLayout()
	return cb
}

func (cb *ControlBar) createComponents() {
	cb.clubSelect = widget.NewSelect(nil, func(club string) {
		if cb.clubSelectedHandler != nil {
			cb.clubSelectedHandler(club)
		}
	})
	cb.clubSelect.PlaceHolder = "Select a club"

	cb.showAllBtn = widget.NewButton("Show All Matches", func() {
		if cb.showAllHandler != nil {
			cb.showAllHandler()
		}
	})
	cb.showAllBtn.Importance = widget.HighImportance

	cb.filterBtn = widget.NewButton("Filter Club Matches", func() {
		if cb.filterHandler != nil {
			cb.filterHandler()
		}
	})

	cb.clearBtn = widget.NewButton("Clear", func() {
		if cb.clearHandler != nil {
			cb.clearHandler()
		}
	})
	cb.clearBtn.Importance = widget.MediumImportance
}

func (cb *ControlBar) buildLayout() {
	selector := container.NewGridWrap(fyne.NewSize(280, cb.clubSelect.MinSize().Height), cb.clubSelect)

	cb.container = container.NewHBox(
		widget.NewLabel("Select Club:"),
		selector,
		cb.showAllBtn,
		cb.filterBtn,
		cb.clearBtn,
	)
}

// SetClubs replaces the selector options when they changed.
func (cb *ControlBar) SetClubs(clubs []string) {
	if equalStrings(cb.clubOptions, clubs) {
		return
	}
	cb.clubOptions = append([]string(nil), clubs...)
	cb.clubSelect.SetOptions(cb.clubOptions)
}

func (cb *ControlBar) SetClubSelectedHandler(handler func(string)) {
	cb.clubSelectedHandler = handler
}

func (cb *ControlBar) SetShowAllHandler(handler func()) {
	cb.showAllHandler = handler
}

func (cb *ControlBar) SetFilterHandler(handler func()) {
	cb.filterHandler = handler
}

func (cb *ControlBar) SetClearHandler(handler func()) {
	cb.clearHandler = handler
}

// GetContainer returns the control bar container
func (cb *ControlBar) GetContainer() *fyne.Container {
	return cb.container
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
