package views

import (
	"fmt"

	"cwc-viewer/internal/controllers"
	"cwc-viewer/internal/models"
	"cwc-viewer/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Title is the heading shown above the schedule.
const Title = "FIFA Club World Cup 2025 Schedule"

// MainView is the schedule window: controls on top, stadium panel on the
// left, match table filling the rest.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	controls      *components.ControlBar
	matchTable    *components.MatchTable
	stadiumPanel  *components.StadiumPanel
	statusBar     *components.StatusBar
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.controls = components.NewControlBar()
	mv.matchTable = components.NewMatchTable()
	mv.stadiumPanel = components.NewStadiumPanel()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	title := widget.NewLabelWithStyle(Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	topArea := container.NewVBox(
		title,
		container.NewCenter(mv.controls.GetContainer()),
	)

	left := container.NewVScroll(mv.stadiumPanel.GetContainer())
	content := container.NewHSplit(left, mv.matchTable.GetWidget())
	content.SetOffset(0.3)

	mv.mainContainer = container.NewBorder(
		topArea,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		content,
	)

	mv.window.SetContent(mv.mainContainer)
}

// Render applies state to every component on the UI goroutine.
func (mv *MainView) Render(state controllers.ViewState) {
	fyne.Do(func() {
		mv.apply(state)
	})
}

func (mv *MainView) apply(state controllers.ViewState) {
	mv.controls.SetClubs(state.Clubs)
	mv.stadiumPanel.SetCities(state.Cities)
	mv.matchTable.SetRows(state.Rows)
	mv.stadiumPanel.ShowVenue(state.VenueInfo, state.Image, state.ImageMessage)
	mv.statusBar.SetStatus(state.Status)
	mv.statusBar.SetRowCount(len(state.Rows))
}

// Event handler setters - called by controller

func (mv *MainView) SetClubSelectedHandler(handler func(string)) {
	mv.controls.SetClubSelectedHandler(handler)
}

func (mv *MainView) SetShowAllHandler(handler func()) {
	mv.controls.SetShowAllHandler(handler)
}

func (mv *MainView) SetFilterHandler(handler func()) {
	mv.controls.SetFilterHandler(handler)
}

func (mv *MainView) SetClearHandler(handler func()) {
	mv.controls.SetClearHandler(handler)
}

func (mv *MainView) SetCitySelectedHandler(handler func(string)) {
	mv.stadiumPanel.SetCitySelectedHandler(handler)
}

func (mv *MainView) SetMatchSelectedHandler(handler func(models.Match)) {
	mv.matchTable.SetMatchSelectedHandler(handler)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

// ShowAboutDialog displays application information
func (mv *MainView) ShowAboutDialog(appName, version string) {
	fyne.Do(func() {
		content := container.NewVBox(
			widget.NewLabel(appName),
			widget.NewLabel(fmt.Sprintf("Version: %s", version)),
		)
		dialog.ShowCustom("About", "Close", content, mv.window)
	})
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}
