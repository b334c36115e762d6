package components

import (
	"image"

	"cwc-viewer/internal/imaging"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const StadiumPanelWidth = 350

// StadiumPanel lists the stadium cities and shows the selected venue.
type StadiumPanel struct {
	container   *fyne.Container
	cityList    *widget.List
	image       *canvas.Image
	placeholder *widget.Label
	info        *widget.Label
	cities      []string

	citySelectedHandler func(string)
}

// NewStadiumPanel creates a new stadium panel component
func NewStadiumPanel() *StadiumPanel {
	sp := &StadiumPanel{}
	sp.createComponents()
	sp.buildLayout()
	return sp
}

func (sp *StadiumPanel) createComponents() {
	sp.cityList = widget.NewList(
		func() int {
			return len(sp.cities)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= 0 && id < len(sp.cities) {
				obj.(*widget.Label).SetText(sp.cities[id])
			}
		},
	)
	sp.cityList.OnSelected = func(id widget.ListItemID) {
		if id < 0 || id >= len(sp.cities) {
			return
		}
		if sp.citySelectedHandler != nil {
			sp.citySelectedHandler(sp.cities[id])
		}
	}

	sp.image = canvas.NewImageFromImage(nil)
	sp.image.FillMode = canvas.ImageFillContain
	sp.image.ScaleMode = canvas.ImageScaleSmooth
	sp.image.SetMinSize(fyne.NewSize(imaging.DisplayWidth, imaging.DisplayHeight))
	sp.image.Hide()

	sp.placeholder = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	sp.info = widget.NewLabel("")
	sp.info.Wrapping = fyne.TextWrapWord
}

func (sp *StadiumPanel) buildLayout() {
	header := widget.NewLabelWithStyle("Stadium Info", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	list := container.NewGridWrap(fyne.NewSize(StadiumPanelWidth-20, 180), sp.cityList)
	picture := container.NewGridWrap(
		fyne.NewSize(imaging.DisplayWidth, imaging.DisplayHeight),
		container.NewStack(sp.placeholder, sp.image),
	)

	sp.container = container.NewVBox(
		header,
		list,
		picture,
		sp.info,
	)
}

// SetCities replaces the list of selectable cities when it changed.
func (sp *StadiumPanel) SetCities(cities []string) {
	if equalStrings(sp.cities, cities) {
		return
	}
	sp.cities = append([]string(nil), cities...)
	sp.cityList.Refresh()
}

// ShowVenue displays the venue text and either the picture or, when img
// is nil, the placeholder message.
func (sp *StadiumPanel) ShowVenue(info string, img image.Image, placeholder string) {
	sp.info.SetText(info)

	if img != nil {
		sp.image.Image = img
		sp.image.Show()
		sp.placeholder.SetText("")
	} else {
		sp.image.Image = nil
		sp.image.Hide()
		sp.placeholder.SetText(placeholder)
	}
	sp.image.Refresh()
}

func (sp *StadiumPanel) SetCitySelectedHandler(handler func(string)) {
	sp.citySelectedHandler = handler
}

// GetContainer returns the panel container
func (sp *StadiumPanel) GetContainer() *fyne.Container {
	return sp.container
}
