package controllers

import (
	"image"

	"cwc-viewer/internal/models"
)

// ImagePlaceholder is shown in place of a stadium picture that cannot be loaded.
const ImagePlaceholder = "Image not found"

// ViewState is everything the main window displays. The controller owns
// the current value and hands copies to the view on every change.
type ViewState struct {
	Clubs  []string
	Cities []string

	SelectedClub string
	Rows         []models.Match

	SelectedCity string
	// VenueInfo is the descriptive text for the selected stadium, or a
	// notice when the city has no stadium entry.
	VenueInfo string
	// Image is the scaled stadium picture. When nil, ImageMessage holds
	// the text to show instead.
	Image        image.Image
	ImageMessage string

	Status string
}

func (s ViewState) clone() ViewState {
	out := s
	out.Clubs = append([]string(nil), s.Clubs...)
	out.Cities = append([]string(nil), s.Cities...)
	out.Rows = append([]models.Match(nil), s.Rows...)
	return out
}
