package controllers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cwc-viewer/internal/imaging"
	"cwc-viewer/internal/logger"
	"cwc-viewer/internal/models"
	"cwc-viewer/internal/stadiums"
)

const component = "MainController"

// Schedule is the read side of the match schedule.
type Schedule interface {
	AllMatches() []models.Match
	DistinctClubs() []string
	MatchesForClub(name string) []models.Match
}

// Directory resolves stadium cities.
type Directory interface {
	ListCities() []string
	Lookup(city string) (models.Venue, error)
	VenueForMatch(m models.Match) (models.Venue, error)
}

// ImageResolver loads the picture of a venue.
type ImageResolver interface {
	Resolve(ctx context.Context, venue models.Venue) (*imaging.Handle, error)
}

// View renders state and reports user actions back to the controller.
type View interface {
	Render(state ViewState)
	SetClubSelectedHandler(handler func(string))
	SetShowAllHandler(handler func())
	SetFilterHandler(handler func())
	SetClearHandler(handler func())
	SetCitySelectedHandler(handler func(string))
	SetMatchSelectedHandler(handler func(models.Match))
	ShowError(err error)
}

// MainController applies user actions to the view state by querying the
// schedule and stadium directory.
type MainController struct {
	schedule  Schedule
	directory Directory
	images    ImageResolver
	logger    logger.Logger
	ctx       context.Context

	mu     sync.Mutex
	state  ViewState
	handle *imaging.Handle
	view   View
}

// NewMainController creates a controller with the club and city lists
// populated and no rows shown.
func NewMainController(ctx context.Context, schedule Schedule, directory Directory, images ImageResolver, log logger.Logger) *MainController {
	if log == nil {
		log = logger.Nop()
	}

	return &MainController{
		schedule:  schedule,
		directory: directory,
		images:    images,
		logger:    log,
		ctx:       ctx,
		state: ViewState{
			Clubs:  schedule.DistinctClubs(),
			Cities: directory.ListCities(),
			Status: "Ready",
		},
	}
}

// SetMainView associates the view with this controller and connects its callbacks.
func (mc *MainController) SetMainView(view View) {
	mc.mu.Lock()
	mc.view = view
	mc.mu.Unlock()

	view.SetClubSelectedHandler(mc.SelectClub)
	view.SetShowAllHandler(mc.ShowAll)
	view.SetFilterHandler(mc.FilterByClub)
	view.SetClearHandler(mc.Clear)
	view.SetCitySelectedHandler(mc.SelectCity)
	view.SetMatchSelectedHandler(mc.SelectMatch)
}

// Start shows the full schedule, as the window does when it first opens.
func (mc *MainController) Start() {
	mc.ShowAll()
}

// State returns a copy of the current view state.
func (mc *MainController) State() ViewState {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.state.clone()
}

// SelectClub records the club chosen in the selector without filtering.
func (mc *MainController) SelectClub(name string) {
	mc.update(func(s *ViewState) {
		s.SelectedClub = name
	})
}

// ShowAll lists every match.
func (mc *MainController) ShowAll() {
	rows := mc.schedule.AllMatches()
	mc.update(func(s *ViewState) {
		s.Rows = rows
		s.Status = fmt.Sprintf("Showing all %d matches", len(rows))
	})
}

// FilterByClub lists the matches of the selected club. Without a
// selection the table is left unchanged.
func (mc *MainController) FilterByClub() {
	mc.mu.Lock()
	club := mc.state.SelectedClub
	mc.mu.Unlock()

	if club == "" {
		mc.update(func(s *ViewState) {
			s.Status = "Select a club first"
		})
		return
	}

	rows := mc.schedule.MatchesForClub(club)
	mc.logger.Debug(component, "club filter applied", map[string]interface{}{
		"club": club,
		"rows": len(rows),
	})

	mc.update(func(s *ViewState) {
		s.Rows = rows
		if len(rows) == 0 {
			s.Status = fmt.Sprintf("No matches for %s", club)
		} else {
			s.Status = fmt.Sprintf("Showing %d matches for %s", len(rows), club)
		}
	})
}

// Clear empties the match table.
func (mc *MainController) Clear() {
	mc.update(func(s *ViewState) {
		s.Rows = nil
		s.Status = "Table cleared"
	})
}

// SelectCity shows the stadium of city. A city without a stadium entry
// clears the venue detail; a missing picture falls back to a placeholder.
func (mc *MainController) SelectCity(city string) {
	venue, err := mc.directory.Lookup(city)
	mc.showVenue(city, venue, err)
}

// SelectMatch shows the stadium a match is played at. Matches in cities
// without a stadium entry leave the table as is and only clear the venue
// detail.
func (mc *MainController) SelectMatch(m models.Match) {
	venue, err := mc.directory.VenueForMatch(m)
	mc.showVenue(m.VenueCity, venue, err)
}

func (mc *MainController) showVenue(city string, venue models.Venue, err error) {
	if err != nil {
		if errors.Is(err, stadiums.ErrNotFound) {
			mc.logger.Info(component, "no stadium for city", map[string]interface{}{"city": city})
		} else {
			mc.logger.Error(component, err, map[string]interface{}{"city": city})
			mc.reportError(err)
		}
		mc.replaceImage(nil)
		mc.update(func(s *ViewState) {
			s.SelectedCity = city
			s.VenueInfo = fmt.Sprintf("No stadium information for %s", city)
			s.Image = nil
			s.ImageMessage = ""
			s.Status = fmt.Sprintf("No stadium listed for %s", city)
		})
		return
	}

	info := stadiums.FormatInfo(venue)
	handle, err := mc.images.Resolve(mc.ctx, venue)
	if err != nil {
		if errors.Is(err, imaging.ErrImageUnavailable) {
			mc.logger.Warning(component, "stadium image unavailable", map[string]interface{}{
				"city":  city,
				"image": venue.ImageReference,
				"error": err.Error(),
			})
		} else {
			mc.logger.Error(component, err, map[string]interface{}{"city": city})
			mc.reportError(err)
		}
		mc.replaceImage(nil)
		mc.update(func(s *ViewState) {
			s.SelectedCity = city
			s.VenueInfo = info
			s.Image = nil
			s.ImageMessage = ImagePlaceholder
			s.Status = venue.OfficialName
		})
		return
	}

	mc.replaceImage(handle)
	mc.update(func(s *ViewState) {
		s.SelectedCity = city
		s.VenueInfo = info
		s.Image = handle.Image
		s.ImageMessage = ""
		s.Status = venue.OfficialName
	})
}

// reportError surfaces an unexpected failure in an error dialog.
func (mc *MainController) reportError(err error) {
	mc.mu.Lock()
	view := mc.view
	mc.mu.Unlock()

	if view != nil {
		view.ShowError(err)
	}
}

// Shutdown releases the image currently on display.
func (mc *MainController) Shutdown() {
	mc.replaceImage(nil)
	mc.logger.Debug(component, "controller shut down", nil)
}

// replaceImage swaps the owned image handle, closing the previous one.
func (mc *MainController) replaceImage(next *imaging.Handle) {
	mc.mu.Lock()
	prev := mc.handle
	mc.handle = next
	mc.mu.Unlock()

	if prev != nil && prev != next {
		prev.Close()
	}
}

// update mutates the state under lock and renders the result.
func (mc *MainController) update(fn func(s *ViewState)) {
	mc.mu.Lock()
	fn(&mc.state)
	snapshot := mc.state.clone()
	view := mc.view
	mc.mu.Unlock()

	if view != nil {
		view.Render(snapshot)
	}
}
