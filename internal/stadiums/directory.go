package stadiums

import (
	"errors"
	"fmt"
	"strings"

	"cwc-viewer/internal/models"
)

// ErrNotFound is returned when a city has no stadium entry. Several
// matches are played in cities that are not listed, so callers should
// treat it as an expected outcome.
var ErrNotFound = errors.New("stadium not found")

// Directory resolves city names to venue records.
type Directory struct {
	cities []string
	byCity map[string]models.Venue
}

// NewDirectory creates a directory of the tournament stadiums.
func NewDirectory() *Directory {
	d, err := NewDirectoryFromVenues(venues)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDirectoryFromVenues builds a directory keeping the order of venues.
// Duplicate or empty city keys and non-positive capacities are rejected.
func NewDirectoryFromVenues(venues []models.Venue) (*Directory, error) {
	d := &Directory{
		cities: make([]string, 0, len(venues)),
		byCity: make(map[string]models.Venue, len(venues)),
	}

	for _, v := range venues {
		if v.City == "" {
			return nil, fmt.Errorf("venue %q has no city", v.OfficialName)
		}
		if _, exists := d.byCity[v.City]; exists {
			return nil, fmt.Errorf("duplicate venue for city %q", v.City)
		}
		if v.Capacity <= 0 {
			return nil, fmt.Errorf("venue %q has invalid capacity %d", v.City, v.Capacity)
		}
		d.cities = append(d.cities, v.City)
		d.byCity[v.City] = v
	}

	return d, nil
}

// ListCities returns the city keys in insertion order.
func (d *Directory) ListCities() []string {
	out := make([]string, len(d.cities))
	copy(out, d.cities)
	return out
}

// Lookup returns the venue for city or an error wrapping ErrNotFound.
func (d *Directory) Lookup(city string) (models.Venue, error) {
	v, ok := d.byCity[city]
	if !ok {
		return models.Venue{}, fmt.Errorf("lookup %q: %w", city, ErrNotFound)
	}
	return v, nil
}

// VenueForMatch resolves the venue a match is played at.
func (d *Directory) VenueForMatch(m models.Match) (models.Venue, error) {
	return d.Lookup(m.VenueCity)
}

// FormatInfo renders the descriptive text shown next to a stadium image.
func FormatInfo(v models.Venue) string {
	var b strings.Builder
	b.WriteString(v.OfficialName)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Location: %s\n", v.Location)
	fmt.Fprintf(&b, "Address: %s\n", v.Address)
	fmt.Fprintf(&b, "Capacity: %d people", v.Capacity)
	return b.String()
}
