package models

// Match is a scheduled fixture between two clubs.
// AwayClub may hold a placeholder such as "TBD" or a forward reference
// such as "Winner R1". VenueCity is not guaranteed to exist in the
// stadium directory.
type Match struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	HomeClub  string `json:"club1"`
	AwayClub  string `json:"club2"`
	VenueCity string `json:"venue"`
}

// Involves reports whether club plays on either side of the match.
// Comparison is exact and case-sensitive.
func (m Match) Involves(club string) bool {
	return club != "" && (m.HomeClub == club || m.AwayClub == club)
}

// Venue describes a stadium keyed by its city.
type Venue struct {
	City           string `json:"city"`
	OfficialName   string `json:"name"`
	Location       string `json:"location"`
	Address        string `json:"address"`
	Capacity       int    `json:"capacity"`
	ImageReference string `json:"image"`
}
