package schedule

import (
	"sort"

	"cwc-viewer/internal/models"
)

// Store answers queries over an immutable, ordered list of matches.
type Store struct {
	matches []models.Match
	clubs   []string
}

// NewStore creates a store backed by the tournament schedule.
func NewStore() *Store {
	return NewStoreFromMatches(fixtures)
}

// NewStoreFromMatches creates a store over the given matches. The slice is
// copied so later changes by the caller do not leak into the store.
func NewStoreFromMatches(matches []models.Match) *Store {
	owned := make([]models.Match, len(matches))
	copy(owned, matches)

	return &Store{
		matches: owned,
		clubs:   collectClubs(owned),
	}
}

// AllMatches returns every match in its original order.
func (s *Store) AllMatches() []models.Match {
	out := make([]models.Match, len(s.matches))
	copy(out, s.matches)
	return out
}

// Len returns the number of matches in the store.
func (s *Store) Len() int {
	return len(s.matches)
}

// DistinctClubs returns every club name appearing on either side of a
// match, deduplicated and sorted ascending.
func (s *Store) DistinctClubs() []string {
	out := make([]string, len(s.clubs))
	copy(out, s.clubs)
	return out
}

// MatchesForClub returns the matches in which name is the home or away
// club, preserving original order. An unknown or empty name yields an
// empty slice.
func (s *Store) MatchesForClub(name string) []models.Match {
	out := make([]models.Match, 0)
	if name == "" {
		return out
	}

	for _, m := range s.matches {
		if m.Involves(name) {
			out = append(out, m)
		}
	}
	return out
}

func collectClubs(matches []models.Match) []string {
	seen := make(map[string]struct{}, len(matches)*2)
	for _, m := range matches {
		for _, club := range []string{m.HomeClub, m.AwayClub} {
			if club != "" {
				seen[club] = struct{}{}
			}
		}
	}

	clubs := make([]string, 0, len(seen))
	for club := range seen {
		clubs = append(clubs, club)
	}
	sort.Strings(clubs)
	return clubs
}
