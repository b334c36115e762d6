package schedule

import (
	"sort"
	"testing"

	"cwc-viewer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllMatchesIsStable(t *testing.T) {
	store := NewStore()

	first := store.AllMatches()
	second := store.AllMatches()

	require.Len(t, first, 11)
	assert.Equal(t, first, second)
	assert.Equal(t, "June 15, 2025", first[0].Date)
	assert.Equal(t, "June 29, 2025", first[len(first)-1].Date)
	assert.Equal(t, 11, store.Len())
}

func TestAllMatchesReturnsCopy(t *testing.T) {
	store := NewStore()

	got := store.AllMatches()
	got[0].HomeClub = "Changed"

	assert.Equal(t, "Manchester City", store.AllMatches()[0].HomeClub)
}

func TestNewStoreFromMatchesCopiesInput(t *testing.T) {
	input := []models.Match{{HomeClub: "A", AwayClub: "B", VenueCity: "X"}}
	store := NewStoreFromMatches(input)

	input[0].HomeClub = "Z"

	assert.Equal(t, []string{"A", "B"}, store.DistinctClubs())
}

func TestDistinctClubsSortedAndUnique(t *testing.T) {
	clubs := NewStore().DistinctClubs()

	assert.True(t, sort.StringsAreSorted(clubs))

	seen := make(map[string]bool)
	for _, c := range clubs {
		assert.False(t, seen[c], "duplicate club %q", c)
		seen[c] = true
	}

	assert.Contains(t, clubs, "FC Bayern Munich")
	assert.Contains(t, clubs, "TBD")
	assert.Contains(t, clubs, "Winner R1")
	// ten distinct home sides, nine distinct away sides
	assert.Len(t, clubs, 19)
}

func TestEveryDistinctClubHasMatches(t *testing.T) {
	store := NewStore()

	for _, club := range store.DistinctClubs() {
		matches := store.MatchesForClub(club)
		require.NotEmpty(t, matches, club)
		for _, m := range matches {
			assert.True(t, m.HomeClub == club || m.AwayClub == club, club)
		}
	}
}

func TestMatchesForClub(t *testing.T) {
	store := NewStore()

	tests := []struct {
		name      string
		club      string
		wantDates []string
	}{
		{
			name:      "bayern plays twice",
			club:      "FC Bayern Munich",
			wantDates: []string{"June 17, 2025", "June 23, 2025"},
		},
		{
			name:      "away side",
			club:      "Al Ahly",
			wantDates: []string{"June 15, 2025"},
		},
		{
			name:      "placeholder",
			club:      "TBD",
			wantDates: []string{"June 25, 2025", "June 26, 2025", "June 29, 2025"},
		},
		{
			name:      "case sensitive",
			club:      "fc bayern munich",
			wantDates: []string{},
		},
		{
			name:      "unknown club",
			club:      "Arsenal",
			wantDates: []string{},
		},
		{
			name:      "empty name",
			club:      "",
			wantDates: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := store.MatchesForClub(tt.club)
			require.NotNil(t, got)

			dates := make([]string, 0, len(got))
			for _, m := range got {
				dates = append(dates, m.Date)
			}
			assert.Equal(t, tt.wantDates, dates)
		})
	}
}

func TestMatchesForBayernOpponents(t *testing.T) {
	got := NewStore().MatchesForClub("FC Bayern Munich")

	require.Len(t, got, 2)
	assert.Equal(t, "Wydad Casablanca", got[0].AwayClub)
	assert.Equal(t, "Winner R3", got[1].AwayClub)
}

func TestDistinctClubsSkipsEmptyNames(t *testing.T) {
	store := NewStoreFromMatches([]models.Match{
		{HomeClub: "Final", AwayClub: ""},
	})

	assert.Equal(t, []string{"Final"}, store.DistinctClubs())
}
