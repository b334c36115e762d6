package schedule

import "cwc-viewer/internal/models"

// fixtures is the tournament schedule in chronological order.
var fixtures = []models.Match{
	{Date: "June 15, 2025", Time: "18:00", HomeClub: "Manchester City", AwayClub: "Al Ahly", VenueCity: "Los Angeles"},
	{Date: "June 16, 2025", Time: "20:00", HomeClub: "Fluminense", AwayClub: "Urawa Red Diamonds", VenueCity: "Atlanta"},
	{Date: "June 17, 2025", Time: "19:00", HomeClub: "FC Bayern Munich", AwayClub: "Wydad Casablanca", VenueCity: "Dallas"},
	{Date: "June 18, 2025", Time: "17:00", HomeClub: "Al Hilal", AwayClub: "Club América", VenueCity: "Miami"},
	{Date: "June 19, 2025", Time: "21:00", HomeClub: "Auckland City", AwayClub: "Seattle Sounders", VenueCity: "Houston"},
	{Date: "June 21, 2025", Time: "19:00", HomeClub: "Real Madrid", AwayClub: "Winner R1", VenueCity: "New York"},
	{Date: "June 22, 2025", Time: "21:00", HomeClub: "Chelsea", AwayClub: "Winner R2", VenueCity: "Seattle"},
	{Date: "June 23, 2025", Time: "20:00", HomeClub: "FC Bayern Munich", AwayClub: "Winner R3", VenueCity: "Orlando"},
	{Date: "June 25, 2025", Time: "20:00", HomeClub: "Semi-Final 1", AwayClub: "TBD", VenueCity: "San Francisco"},
	{Date: "June 26, 2025", Time: "20:00", HomeClub: "Semi-Final 2", AwayClub: "TBD", VenueCity: "Chicago"},
	{Date: "June 29, 2025", Time: "21:00", HomeClub: "Final", AwayClub: "TBD", VenueCity: "Los Angeles"},
}
