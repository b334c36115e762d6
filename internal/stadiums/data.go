package stadiums

import "cwc-viewer/internal/models"

// venues lists the tournament stadiums in display order.
var venues = []models.Venue{
	{
		City:           "Los Angeles",
		OfficialName:   "SoFi Stadium",
		Location:       "Inglewood, CA",
		Address:        "1001 Stadium Dr, Inglewood, CA 90301",
		Capacity:       70000,
		ImageReference: "sofi_stadium.jpg",
	},
	{
		City:           "Atlanta",
		OfficialName:   "Mercedes-Benz Stadium",
		Location:       "Atlanta, GA",
		Address:        "1 AMB Dr NW, Atlanta, GA 30313",
		Capacity:       71000,
		ImageReference: "mercedes_benz.jpg",
	},
	{
		City:           "Dallas",
		OfficialName:   "AT&T Stadium",
		Location:       "Arlington, TX",
		Address:        "1 AT&T Way, Arlington, TX 76011",
		Capacity:       80000,
		ImageReference: "att_stadium.jpg",
	},
	{
		City:           "New York",
		OfficialName:   "MetLife Stadium",
		Location:       "East Rutherford, NJ",
		Address:        "1 MetLife Stadium Dr, East Rutherford, NJ 07073",
		Capacity:       82500,
		ImageReference: "metlife.jpg",
	},
}
