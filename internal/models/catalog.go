package models

import "strconv"

const (
	// ParticipantRate is charged per expected participant.
	ParticipantRate = 5

	MinParticipants = 1
	MaxParticipants = 100

	MinEventYear = 2025
	MaxEventYear = 2028
)

var TimeSlots = []string{
	"09:00-12:00",
	"12:00-15:00",
	"15:00-18:00",
	"18:00-21:00",
}

type Venue struct {
	Name string
	Cost int
}

var Venues = []Venue{
	{Name: "1st Floor Banquet Hall", Cost: 50},
	{Name: "2nd Floor Banquet Hall", Cost: 75},
	{Name: "3rd Floor Banquet Hall", Cost: 100},
}

type DecorationItem struct {
	Name string
	Cost int
}

// Theme is a decoration package sold by a single vendor.
type Theme struct {
	Name   string
	Vendor string
	Items  []DecorationItem
}

func (t Theme) Cost() float64 {
	total := 0
	for _, item := range t.Items {
		total += item.Cost
	}
	return float64(total)
}

var Themes = []Theme{
	{
		Name:   "Princess",
		Vendor: "FairyTale Decorators",
		Items: []DecorationItem{
			{Name: "Balloons", Cost: 200},
			{Name: "Lights", Cost: 15},
			{Name: "Banners", Cost: 30},
			{Name: "Cake", Cost: 100},
		},
	},
	{
		Name:   "Superhero",
		Vendor: "Heroic Events Co.",
		Items: []DecorationItem{
			{Name: "Balloons", Cost: 180},
			{Name: "Lights", Cost: 25},
			{Name: "Banners", Cost: 50},
			{Name: "Cake", Cost: 80},
		},
	},
	{
		Name:   "Retro",
		Vendor: "RetroVibe Planners",
		Items: []DecorationItem{
			{Name: "Balloons", Cost: 220},
			{Name: "Lights", Cost: 10},
			{Name: "Banners", Cost: 40},
			{Name: "Cake", Cost: 150},
		},
	},
}

func VenueByName(name string) (Venue, bool) {
	for _, v := range Venues {
		if v.Name == name {
			return v, true
		}
	}
	return Venue{}, false
}

// VenueCost returns 0 for locations outside the catalog.
func VenueCost(location string) int {
	v, _ := VenueByName(location)
	return v.Cost
}

func ThemeByName(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// IsValidEventDate checks the YYYY-MM-DD shape and field bounds only;
// dates such as 2025-02-31 are accepted.
func IsValidEventDate(date string) bool {
	if len(date) != 10 || date[4] != '-' || date[7] != '-' {
		return false
	}
	year, err := strconv.Atoi(date[0:4])
	if err != nil {
		return false
	}
	month, err := strconv.Atoi(date[5:7])
	if err != nil {
		return false
	}
	day, err := strconv.Atoi(date[8:10])
	if err != nil {
		return false
	}
	if year < MinEventYear || year > MaxEventYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= 31
}

func CalculateTotalFee(venueCost, participants int, themeCost float64) float64 {
	return float64(venueCost) + float64(participants*ParticipantRate) + themeCost
}
