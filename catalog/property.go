package catalog

import (
	"slices"
	"time"
)

type Property struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Address        Address         `json:"address"`
	ImageURLs      []string        `json:"imageUrls"`
	Amenities      []string        `json:"amenities"`
	DayPassOptions []DayPassOption `json:"dayPassOptions"`
	AverageRating  *float64        `json:"averageRating,omitempty"`
	ReviewCount    int             `json:"reviewCount"`
	IsActive       bool            `json:"isActive"`
}

type Address struct {
	Street    string  `json:"street"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	ZipCode   string  `json:"zipCode"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type DayPassOption struct {
	ID          string  `json:"id"`
	PropertyID  string  `json:"propertyId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	// AvailableDays uses 0 = Sunday through 6 = Saturday.
	AvailableDays []int  `json:"availableDays"`
	StartTime     string `json:"startTime"` // "HH:mm"
	EndTime       string `json:"endTime"`   // "HH:mm"
	MaxCapacity   int    `json:"maxCapacity"`
	IsActive      bool   `json:"isActive"`
}

func (p Property) DayPassOption(id string) (DayPassOption, bool) {
	for _, pass := range p.DayPassOptions {
		if pass.ID == id {
			return pass, true
		}
	}

	return DayPassOption{}, false
}

func (o DayPassOption) AvailableOn(day time.Weekday) bool {
	return slices.Contains(o.AvailableDays, int(day))
}
