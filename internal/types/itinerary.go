package types

import "time"

// TravelPeriod is the period echoed back by the provider (or synthesized by
// the stub) in the generated itinerary.
type TravelPeriod struct {
	Type      PeriodType `json:"type"`
	StartDate *Date      `json:"startDate,omitempty"`
	EndDate   *Date      `json:"endDate,omitempty"`
	Month     *int       `json:"month,omitempty"`
	Year      *int       `json:"year,omitempty"`
}

// ItineraryStop is a single place to park, eat or look at. Type is an open
// string ("viewpoint", "village", "camper_area", "attraction", "food", ...);
// consumers must tolerate values they do not know.
type ItineraryStop struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Type        string  `json:"type"`
}

type ItineraryDay struct {
	DayNumber                   int             `json:"dayNumber"`
	Date                        *Date           `json:"date,omitempty"`
	Title                       string          `json:"title"`
	Stops                       []ItineraryStop `json:"stops"`
	Activities                  []string        `json:"activities"`
	DriveHoursEstimate          *float64        `json:"driveHoursEstimate,omitempty"`
	OvernightStopRecommendation *string         `json:"overnightStopRecommendation,omitempty"`
}

// Itinerary is the pipeline's output contract. Ownership transfers to the
// caller on return; the pipeline never keeps a reference.
type Itinerary struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Summary        string         `json:"summary"`
	Period         TravelPeriod   `json:"period"`
	Days           []ItineraryDay `json:"days"`
	Tips           []string       `json:"tips"`
	GeneratedAtUTC time.Time      `json:"generatedAtUtc"`
}
