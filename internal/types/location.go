package types

// Location is a catalog anchor destination. Never mutated after seeding.
type Location struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	CountryCode string  `json:"countryCode"`
	Region      string  `json:"region,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description,omitempty"`
}

// RentalLocation is a camper rental station. It only matters to the prompt:
// a renting traveller must start and end the loop here.
type RentalLocation struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// Camper is a rentable vehicle model from the fleet catalog.
type Camper struct {
	ID           string         `json:"id"`
	ModelName    string         `json:"modelName"`
	Category     CamperCategory `json:"category"`
	Sleeps       int            `json:"sleeps"`
	LengthMeters float64        `json:"lengthMeters"`
	Notes        string         `json:"notes,omitempty"`
}
