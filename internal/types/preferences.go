package types

// PeriodType describes how the traveller pinned down the travel window.
type PeriodType string

const (
	PeriodFixedDates  PeriodType = "FixedDates"
	PeriodMonth       PeriodType = "Month"
	PeriodSuggestBest PeriodType = "SuggestedBest"
)

// CamperCategory mirrors the rental fleet categories. Integrated and Motorhome
// rigs get the wide-parking treatment in the prompt.
type CamperCategory string

const (
	CamperVan            CamperCategory = "Van"
	CamperCompactVan     CamperCategory = "CompactVan"
	CamperCampervan      CamperCategory = "Campervan"
	CamperSemiIntegrated CamperCategory = "SemiIntegrated"
	CamperMotorhome      CamperCategory = "Motorhome"
	CamperIntegrated     CamperCategory = "IntegratedMotorhome"
)

// IsBigRig reports whether the category needs wide parking and gentle roads.
func (c CamperCategory) IsBigRig() bool {
	return c == CamperMotorhome || c == CamperIntegrated
}

// TravelPreferences is the immutable request that drives the whole pipeline.
// It is consumed top to bottom; nothing mutates it after submission.
type TravelPreferences struct {
	PeriodType PeriodType `json:"periodType"`
	StartDate  *Date      `json:"startDate,omitempty"`
	EndDate    *Date      `json:"endDate,omitempty"`
	Month      *int       `json:"month,omitempty"`
	Year       *int       `json:"year,omitempty"`

	TripDurationDays *int `json:"tripDurationDays,omitempty"`
	WeekendTrip      bool `json:"weekendTrip"`

	// AvoidOvertourism is the legacy boolean switch; OvertourismLevelRaw is the
	// newer graduated 1..5 signal. OvertourismLevel() reconciles the two.
	AvoidOvertourism    bool `json:"avoidOvertourism"`
	OvertourismLevelRaw *int `json:"overtourismLevel,omitempty"`

	PartySize int `json:"partySize"`

	CamperCategory  *CamperCategory `json:"camperCategory,omitempty"`
	CamperModelName string          `json:"camperModelName,omitempty"`
	IsOwnedCamper   bool            `json:"isOwnedCamper"`
	OwnedCamperModel string         `json:"ownedCamperModel,omitempty"`
	RentalLocationID string         `json:"rentalLocationId,omitempty"`

	MinDailyDriveHours *float64 `json:"minDailyDriveHours,omitempty"`
	MaxDailyDriveHours *float64 `json:"maxDailyDriveHours,omitempty"`

	LocationID    string `json:"locationId,omitempty"`
	LocationQuery string `json:"locationQuery,omitempty"`
}

// OvertourismLevel normalizes the preference to a 0..5 level. The explicit
// level wins when present; the boolean maps to a moderate 3, or 0 when off.
func (p TravelPreferences) OvertourismLevel() int {
	if p.OvertourismLevelRaw != nil {
		lvl := *p.OvertourismLevelRaw
		if lvl < 0 {
			return 0
		}
		if lvl > 5 {
			return 5
		}
		return lvl
	}
	if p.AvoidOvertourism {
		return 3
	}
	return 0
}
