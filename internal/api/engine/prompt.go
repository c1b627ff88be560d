package engine

import (
	"fmt"
	"strings"

	"github.com/broccolitours/itinerary-api/internal/types"
)

// systemPrompt frames every OpenAI chat call. Gemini takes plain text and
// gets the same framing inline through BuildPrompt.
const systemPrompt = "You are the Broccoli Tours AI: a tour operator specialised in camper trips. " +
	"ALWAYS answer with valid JSON only (no markdown, no prose outside the JSON). " +
	"The JSON must follow the requested schema exactly. " +
	"Be practical: driving, roads, camper stops, anti-overtourism, real operational advice."

// itinerarySchema is the literal output contract embedded in every prompt.
// The provider must conform to it exactly; the parser is still defensive.
const itinerarySchema = `{
    "id": "string",
    "title": "string",
    "summary": "string",
    "period": {
        "type": "FixedDates|Month|SuggestedBest",
        "startDate": "YYYY-MM-DD or null",
        "endDate": "YYYY-MM-DD or null",
        "month": "number or null",
        "year": "number or null"
    },
    "days": [
        {
            "dayNumber": 1,
            "date": "YYYY-MM-DD or null",
            "title": "string",
            "stops": [
                { "name": "string", "description": "string or null", "latitude": 0.0, "longitude": 0.0, "type": "viewpoint|village|camper_area|attraction|food" }
            ],
            "activities": ["string"],
            "driveHoursEstimate": 0.0,
            "overnightStopRecommendation": "string or null"
        }
    ],
    "tips": ["string"],
    "generatedAtUtc": "ISO-8601"
}`

// BuildPrompt renders the instruction for a provider call. It is pure string
// templating: identical inputs always produce the identical prompt.
func BuildPrompt(prefs types.TravelPreferences, location *types.Location, rental *types.RentalLocation) string {
	destinationName := "Italy"
	destinationRegion := ""
	destinationCoords := "coordinates to be determined"
	if location != nil {
		destinationName = location.Name
		destinationRegion = location.Region
		destinationCoords = fmt.Sprintf("%.4f,%.4f", location.Latitude, location.Longitude)
	} else if prefs.LocationQuery != "" {
		destinationName = prefs.LocationQuery
	}

	var b strings.Builder
	b.WriteString("Design a TOUR OPERATOR style camper itinerary for Broccoli Tours.\n\n")

	b.WriteString("Client constraints:\n")
	fmt.Fprintf(&b, "- Destination (anchor): %s (%s), approx coordinates %s\n", destinationName, destinationRegion, destinationCoords)
	fmt.Fprintf(&b, "- Period: %s\n", describePeriod(prefs))
	if prefs.TripDurationDays != nil && *prefs.TripDurationDays > 0 {
		fmt.Fprintf(&b, "- Trip length: plan exactly %d days\n", *prefs.TripDurationDays)
	}
	fmt.Fprintf(&b, "- Weekend trip: %s\n", yesNo(prefs.WeekendTrip))
	fmt.Fprintf(&b, "- Party size: %d\n", prefs.PartySize)
	fmt.Fprintf(&b, "- Camper: category %s, model %s\n", camperCategoryLabel(prefs), camperModelLabel(prefs))

	b.WriteString("\nQuality rules (fundamental):\n")
	fmt.Fprintf(&b, "- %s\n", drivingRule(prefs))
	fmt.Fprintf(&b, "- %s\n", rigRule(prefs))
	b.WriteString("- ALWAYS include at least 1 stop of type \"camper_area\" on every day (a practical camper stop or campsite), with a useful description.\n")
	b.WriteString("- Include at least 1 off-route gem (village or viewpoint) and at least 1 \"food\" stop (market, trattoria, local producer) across the whole itinerary.\n")
	fmt.Fprintf(&b, "- %s\n", overtourismRule(prefs.OvertourismLevel()))
	b.WriteString("- Coordinates: every stop must have realistic latitude/longitude (never 0,0).\n")
	b.WriteString("- dayNumber must be sequential (1..N). Use null when dates are unavailable.\n")
	b.WriteString("- driveHoursEstimate: total driving hours for the day (e.g. 2.5; 0.0 for a stationary day).\n")
	b.WriteString("- overnightStopRecommendation: recommended overnight camper area or campsite; may be omitted on the last day.\n")

	if block := vehicleContext(prefs, rental); block != "" {
		b.WriteString("\nVehicle context:\n")
		b.WriteString(block)
	}

	b.WriteString("\nBroccoli Tours style:\n")
	b.WriteString("- Competent, reassuring, concrete tone.\n")
	b.WriteString("- Short but useful descriptions (parking, manoeuvring, arriving early, alternatives).\n")
	b.WriteString("- In the tips include: timing strategy, driving and overnight advice, weather/seasonality hints when the period is SuggestedBest.\n")

	b.WriteString("\nIMPORTANT: Reply ONLY with valid JSON following exactly the schema below. No extra text, pure JSON.\n\n")
	b.WriteString("Required JSON schema:\n")
	b.WriteString(itinerarySchema)
	b.WriteString("\n\nGenerate the itinerary now as JSON.")

	return b.String()
}

func describePeriod(prefs types.TravelPreferences) string {
	switch prefs.PeriodType {
	case types.PeriodFixedDates:
		return fmt.Sprintf("fixed dates %s to %s", dateLabel(prefs.StartDate), dateLabel(prefs.EndDate))
	case types.PeriodMonth:
		return fmt.Sprintf("the month %04d-%02d", intOrZero(prefs.Year), intOrZero(prefs.Month))
	default:
		return fmt.Sprintf("suggest the best period (month hint %04d-%02d)", intOrZero(prefs.Year), intOrZero(prefs.Month))
	}
}

func drivingRule(prefs types.TravelPreferences) string {
	if prefs.MinDailyDriveHours != nil && prefs.MaxDailyDriveHours != nil {
		return fmt.Sprintf("Daily driving: between %.1f and %.1f hours of driving per day; plan stops accordingly.",
			*prefs.MinDailyDriveHours, *prefs.MaxDailyDriveHours)
	}
	if prefs.WeekendTrip {
		return "Short drives: at most ~1.5-2 hours per day, few but memorable stops."
	}
	return "Balanced driving: at most ~3-4 hours per day; better 2-3 key stops than 6 micro-stops."
}

func rigRule(prefs types.TravelPreferences) string {
	if prefs.CamperCategory != nil && prefs.CamperCategory.IsBigRig() {
		return "The vehicle is large: avoid tight historic centres, very steep passes and unpaved roads; prefer wide parking and easy access."
	}
	return "The vehicle is compact: narrower scenic roads are fine, always with caution and alternatives."
}

func overtourismRule(level int) string {
	switch {
	case level >= 5:
		return "Anti-overtourism (strict): strictly avoid the overcrowded headline destinations; build the route around lesser-known places only."
	case level >= 3:
		return "Anti-overtourism: propose less crowded alternatives within 15-30 minutes of the famous spots, and suggest smart time slots (early morning / late afternoon)."
	case level >= 1:
		return "Prefer lightly less crowded alternatives where convenient, without skipping the classics."
	default:
		return "Still pick sustainable stops and practical advice to avoid congestion."
	}
}

func vehicleContext(prefs types.TravelPreferences, rental *types.RentalLocation) string {
	if rental != nil {
		return fmt.Sprintf(
			"- The camper is rented: the itinerary must start and end at the rental station %s (%s, %s), coordinates %.4f,%.4f.\n"+
				"- Budget 1-2 hours for pickup on the first day and drop-off on the last day; keep those days lighter.\n",
			rental.Name, rental.City, rental.Country, rental.Latitude, rental.Longitude)
	}
	if prefs.IsOwnedCamper && prefs.OwnedCamperModel != "" {
		return fmt.Sprintf(
			"- The traveller drives their own camper (%s): tailor accessibility advice (height, length, manoeuvring) to that model.\n",
			prefs.OwnedCamperModel)
	}
	return ""
}

func camperCategoryLabel(prefs types.TravelPreferences) string {
	if prefs.CamperCategory == nil {
		return "any camper"
	}
	return string(*prefs.CamperCategory)
}

func camperModelLabel(prefs types.TravelPreferences) string {
	switch {
	case prefs.CamperModelName != "":
		return prefs.CamperModelName
	case prefs.OwnedCamperModel != "":
		return prefs.OwnedCamperModel
	default:
		return "not specified"
	}
}

func dateLabel(d *types.Date) string {
	if d == nil {
		return "?"
	}
	return d.String()
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
