package engine

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/broccolitours/itinerary-api/internal/types"
)

// stripCodeFences removes a leading ```json / ``` fence and a trailing ```
// fence. Providers wrap JSON in markdown fences often enough that this runs
// on every payload before parsing.
func stripCodeFences(s string) string {
	out := strings.TrimSpace(s)
	if strings.HasPrefix(out, "```json") {
		out = strings.TrimSpace(out[len("```json"):])
	} else if strings.HasPrefix(out, "```") {
		out = strings.TrimSpace(out[len("```"):])
	}
	if strings.HasSuffix(out, "```") {
		out = strings.TrimSpace(out[:len(out)-len("```")])
	}
	return out
}

// parseItinerary maps a raw provider payload onto the itinerary model.
//
// Two failure classes come out of here and the caller must tell them apart:
// a plain json error means the text was not valid JSON (usually truncation,
// worth a repair round), while *types.MissingFieldError means the JSON parsed
// but a required field was absent or wrongly typed. Repair fixes syntax, not
// semantics, so missing fields are terminal.
//
// Required: id, title, period.type, dayNumber per day, and name, latitude,
// longitude per stop. A key that is present but null gets a placeholder
// (fresh uuid for id, a default title); a key that is absent does not.
func parseItinerary(jsonStr string, prefs types.TravelPreferences) (*types.Itinerary, error) {
	var root map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &root); err != nil {
		return nil, fmt.Errorf("unmarshal itinerary: %w", err)
	}

	itin := &types.Itinerary{}

	id, ok, err := requiredString(root, "id")
	if err != nil {
		return nil, err
	}
	if !ok || id == "" {
		id = uuid.New().String()
	}
	itin.ID = id

	title, ok, err := requiredString(root, "title")
	if err != nil {
		return nil, err
	}
	if !ok || title == "" {
		title = "Camper Itinerary"
	}
	itin.Title = title

	itin.Summary, _ = optString(root, "summary")

	periodRaw, present := root["period"]
	if !present {
		return nil, &types.MissingFieldError{Field: "period"}
	}
	period, err := parsePeriod(periodRaw, prefs)
	if err != nil {
		return nil, err
	}
	itin.Period = period

	if daysRaw, present := root["days"]; present && daysRaw != nil {
		daysList, ok := daysRaw.([]any)
		if !ok {
			return nil, &types.MissingFieldError{Field: "days"}
		}
		itin.Days = make([]types.ItineraryDay, 0, len(daysList))
		for i, dayRaw := range daysList {
			day, err := parseDay(dayRaw, i)
			if err != nil {
				return nil, err
			}
			itin.Days = append(itin.Days, day)
		}
	}

	itin.Tips = stringList(root["tips"])

	itin.GeneratedAtUTC = time.Now().UTC()
	if ts, ok := optString(root, "generatedAtUtc"); ok && ts != "" {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			itin.GeneratedAtUTC = t.UTC()
		}
	}

	return itin, nil
}

func parsePeriod(raw any, prefs types.TravelPreferences) (types.TravelPeriod, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return types.TravelPeriod{}, &types.MissingFieldError{Field: "period"}
	}

	typeStr, present, err := requiredString(obj, "type")
	if err != nil {
		return types.TravelPeriod{}, &types.MissingFieldError{Field: "period.type"}
	}
	if !present {
		return types.TravelPeriod{}, &types.MissingFieldError{Field: "period.type"}
	}
	period := types.TravelPeriod{Type: types.PeriodType(typeStr)}
	if typeStr == "" {
		period.Type = prefs.PeriodType
	}

	period.StartDate = optDate(obj, "startDate")
	period.EndDate = optDate(obj, "endDate")
	period.Month = optInt(obj, "month")
	period.Year = optInt(obj, "year")
	return period, nil
}

func parseDay(raw any, idx int) (types.ItineraryDay, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return types.ItineraryDay{}, &types.MissingFieldError{Field: fmt.Sprintf("days[%d]", idx)}
	}

	day := types.ItineraryDay{}

	num, ok := asInt(obj["dayNumber"])
	if !ok {
		return types.ItineraryDay{}, &types.MissingFieldError{Field: fmt.Sprintf("days[%d].dayNumber", idx)}
	}
	day.DayNumber = num

	if title, ok := optString(obj, "title"); ok && title != "" {
		day.Title = title
	} else {
		day.Title = fmt.Sprintf("Day %d", num)
	}

	day.Date = optDate(obj, "date")

	if stopsRaw, present := obj["stops"]; present && stopsRaw != nil {
		stopsList, ok := stopsRaw.([]any)
		if !ok {
			return types.ItineraryDay{}, &types.MissingFieldError{Field: fmt.Sprintf("days[%d].stops", idx)}
		}
		day.Stops = make([]types.ItineraryStop, 0, len(stopsList))
		for j, stopRaw := range stopsList {
			stop, err := parseStop(stopRaw, idx, j)
			if err != nil {
				return types.ItineraryDay{}, err
			}
			day.Stops = append(day.Stops, stop)
		}
	}

	day.Activities = stringList(obj["activities"])

	if v, ok := asFloat(obj["driveHoursEstimate"]); ok {
		day.DriveHoursEstimate = &v
	}
	if s, ok := optString(obj, "overnightStopRecommendation"); ok && s != "" {
		day.OvernightStopRecommendation = &s
	}

	return day, nil
}

func parseStop(raw any, dayIdx, stopIdx int) (types.ItineraryStop, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return types.ItineraryStop{}, &types.MissingFieldError{Field: fmt.Sprintf("days[%d].stops[%d]", dayIdx, stopIdx)}
	}

	stop := types.ItineraryStop{}

	name, present, err := requiredString(obj, "name")
	if err != nil || !present || name == "" {
		return types.ItineraryStop{}, &types.MissingFieldError{Field: fmt.Sprintf("days[%d].stops[%d].name", dayIdx, stopIdx)}
	}
	stop.Name = name

	lat, ok := asFloat(obj["latitude"])
	if !ok {
		return types.ItineraryStop{}, &types.MissingFieldError{Field: fmt.Sprintf("days[%d].stops[%d].latitude", dayIdx, stopIdx)}
	}
	lon, ok := asFloat(obj["longitude"])
	if !ok {
		return types.ItineraryStop{}, &types.MissingFieldError{Field: fmt.Sprintf("days[%d].stops[%d].longitude", dayIdx, stopIdx)}
	}
	stop.Latitude = lat
	stop.Longitude = lon

	stop.Description, _ = optString(obj, "description")

	if t, ok := optString(obj, "type"); ok && t != "" {
		stop.Type = t
	} else {
		stop.Type = "attraction"
	}

	return stop, nil
}

// requiredString distinguishes the three states a key can be in: absent
// (ok=false), present-but-null (ok=true, empty), and present as a string.
// Any other type is a structural violation.
func requiredString(obj map[string]any, key string) (string, bool, error) {
	v, present := obj[key]
	if !present {
		return "", false, &types.MissingFieldError{Field: key}
	}
	if v == nil {
		return "", true, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", true, &types.MissingFieldError{Field: key}
	}
	return s, true, nil
}

func optString(obj map[string]any, key string) (string, bool) {
	v, present := obj[key]
	if !present || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return s, true
}

func optDate(obj map[string]any, key string) *types.Date {
	s, ok := optString(obj, key)
	if !ok || s == "" {
		return nil
	}
	d, err := types.ParseDate(s)
	if err != nil {
		return nil
	}
	return &d
}

// optInt accepts both JSON numbers and numeric strings; providers alternate
// between "month": 7 and "month": "7".
func optInt(obj map[string]any, key string) *int {
	v, present := obj[key]
	if !present || v == nil {
		return nil
	}
	if n, ok := asInt(v); ok {
		return &n
	}
	return nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func stringList(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
