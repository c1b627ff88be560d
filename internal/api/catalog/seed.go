package catalog

import "github.com/broccolitours/itinerary-api/internal/types"

// Seed data lives behind the catalog interfaces so tests can swap in
// fixtures; it is not a compile-time contract.

var seedLocations = []types.Location{
	{ID: "it-tuscany", Name: "Toscana Slow Roads", CountryCode: "IT", Region: "Toscana", Latitude: 43.7711, Longitude: 11.2486, Description: "Hill towns, cypress lanes and panoramic back roads."},
	{ID: "it-dolomites", Name: "Dolomiti & Passi", CountryCode: "IT", Region: "Trentino-Alto Adige", Latitude: 46.4102, Longitude: 11.8440, Description: "Alpine panoramas and legendary mountain passes."},
	{ID: "it-puglia", Name: "Puglia Coste & Masserie", CountryCode: "IT", Region: "Puglia", Latitude: 40.8518, Longitude: 17.1220, Description: "Coastline, trulli and local food culture."},
	{ID: "fr-provence", Name: "Provence (fuori rotta)", CountryCode: "FR", Region: "Provence-Alpes-Côte d'Azur", Latitude: 43.9493, Longitude: 4.8055, Description: "Lavender fields, hilltop villages and markets."},
}

var seedRentalLocations = []types.RentalLocation{
	// Austria
	{ID: "at-innsbruck", Name: "Innsbruck", City: "Innsbruck", Country: "Austria", Latitude: 47.2692, Longitude: 11.4041, Address: "RoadSurfer Station Innsbruck"},
	{ID: "at-vienna", Name: "Vienna", City: "Wien", Country: "Austria", Latitude: 48.2082, Longitude: 16.3738, Address: "RoadSurfer Station Wien"},
	// France
	{ID: "fr-bordeaux", Name: "Bordeaux", City: "Bordeaux", Country: "France", Latitude: 44.8378, Longitude: -0.5792, Address: "RoadSurfer Station Bordeaux"},
	{ID: "fr-lyon", Name: "Lyon", City: "Lyon", Country: "France", Latitude: 45.7640, Longitude: 4.8357, Address: "RoadSurfer Station Lyon"},
	{ID: "fr-marseille", Name: "Marseille-Aix", City: "Marseille", Country: "France", Latitude: 43.2965, Longitude: 5.3698, Address: "RoadSurfer Station Marseille-Aix"},
	{ID: "fr-nice", Name: "Nice", City: "Nice", Country: "France", Latitude: 43.7102, Longitude: 7.2620, Address: "RoadSurfer Station Nice"},
	{ID: "fr-paris", Name: "Paris", City: "Paris", Country: "France", Latitude: 48.8566, Longitude: 2.3522, Address: "RoadSurfer Station Paris"},
	// Germany
	{ID: "de-berlin", Name: "Berlin", City: "Berlin", Country: "Germany", Latitude: 52.5200, Longitude: 13.4050, Address: "RoadSurfer Station Berlin"},
	{ID: "de-cologne", Name: "Cologne", City: "Köln", Country: "Germany", Latitude: 50.9375, Longitude: 6.9603, Address: "RoadSurfer Station Köln"},
	{ID: "de-frankfurt", Name: "Frankfurt", City: "Frankfurt", Country: "Germany", Latitude: 50.1109, Longitude: 8.6821, Address: "RoadSurfer Station Frankfurt"},
	{ID: "de-hamburg", Name: "Hamburg", City: "Hamburg", Country: "Germany", Latitude: 53.5511, Longitude: 9.9937, Address: "RoadSurfer Station Hamburg"},
	{ID: "de-munich", Name: "Munich", City: "München", Country: "Germany", Latitude: 48.1351, Longitude: 11.5820, Address: "RoadSurfer Station München"},
	{ID: "de-stuttgart", Name: "Stuttgart", City: "Stuttgart", Country: "Germany", Latitude: 48.7758, Longitude: 9.1829, Address: "RoadSurfer Station Stuttgart"},
	// Italy
	{ID: "it-florence", Name: "Florence", City: "Firenze", Country: "Italy", Latitude: 43.7696, Longitude: 11.2558, Address: "RoadSurfer Station Firenze"},
	{ID: "it-milan", Name: "Milan", City: "Milano", Country: "Italy", Latitude: 45.4642, Longitude: 9.1900, Address: "RoadSurfer Station Milano"},
	{ID: "it-rome", Name: "Rome", City: "Roma", Country: "Italy", Latitude: 41.9028, Longitude: 12.4964, Address: "RoadSurfer Station Roma"},
	{ID: "it-venice", Name: "Venice", City: "Venezia", Country: "Italy", Latitude: 45.4408, Longitude: 12.3155, Address: "RoadSurfer Station Venezia"},
	// Portugal
	{ID: "pt-lisbon", Name: "Lisbon", City: "Lisboa", Country: "Portugal", Latitude: 38.7223, Longitude: -9.1393, Address: "RoadSurfer Station Lisboa"},
	{ID: "pt-porto", Name: "Porto", City: "Porto", Country: "Portugal", Latitude: 41.1579, Longitude: -8.6291, Address: "RoadSurfer Station Porto"},
	// Spain
	{ID: "es-barcelona", Name: "Barcelona", City: "Barcelona", Country: "Spain", Latitude: 41.3851, Longitude: 2.1734, Address: "RoadSurfer Station Barcelona"},
	{ID: "es-madrid", Name: "Madrid", City: "Madrid", Country: "Spain", Latitude: 40.4168, Longitude: -3.7038, Address: "RoadSurfer Station Madrid"},
	{ID: "es-valencia", Name: "Valencia", City: "Valencia", Country: "Spain", Latitude: 39.4699, Longitude: -0.3763, Address: "RoadSurfer Station Valencia"},
}

var seedCampers = []types.Camper{
	{ID: "surfer-suite", ModelName: "Surfer Suite", Category: types.CamperCampervan, Sleeps: 4, LengthMeters: 5.99, Notes: "VW T6.1 California Ocean — pop-top roof, integrated kitchen."},
	{ID: "beach-hostel", ModelName: "Beach Hostel", Category: types.CamperCampervan, Sleeps: 4, LengthMeters: 5.99, Notes: "VW T6.1 California Beach — small groups and families."},
	{ID: "camper-cabin", ModelName: "Camper Cabin", Category: types.CamperCampervan, Sleeps: 4, LengthMeters: 5.40, Notes: "Ford Nugget — compact and versatile."},
	{ID: "travel-home", ModelName: "Travel Home", Category: types.CamperCampervan, Sleeps: 4, LengthMeters: 5.14, Notes: "Mercedes Marco Polo — comfort for demanding travellers."},
	{ID: "family-finca", ModelName: "Family Finca", Category: types.CamperVan, Sleeps: 4, LengthMeters: 6.00, Notes: "Spacious van with full kitchen and indoor bathroom."},
	{ID: "couple-cottage", ModelName: "Couple Cottage", Category: types.CamperVan, Sleeps: 2, LengthMeters: 5.40, Notes: "Compact van for two, modern and practical."},
	{ID: "horizon-hopper", ModelName: "Horizon Hopper", Category: types.CamperVan, Sleeps: 2, LengthMeters: 5.49, Notes: "Winnebago Revel 44E — 4x4 for off-road detours."},
	{ID: "camper-castle", ModelName: "Camper Castle", Category: types.CamperSemiIntegrated, Sleeps: 4, LengthMeters: 7.00, Notes: "Semi-integrated with separate bathroom and full kitchen."},
	{ID: "van-villa", ModelName: "Van Villa", Category: types.CamperSemiIntegrated, Sleeps: 4, LengthMeters: 5.99, Notes: "Knaus Tourer Van — compact yet complete."},
	{ID: "family-freedom", ModelName: "Family Freedom", Category: types.CamperMotorhome, Sleeps: 5, LengthMeters: 7.50, Notes: "Thor Four Winds 22E — alcove motorhome with full bathroom."},
}
