// Package catalog holds the static city reference data and the search
// index used to add cities to the world clock. The catalog is fixed and
// small; all lookups are pure functions over it.
package catalog

// City is an immutable reference entry mapping a display name to an IANA
// timezone identifier. Latitude is approximate and informational only;
// synthesized cities (see Synthesize) have no latitude.
type City struct {
	Name     string  `json:"name"`
	Country  string  `json:"country"`
	Zone     string  `json:"timezone_id"`
	Latitude float64 `json:"latitude,omitempty"`
}

// cities is the curated catalog, in stable order. Ordering matters: search
// ties are broken by position in this slice.
var cities = []City{
	{Name: "San Francisco", Country: "United States", Zone: "America/Los_Angeles", Latitude: 37.77},
	{Name: "Los Angeles", Country: "United States", Zone: "America/Los_Angeles", Latitude: 34.05},
	{Name: "New York", Country: "United States", Zone: "America/New_York", Latitude: 40.71},
	{Name: "Chicago", Country: "United States", Zone: "America/Chicago", Latitude: 41.88},
	{Name: "Denver", Country: "United States", Zone: "America/Denver", Latitude: 39.74},
	{Name: "Houston", Country: "United States", Zone: "America/Chicago", Latitude: 29.76},
	{Name: "Phoenix", Country: "United States", Zone: "America/Phoenix", Latitude: 33.45},
	{Name: "Seattle", Country: "United States", Zone: "America/Los_Angeles", Latitude: 47.61},
	{Name: "Miami", Country: "United States", Zone: "America/New_York", Latitude: 25.76},
	{Name: "Boston", Country: "United States", Zone: "America/New_York", Latitude: 42.36},
	{Name: "Atlanta", Country: "United States", Zone: "America/New_York", Latitude: 33.75},
	{Name: "Detroit", Country: "United States", Zone: "America/Detroit", Latitude: 42.33},
	{Name: "Honolulu", Country: "United States", Zone: "Pacific/Honolulu", Latitude: 21.31},
	{Name: "Anchorage", Country: "United States", Zone: "America/Anchorage", Latitude: 61.22},
	{Name: "Toronto", Country: "Canada", Zone: "America/Toronto", Latitude: 43.65},
	{Name: "Vancouver", Country: "Canada", Zone: "America/Vancouver", Latitude: 49.28},
	{Name: "Montreal", Country: "Canada", Zone: "America/Montreal", Latitude: 45.50},
	{Name: "Mexico City", Country: "Mexico", Zone: "America/Mexico_City", Latitude: 19.43},
	{Name: "São Paulo", Country: "Brazil", Zone: "America/Sao_Paulo", Latitude: -23.55},
	{Name: "Buenos Aires", Country: "Argentina", Zone: "America/Argentina/Buenos_Aires", Latitude: -34.60},
	{Name: "Lima", Country: "Peru", Zone: "America/Lima", Latitude: -12.05},
	{Name: "Bogotá", Country: "Colombia", Zone: "America/Bogota", Latitude: 4.71},
	{Name: "Santiago", Country: "Chile", Zone: "America/Santiago", Latitude: -33.45},
	{Name: "London", Country: "United Kingdom", Zone: "Europe/London", Latitude: 51.51},
	{Name: "Paris", Country: "France", Zone: "Europe/Paris", Latitude: 48.86},
	{Name: "Berlin", Country: "Germany", Zone: "Europe/Berlin", Latitude: 52.52},
	{Name: "Madrid", Country: "Spain", Zone: "Europe/Madrid", Latitude: 40.42},
	{Name: "Rome", Country: "Italy", Zone: "Europe/Rome", Latitude: 41.90},
	{Name: "Amsterdam", Country: "Netherlands", Zone: "Europe/Amsterdam", Latitude: 52.37},
	{Name: "Brussels", Country: "Belgium", Zone: "Europe/Brussels", Latitude: 50.85},
	{Name: "Vienna", Country: "Austria", Zone: "Europe/Vienna", Latitude: 48.21},
	{Name: "Zurich", Country: "Switzerland", Zone: "Europe/Zurich", Latitude: 47.37},
	{Name: "Stockholm", Country: "Sweden", Zone: "Europe/Stockholm", Latitude: 59.33},
	{Name: "Oslo", Country: "Norway", Zone: "Europe/Oslo", Latitude: 59.91},
	{Name: "Copenhagen", Country: "Denmark", Zone: "Europe/Copenhagen", Latitude: 55.68},
	{Name: "Helsinki", Country: "Finland", Zone: "Europe/Helsinki", Latitude: 60.17},
	{Name: "Warsaw", Country: "Poland", Zone: "Europe/Warsaw", Latitude: 52.23},
	{Name: "Prague", Country: "Czechia", Zone: "Europe/Prague", Latitude: 50.08},
	{Name: "Budapest", Country: "Hungary", Zone: "Europe/Budapest", Latitude: 47.50},
	{Name: "Bucharest", Country: "Romania", Zone: "Europe/Bucharest", Latitude: 44.43},
	{Name: "Athens", Country: "Greece", Zone: "Europe/Athens", Latitude: 37.98},
	{Name: "Lisbon", Country: "Portugal", Zone: "Europe/Lisbon", Latitude: 38.72},
	{Name: "Dublin", Country: "Ireland", Zone: "Europe/Dublin", Latitude: 53.35},
	{Name: "Edinburgh", Country: "United Kingdom", Zone: "Europe/London", Latitude: 55.95},
	{Name: "Moscow", Country: "Russia", Zone: "Europe/Moscow", Latitude: 55.76},
	{Name: "Istanbul", Country: "Türkiye", Zone: "Europe/Istanbul", Latitude: 41.01},
	{Name: "Kyiv", Country: "Ukraine", Zone: "Europe/Kyiv", Latitude: 50.45},
	{Name: "Reykjavik", Country: "Iceland", Zone: "Atlantic/Reykjavik", Latitude: 64.15},
	{Name: "Cairo", Country: "Egypt", Zone: "Africa/Cairo", Latitude: 30.04},
	{Name: "Lagos", Country: "Nigeria", Zone: "Africa/Lagos", Latitude: 6.52},
	{Name: "Nairobi", Country: "Kenya", Zone: "Africa/Nairobi", Latitude: -1.29},
	{Name: "Johannesburg", Country: "South Africa", Zone: "Africa/Johannesburg", Latitude: -26.20},
	{Name: "Casablanca", Country: "Morocco", Zone: "Africa/Casablanca", Latitude: 33.57},
	{Name: "Dubai", Country: "United Arab Emirates", Zone: "Asia/Dubai", Latitude: 25.20},
	{Name: "Riyadh", Country: "Saudi Arabia", Zone: "Asia/Riyadh", Latitude: 24.71},
	{Name: "Doha", Country: "Qatar", Zone: "Asia/Qatar", Latitude: 25.29},
	{Name: "Tehran", Country: "Iran", Zone: "Asia/Tehran", Latitude: 35.69},
	{Name: "Tel Aviv", Country: "Israel", Zone: "Asia/Jerusalem", Latitude: 32.09},
	{Name: "Mumbai", Country: "India", Zone: "Asia/Kolkata", Latitude: 19.08},
	{Name: "Delhi", Country: "India", Zone: "Asia/Kolkata", Latitude: 28.70},
	{Name: "Bangalore", Country: "India", Zone: "Asia/Kolkata", Latitude: 12.97},
	{Name: "Kolkata", Country: "India", Zone: "Asia/Kolkata", Latitude: 22.57},
	{Name: "Karachi", Country: "Pakistan", Zone: "Asia/Karachi", Latitude: 24.86},
	{Name: "Dhaka", Country: "Bangladesh", Zone: "Asia/Dhaka", Latitude: 23.81},
	{Name: "Bangkok", Country: "Thailand", Zone: "Asia/Bangkok", Latitude: 13.76},
	{Name: "Jakarta", Country: "Indonesia", Zone: "Asia/Jakarta", Latitude: -6.21},
	{Name: "Singapore", Country: "Singapore", Zone: "Asia/Singapore", Latitude: 1.35},
	{Name: "Kuala Lumpur", Country: "Malaysia", Zone: "Asia/Kuala_Lumpur", Latitude: 3.14},
	{Name: "Ho Chi Minh City", Country: "Vietnam", Zone: "Asia/Ho_Chi_Minh", Latitude: 10.82},
	{Name: "Manila", Country: "Philippines", Zone: "Asia/Manila", Latitude: 14.60},
	{Name: "Hong Kong", Country: "Hong Kong", Zone: "Asia/Hong_Kong", Latitude: 22.32},
	{Name: "Taipei", Country: "Taiwan", Zone: "Asia/Taipei", Latitude: 25.03},
	{Name: "Shanghai", Country: "China", Zone: "Asia/Shanghai", Latitude: 31.23},
	{Name: "Beijing", Country: "China", Zone: "Asia/Shanghai", Latitude: 39.90},
	{Name: "Seoul", Country: "South Korea", Zone: "Asia/Seoul", Latitude: 37.57},
	{Name: "Tokyo", Country: "Japan", Zone: "Asia/Tokyo", Latitude: 35.68},
	{Name: "Osaka", Country: "Japan", Zone: "Asia/Tokyo", Latitude: 34.69},
	{Name: "Sydney", Country: "Australia", Zone: "Australia/Sydney", Latitude: -33.87},
	{Name: "Melbourne", Country: "Australia", Zone: "Australia/Melbourne", Latitude: -37.81},
	{Name: "Brisbane", Country: "Australia", Zone: "Australia/Brisbane", Latitude: -27.47},
	{Name: "Perth", Country: "Australia", Zone: "Australia/Perth", Latitude: -31.95},
	{Name: "Auckland", Country: "New Zealand", Zone: "Pacific/Auckland", Latitude: -36.85},
	{Name: "Suva", Country: "Fiji", Zone: "Pacific/Fiji", Latitude: -18.14},
}

// All returns the full catalog in stable order.
// The returned slice is a copy; callers may not mutate the catalog.
func All() []City {
	out := make([]City, len(cities))
	copy(out, cities)
	return out
}

// Len reports the catalog size.
func Len() int {
	return len(cities)
}
