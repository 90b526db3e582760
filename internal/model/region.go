package model

// Region identifies a geographic station group served by the directory
type Region string

const (
	// RegionAll covers both supported regions combined
	RegionAll Region = "all"

	// RegionAmerican covers stations from the Americas
	RegionAmerican Region = "american"

	// RegionAfrican covers stations from Africa
	RegionAfrican Region = "african"
)

// americanCountries lists the countries aggregated into the American region
var americanCountries = []string{
	"United States",
	"Canada",
	"Mexico",
	"Brazil",
	"Argentina",
	"Chile",
}

// africanCountries lists the countries aggregated into the African region
var africanCountries = []string{
	"South Africa",
	"Nigeria",
	"Kenya",
	"Ghana",
	"Egypt",
	"Morocco",
	"Ethiopia",
	"Tanzania",
	"Uganda",
	"Zimbabwe",
}

// String returns the string representation of Region
func (r Region) String() string {
	return string(r)
}

// ParseRegion maps free-form input to a Region, defaulting to RegionAll
func ParseRegion(value string) Region {
	switch Region(value) {
	case RegionAmerican:
		return RegionAmerican
	case RegionAfrican:
		return RegionAfrican
	default:
		return RegionAll
	}
}

// Countries returns a copy of the country list aggregated for the region
func (r Region) Countries() []string {
	switch r {
	case RegionAmerican:
		return append([]string(nil), americanCountries...)
	case RegionAfrican:
		return append([]string(nil), africanCountries...)
	default:
		combined := make([]string, 0, len(americanCountries)+len(africanCountries))
		combined = append(combined, americanCountries...)
		combined = append(combined, africanCountries...)
		return combined
	}
}
