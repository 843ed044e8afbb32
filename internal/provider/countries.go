package provider

import "strings"

// adzunaMarkets maps supported country names to Adzuna market codes.
var adzunaMarkets = map[string]string{
	"india":                "in",
	"united states":        "us",
	"united kingdom":       "gb",
	"united arab emirates": "ae",
	"canada":               "ca",
	"australia":            "au",
	"germany":              "de",
	"france":               "fr",
	"netherlands":          "nl",
	"ireland":              "ie",
	"spain":                "es",
	"italy":                "it",
}

// euCountries is the subset Arbeitnow has meaningful coverage for.
var euCountries = map[string]struct{}{
	"germany":     {},
	"france":      {},
	"netherlands": {},
	"ireland":     {},
	"spain":       {},
	"italy":       {},
}

// MarketCode returns the Adzuna market code for a country name.
func MarketCode(country string) (string, bool) {
	code, ok := adzunaMarkets[strings.ToLower(strings.TrimSpace(country))]
	return code, ok
}

// IsEU reports whether the country is in Arbeitnow's coverage set.
func IsEU(country string) bool {
	_, ok := euCountries[strings.ToLower(strings.TrimSpace(country))]
	return ok
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
