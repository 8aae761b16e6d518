// Package countries resolves ISO 3166-1 alpha-2 country codes to English
// display names for denormalized postal addresses.
package countries

import "strings"

var names = map[string]string{
	"AD": "Andorra",
	"AE": "United Arab Emirates",
	"AR": "Argentina",
	"AT": "Austria",
	"AU": "Australia",
	"BA": "Bosnia and Herzegovina",
	"BE": "Belgium",
	"BG": "Bulgaria",
	"BR": "Brazil",
	"CA": "Canada",
	"CH": "Switzerland",
	"CL": "Chile",
	"CN": "China",
	"CO": "Colombia",
	"CY": "Cyprus",
	"CZ": "Czechia",
	"DE": "Germany",
	"DK": "Denmark",
	"EE": "Estonia",
	"EG": "Egypt",
	"ES": "Spain",
	"FI": "Finland",
	"FR": "France",
	"GB": "United Kingdom",
	"GR": "Greece",
	"HR": "Croatia",
	"HU": "Hungary",
	"ID": "Indonesia",
	"IE": "Ireland",
	"IL": "Israel",
	"IN": "India",
	"IS": "Iceland",
	"IT": "Italy",
	"JP": "Japan",
	"KR": "South Korea",
	"LI": "Liechtenstein",
	"LT": "Lithuania",
	"LU": "Luxembourg",
	"LV": "Latvia",
	"MC": "Monaco",
	"MT": "Malta",
	"MX": "Mexico",
	"NL": "Netherlands",
	"NO": "Norway",
	"NZ": "New Zealand",
	"PL": "Poland",
	"PT": "Portugal",
	"RO": "Romania",
	"RS": "Serbia",
	"SE": "Sweden",
	"SG": "Singapore",
	"SI": "Slovenia",
	"SK": "Slovakia",
	"SM": "San Marino",
	"TR": "Turkey",
	"UA": "Ukraine",
	"US": "United States",
	"ZA": "South Africa",
}

// Name returns the English name for an ISO alpha-2 code. Unknown or empty
// codes come back unchanged so a denormalized address still shows something
// meaningful rather than dropping the field.
func Name(code string) string {
	if code == "" {
		return ""
	}
	if n, ok := names[strings.ToUpper(code)]; ok {
		return n
	}
	return code
}

// Known reports whether the code is in the lookup table.
func Known(code string) bool {
	_, ok := names[strings.ToUpper(code)]
	return ok
}
