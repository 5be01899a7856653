package utils

import (
	"strings"
)

// MapStateToCode maps US state names to their two-letter codes.
// Input is normalized to lowercase before mapping; two-letter inputs are
// returned uppercased as-is. Legacy orders stored whatever the customer
// typed, so both "Georgia" and "GA" appear in the data.
func MapStateToCode(state string) string {
	stateLower := strings.ToLower(strings.TrimSpace(state))

	if len(stateLower) == 2 {
		return strings.ToUpper(stateLower)
	}

	stateMap := map[string]string{
		"alabama":              "AL",
		"alaska":               "AK",
		"arizona":              "AZ",
		"arkansas":             "AR",
		"california":           "CA",
		"colorado":             "CO",
		"connecticut":          "CT",
		"delaware":             "DE",
		"district of columbia": "DC",
		"florida":              "FL",
		"georgia":              "GA",
		"hawaii":               "HI",
		"idaho":                "ID",
		"illinois":             "IL",
		"indiana":              "IN",
		"iowa":                 "IA",
		"kansas":               "KS",
		"kentucky":             "KY",
		"louisiana":            "LA",
		"maine":                "ME",
		"maryland":             "MD",
		"massachusetts":        "MA",
		"michigan":             "MI",
		"minnesota":            "MN",
		"mississippi":          "MS",
		"missouri":             "MO",
		"montana":              "MT",
		"nebraska":             "NE",
		"nevada":               "NV",
		"new hampshire":        "NH",
		"new jersey":           "NJ",
		"new mexico":           "NM",
		"new york":             "NY",
		"north carolina":       "NC",
		"north dakota":         "ND",
		"ohio":                 "OH",
		"oklahoma":             "OK",
		"oregon":               "OR",
		"pennsylvania":         "PA",
		"rhode island":         "RI",
		"south carolina":       "SC",
		"south dakota":         "SD",
		"tennessee":            "TN",
		"texas":                "TX",
		"utah":                 "UT",
		"vermont":              "VT",
		"virginia":             "VA",
		"washington":           "WA",
		"west virginia":        "WV",
		"wisconsin":            "WI",
		"wyoming":              "WY",
	}

	if code, exists := stateMap[stateLower]; exists {
		return code
	}

	// If not found, return uppercase version of input
	return strings.ToUpper(stateLower)
}

// MapStatusToLabel maps order status codes to their readable labels
// Input is normalized to lowercase before mapping
func MapStatusToLabel(status string) string {
	statusLower := strings.ToLower(strings.TrimSpace(status))

	statusMap := map[string]string{
		"pending":          "Pending",
		"paid":             "Paid",
		"processing":       "Processing",
		"shipped":          "Shipped",
		"ready_for_pickup": "Ready for pickup",
		"completed":        "Completed",
		"cancelled":        "Cancelled",
	}

	if label, exists := statusMap[statusLower]; exists {
		return label
	}

	// If not found, return titlecased version of input
	if statusLower == "" {
		return ""
	}
	return strings.ToUpper(statusLower[:1]) + statusLower[1:]
}

// MapCarrierToLabel maps carrier codes to their display names, used when the
// rate shop response omits a carrier name
// Input is normalized to lowercase before mapping
func MapCarrierToLabel(carrierCode string) string {
	carrierLower := strings.ToLower(strings.TrimSpace(carrierCode))

	carrierMap := map[string]string{
		"usps":         "USPS",
		"ups":          "UPS",
		"fedex":        "FedEx",
		"dhl_express":  "DHL Express",
		"ontrac":       "OnTrac",
		"lasership":    "LaserShip",
		"globalpost":   "GlobalPost",
		"seko":         "SEKO",
		"stamps_com":   "Stamps.com",
		"se_logistics": "SE Logistics",
	}

	if label, exists := carrierMap[carrierLower]; exists {
		return label
	}

	// If not found, return uppercase version of input
	return strings.ToUpper(carrierLower)
}
