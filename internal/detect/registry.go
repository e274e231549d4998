package detect

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Offline format validators for Indian corporate identifiers. These check
// structure only; confirming an identifier against the MCA or GST registries
// is up to the caller.

var (
	cinRe        = regexp.MustCompile(`^[LU]\d{5}[A-Z]{2}\d{4}[A-Z]{3}\d{6}$`)
	gstRe        = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[A-Z\d]$`)
	whitespaceRe = regexp.MustCompile(`\s`)
)

type CINResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
	CIN    string `json:"cin,omitempty"`
	Type   string `json:"type,omitempty"` // Listed or Unlisted
	Year   int    `json:"year,omitempty"`
}

// ValidateCIN checks a Company Identification Number against the MCA format:
// L/U + 5-digit NIC code + 2-letter state + 4-digit year + 3-letter type +
// 6-digit serial.
func ValidateCIN(cin string) CINResult {
	if strings.TrimSpace(cin) == "" {
		return CINResult{Valid: false, Reason: "Not provided"}
	}
	cleaned := whitespaceRe.ReplaceAllString(strings.ToUpper(strings.TrimSpace(cin)), "")
	if !cinRe.MatchString(cleaned) {
		return CINResult{Valid: false, Reason: "Invalid CIN format (expected: L/U + 5 digits + state + year + type + 6 digits)"}
	}
	year, _ := strconv.Atoi(cleaned[6:10])
	if year < 1800 || year > time.Now().Year() {
		return CINResult{Valid: false, Reason: "Invalid incorporation year " + strconv.Itoa(year)}
	}
	typ := "Unlisted"
	if cleaned[0] == 'L' {
		typ = "Listed"
	}
	return CINResult{Valid: true, CIN: cleaned, Type: typ, Year: year}
}

type GSTResult struct {
	Valid     bool   `json:"valid"`
	Reason    string `json:"reason,omitempty"`
	StateCode int    `json:"stateCode,omitempty"`
	PAN       string `json:"pan,omitempty"`
}

// ValidateGST checks a 15-character GSTIN: 2 state digits, 10 PAN characters,
// entity digit, literal Z, checksum character.
func ValidateGST(gst string) GSTResult {
	if strings.TrimSpace(gst) == "" {
		return GSTResult{Valid: false, Reason: "Not provided"}
	}
	cleaned := whitespaceRe.ReplaceAllString(strings.ToUpper(strings.TrimSpace(gst)), "")
	if !gstRe.MatchString(cleaned) {
		return GSTResult{Valid: false, Reason: "Invalid GST format (expected: 15-character GSTIN)"}
	}
	stateCode, _ := strconv.Atoi(cleaned[:2])
	if stateCode < 1 || stateCode > 37 {
		return GSTResult{Valid: false, Reason: "Invalid state code (" + strconv.Itoa(stateCode) + ") in GSTIN"}
	}
	return GSTResult{Valid: true, StateCode: stateCode, PAN: cleaned[2:12]}
}
