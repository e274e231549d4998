package reputation

import "time"

const surgeWindow = 7 * 24 * time.Hour

// Surge compares the trailing 7-day report count against the 7 days before
// that.
type Surge struct {
	Recent  int  `json:"recent"`
	Prior   int  `json:"prior"`
	IsSurge bool `json:"isSurge"`
}

// DetectSurge partitions reports into the trailing window and the one before
// it, relative to now. A surge means recent activity with no prior history
// (3+ reports out of nowhere) or at least a doubling over the prior window.
// Undated or unparsable reports fall in neither window.
func DetectSurge(reports []Report, now time.Time) Surge {
	var s Surge
	for _, r := range reports {
		d, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			continue
		}
		diff := now.Sub(d)
		switch {
		case diff <= surgeWindow:
			s.Recent++
		case diff <= 2*surgeWindow:
			s.Prior++
		}
	}
	if s.Recent > 0 {
		if s.Prior == 0 {
			s.IsSurge = s.Recent >= 3
		} else {
			s.IsSurge = s.Recent >= 2*s.Prior
		}
	}
	return s
}
