package detect

import (
	"math"

	"internguard-engine/internal/rules"
)

// keywordSaturation is the raw weight sum that maps to a 100 keyword score,
// roughly the sum of several high-weight hits.
const keywordSaturation = 70

// AnalyzeKeywords scans text against the keyword dictionary. Each matched
// entry contributes its weight once regardless of how often it occurs; the
// occurrence count is reported on the hit for display.
func AnalyzeKeywords(rs *rules.Set, text string) KeywordResult {
	var raw int
	var hits []KeywordHit

	for _, kw := range rs.Keywords {
		matches := kw.Pattern.FindAllStringIndex(text, -1)
		if len(matches) == 0 {
			continue
		}
		raw += kw.Weight
		hits = append(hits, KeywordHit{
			Label:    kw.Label,
			Severity: kw.Severity,
			Weight:   kw.Weight,
			Count:    len(matches),
		})
	}

	score := int(math.Round(float64(raw) / keywordSaturation * 100))
	if score > 100 {
		score = 100
	}
	return KeywordResult{Score: score, Hits: hits}
}
