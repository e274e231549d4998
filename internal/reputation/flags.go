package reputation

import (
	"math"
	"sort"
)

// AnalyzeFlags reports, for each distinct flag id, the percentage of a
// record's reports carrying it (rounded).
func AnalyzeFlags(reports []Report) map[string]int {
	result := map[string]int{}
	total := len(reports)
	if total == 0 {
		return result
	}
	counts := map[string]int{}
	for _, r := range reports {
		for _, f := range r.Flags {
			counts[f]++
		}
	}
	for flag, count := range counts {
		result[flag] = int(math.Round(float64(count) / float64(total) * 100))
	}
	return result
}

// FlagShare pairs a flag id with its report percentage.
type FlagShare struct {
	Flag    string `json:"flag"`
	Percent int    `json:"percent"`
}

// TopFlags returns the n most frequent flags, highest percentage first, ties
// broken alphabetically for stable output.
func TopFlags(analysis map[string]int, n int) []FlagShare {
	shares := make([]FlagShare, 0, len(analysis))
	for flag, pct := range analysis {
		shares = append(shares, FlagShare{Flag: flag, Percent: pct})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Percent != shares[j].Percent {
			return shares[i].Percent > shares[j].Percent
		}
		return shares[i].Flag < shares[j].Flag
	})
	if len(shares) > n {
		shares = shares[:n]
	}
	return shares
}

// CountClusterPeers counts how many other records carry the same cluster
// tag. Cluster tags are manual campaign markers; a record without one has no
// peers by definition.
func CountClusterPeers(rec *ScamRecord, all []ScamRecord) int {
	if rec.Cluster == "" {
		return 0
	}
	n := 0
	for i := range all {
		if all[i].Cluster == rec.Cluster && all[i].ID != rec.ID {
			n++
		}
	}
	return n
}
