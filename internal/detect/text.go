package detect

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	sensitiveDataRe = regexp.MustCompile(`(?i)\b(aadhar|aadhaar|pan\s*card|passport\s*number|bank\s*account|ifsc|credit\s*card|debit\s*card)\b`)
	salaryClaimRe   = regexp.MustCompile(`(?i)(?:₹|rs\.?\s*|inr\s*)?(\d[\d,]*)\s*(?:k|thousand|lakh|lac)?\s*(?:per|/)\s*(?:month|mo)`)
	lakhQualifierRe = regexp.MustCompile(`(?i)lakh|lac`)
	hasUpperRe      = regexp.MustCompile(`[A-Z]`)

	grammarErrorRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bwe\s+is\b`),
		regexp.MustCompile(`(?i)\bthey\s+is\b`),
		regexp.MustCompile(`(?i)\bcandidate\s+are\b`),
		regexp.MustCompile(`(?i)\bfor\s+more\s+informations?\b`),
		regexp.MustCompile(`(?i)\bplease\s+to\s+contact\b`),
	}
)

// AnalyzeTextPatterns scores structural tells in the posting text itself:
// shouting, pressure punctuation, sensitive-data requests, implausible pay
// and sloppy grammar. It has no verdict of its own; the score only feeds the
// composite.
func AnalyzeTextPatterns(text string) TextResult {
	var flags []string
	score := 0

	words := strings.Fields(text)
	caps := 0
	for _, w := range words {
		if len(w) > 3 && w == strings.ToUpper(w) && hasUpperRe.MatchString(w) {
			caps++
		}
	}
	total := len(words)
	if total == 0 {
		total = 1
	}
	capsRatio := float64(caps) / float64(total)
	if capsRatio > 0.15 {
		flags = append(flags, "Excessive CAPS usage (pressure tactic)")
		score += int(math.Round(capsRatio * 30))
	}

	if n := strings.Count(text, "!"); n > 4 {
		flags = append(flags, "Excessive exclamation marks ("+strconv.Itoa(n)+")")
		add := n * 2
		if add > 15 {
			add = 15
		}
		score += add
	}

	if sensitiveDataRe.MatchString(text) {
		flags = append(flags, "Requests sensitive personal or financial data")
		score += 30
	}

	for _, m := range salaryClaimRe.FindAllStringSubmatch(text, -1) {
		num := parseAmount(m[1])
		lakh := lakhQualifierRe.MatchString(m[0])
		if (lakh && num >= 1) || (!lakh && num >= 80000) {
			flags = append(flags, "Unrealistically high salary for an internship")
			score += 20
		}
	}

	if len(words) < 40 {
		flags = append(flags, "Unusually short job description")
		score += 10
	}

	grammarHits := 0
	for _, re := range grammarErrorRes {
		if re.MatchString(text) {
			grammarHits++
		}
	}
	if grammarHits > 0 {
		flags = append(flags, "Grammar errors detected")
		score += grammarHits * 5
	}

	if score > 100 {
		score = 100
	}
	return TextResult{Score: score, Flags: nonNil(flags)}
}

func parseAmount(s string) int {
	n, _ := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	return n
}
