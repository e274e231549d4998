package detect

import (
	"testing"

	"internguard-engine/internal/rules"
)

func TestAnalyzeURLEmpty(t *testing.T) {
	rs := rules.Default()
	got := AnalyzeURL(rs, "   ")
	if got.Score != 0 || got.Verdict != VerdictNotProvided {
		t.Fatalf("empty URL: got score=%d verdict=%q, want 0/%q", got.Score, got.Verdict, VerdictNotProvided)
	}
	if got.Flags == nil || len(got.Flags) != 0 {
		t.Fatalf("empty URL: flags = %v, want empty non-nil slice", got.Flags)
	}
}

func TestAnalyzeURLUnparsable(t *testing.T) {
	rs := rules.Default()
	got := AnalyzeURL(rs, "not a url")
	if got.Score != 15 {
		t.Fatalf("score = %d, want 15", got.Score)
	}
	if got.Verdict != VerdictSuspicious {
		t.Fatalf("verdict = %q, want %q", got.Verdict, VerdictSuspicious)
	}
	if len(got.Flags) != 1 || got.Flags[0] != "Invalid URL format" {
		t.Fatalf("flags = %v, want [Invalid URL format]", got.Flags)
	}
}

func TestAnalyzeURLCleanCorporate(t *testing.T) {
	rs := rules.Default()
	got := AnalyzeURL(rs, "https://infosys.com/careers")
	if got.Score != 0 {
		t.Fatalf("score = %d (flags %v), want 0", got.Score, got.Flags)
	}
	if got.Verdict != VerdictClean {
		t.Fatalf("verdict = %q, want %q", got.Verdict, VerdictClean)
	}
	if got.Hostname != "infosys.com" {
		t.Fatalf("hostname = %q, want infosys.com", got.Hostname)
	}
}

func TestAnalyzeURLShortener(t *testing.T) {
	rs := rules.Default()
	got := AnalyzeURL(rs, "http://bit.ly/intern123")
	if got.Score != 35 {
		t.Fatalf("score = %d (flags %v), want 35", got.Score, got.Flags)
	}
	if !hasStringFlag(got.Flags, "URL shortener detected") {
		t.Fatalf("flags %v missing shortener flag", got.Flags)
	}
	if !hasStringFlag(got.Flags, "Not using HTTPS") {
		t.Fatalf("flags %v missing HTTPS flag", got.Flags)
	}
	if got.Verdict != VerdictSuspicious {
		t.Fatalf("verdict = %q, want %q", got.Verdict, VerdictSuspicious)
	}
}

func TestAnalyzeURLSignals(t *testing.T) {
	rs := rules.Default()
	cases := []struct {
		url  string
		flag string
	}{
		{"http://192.168.1.50/apply", "IP-based URL (no domain name)"},
		{"https://free-intern-jobs.xyz", "Suspicious top-level domain: xyz"},
		{"https://jobs88812.com", "Numeric-heavy domain name"},
		{"https://get-best-intern-jobs.com", "Excessive hyphens in domain"},
		{"https://apply.now.jobs.portal.example.com", "Excessive subdomains"},
		{"https://x9z7.com", "Random-looking domain name"},
	}
	for _, c := range cases {
		got := AnalyzeURL(rs, c.url)
		if !hasStringFlag(got.Flags, c.flag) {
			t.Errorf("%s: flags %v missing %q", c.url, got.Flags, c.flag)
		}
		if got.Score <= 0 {
			t.Errorf("%s: score = %d, want > 0", c.url, got.Score)
		}
	}
}

func TestAnalyzeURLAssumesHTTPForParsing(t *testing.T) {
	rs := rules.Default()
	got := AnalyzeURL(rs, "infosys.com/careers")
	if got.Hostname != "infosys.com" {
		t.Fatalf("hostname = %q, want infosys.com", got.Hostname)
	}
	// Protocol was assumed, not supplied, so the HTTPS penalty applies.
	if !hasStringFlag(got.Flags, "Not using HTTPS") {
		t.Fatalf("flags %v missing HTTPS flag", got.Flags)
	}
}

func TestURLVerdictBands(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, VerdictClean},
		{1, VerdictLowRisk},
		{24, VerdictLowRisk},
		{25, VerdictSuspicious},
		{49, VerdictSuspicious},
		{50, VerdictDangerous},
		{100, VerdictDangerous},
	}
	for _, c := range cases {
		if got := urlVerdict(c.score); got != c.want {
			t.Errorf("urlVerdict(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}

func hasStringFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}
