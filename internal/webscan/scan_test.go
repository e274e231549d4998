package webscan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"internguard-engine/internal/rules"
)

const scamPage = `<!doctype html>
<html><head>
<title>Instant Internship Placement</title>
<meta name="description" content="Guaranteed internships for everyone">
<meta name="keywords" content="internship,jobs,placement">
<script src="https://bit.ly/tracker.js"></script>
</head><body>
<h1>Pay the registration fee and apply on WhatsApp today</h1>
<p>Earn 50000 per month from home. Guaranteed placement for all!</p>
<p>Submit your Aadhaar and bank account details below.</p>
<a href="https://example.com/one">one</a>
<a href="/relative">two</a>
<form>
<input type="hidden" name="a"><input type="hidden" name="b"><input type="hidden" name="c">
<input type="hidden" name="d"><input type="hidden" name="e"><input type="hidden" name="f">
</form>
</body></html>`

func newTestScanner() *Scanner {
	return New(Config{Timeout: 5 * time.Second, PerHostPerMinute: 600}, rules.Default())
}

func TestScanEmptyURL(t *testing.T) {
	if got := newTestScanner().Scan(context.Background(), "  "); got != nil {
		t.Fatalf("got %+v, want nil", got)
	}
}

func TestScanScamPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", "nginx")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(scamPage))
	}))
	defer srv.Close()

	info := newTestScanner().Scan(context.Background(), srv.URL)
	if !info.Fetched || info.Error != "" {
		t.Fatalf("fetch failed: %+v", info)
	}
	if info.Title != "Instant Internship Placement" {
		t.Fatalf("title = %q", info.Title)
	}
	if info.Description == "" || info.Keywords == "" {
		t.Fatalf("meta not captured: %+v", info)
	}
	if len(info.Links) != 1 || info.Links[0] != "https://example.com/one" {
		t.Fatalf("links = %v, want only absolute links", info.Links)
	}
	if !info.HiddenForms {
		t.Fatal("six hidden inputs should flag hidden forms")
	}
	if len(info.SuspiciousScripts) != 1 || !strings.Contains(info.SuspiciousScripts[0], "bit.ly") {
		t.Fatalf("scripts = %v", info.SuspiciousScripts)
	}
	if info.ServerHeaders["Server"] != "nginx" {
		t.Fatalf("headers = %v", info.ServerHeaders)
	}

	wantFlags := []string{
		"Page mentions registration fee",
		"Apply via WhatsApp mentioned",
		"Unrealistic earnings claim on page",
		"Page requests sensitive personal data",
		`"Guaranteed placement" claim on page`,
	}
	for _, f := range wantFlags {
		found := false
		for _, got := range info.ContentFlags {
			if got == f {
				found = true
			}
		}
		if !found {
			t.Errorf("content flags %v missing %q", info.ContentFlags, f)
		}
	}
	// 25 + 15 + 20 + 30 + 20
	if info.ContentScore != 110 {
		t.Fatalf("content score = %d, want 110", info.ContentScore)
	}
}

func TestScanCleanPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Engineering Careers</title></head>` +
			`<body><p>We hire interns every summer through campus drives.</p></body></html>`))
	}))
	defer srv.Close()

	info := newTestScanner().Scan(context.Background(), srv.URL)
	if !info.Fetched {
		t.Fatalf("fetch failed: %+v", info)
	}
	if info.ContentScore != 0 || len(info.ContentFlags) != 0 {
		t.Fatalf("clean page scored %d with flags %v", info.ContentScore, info.ContentFlags)
	}
	if info.HiddenForms {
		t.Fatal("clean page flagged hidden forms")
	}
}

func TestScanHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	info := newTestScanner().Scan(context.Background(), srv.URL)
	if info.Fetched {
		t.Fatal("404 page marked fetched")
	}
	if info.Error != "HTTP 404" {
		t.Fatalf("error = %q, want HTTP 404", info.Error)
	}
}

func TestScanUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // nothing listening anymore

	info := newTestScanner().Scan(context.Background(), url)
	if info == nil || info.Fetched {
		t.Fatalf("got %+v, want unfetched info", info)
	}
	if info.Error == "" {
		t.Fatal("network failure must land in Info.Error")
	}
}

func TestScanAddsScheme(t *testing.T) {
	s := newTestScanner()
	got := s.Scan(context.Background(), "localhost:1") // unreachable, but scheme gets prefixed
	if !strings.HasPrefix(got.URL, "https://") {
		t.Fatalf("url = %q, want https:// prefix", got.URL)
	}
	if !got.HasSSL {
		t.Fatal("https-prefixed URL should report SSL")
	}
}
