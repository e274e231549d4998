package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"internguard-engine/internal/chat"
	"internguard-engine/internal/detect"
	"internguard-engine/internal/events"
	"internguard-engine/internal/reputation"
	"internguard-engine/internal/rules"
	"internguard-engine/internal/store"
)

func newTestMux(t *testing.T) (*http.ServeMux, *events.Hub) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := store.Migrate(db.Pool); err != nil {
		t.Fatal(err)
	}

	hub := events.NewHub()
	mux := NewMux(Deps{
		DB:          db.Pool,
		Hub:         hub,
		Detect:      detect.NewEngine(rules.Default()),
		Reputation:  reputation.NewEngine(store.NewReportStore(db)),
		Bot:         chat.NewBot(),
		RecentLimit: 6,
	})
	return mux, hub
}

func do(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)
	rec := do(t, mux, http.MethodPost, "/analyze", `{
		"jobText": "URGENT! Pay registration fee and send your Aadhaar. Guaranteed placement, easy money!",
		"companyUrl": "http://bit.ly/job123",
		"recruiterEmail": "hr@gmail.com",
		"companyName": "Top MNC Group"
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp AnalyzeResponse
	decode(t, rec, &resp)
	if resp.Result.Composite < 30 {
		t.Fatalf("composite = %d, want flagged posting", resp.Result.Composite)
	}
	if len(resp.ScamDBHits) != 1 || resp.ScamDBHits[0].Type != "company" {
		t.Fatalf("scamDbHits = %+v", resp.ScamDBHits)
	}
	if resp.Website != nil || resp.URLScan != nil || resp.DomainAge != nil {
		t.Fatalf("live checks should be disabled: %+v", resp)
	}
}

func TestAnalyzeRequiresJobText(t *testing.T) {
	mux, _ := newTestMux(t)
	rec := do(t, mux, http.MethodPost, "/analyze", `{"companyName": "X"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var e APIError
	decode(t, rec, &e)
	if e.Error.Code != "missing_job_text" {
		t.Fatalf("code = %q", e.Error.Code)
	}
}

func TestAnalyzeMethodNotAllowed(t *testing.T) {
	mux, _ := newTestMux(t)
	rec := do(t, mux, http.MethodGet, "/analyze", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAnalyzeRecentLogsRuns(t *testing.T) {
	mux, _ := newTestMux(t)
	do(t, mux, http.MethodPost, "/analyze", `{"jobText": "ordinary posting text for an internship role"}`)

	rec := do(t, mux, http.MethodGet, "/analyze/recent", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Analyses []store.Analysis `json:"analyses"`
	}
	decode(t, rec, &resp)
	if len(resp.Analyses) != 1 {
		t.Fatalf("analyses = %+v, want 1 logged run", resp.Analyses)
	}
	if resp.Analyses[0].Verdict == "" {
		t.Fatalf("verdict missing: %+v", resp.Analyses[0])
	}
}

func TestReputationSearchEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/reputation/search?q=a", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("short query status = %d", rec.Code)
	}
	var e APIError
	decode(t, rec, &e)
	if e.Error.Code != "query_too_short" {
		t.Fatalf("code = %q", e.Error.Code)
	}

	rec = do(t, mux, http.MethodGet, "/reputation/search?q=techvision-internships.com", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var res reputation.SearchResult
	decode(t, rec, &res)
	if !res.Found || res.MatchType != reputation.MatchDomain {
		t.Fatalf("result = %+v, want seeded domain match", res)
	}
}

func TestReputationReportAndFeed(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/reputation/report",
		`{"companyName": "Moonlight Gigs Agency", "upiId": "moonlight@upi", "flags": ["upfront_payment"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, mux, http.MethodPost, "/reputation/report", `{"description": "no identifiers"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("identifier-less report status = %d", rec.Code)
	}

	rec = do(t, mux, http.MethodGet, "/reputation/recent", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("feed status = %d", rec.Code)
	}
	var feed struct {
		Reports    []reputation.FeedEntry `json:"reports"`
		FlagLabels map[string]string      `json:"flagLabels"`
	}
	decode(t, rec, &feed)
	if len(feed.Reports) == 0 || !feed.Reports[0].IsUser {
		t.Fatalf("feed = %+v, want user submission first", feed.Reports)
	}
	if feed.Reports[0].Name != "Moonlight Gigs Agency" {
		t.Fatalf("feed[0] = %+v", feed.Reports[0])
	}
	if feed.FlagLabels["upfront_payment"] == "" {
		t.Fatal("flag labels missing")
	}
}

func TestChatEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/chat", `{"message": "is a registration fee normal?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Reply string `json:"reply"`
	}
	decode(t, rec, &resp)
	if resp.Reply == "" {
		t.Fatal("empty reply")
	}

	rec = do(t, mux, http.MethodPost, "/chat", `{"message": "  "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank message status = %d", rec.Code)
	}
}

func TestValidateEndpoints(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/validate/cin?value=L17110MH1973PLC019786", "")
	var cin detect.CINResult
	decode(t, rec, &cin)
	if !cin.Valid || cin.Type != "Listed" {
		t.Fatalf("cin = %+v", cin)
	}

	rec = do(t, mux, http.MethodGet, "/validate/gst?value=27AAPFU0939F1ZV", "")
	var gst detect.GSTResult
	decode(t, rec, &gst)
	if !gst.Valid || gst.StateCode != 27 {
		t.Fatalf("gst = %+v", gst)
	}

	rec = do(t, mux, http.MethodGet, "/validate/cin", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing value status = %d", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)
	rec := do(t, mux, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]any
	decode(t, rec, &resp)
	if resp["ok"] != true {
		t.Fatalf("body = %v", resp)
	}
}

func TestAnalyzePublishesEvent(t *testing.T) {
	mux, hub := newTestMux(t)
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	do(t, mux, http.MethodPost, "/analyze", `{"jobText": "ordinary posting text for an internship role"}`)

	select {
	case raw := <-ch:
		var evt events.Event
		if err := json.Unmarshal([]byte(raw), &evt); err != nil {
			t.Fatal(err)
		}
		if evt.Type != events.TypeAnalysisDone {
			t.Fatalf("event type = %q", evt.Type)
		}
	default:
		t.Fatal("no event published")
	}
}

func TestMiddlewareChain(t *testing.T) {
	mux, _ := newTestMux(t)
	h := Chain(mux, RequestID, Recover, Cors)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") != "fixed-id" {
		t.Fatalf("request id header = %q", rec.Header().Get("X-Request-ID"))
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("cors header = %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}

	// Preflight short-circuits.
	req = httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != 204 {
		t.Fatalf("preflight status = %d", rec.Code)
	}
}
