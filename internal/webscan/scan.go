// Package webscan fetches a posting's website and inspects the live page for
// the content patterns scam sites share: fee demands, WhatsApp-only intake,
// sensitive-data collection, placement guarantees.
package webscan

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"internguard-engine/internal/rules"
)

// Content flag weights, applied to the page body.
const (
	registrationFeePoints = 25
	whatsappApplyPoints   = 15
	exclamationPoints     = 10
	earningsClaimPoints   = 20
	sensitiveDataPoints   = 30
	guaranteePoints       = 20

	pageExclamationLimit = 30
	maxOutboundLinks     = 15
)

// Info is everything the scanner learned about one page.
type Info struct {
	URL               string            `json:"url"`
	Fetched           bool              `json:"fetched"`
	Error             string            `json:"error,omitempty"`
	Title             string            `json:"title,omitempty"`
	Description       string            `json:"description,omitempty"`
	Keywords          string            `json:"keywords,omitempty"`
	Links             []string          `json:"links"`
	SuspiciousScripts []string          `json:"suspiciousScripts"`
	HiddenForms       bool              `json:"hiddenForms"`
	HasSSL            bool              `json:"hasSSL"`
	ServerHeaders     map[string]string `json:"serverHeaders"`
	ContentFlags      []string          `json:"contentFlags"`
	ContentScore      int               `json:"contentScore"`
}

type Config struct {
	Timeout          time.Duration
	PerHostPerMinute int
	MaxBodyKB        int
	UserAgent        string
}

type Scanner struct {
	cfg     Config
	rules   *rules.Set
	hc      *http.Client
	limiter *HostLimiter
}

func New(cfg Config, rs *rules.Set) *Scanner {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.PerHostPerMinute <= 0 {
		cfg.PerHostPerMinute = 6
	}
	if cfg.MaxBodyKB <= 0 {
		cfg.MaxBodyKB = 512
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "InternGuardEngine/1.0"
	}
	return &Scanner{
		cfg:     cfg,
		rules:   rs,
		hc:      &http.Client{Timeout: cfg.Timeout},
		limiter: NewHostLimiter(cfg.PerHostPerMinute, 2),
	}
}

var earningsClaimRe = regexp.MustCompile(`(?i)earn.*\d{4,}.*month|₹.*\d{5,}`)

// Scan fetches the page and runs the content checks. Network failures come
// back inside Info.Error, not as a Go error; a site being down is a finding,
// not a fault.
func (s *Scanner) Scan(ctx context.Context, rawURL string) *Info {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil
	}
	full := rawURL
	if !strings.HasPrefix(full, "http") {
		full = "https://" + full
	}

	info := &Info{
		URL:               full,
		HasSSL:            strings.HasPrefix(full, "https"),
		Links:             []string{},
		SuspiciousScripts: []string{},
		ContentFlags:      []string{},
		ServerHeaders:     map[string]string{},
	}

	if err := s.limiter.WaitURL(ctx, full); err != nil {
		info.Error = err.Error()
		return info
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)

	res, err := s.hc.Do(req)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	defer res.Body.Close()

	for _, h := range []string{"Server", "X-Powered-By", "Content-Type"} {
		if v := res.Header.Get(h); v != "" {
			info.ServerHeaders[h] = v
		}
	}

	if res.StatusCode >= 400 {
		info.Error = fmt.Sprintf("HTTP %d", res.StatusCode)
		return info
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, int64(s.cfg.MaxBodyKB)*1024))
	if err != nil || len(body) == 0 {
		info.Error = "empty response"
		return info
	}
	info.Fetched = true

	html := string(body)
	s.inspectHTML(info, html)
	return info
}

func (s *Scanner) inspectHTML(info *Info, html string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		info.Title = strings.TrimSpace(doc.Find("title").First().Text())
		if v, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
			info.Description = v
		}
		if v, ok := doc.Find(`meta[name="keywords"]`).Attr("content"); ok {
			info.Keywords = v
		}

		doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			href, _ := a.Attr("href")
			if strings.HasPrefix(href, "http") {
				info.Links = append(info.Links, href)
			}
			return len(info.Links) < maxOutboundLinks
		})

		hiddenInputs := doc.Find(`input[type="hidden"]`).Length()
		iframes := doc.Find("iframe").Length()
		if hiddenInputs > 5 || iframes > 2 {
			info.HiddenForms = true
		}

		doc.Find("script[src]").Each(func(_ int, sc *goquery.Selection) {
			src, _ := sc.Attr("src")
			if src == "" {
				return
			}
			for _, sh := range s.rules.URLShorteners {
				if strings.Contains(src, sh) {
					info.SuspiciousScripts = append(info.SuspiciousScripts, src)
					return
				}
			}
			for _, tld := range s.rules.SuspiciousTLDs {
				if strings.Contains(src, tld) {
					info.SuspiciousScripts = append(info.SuspiciousScripts, src)
					return
				}
			}
		})
	}

	lower := strings.ToLower(html)
	addFlag := func(flag string, pts int) {
		info.ContentFlags = append(info.ContentFlags, flag)
		info.ContentScore += pts
	}

	if strings.Contains(lower, "registration fee") || strings.Contains(lower, "registrationfee") {
		addFlag("Page mentions registration fee", registrationFeePoints)
	}
	if strings.Contains(lower, "whatsapp") && strings.Contains(lower, "apply") {
		addFlag("Apply via WhatsApp mentioned", whatsappApplyPoints)
	}
	if strings.Count(lower, "!") > pageExclamationLimit {
		addFlag("Excessive exclamation marks on page", exclamationPoints)
	}
	if earningsClaimRe.MatchString(html) {
		addFlag("Unrealistic earnings claim on page", earningsClaimPoints)
	}
	if strings.Contains(lower, "aadhaar") || strings.Contains(lower, "pan card") || strings.Contains(lower, "bank account") {
		addFlag("Page requests sensitive personal data", sensitiveDataPoints)
	}
	if strings.Contains(lower, "guaranteed placement") || strings.Contains(lower, "100% placement") {
		addFlag(`"Guaranteed placement" claim on page`, guaranteePoints)
	}
}
