package intel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Verdict is one urlscan.io scan result for the domain.
type Verdict struct {
	Malicious bool     `json:"malicious"`
	Score     int      `json:"score"`
	Tags      []string `json:"tags"`
	Date      string   `json:"date"`
}

// URLScanResult aggregates the public scan history of one hostname.
type URLScanResult struct {
	Checked   bool      `json:"checked"`
	Malicious bool      `json:"malicious"`
	Scans     int       `json:"scans"`
	Verdicts  []Verdict `json:"verdicts"`
	Error     string    `json:"error,omitempty"`
}

type URLScanClient struct {
	hc     *http.Client
	apiKey string
	base   string
}

func NewURLScanClient(timeout time.Duration, apiKey string) *URLScanClient {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &URLScanClient{
		hc:     &http.Client{Timeout: timeout},
		apiKey: apiKey,
		base:   "https://urlscan.io",
	}
}

// urlscan.io search response, trimmed to what we read.
type urlscanSearch struct {
	Total   int `json:"total"`
	Results []struct {
		Task struct {
			Time string `json:"time"`
		} `json:"task"`
		Verdicts struct {
			Overall *struct {
				Malicious bool     `json:"malicious"`
				Score     int      `json:"score"`
				Tags      []string `json:"tags"`
			} `json:"overall"`
		} `json:"verdicts"`
	} `json:"results"`
}

// Search queries the public search API for recent scans of the hostname.
// Failures land in Result.Error; a missing scan history says nothing bad
// about a domain.
func (c *URLScanClient) Search(ctx context.Context, hostname string) *URLScanResult {
	if hostname == "" {
		return nil
	}
	result := &URLScanResult{Verdicts: []Verdict{}}

	q := url.Values{}
	q.Set("q", "domain:"+hostname)
	q.Set("size", "5")
	reqURL := fmt.Sprintf("%s/api/v1/search/?%s", c.base, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("API-Key", c.apiKey)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		result.Error = fmt.Sprintf("urlscan HTTP %d", res.StatusCode)
		return result
	}

	var data urlscanSearch
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		result.Error = fmt.Sprintf("urlscan decode: %v", err)
		return result
	}

	result.Checked = true
	result.Scans = data.Total
	for _, r := range data.Results {
		v := r.Verdicts.Overall
		if v == nil {
			continue
		}
		date := "unknown"
		if len(r.Task.Time) >= 10 {
			date = r.Task.Time[:10]
		}
		tags := v.Tags
		if tags == nil {
			tags = []string{}
		}
		result.Verdicts = append(result.Verdicts, Verdict{
			Malicious: v.Malicious,
			Score:     v.Score,
			Tags:      tags,
			Date:      date,
		})
		if v.Malicious {
			result.Malicious = true
		}
	}
	return result
}
