package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// KeywordRule is a user-supplied scoring rule layered on top of the built-in
// dictionary.
type KeywordRule struct {
	Pattern  string `yaml:"pattern"`
	Weight   int    `yaml:"weight"`
	Severity string `yaml:"severity"`
	Label    string `yaml:"label"`
}

type Config struct {
	App struct {
		Port          int    `yaml:"port"`
		DataDir       string `yaml:"data_dir"`
		ShutdownToken string `yaml:"shutdown_token"`
	} `yaml:"app"`

	Analysis struct {
		ExtraKeywordRules []KeywordRule `yaml:"extra_keyword_rules"`
	} `yaml:"analysis"`

	WebScan struct {
		Enabled          bool   `yaml:"enabled"`
		TimeoutSeconds   int    `yaml:"timeout_seconds"`
		PerHostPerMinute int    `yaml:"per_host_per_minute"`
		MaxBodyKB        int    `yaml:"max_body_kb"`
		UserAgent        string `yaml:"user_agent"`
	} `yaml:"webscan"`

	Intel struct {
		WhoisEnabled   bool `yaml:"whois_enabled"`
		URLScanEnabled bool `yaml:"urlscan_enabled"`
		TimeoutSeconds int  `yaml:"timeout_seconds"`
	} `yaml:"intel"`

	Mail struct {
		Enabled          bool     `yaml:"enabled"`
		IMAPHost         string   `yaml:"imap_host"`
		IMAPPort         int      `yaml:"imap_port"`
		Username         string   `yaml:"username"`
		Mailbox          string   `yaml:"mailbox"`
		SearchSubjectAny []string `yaml:"search_subject_any"`
		PollSeconds      int      `yaml:"poll_seconds"`
	} `yaml:"mail"`

	Reputation struct {
		RecentLimit int `yaml:"recent_limit"`
	} `yaml:"reputation"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
