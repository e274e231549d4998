package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"internguard-engine/internal/chat"
	"internguard-engine/internal/config"
	"internguard-engine/internal/detect"
	"internguard-engine/internal/events"
	httpx "internguard-engine/internal/http"
	"internguard-engine/internal/intel"
	"internguard-engine/internal/mailscan"
	"internguard-engine/internal/reputation"
	"internguard-engine/internal/rules"
	"internguard-engine/internal/scheduler"
	"internguard-engine/internal/secrets"
	"internguard-engine/internal/store"
	"internguard-engine/internal/webscan"
)

func main() {
	// .env is optional; real config lives in the data dir.
	_ = godotenv.Load()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if lvl, err := log.ParseLevel(os.Getenv("INTERNGUARD_LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	dataDir := os.Getenv("INTERNGUARD_DATA_DIR")
	if dataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		dataDir = filepath.Join(base, "internguard")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.WithError(err).Fatal("create data dir")
	}

	// One engine per data dir.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.WithError(err).Fatal("acquire data dir lock")
	}
	if !locked {
		log.Fatalf("another engine instance is already using %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.WithError(err).Fatal("config bootstrap failed")
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.WithError(err).Fatalf("config load failed (%s)", userCfgPath)
	}
	cfg, validation := config.NormalizeAndValidate(cfg)
	for _, warn := range validation.Warnings {
		log.Warn(warn)
	}
	if !validation.OK() {
		for _, e := range validation.Errors {
			log.Error(e)
		}
		log.Fatal("config validation failed")
	}

	var cfgVal atomic.Value
	cfgVal.Store(cfg)

	ruleSet := rules.Default()
	if err := config.OverlayRules(cfg, ruleSet); err != nil {
		log.WithError(err).Fatal("config rule overlay failed")
	}

	dbPath := filepath.Join(dataDir, "internguard.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.WithError(err).Fatal("migrate database")
	}

	detectEngine := detect.NewEngine(ruleSet)
	repEngine := reputation.NewEngine(store.NewReportStore(db))
	bot := chat.NewBot()
	hub := events.NewHub()

	var scanner *webscan.Scanner
	if cfg.WebScan.Enabled {
		scanner = webscan.New(webscan.Config{
			Timeout:          time.Duration(cfg.WebScan.TimeoutSeconds) * time.Second,
			PerHostPerMinute: cfg.WebScan.PerHostPerMinute,
			MaxBodyKB:        cfg.WebScan.MaxBodyKB,
			UserAgent:        cfg.WebScan.UserAgent,
		}, ruleSet)
	}

	var urlscanClient *intel.URLScanClient
	if cfg.Intel.URLScanEnabled {
		urlscanClient = intel.NewURLScanClient(
			time.Duration(cfg.Intel.TimeoutSeconds)*time.Second,
			secrets.GetURLScanAPIKey(),
		)
	}

	mux := httpx.NewMux(httpx.Deps{
		DB:           db.Pool,
		Hub:          hub,
		Detect:       detectEngine,
		Reputation:   repEngine,
		Bot:          bot,
		WebScanner:   scanner,
		URLScan:      urlscanClient,
		WhoisEnabled: cfg.Intel.WhoisEnabled,
		CfgVal:       &cfgVal,
		UserCfgPath:  userCfgPath,
		RecentLimit:  cfg.Reputation.RecentLimit,
	})

	handler := httpx.Chain(mux,
		httpx.RequestID,
		httpx.Recover,
		httpx.AccessLog,
		httpx.Cors,
	)

	addr := net.JoinHostPort("127.0.0.1", itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.WithError(err).Fatalf("listen on %s", addr)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdownToken := cfg.App.ShutdownToken
	if shutdownToken == "" {
		shutdownToken, err = randomToken(16)
		if err != nil {
			log.WithError(err).Fatal("generate shutdown token")
		}
		log.Infof("shutdown token: %s", shutdownToken)
	}
	mux.HandleFunc("/shutdown", shutdownHandler(&shutdownToken, srv))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Mail.Enabled {
		go runMailScanLoop(ctx, &cfgVal, detectEngine, hub)
	}
	go scheduler.Every(ctx, 24*time.Hour, "analyses-cleanup", func(context.Context) error {
		n, err := store.CleanupOldAnalyses(db.Pool)
		if n > 0 {
			log.WithField("deleted", n).Info("pruned old analysis rows")
		}
		return err
	})

	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
	}()

	log.WithFields(log.Fields{"addr": addr, "db": dbPath}).Info("engine listening")
	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("serve")
	}
	log.Info("engine stopped")
}

// runMailScanLoop polls the configured mailbox and publishes an SSE event
// for every suspicious offer it finds.
func runMailScanLoop(ctx context.Context, cfgVal *atomic.Value, eng *detect.Engine, hub *events.Hub) {
	cfg := cfgVal.Load().(config.Config)
	interval := time.Duration(cfg.Mail.PollSeconds) * time.Second

	scheduler.Every(ctx, interval, "mailscan", func(context.Context) error {
		cur := cfgVal.Load().(config.Config)
		account := secrets.IMAPKeyringAccount(cur.Mail.Username, cur.Mail.IMAPHost)
		password, err := secrets.GetIMAPPassword(account)
		if err != nil {
			return err
		}
		_, err = mailscan.RunScanOnce(cur, eng, password, func(f mailscan.Finding) {
			hub.Publish(events.MakeEvent("", events.TypeMailScanHit, 1, f))
		})
		return err
	})
}
