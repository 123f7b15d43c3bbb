package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"CryptoSentinel/internal/collector"
	"CryptoSentinel/internal/config"
	"CryptoSentinel/internal/notifier"
	"CryptoSentinel/internal/pipeline"
	"CryptoSentinel/internal/scheduler"
	"CryptoSentinel/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	daemon := flag.Bool("daemon", false, "run on a cron schedule instead of once")
	flag.Parse()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewGatewayFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewBinanceFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	col := collector.NewCollector(fetcher, cfg.DataSource.Symbol, cfg.DataSource.Timeframe, cfg.DataSource.FetchLimit)

	// Init candle store
	st, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
	if err != nil {
		log.Fatalf("[FATAL] init candle store: %v", err)
	}
	defer st.Close()

	runner := pipeline.NewRunner(col, st, cfg.IndicatorConfig())

	if !*daemon {
		runOnce(runner, cfg)
		return
	}
	runDaemon(runner, cfg)
}

// runOnce executes the pipeline a single time and prints the summary.
// Storage and insufficient-data failures exit non-zero.
func runOnce(runner *pipeline.Runner, cfg *config.Config) {
	res, err := runner.Run()
	if err != nil {
		log.Fatalf("[FATAL] pipeline: %v", err)
	}

	fmt.Print(notifier.FormatSummary(cfg.DataSource.Symbol, cfg.DataSource.Timeframe, res.Summary))
	fmt.Println()
	fmt.Println("Last 5 signals:")
	fmt.Print(notifier.FormatTail(res, 5))
}

// runDaemon runs the pipeline on the configured cron schedule and reports via
// Telegram when configured.
func runDaemon(runner *pipeline.Runner, cfg *config.Config) {
	log.Println("[INFO] CryptoSentinel daemon starting...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	} else {
		log.Println("[WARN] telegram not configured, reports will only be logged")
	}

	sched := scheduler.NewScheduler(ctx, runner, tn, cfg.DataSource.Symbol, cfg.DataSource.Timeframe)
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing pipeline now")
		go sched.RunNow()
	}

	log.Println("[INFO] CryptoSentinel is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] CryptoSentinel stopped")
}
