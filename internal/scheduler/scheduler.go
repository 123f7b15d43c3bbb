package scheduler

import (
	"context"
	"fmt"
	"log"

	"CryptoSentinel/internal/notifier"
	"CryptoSentinel/internal/pipeline"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the pipeline on a cron schedule and reports via Telegram.
type Scheduler struct {
	Cron      *cron.Cron
	Runner    *pipeline.Runner
	Notifier  *notifier.TelegramNotifier
	Symbol    string
	Timeframe string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler. The notifier may be nil; results are
// then only logged.
func NewScheduler(ctx context.Context, runner *pipeline.Runner, tn *notifier.TelegramNotifier, symbol, timeframe string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Runner:    runner,
		Notifier:  tn,
		Symbol:    symbol,
		Timeframe: timeframe,
		Ctx:       ctx,
	}
}

// Register registers the daily pipeline task.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the daily task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily pipeline")
	res, err := s.Runner.Run()
	if err != nil {
		log.Printf("[ERROR] daily pipeline: %v", err)
		s.trySend(fmt.Sprintf("❌ daily pipeline failed: %v", err))
		return
	}
	s.trySend(notifier.FormatReport(s.Symbol, s.Timeframe, res))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/run":
		s.dailyTask()
		return ""
	case "/signals":
		res, err := s.Runner.Analyze()
		if err != nil {
			return fmt.Sprintf("❌ analyze failed: %v", err)
		}
		return notifier.FormatReport(s.Symbol, s.Timeframe, res)
	default:
		return "Commands:\n• /run — fetch and analyze\n• /signals — analyze stored data"
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
