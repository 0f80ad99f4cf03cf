package service

import (
	"context"
	"time"

	"controlling_window/internal/config"
	"controlling_window/internal/logger"
	"controlling_window/internal/models"
	"controlling_window/internal/repository"
	"controlling_window/internal/vent"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Decision evaluates readings through the vent rules.
type Decision interface {
	// Evaluate is pure: nothing is stored.
	Evaluate(p ReadingParams) Evaluation
	// Ingest evaluates p, stores the reading and logs decision changes.
	Ingest(ctx context.Context, p ReadingParams) (models.Reading, error)
	Classify(code int) ConditionInfo
	FavorableCodes() []int
}

// Monitoring exposes stored readings.
type Monitoring interface {
	Latest(ctx context.Context) (models.Reading, error)
	History(ctx context.Context, from, to time.Time) ([]models.Reading, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.WindowEvent, error)
}

// Report builds per-day statistics over stored readings.
type Report interface {
	Daily(ctx context.Context, date string) (models.DailyReport, error)
}

// Simulator feeds modelled room readings into Decision until ctx is canceled.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Decision
	Monitoring
	EventLog
	Report
	Simulator
	Authorization
}

func NewService(repos *repository.Repository, cfg *config.Config, log *logger.Logger) *Service {
	codes := make([]vent.ConditionCode, 0, len(cfg.Vent.FavorableCodes))
	for _, c := range cfg.Vent.FavorableCodes {
		codes = append(codes, vent.ConditionCode(c))
	}
	decider := vent.NewDecider(log.VentTracer())
	decision := NewDecisionService(vent.NewClassifier(codes...), decider, repos.ReadingRepo, repos.EventRepo, log)

	return &Service{
		Decision:      decision,
		Monitoring:    NewMonitoringService(repos.ReadingRepo),
		EventLog:      NewEventLogService(repos.EventRepo),
		Report:        NewReportService(repos.ReadingRepo, cfg.Report.UTCOffsetHours),
		Simulator:     NewSimulatorService(decision, repos.ReadingRepo, repos.EventRepo, cfg.Simulator, log),
		Authorization: NewAuthService(repos.Auth, cfg.Auth.SigningKey, cfg.Auth.TokenTTL),
	}
}
