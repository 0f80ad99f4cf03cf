package service

import (
	"context"
	"math"
	"time"

	"controlling_window/internal/config"
	"controlling_window/internal/logger"
	"controlling_window/internal/models"
	"controlling_window/internal/repository"
)

// ----------- Room model constants -----------
const (
	OpenDriftCPerSec   = 0.5  // °C per second toward outside when the window is open
	ClosedDriftCPerSec = 0.05 // °C per second leakage through a closed window
)

// SimulatorService models a room and feeds its readings through Decision.
type SimulatorService struct {
	decision  Decision
	readRepo  repository.ReadingRepo
	eventRepo repository.EventRepo
	cfg       config.SimulatorConfig
	log       *logger.Logger
}

func NewSimulatorService(
	decision Decision,
	readRepo repository.ReadingRepo,
	eventRepo repository.EventRepo,
	cfg config.SimulatorConfig,
	log *logger.Logger,
) *SimulatorService {
	return &SimulatorService{
		decision:  decision,
		readRepo:  readRepo,
		eventRepo: eventRepo,
		cfg:       cfg,
		log:       log,
	}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	err := s.eventRepo.Append(ctx, models.WindowEvent{
		Type:        EventSystem,
		Description: "Simulator started",
		Metadata: map[string]any{
			"tick":           tick.String(),
			"desired_temp_c": s.cfg.DesiredTempC,
			"outside_temp_c": s.cfg.OutsideTempC,
			"condition_code": s.cfg.ConditionCode,
		},
	})
	if err != nil && s.log != nil {
		s.log.Errorw("event_append_failed", "err", err, "type", EventSystem)
	}

	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if _, err := s.Step(ctx, now, tick.Seconds()); err != nil && s.log != nil {
				s.log.Errorw("simulator_step_failed", "err", err)
			}
		}
	}
}

// Step advances the room model by elapsed seconds and ingests the new reading.
func (s *SimulatorService) Step(ctx context.Context, now time.Time, elapsed float64) (models.Reading, error) {
	last, err := s.readRepo.Latest(ctx)
	if err != nil {
		return models.Reading{}, err
	}

	inside := s.cfg.InitialInsideTempC
	open := false
	if last.ID != 0 {
		inside = driftToward(last.InsideTempC, s.cfg.OutsideTempC, last.IsOpen, elapsed)
		open = last.IsOpen
	}

	rd, err := s.decision.Ingest(ctx, ReadingParams{
		DesiredTempC:  s.cfg.DesiredTempC,
		InsideTempC:   inside,
		OutsideTempC:  s.cfg.OutsideTempC,
		ConditionCode: s.cfg.ConditionCode,
		RecordedAt:    now,
	})
	if err != nil {
		return models.Reading{}, err
	}
	if s.log != nil && rd.IsOpen != open {
		s.log.Infow("simulator_window_toggled", "open", rd.IsOpen, "inside_c", inside, "branch", rd.Branch)
	}
	return rd, nil
}

// driftToward moves inside toward outside without overshooting.
func driftToward(inside, outside float64, open bool, elapsed float64) float64 {
	rate := ClosedDriftCPerSec
	if open {
		rate = OpenDriftCPerSec
	}
	step := rate * elapsed
	diff := outside - inside
	if math.Abs(diff) <= step {
		return outside
	}
	return inside + math.Copysign(step, diff)
}
