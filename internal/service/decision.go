package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"controlling_window/internal/logger"
	"controlling_window/internal/models"
	"controlling_window/internal/repository"
	"controlling_window/internal/vent"

	"github.com/google/uuid"
)

type DecisionService struct {
	// ingestMu serializes Ingest so each reading is compared with the one stored before it.
	ingestMu sync.Mutex

	classifier  *vent.Classifier
	decider     *vent.Decider
	readingRepo repository.ReadingRepo
	eventRepo   repository.EventRepo
	log         *logger.Logger
}

func NewDecisionService(
	classifier *vent.Classifier,
	decider *vent.Decider,
	readingRepo repository.ReadingRepo,
	eventRepo repository.EventRepo,
	log *logger.Logger,
) *DecisionService {
	return &DecisionService{
		classifier:  classifier,
		decider:     decider,
		readingRepo: readingRepo,
		eventRepo:   eventRepo,
		log:         log,
	}
}

func (s *DecisionService) Evaluate(p ReadingParams) Evaluation {
	favorable := s.classifier.IsFavorable(vent.ConditionCode(p.ConditionCode))
	dec := s.decider.Decide(vent.Input{
		DesiredC:  p.DesiredTempC,
		Favorable: favorable,
		OutsideC:  p.OutsideTempC,
		InsideC:   p.InsideTempC,
	})
	return Evaluation{
		Open:      dec.Open,
		Favorable: favorable,
		Branch:    string(dec.Branch),
		Reason:    dec.Branch.Description(),
	}
}

// Ingest stores the evaluated reading. A DECISION_CHANGE event is appended
// when the decision differs from the previous stored reading (or there is none).
// Event log failures are logged, not returned.
func (s *DecisionService) Ingest(ctx context.Context, p ReadingParams) (models.Reading, error) {
	ev := s.Evaluate(p)

	recordedAt := p.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	s.ingestMu.Lock()
	defer s.ingestMu.Unlock()

	prev, err := s.readingRepo.Latest(ctx)
	if err != nil {
		return models.Reading{}, fmt.Errorf("load previous reading: %w", err)
	}

	rd := models.Reading{
		RecordedAt:    recordedAt.UTC(),
		DesiredTempC:  p.DesiredTempC,
		InsideTempC:   p.InsideTempC,
		OutsideTempC:  p.OutsideTempC,
		ConditionCode: p.ConditionCode,
		Favorable:     ev.Favorable,
		IsOpen:        ev.Open,
		Branch:        ev.Branch,
	}
	id, err := s.readingRepo.Append(ctx, rd)
	if err != nil {
		return models.Reading{}, fmt.Errorf("store reading: %w", err)
	}
	rd.ID = id

	if ev.Branch == string(vent.BranchInvalidReading) {
		s.appendEvent(ctx, models.WindowEvent{
			OccurredAt:  rd.RecordedAt,
			Type:        EventError,
			Description: ev.Reason,
			Metadata:    readingMetadata(rd, ev),
		})
	}

	if prev.ID == 0 || prev.IsOpen != rd.IsOpen {
		desc := "Window closed"
		if rd.IsOpen {
			desc = "Window opened"
		}
		meta := readingMetadata(rd, ev)
		meta["previous_open"] = prev.IsOpen
		meta["first_reading"] = prev.ID == 0
		s.appendEvent(ctx, models.WindowEvent{
			OccurredAt:  rd.RecordedAt,
			Type:        EventDecisionChange,
			Description: desc + ": " + ev.Reason,
			Metadata:    meta,
		})
	}

	return rd, nil
}

func (s *DecisionService) Classify(code int) ConditionInfo {
	return ConditionInfo{
		Code:      code,
		Name:      vent.ConditionName(vent.ConditionCode(code)),
		Favorable: s.classifier.IsFavorable(vent.ConditionCode(code)),
	}
}

func (s *DecisionService) FavorableCodes() []int {
	codes := s.classifier.Codes()
	out := make([]int, len(codes))
	for i, c := range codes {
		out[i] = int(c)
	}
	return out
}

func (s *DecisionService) appendEvent(ctx context.Context, e models.WindowEvent) {
	e.EventID = uuid.NewString()
	if err := s.eventRepo.Append(ctx, e); err != nil && s.log != nil {
		s.log.Errorw("event_append_failed", "err", err, "type", e.Type)
	}
}

func readingMetadata(rd models.Reading, ev Evaluation) map[string]any {
	return map[string]any{
		"reading_id":     rd.ID,
		"branch":         ev.Branch,
		"desired_temp_c": rd.DesiredTempC,
		"inside_temp_c":  rd.InsideTempC,
		"outside_temp_c": rd.OutsideTempC,
		"condition_code": rd.ConditionCode,
	}
}
