package service

import (
	"context"
	"errors"
	"time"

	"controlling_window/internal/models"
	"controlling_window/internal/repository"
)

// baselineBranch marks the synthetic reading returned before any data exists.
const baselineBranch = "NO_DATA"

var ErrInvalidTimeRange = errors.New("invalid time range: From must be <= To")

type MonitoringService struct {
	readingRepo repository.ReadingRepo
}

func NewMonitoringService(readingRepo repository.ReadingRepo) *MonitoringService {
	return &MonitoringService{readingRepo: readingRepo}
}

// Latest returns the newest stored reading.
// If nothing is stored yet, returns a closed baseline reading.
func (s *MonitoringService) Latest(ctx context.Context) (models.Reading, error) {
	rd, err := s.readingRepo.Latest(ctx)
	if err != nil {
		return models.Reading{}, err
	}
	if rd.ID == 0 {
		return s.baselineReading(), nil
	}
	rd.RecordedAt = normalizeToUTC(rd.RecordedAt)
	return rd, nil
}

// History returns readings in [from, to]; zero bounds are open.
func (s *MonitoringService) History(ctx context.Context, from, to time.Time) ([]models.Reading, error) {
	from, to = normalizeToUTC(from), normalizeToUTC(to)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, ErrInvalidTimeRange
	}
	return s.readingRepo.List(ctx, from, to)
}

func (s *MonitoringService) baselineReading() models.Reading {
	return models.Reading{
		RecordedAt: time.Now().UTC(),
		IsOpen:     false,
		Branch:     baselineBranch,
	}
}
