package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"controlling_window/internal/models"
	"controlling_window/internal/repository"
	"controlling_window/internal/vent"
)

const layoutReportDate = "2006-01-02"

var (
	ErrInvalidDate = errors.New("invalid date: use YYYY-MM-DD")
	ErrNoReadings  = errors.New("no readings for the requested day")
)

type ReportService struct {
	readingRepo repository.ReadingRepo
	loc         *time.Location
	offsetHours int
	now         func() time.Time
}

// NewReportService builds reports over calendar days in UTC+offsetHours.
func NewReportService(readingRepo repository.ReadingRepo, offsetHours int) *ReportService {
	return &ReportService{
		readingRepo: readingRepo,
		loc:         time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*3600),
		offsetHours: offsetHours,
		now:         time.Now,
	}
}

// Daily aggregates the readings of one local day. An empty date means today.
func (s *ReportService) Daily(ctx context.Context, date string) (models.DailyReport, error) {
	day, err := s.parseDay(date)
	if err != nil {
		return models.DailyReport{}, err
	}

	// readings carry sub-second timestamps, so the day ends one nanosecond before the next
	start := day
	end := start.Add(24*time.Hour - time.Nanosecond)

	readings, err := s.readingRepo.List(ctx, start.UTC(), end.UTC())
	if err != nil {
		return models.DailyReport{}, fmt.Errorf("load readings: %w", err)
	}
	if len(readings) == 0 {
		return models.DailyReport{}, ErrNoReadings
	}

	rep := buildReport(readings)
	rep.Date = day.Format(layoutReportDate)
	rep.UTCOffsetHours = s.offsetHours
	return rep, nil
}

func (s *ReportService) parseDay(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		now := s.now().In(s.loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc), nil
	}
	day, err := time.ParseInLocation(layoutReportDate, date, s.loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}

// buildReport computes statistics over a non-empty slice of readings.
func buildReport(readings []models.Reading) models.DailyReport {
	rep := models.DailyReport{TotalReadings: len(readings)}

	inside := make([]float64, 0, len(readings))
	outside := make([]float64, 0, len(readings))
	counts := make(map[int]int)
	var seen []int // codes in order of first appearance

	for _, rd := range readings {
		if rd.IsOpen {
			rep.OpenReadings++
		}
		inside = append(inside, rd.InsideTempC)
		outside = append(outside, rd.OutsideTempC)
		if counts[rd.ConditionCode] == 0 {
			seen = append(seen, rd.ConditionCode)
		}
		counts[rd.ConditionCode]++
	}

	rep.OpenPercentage = round1(float64(rep.OpenReadings) / float64(rep.TotalReadings) * 100)
	rep.Inside = tempStats(inside)
	rep.Outside = tempStats(outside)

	rep.Conditions = make([]models.ConditionCount, 0, len(counts))
	for code, n := range counts {
		rep.Conditions = append(rep.Conditions, models.ConditionCount{
			Code:  code,
			Name:  vent.ConditionName(vent.ConditionCode(code)),
			Count: n,
		})
	}
	sort.Slice(rep.Conditions, func(i, j int) bool { return rep.Conditions[i].Code < rep.Conditions[j].Code })

	// ties go to the code seen first in the day
	if len(seen) > 0 {
		best := seen[0]
		for _, code := range seen[1:] {
			if counts[code] > counts[best] {
				best = code
			}
		}
		rep.MostCommonCondition = &models.ConditionCount{
			Code:  best,
			Name:  vent.ConditionName(vent.ConditionCode(best)),
			Count: counts[best],
		}
	}
	return rep
}

func tempStats(vals []float64) models.TempStats {
	if len(vals) == 0 {
		return models.TempStats{}
	}
	st := models.TempStats{Min: vals[0], Max: vals[0]}
	var sum float64
	for _, v := range vals {
		sum += v
		st.Min = math.Min(st.Min, v)
		st.Max = math.Max(st.Max, v)
	}
	st.Avg = round1(sum / float64(len(vals)))
	return st
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// RenderText formats a report as plain text.
func RenderText(rep models.DailyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Temperature report for %s (UTC%+d) ===\n\n", rep.Date, rep.UTCOffsetHours)
	fmt.Fprintf(&b, "Total readings: %d\n", rep.TotalReadings)
	fmt.Fprintf(&b, "Open state: %d readings (%.1f%%)\n\n", rep.OpenReadings, rep.OpenPercentage)

	writeStats := func(title string, st models.TempStats) {
		fmt.Fprintf(&b, "%s:\n", title)
		fmt.Fprintf(&b, "  Average: %.1f°C\n", st.Avg)
		fmt.Fprintf(&b, "  Minimum: %.1f°C\n", st.Min)
		fmt.Fprintf(&b, "  Maximum: %.1f°C\n\n", st.Max)
	}
	writeStats("Inside temperature", rep.Inside)
	writeStats("Outside temperature", rep.Outside)

	b.WriteString("Weather conditions:\n")
	if rep.MostCommonCondition == nil {
		b.WriteString("  No weather condition data.\n")
	} else {
		fmt.Fprintf(&b, "  Most common: %d (%s)\n", rep.MostCommonCondition.Code, rep.MostCommonCondition.Name)
		b.WriteString("  Distribution:\n")
		for _, c := range rep.Conditions {
			fmt.Fprintf(&b, "    %s (%d): %d readings\n", c.Name, c.Code, c.Count)
		}
	}
	b.WriteString("\n=== End of report ===\n")
	return b.String()
}
