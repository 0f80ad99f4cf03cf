package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"controlling_window/internal/config"
	"controlling_window/internal/logger"
	"controlling_window/internal/vent"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestSimulator(readings *memReadingRepo, events *memEventRepo, cfg config.SimulatorConfig) *SimulatorService {
	dec := newTestDecisionService(readings, events)
	return NewSimulatorService(dec, readings, events, cfg, logger.NewNop())
}

func TestDriftToward(t *testing.T) {
	cases := []struct {
		name    string
		inside  float64
		outside float64
		open    bool
		elapsed float64
		want    float64
	}{
		{"open cools fast", 25, 10, true, 2, 24},
		{"closed cools slow", 25, 10, false, 2, 24.9},
		{"open warms", 15, 20, true, 1, 15.5},
		{"no overshoot", 10.2, 10, true, 1, 10},
		{"already equal", 10, 10, false, 5, 10},
	}
	for _, tc := range cases {
		got := driftToward(tc.inside, tc.outside, tc.open, tc.elapsed)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestSimulatorService_Step(t *testing.T) {
	readings := &memReadingRepo{}
	events := &memEventRepo{}
	sim := newTestSimulator(readings, events, config.SimulatorConfig{
		DesiredTempC:       21,
		OutsideTempC:       12,
		InitialInsideTempC: 25,
		ConditionCode:      1003,
	})
	ctx := context.Background()
	t0 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	rd, err := sim.Step(ctx, t0, 1)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if rd.InsideTempC != 25 || !rd.IsOpen || rd.Branch != string(vent.BranchCoolerOutside) {
		t.Fatalf("first step should seed from config and open: %+v", rd)
	}

	// window open: room cools by 0.5°C per second until it reaches target
	var last = rd
	for i := 1; i <= 20; i++ {
		last, err = sim.Step(ctx, t0.Add(time.Duration(i)*time.Second), 1)
		if err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
		if !last.IsOpen {
			break
		}
	}
	if last.IsOpen {
		t.Fatalf("window should close once the room reaches the desired temperature, last=%+v", last)
	}
	if vent.Truncate(last.InsideTempC) != 21 || last.Branch != string(vent.BranchAtTarget) {
		t.Fatalf("expected AT_TARGET at 21°C, got %+v", last)
	}
	if n := len(events.ofType(EventDecisionChange)); n != 2 {
		t.Fatalf("want open+close change events, got %d", n)
	}
}

func TestSimulatorService_Step_LoadError(t *testing.T) {
	sim := newTestSimulator(&memReadingRepo{latestErr: errors.New("locked")}, &memEventRepo{}, config.SimulatorConfig{})
	if _, err := sim.Step(context.Background(), time.Now(), 1); err == nil {
		t.Fatalf("expected error")
	}
}

func TestSimulatorService_Run_StopsOnCancel(t *testing.T) {
	readings := &memReadingRepo{}
	events := &memEventRepo{}
	sim := newTestSimulator(readings, events, config.SimulatorConfig{DesiredTempC: 21, OutsideTempC: 12, InitialInsideTempC: 25, ConditionCode: 1000})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sim.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop after cancel")
	}

	if len(events.ofType(EventSystem)) != 1 {
		t.Fatalf("expected a SYSTEM start event")
	}
	if len(readings.readings) == 0 {
		t.Fatalf("expected at least one simulated reading")
	}
}

func TestSimulatorService_Run_LogsStartEventFailure(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	events := &memEventRepo{appendErr: errors.New("disk full")}
	readings := &memReadingRepo{}
	sim := NewSimulatorService(newTestDecisionService(readings, events), readings, events,
		config.SimulatorConfig{DesiredTempC: 21, OutsideTempC: 12, InitialInsideTempC: 25, ConditionCode: 1003},
		logger.Wrap(zap.New(core)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sim.Run(ctx, time.Hour)

	entries := logs.FilterMessage("event_append_failed").All()
	if len(entries) != 1 {
		t.Fatalf("want 1 event_append_failed entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["type"] != EventSystem {
		t.Fatalf("unexpected fields: %#v", entries[0].ContextMap())
	}
}
