package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"controlling_window/internal/models"
	"controlling_window/internal/repository"
)

// memReadingRepo is an in-memory repository.ReadingRepo.
type memReadingRepo struct {
	mu        sync.Mutex
	readings  []models.Reading
	latestErr error
	appendErr error
	listErr   error

	gotFrom time.Time
	gotTo   time.Time
}

func (m *memReadingRepo) Append(ctx context.Context, r models.Reading) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return 0, m.appendErr
	}
	r.ID = int64(len(m.readings) + 1)
	m.readings = append(m.readings, r)
	return r.ID, nil
}

func (m *memReadingRepo) Latest(ctx context.Context) (models.Reading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.latestErr != nil {
		return models.Reading{}, m.latestErr
	}
	if len(m.readings) == 0 {
		return models.Reading{}, nil
	}
	return m.readings[len(m.readings)-1], nil
}

func (m *memReadingRepo) List(ctx context.Context, from, to time.Time) ([]models.Reading, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gotFrom, m.gotTo = from, to
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []models.Reading
	for _, r := range m.readings {
		if !from.IsZero() && r.RecordedAt.Before(from) {
			continue
		}
		if !to.IsZero() && r.RecordedAt.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// memEventRepo is an in-memory repository.EventRepo.
type memEventRepo struct {
	mu        sync.Mutex
	events    []models.WindowEvent
	appendErr error
	listErr   error

	gotFrom time.Time
	gotTo   time.Time
	gotType string
}

func (m *memEventRepo) Append(ctx context.Context, e models.WindowEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
	return m.appendErr
}

func (m *memEventRepo) List(ctx context.Context, from, to time.Time, typ string) ([]models.WindowEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gotFrom, m.gotTo, m.gotType = from, to, typ
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events, nil
}

func (m *memEventRepo) ofType(typ string) []models.WindowEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.WindowEvent
	for _, e := range m.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

// mockAuthRepo is a lightweight in-test mock for repository.Authorization.
type mockAuthRepo struct {
	users  map[string]*models.User
	nextID int
	err    error
}

func (m *mockAuthRepo) Create(ctx context.Context, username, hash string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.users == nil {
		m.users = map[string]*models.User{}
	}
	if _, ok := m.users[username]; ok {
		return 0, fmt.Errorf("insert user %q: %w", username, repository.ErrUsernameTaken)
	}
	m.nextID++
	m.users[username] = &models.User{ID: m.nextID, Username: username, PasswordHash: hash}
	return m.nextID, nil
}

func (m *mockAuthRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users[username], nil
}
