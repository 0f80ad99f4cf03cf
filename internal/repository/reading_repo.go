package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"controlling_window/internal/models"
)

type ReadingSQLite struct {
	db *sql.DB
}

func NewReadingSQLite(db *sql.DB) *ReadingSQLite {
	return &ReadingSQLite{db: db}
}

var _ ReadingRepo = (*ReadingSQLite)(nil)

const (
	insertReadingSQL = `
		INSERT INTO readings (recorded_at, desired_temp_c, inside_temp_c, outside_temp_c, condition_code, favorable, is_open, branch)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	readingColumns = `id, recorded_at, desired_temp_c, inside_temp_c, outside_temp_c, condition_code, favorable, is_open, branch`

	selectLatestReadingSQL = `SELECT ` + readingColumns + ` FROM readings ORDER BY recorded_at DESC, id DESC LIMIT 1`
)

// Append inserts r and returns its row id. A zero RecordedAt is set to now.
func (r *ReadingSQLite) Append(ctx context.Context, rd models.Reading) (int64, error) {
	ts := rd.RecordedAt
	if ts.IsZero() {
		ts = time.Now()
	}

	res, err := r.db.ExecContext(ctx, insertReadingSQL,
		ts.UTC(),
		rd.DesiredTempC,
		rd.InsideTempC,
		rd.OutsideTempC,
		rd.ConditionCode,
		rd.Favorable,
		rd.IsOpen,
		rd.Branch,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Latest fetches the newest reading. Returns a zero Reading if the table is empty.
func (r *ReadingSQLite) Latest(ctx context.Context) (models.Reading, error) {
	rd, err := scanReading(r.db.QueryRowContext(ctx, selectLatestReadingSQL))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reading{}, nil
		}
		return models.Reading{}, err
	}
	return rd, nil
}

// List returns readings within [from, to] (inclusive) ordered ASC.
func (r *ReadingSQLite) List(ctx context.Context, from, to time.Time) ([]models.Reading, error) {
	var (
		conds []string
		args  []any
	)
	if !from.IsZero() {
		conds = append(conds, "recorded_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "recorded_at <= ?")
		args = append(args, to.UTC())
	}

	q := `SELECT ` + readingColumns + ` FROM readings`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY recorded_at ASC, id ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Reading, 0, 64)
	for rows.Next() {
		rd, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReading(s rowScanner) (models.Reading, error) {
	var rd models.Reading
	if err := s.Scan(
		&rd.ID,
		&rd.RecordedAt,
		&rd.DesiredTempC,
		&rd.InsideTempC,
		&rd.OutsideTempC,
		&rd.ConditionCode,
		&rd.Favorable,
		&rd.IsOpen,
		&rd.Branch,
	); err != nil {
		return models.Reading{}, err
	}
	rd.RecordedAt = rd.RecordedAt.UTC()
	return rd, nil
}
