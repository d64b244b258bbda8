// Package store keeps a history of run summaries in SQLite. Individuals are
// never written; a stored run holds only the parameters, category counts,
// and resource totals.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/analytics"
	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/population"
)

// ErrNotFound is returned when a run ID has no stored record.
var ErrNotFound = errors.New("run not found")

// Run is one stored run summary.
type Run struct {
	ID               uuid.UUID                 `json:"id"`
	CreatedAt        time.Time                 `json:"created_at"`
	Scenario         string                    `json:"scenario"`
	Seed             *uint64                   `json:"seed,omitempty"`
	Parameters       population.Params         `json:"parameters"`
	Counts           population.CategoryCounts `json:"counts"`
	TotalWater       float64                   `json:"total_water_liters_per_day"`
	TotalElectricity float64                   `json:"total_electricity_kwh_per_day"`
	TotalLand        float64                   `json:"total_land_sqkm"`
}

// FromResult builds a run record from an analytics result.
func FromResult(r *analytics.Result, now time.Time) Run {
	return Run{
		ID:               uuid.New(),
		CreatedAt:        now.UTC(),
		Scenario:         r.Scenario,
		Seed:             r.Seed,
		Parameters:       r.Parameters,
		Counts:           r.Summary.Counts,
		TotalWater:       r.Resources.TotalWater,
		TotalElectricity: r.Resources.TotalElectricity,
		TotalLand:        r.Resources.TotalLand,
	}
}

// Store is a SQLite-backed run history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// runs table exists.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening run database: %w", err)
	}
	// sqlite3 serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.init(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT NOT NULL PRIMARY KEY,
			created_at INTEGER NOT NULL,
			scenario TEXT NOT NULL,
			seed TEXT,
			parameters TEXT NOT NULL,
			counts TEXT NOT NULL,
			total_water REAL NOT NULL,
			total_electricity REAL NOT NULL,
			total_land REAL NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating runs table: %w", err)
	}
	return nil
}

// Save inserts a run.
func (s *Store) Save(ctx context.Context, run Run) error {
	params, err := json.Marshal(run.Parameters)
	if err != nil {
		return fmt.Errorf("encoding parameters: %w", err)
	}
	counts, err := json.Marshal(run.Counts)
	if err != nil {
		return fmt.Errorf("encoding counts: %w", err)
	}
	var seed sql.NullString
	if run.Seed != nil {
		seed = sql.NullString{String: strconv.FormatUint(*run.Seed, 10), Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs(id, created_at, scenario, seed, parameters, counts, total_water, total_electricity, total_land)
		VALUES (?,?,?,?,?,?,?,?,?);
	`,
		run.ID.String(),
		run.CreatedAt.UnixNano(),
		run.Scenario,
		seed,
		string(params),
		string(counts),
		run.TotalWater,
		run.TotalElectricity,
		run.TotalLand,
	)
	if err != nil {
		return fmt.Errorf("saving run %s: %w", run.ID, err)
	}
	return nil
}

const selectRuns = `
	SELECT id, created_at, scenario, seed, parameters, counts, total_water, total_electricity, total_land
	FROM runs
`

// List returns up to limit runs, newest first. limit <= 0 means all.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := selectRuns + " ORDER BY created_at DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}

// Get returns a single run by ID.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Run, error) {
	row := s.db.QueryRowContext(ctx, selectRuns+" WHERE id = ?", id.String())
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	return run, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		run            Run
		id             string
		createdAt      int64
		seed           sql.NullString
		params, counts string
	)
	err := sc.Scan(&id, &createdAt, &run.Scenario, &seed, &params, &counts,
		&run.TotalWater, &run.TotalElectricity, &run.TotalLand)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("reading run: %w", err)
	}

	if run.ID, err = uuid.Parse(id); err != nil {
		return Run{}, fmt.Errorf("reading run id %q: %w", id, err)
	}
	run.CreatedAt = time.Unix(0, createdAt).UTC()
	if seed.Valid {
		v, err := strconv.ParseUint(seed.String, 10, 64)
		if err != nil {
			return Run{}, fmt.Errorf("reading seed of run %s: %w", run.ID, err)
		}
		run.Seed = &v
	}
	if err := json.Unmarshal([]byte(params), &run.Parameters); err != nil {
		return Run{}, fmt.Errorf("decoding parameters of run %s: %w", run.ID, err)
	}
	if err := json.Unmarshal([]byte(counts), &run.Counts); err != nil {
		return Run{}, fmt.Errorf("decoding counts of run %s: %w", run.ID, err)
	}
	return run, nil
}
