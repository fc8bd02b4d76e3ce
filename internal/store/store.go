// Package store provides optional SQLite archival of a completed run's
// Output, so a scenario's statistics time series can be queried after the
// fact without re-parsing the full JSON output.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"spreadsim/internal/model"
)

// DB wraps a SQLite connection used to archive run output.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scenario_name TEXT NOT NULL,
		ticks INTEGER NOT NULL,
		grid_x INTEGER NOT NULL,
		grid_y INTEGER NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS statistics (
		run_id INTEGER NOT NULL REFERENCES runs(id),
		query_key TEXT NOT NULL,
		tick INTEGER NOT NULL,
		susceptible INTEGER NOT NULL,
		infected INTEGER NOT NULL,
		infectious INTEGER NOT NULL,
		recovered INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS trace (
		run_id INTEGER NOT NULL REFERENCES runs(id),
		tick INTEGER NOT NULL,
		population_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_statistics_run ON statistics(run_id, query_key, tick);
	CREATE INDEX IF NOT EXISTS idx_trace_run ON trace(run_id, tick);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveOutput archives output under a new run row and returns its id.
func (db *DB) SaveOutput(output model.Output) (int64, error) {
	tx, err := db.conn.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO runs (scenario_name, ticks, grid_x, grid_y) VALUES (?, ?, ?, ?)",
		output.Scenario.Name, output.Scenario.Ticks, output.Scenario.GridSize.X, output.Scenario.GridSize.Y,
	)
	if err != nil {
		return 0, fmt.Errorf("store: insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	statsStmt, err := tx.Preparex(`INSERT INTO statistics
		(run_id, query_key, tick, susceptible, infected, infectious, recovered)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer statsStmt.Close()

	for key, series := range output.Statistics {
		for tick, s := range series {
			if _, err := statsStmt.Exec(runID, key, tick, s.Susceptible, s.Infected, s.Infectious, s.Recovered); err != nil {
				return 0, fmt.Errorf("store: insert statistics %s@%d: %w", key, tick, err)
			}
		}
	}

	if len(output.Trace) > 0 {
		traceStmt, err := tx.Preparex("INSERT INTO trace (run_id, tick, population_json) VALUES (?, ?, ?)")
		if err != nil {
			return 0, err
		}
		defer traceStmt.Close()

		for tick, entry := range output.Trace {
			if entry.Population == nil {
				continue
			}
			data, err := json.Marshal(entry.Population)
			if err != nil {
				return 0, fmt.Errorf("store: marshal trace@%d: %w", tick, err)
			}
			if _, err := traceStmt.Exec(runID, tick, string(data)); err != nil {
				return 0, fmt.Errorf("store: insert trace@%d: %w", tick, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

// StatisticsSeries reads back one query's statistics series for a run,
// ordered by tick.
func (db *DB) StatisticsSeries(runID int64, queryKey string) ([]model.Statistics, error) {
	var rows []struct {
		Tick        int    `db:"tick"`
		Susceptible uint64 `db:"susceptible"`
		Infected    uint64 `db:"infected"`
		Infectious  uint64 `db:"infectious"`
		Recovered   uint64 `db:"recovered"`
	}
	err := db.conn.Select(&rows,
		"SELECT tick, susceptible, infected, infectious, recovered FROM statistics WHERE run_id = ? AND query_key = ? ORDER BY tick",
		runID, queryKey)
	if err != nil {
		return nil, fmt.Errorf("store: select statistics: %w", err)
	}

	out := make([]model.Statistics, len(rows))
	for i, r := range rows {
		out[i] = model.Statistics{
			Susceptible: r.Susceptible,
			Infected:    r.Infected,
			Infectious:  r.Infectious,
			Recovered:   r.Recovered,
		}
	}
	return out, nil
}
