// Package telemetry persists seeker runs, state transitions, and emitted
// velocity commands to sqlite for after-the-fact analysis.
package telemetry

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/apogee-robotics/seeker/internal/monitoring"
	"github.com/apogee-robotics/seeker/internal/seeker"
)

// Store records controller events under a per-process run ID. It implements
// seeker.Recorder; recording failures are logged rather than surfaced, since
// the control loop cannot act on them.
type Store struct {
	db    *sql.DB
	runID string
}

// Transition is one recorded state change.
type Transition struct {
	RunID  string  `json:"run_id"`
	AtUnix float64 `json:"at_unix"`
	From   string  `json:"from_state"`
	To     string  `json:"to_state"`
	Reason string  `json:"reason"`
}

// Command is one recorded velocity command.
type Command struct {
	RunID   string  `json:"run_id"`
	AtUnix  float64 `json:"at_unix"`
	State   string  `json:"state"`
	Intent  string  `json:"intent"`
	Linear  float64 `json:"linear"`
	Angular float64 `json:"angular"`
}

// Open opens (creating if necessary) the telemetry database at path and
// starts a new run.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open telemetry db: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id            TEXT PRIMARY KEY,
			started_at_unix   DOUBLE,
			created_at        TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS transitions (
			transition_id     INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id            TEXT,
			at_unix           DOUBLE,
			from_state        TEXT,
			to_state          TEXT,
			reason            TEXT,
			FOREIGN KEY(run_id) REFERENCES runs(run_id)
		);
		CREATE TABLE IF NOT EXISTS commands (
			command_id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id            TEXT,
			at_unix           DOUBLE,
			state             TEXT,
			intent            TEXT,
			linear            DOUBLE,
			angular           DOUBLE,
			FOREIGN KEY(run_id) REFERENCES runs(run_id)
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create telemetry schema: %w", err)
	}

	s := &Store{db: db, runID: uuid.NewString()}
	if _, err := db.Exec(
		`INSERT INTO runs (run_id, started_at_unix) VALUES (?, ?)`,
		s.runID, float64(time.Now().UnixNano())/1e9,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to record run: %w", err)
	}
	return s, nil
}

// RunID returns the identifier of the current run.
func (s *Store) RunID() string {
	return s.runID
}

// RecordTransition implements seeker.Recorder.
func (s *Store) RecordTransition(at time.Time, from, to seeker.ControlState, reason string) {
	_, err := s.db.Exec(
		`INSERT INTO transitions (run_id, at_unix, from_state, to_state, reason) VALUES (?, ?, ?, ?, ?)`,
		s.runID, unix(at), string(from), string(to), reason,
	)
	if err != nil {
		monitoring.Logf("failed to record transition: %v", err)
	}
}

// RecordCommand implements seeker.Recorder.
func (s *Store) RecordCommand(at time.Time, state seeker.ControlState, intent seeker.Intent, cmd seeker.VelocityCommand) {
	_, err := s.db.Exec(
		`INSERT INTO commands (run_id, at_unix, state, intent, linear, angular) VALUES (?, ?, ?, ?, ?, ?)`,
		s.runID, unix(at), string(state), string(intent), cmd.Linear, cmd.Angular,
	)
	if err != nil {
		monitoring.Logf("failed to record command: %v", err)
	}
}

// ListTransitions returns the current run's transitions in order, newest
// last. limit <= 0 returns all of them.
func (s *Store) ListTransitions(limit int) ([]Transition, error) {
	query := `
		SELECT run_id, at_unix, from_state, to_state, reason
		FROM transitions
		WHERE run_id = ?
		ORDER BY transition_id
	`
	args := []interface{}{s.runID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transitions: %w", err)
	}
	defer rows.Close()

	transitions := []Transition{}
	for rows.Next() {
		var tr Transition
		if err := rows.Scan(&tr.RunID, &tr.AtUnix, &tr.From, &tr.To, &tr.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan transition: %w", err)
		}
		transitions = append(transitions, tr)
	}
	return transitions, rows.Err()
}

// CountCommands returns how many commands were recorded for the current run,
// grouped by intent.
func (s *Store) CountCommands() (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT intent, COUNT(*) FROM commands WHERE run_id = ? GROUP BY intent`,
		s.runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count commands: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var intent string
		var n int
		if err := rows.Scan(&intent, &n); err != nil {
			return nil, fmt.Errorf("failed to scan command count: %w", err)
		}
		counts[intent] = n
	}
	return counts, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func unix(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
