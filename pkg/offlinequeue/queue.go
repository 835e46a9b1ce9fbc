// Package offlinequeue persists non-idempotent HTTP requests that failed for lack of
// connectivity and replays them when the device comes back online.
//
// Each entry moves pending -> replaying -> {deleted | pending}. Entries found in
// replaying on Open were interrupted by a crash and go back to pending, so a replay
// may repeat; the queued operations must be idempotent at the application level.
package offlinequeue

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/errors"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

// State is the replay state of a queued request.
type State string

const (
	StatePending   State = "pending"
	StateReplaying State = "replaying"
)

const schema = `
CREATE TABLE IF NOT EXISTS offline_requests (
	id         TEXT PRIMARY KEY,
	seq        INTEGER NOT NULL,
	method     TEXT NOT NULL,
	url        TEXT NOT NULL,
	headers    TEXT NOT NULL,
	body       BLOB,
	state      TEXT NOT NULL,
	attempts   INTEGER NOT NULL DEFAULT 0,
	last_error TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_offline_requests_state_seq ON offline_requests (state, seq);
`

// Request is one queued mutation.
type Request struct {
	ID        string
	Method    string
	URL       string
	Header    http.Header
	Body      []byte
	State     State
	Attempts  int
	LastError string
	CreatedAt time.Time
}

// Doer executes a replayed request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ReplayReport summarizes one replay pass.
type ReplayReport struct {
	Replayed int // succeeded and removed
	Rejected int // refused by the server and removed
	Requeued int // failed again and back to pending
}

// Queue is the sqlite-backed durable store.
type Queue struct {
	db     *sql.DB
	now    func() time.Time
	logger *slog.Logger

	// replayMu keeps a second pass from picking up rows another pass holds in replaying.
	replayMu sync.Mutex
}

// Option configures a Queue.
type Option func(*Queue)

// WithLogger sets the logger used for replay outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(q *Queue) { q.logger = logger }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) { q.now = now }
}

// Open opens or creates the queue database at path and recovers entries stranded in replaying.
func Open(ctx context.Context, path string, opts ...Option) (*Queue, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open offline queue")
	}
	// sqlite serializes writers; one connection avoids SQLITE_BUSY between our own statements
	db.SetMaxOpenConns(1)

	q := &Queue{db: db, now: time.Now, logger: slog.Default()}
	for _, opt := range opts {
		opt(q)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "failed to create offline queue schema")
	}

	res, err := db.ExecContext(ctx, `UPDATE offline_requests SET state = ? WHERE state = ?`, StatePending, StateReplaying)
	if err != nil {
		db.Close()

		return nil, errors.Wrap(err, "failed to recover interrupted replays")
	}
	if n, _ := res.RowsAffected(); n > 0 {
		q.logger.Info("[OfflineQueue] Recovered interrupted replays", slog.Int64("count", n))
	}

	return q, nil
}

// Close closes the database.
func (q *Queue) Close() error {
	return errors.WithStack(q.db.Close())
}

// Enqueue stores a copy of req with the given body as pending.
func (q *Queue) Enqueue(ctx context.Context, req *http.Request, body []byte) (*Request, error) {
	header := req.Header.Clone()
	if header == nil {
		header = http.Header{}
	}
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	now := q.now()
	entry := &Request{
		ID:        uuid.New().String(),
		Method:    req.Method,
		URL:       req.URL.String(),
		Header:    header,
		Body:      body,
		State:     StatePending,
		CreatedAt: now,
	}

	_, err = q.db.ExecContext(ctx,
		`INSERT INTO offline_requests (id, seq, method, url, headers, body, state, created_at)
		 VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM offline_requests), ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Method, entry.URL, string(headerJSON), entry.Body, entry.State, now.UnixMilli(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to enqueue request")
	}

	return entry, nil
}

// List returns every queued request in enqueue order.
func (q *Queue) List(ctx context.Context) ([]*Request, error) {
	return q.query(ctx, `SELECT id, method, url, headers, body, state, attempts, last_error, created_at
		FROM offline_requests ORDER BY seq`)
}

// Len returns the number of queued requests.
func (q *Queue) Len(ctx context.Context) (int, error) {
	var n int
	if err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM offline_requests`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "failed to count queued requests")
	}

	return n, nil
}

// Replay moves every pending entry to replaying and sends each once, in enqueue order.
// Successes and server rejections are removed; everything else returns to pending.
// Concurrent calls run one after another.
func (q *Queue) Replay(ctx context.Context, doer Doer) (*ReplayReport, error) {
	q.replayMu.Lock()
	defer q.replayMu.Unlock()

	if _, err := q.db.ExecContext(ctx, `UPDATE offline_requests SET state = ? WHERE state = ?`, StateReplaying, StatePending); err != nil {
		return nil, errors.Wrap(err, "failed to claim pending requests")
	}

	entries, err := q.query(ctx, `SELECT id, method, url, headers, body, state, attempts, last_error, created_at
		FROM offline_requests WHERE state = ? ORDER BY seq`, StateReplaying)
	if err != nil {
		return nil, err
	}

	// Bookkeeping must land even when ctx is canceled mid-send
	storeCtx := context.WithoutCancel(ctx)

	report := &ReplayReport{}
	for _, entry := range entries {
		if ctx.Err() != nil {
			// Unsent entries stay replaying until the next Open or Replay picks them up
			break
		}

		outcome, sendErr := q.send(ctx, doer, entry)
		logger := q.logger.With(slog.String("id", entry.ID), slog.String("method", entry.Method), slog.String("url", entry.URL))

		switch outcome {
		case outcomeDone, outcomeRejected:
			if err := q.delete(storeCtx, entry.ID); err != nil {
				return report, err
			}
			if outcome == outcomeDone {
				report.Replayed++
			} else {
				report.Rejected++
				logger.Warn("[OfflineQueue] Server rejected replayed request, dropping", slog.Any("error", sendErr))
			}
		default:
			if err := q.requeue(storeCtx, entry.ID, sendErr); err != nil {
				return report, err
			}
			report.Requeued++
			logger.Info("[OfflineQueue] Replay failed, kept queued", slog.Any("error", sendErr))
		}
	}

	// Leftovers from an interrupted pass are retried next time
	if ctx.Err() != nil {
		if _, err := q.db.ExecContext(storeCtx, `UPDATE offline_requests SET state = ? WHERE state = ?`, StatePending, StateReplaying); err != nil {
			return report, errors.Wrap(err, "failed to release unsent requests")
		}

		return report, errors.WithStack(ctx.Err())
	}

	return report, nil
}

// Run replays the queue on every connectivity signal until ctx is done.
func (q *Queue) Run(ctx context.Context, online <-chan struct{}, doer Doer) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-online:
			if !ok {
				return nil
			}
			report, err := q.Replay(ctx, doer)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				q.logger.Error("[OfflineQueue] Replay pass failed", slog.Any("error", err))

				continue
			}
			q.logger.Info("[OfflineQueue] Replay pass finished",
				slog.Int("replayed", report.Replayed),
				slog.Int("rejected", report.Rejected),
				slog.Int("requeued", report.Requeued),
			)
		}
	}
}

type outcome int

const (
	outcomeDone outcome = iota
	outcomeRejected
	outcomeRetry
)

func (q *Queue) send(ctx context.Context, doer Doer, entry *Request) (outcome, error) {
	req, err := http.NewRequestWithContext(ctx, entry.Method, entry.URL, bytes.NewReader(entry.Body))
	if err != nil {
		// A stored request that cannot be rebuilt will never succeed
		return outcomeRejected, errors.Wrap(err, "failed to rebuild request")
	}
	req.Header = entry.Header.Clone()
	req.Header.Set(HeaderReplayID, entry.ID)

	resp, err := doer.Do(req)
	if err != nil {
		return outcomeRetry, errors.Wrap(domainerrors.ErrQueueReplay, err.Error())
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode < http.StatusBadRequest:
		return outcomeDone, nil
	case retryableStatus(resp.StatusCode):
		return outcomeRetry, errors.Wrapf(domainerrors.ErrQueueReplay, "status %d", resp.StatusCode)
	default:
		return outcomeRejected, errors.Errorf("status %d", resp.StatusCode)
	}
}

func retryableStatus(code int) bool {
	return code >= http.StatusInternalServerError || code == http.StatusRequestTimeout || code == http.StatusTooManyRequests
}

func (q *Queue) delete(ctx context.Context, id string) error {
	if _, err := q.db.ExecContext(ctx, `DELETE FROM offline_requests WHERE id = ?`, id); err != nil {
		return errors.Wrap(err, "failed to delete replayed request")
	}

	return nil
}

func (q *Queue) requeue(ctx context.Context, id string, cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	if _, err := q.db.ExecContext(ctx,
		`UPDATE offline_requests SET state = ?, attempts = attempts + 1, last_error = ? WHERE id = ?`,
		StatePending, msg, id,
	); err != nil {
		return errors.Wrap(err, "failed to requeue request")
	}

	return nil
}

func (q *Queue) query(ctx context.Context, query string, args ...any) ([]*Request, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query queued requests")
	}
	defer rows.Close()

	var entries []*Request
	for rows.Next() {
		var (
			entry      Request
			headerJSON string
			state      string
			createdAt  int64
		)
		if err := rows.Scan(&entry.ID, &entry.Method, &entry.URL, &headerJSON, &entry.Body, &state,
			&entry.Attempts, &entry.LastError, &createdAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan queued request")
		}
		if err := json.Unmarshal([]byte(headerJSON), &entry.Header); err != nil {
			return nil, errors.Wrap(err, "failed to decode queued headers")
		}
		entry.State = State(state)
		entry.CreatedAt = time.UnixMilli(createdAt)
		entries = append(entries, &entry)
	}

	return entries, errors.WithStack(rows.Err())
}
