package offlinequeue

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"syscall"

	"upkeep/internal/errors"
)

// HeaderReplayID identifies a replayed request so servers can deduplicate it.
const HeaderReplayID = "X-Offline-Replay-Id"

// ErrQueued reports that a request was stored for later replay instead of sent.
var ErrQueued = errors.New("request queued for replay while offline")

// QueuedError carries the ID of the stored request. It matches ErrQueued.
type QueuedError struct {
	ID    string
	Cause error
}

func (e *QueuedError) Error() string {
	return ErrQueued.Error() + ": " + e.Cause.Error()
}

func (e *QueuedError) Is(target error) bool {
	return target == ErrQueued
}

func (e *QueuedError) Unwrap() error {
	return e.Cause
}

// Transport is an http.RoundTripper that queues POST, PUT and DELETE requests failing
// on connectivity. Server responses, including errors, are returned untouched.
type Transport struct {
	// Base performs the actual round trip; http.DefaultTransport when nil.
	Base  http.RoundTripper
	Queue *Queue
	// IsConnectivityError overrides the default network error classification.
	IsConnectivityError func(error) bool
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !queueable(req.Method) {
		return t.base().RoundTrip(req)
	}

	body, err := readBody(req)
	if err != nil {
		return nil, err
	}

	out := req.Clone(req.Context())
	out.Body = io.NopCloser(bytes.NewReader(body))
	out.ContentLength = int64(len(body))
	out.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}

	resp, err := t.base().RoundTrip(out)
	if err == nil {
		return resp, nil
	}

	// A canceled caller is not an outage
	if req.Context().Err() != nil || !t.isConnectivityError(err) {
		return nil, err
	}

	entry, qErr := t.Queue.Enqueue(context.WithoutCancel(req.Context()), req, body)
	if qErr != nil {
		return nil, errors.Join(err, qErr)
	}

	return nil, &QueuedError{ID: entry.ID, Cause: err}
}

// Sync replays the queue through Base, bypassing this transport so failures are not queued twice.
func (t *Transport) Sync(ctx context.Context) (*ReplayReport, error) {
	return t.Queue.Replay(ctx, &http.Client{Transport: t.base()})
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}

	return http.DefaultTransport
}

func (t *Transport) isConnectivityError(err error) bool {
	if t.IsConnectivityError != nil {
		return t.IsConnectivityError(err)
	}

	return IsConnectivityError(err)
}

func queueable(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

func readBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to buffer request body")
	}

	return body, nil
}

// IsConnectivityError reports whether err means the server could not be reached:
// DNS failures, refused or reset connections, unreachable networks and dial timeouts.
func IsConnectivityError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	for _, errno := range []syscall.Errno{
		syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.ENETUNREACH,
		syscall.EHOSTUNREACH, syscall.ENETDOWN, syscall.ECONNABORTED,
	} {
		if errors.Is(err, errno) {
			return true
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Op == "dial" || opErr.Timeout()
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return errors.Is(err, io.ErrUnexpectedEOF)
}
