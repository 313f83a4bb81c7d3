// Package recognition runs the kiosk-side polling state machine: grab a
// frame, embed it, match it against the enrolled descriptors, announce
// transitions, and expose the mark-attendance action while a face is
// matched.
package recognition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/buildcrew/sitepulse-backend-go/internal/facematch"
)

// State of the loop after the latest completed tick.
type State string

const (
	StateNoFace        State = "NO_FACE"
	StateFaceUnmatched State = "FACE_UNMATCHED"
	StateFaceMatched   State = "FACE_MATCHED"
)

// ErrNoFace is returned by an Embedder when the frame contains no
// detectable face.
var ErrNoFace = errors.New("no face detected in frame")

// ErrNotMatched is returned by MarkAttendance outside FACE_MATCHED.
var ErrNotMatched = errors.New("no face is currently matched")

// Frame is one captured camera frame, opaque to the loop.
type Frame []byte

// FrameSource produces camera frames. Open runs once at startup; a failure
// there blocks the recognition feature without crashing anything else.
type FrameSource interface {
	Open(ctx context.Context) error
	Capture(ctx context.Context) (Frame, error)
}

// Embedder turns a frame into a face descriptor. When the frame has more
// than one face, the first detected face wins. Returns ErrNoFace when the
// frame has none.
type Embedder interface {
	Extract(ctx context.Context, frame Frame) ([]float64, error)
}

// Store lists the enrolled descriptors, in enrollment order.
type Store interface {
	ListDescriptors(ctx context.Context) ([]facematch.Candidate, error)
}

// Ledger marks attendance and lists today's records.
type Ledger interface {
	MarkAttendance(ctx context.Context, email string) (status string, err error)
	ListToday(ctx context.Context) ([]string, error)
}

// Notifier receives the once-per-transition announcements (audio cue plus
// spoken text on the real kiosk).
type Notifier interface {
	MatchFound(email string)
	MatchLost()
}

// Snapshot is the externally visible loop state.
type Snapshot struct {
	State State
	Email string
}

// Loop drives the recognition state machine on a fixed-interval ticker.
// The held match is owned exclusively by the loop; callers only see
// snapshots and the MarkAttendance action.
type Loop struct {
	source   FrameSource
	embedder Embedder
	store    Store
	ledger   Ledger
	notifier Notifier
	logger   *slog.Logger

	period time.Duration
	opts   facematch.Options

	mu       sync.Mutex
	state    State
	held     string
	inFlight atomic.Bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewLoop(
	source FrameSource,
	embedder Embedder,
	store Store,
	ledger Ledger,
	notifier Notifier,
	logger *slog.Logger,
	period time.Duration,
	opts facematch.Options,
) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		source:   source,
		embedder: embedder,
		store:    store,
		ledger:   ledger,
		notifier: notifier,
		logger:   logger,
		period:   period,
		opts:     opts,
		state:    StateNoFace,
	}
}

// Start opens the frame source and begins ticking. A failed Open is a
// device error: the loop never starts and the caller decides what to do.
func (l *Loop) Start(ctx context.Context) error {
	if err := l.source.Open(ctx); err != nil {
		return fmt.Errorf("failed to open frame source: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel

	l.wg.Add(1)
	go l.run(runCtx)

	l.logger.Info("recognition loop started", "period", l.period, "threshold", l.opts.Threshold)
	return nil
}

// Stop stops the ticker and waits for an in-flight tick to finish.
func (l *Loop) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
	l.wg.Wait()
	l.logger.Info("recognition loop stopped")
}

func (l *Loop) run(ctx context.Context) {
	defer l.wg.Done()

	ticker := time.NewTicker(l.period)
	defer ticker.Stop()

	// Run immediately on start
	l.Tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Tick(ctx)
		}
	}
}

// Tick runs one body of the state machine. A tick that starts while the
// previous one is still running is skipped; a slow embedder must not
// corrupt the held match.
func (l *Loop) Tick(ctx context.Context) {
	if !l.inFlight.CompareAndSwap(false, true) {
		l.logger.Debug("tick already in flight, skipping")
		return
	}
	defer l.inFlight.Store(false)

	frame, err := l.source.Capture(ctx)
	if err != nil {
		l.logger.Warn("frame capture failed, skipping tick", "error", err)
		return
	}

	descriptor, err := l.embedder.Extract(ctx, frame)
	if err != nil {
		if errors.Is(err, ErrNoFace) {
			l.setNoFace()
			return
		}
		l.logger.Warn("descriptor extraction failed, skipping tick", "error", err)
		return
	}

	candidates, err := l.store.ListDescriptors(ctx)
	if err != nil {
		l.logger.Warn("descriptor store fetch failed, skipping tick", "error", err)
		return
	}

	result, found := facematch.Match(descriptor, candidates, l.opts)

	l.mu.Lock()
	defer l.mu.Unlock()

	if !found {
		if l.held != "" {
			l.held = ""
			if l.notifier != nil {
				l.notifier.MatchLost()
			}
		}
		l.state = StateFaceUnmatched
		return
	}

	if result.Email != l.held {
		l.held = result.Email
		if l.notifier != nil {
			l.notifier.MatchFound(result.Email)
		}
		l.logger.Info("face matched", "email", result.Email, "distance", result.Distance)
	}
	l.state = StateFaceMatched
}

// setNoFace updates only the displayed state. The held match survives a
// detection blink, so the same person stepping back into frame is not
// re-announced; MarkAttendance is still disabled because it gates on
// StateFaceMatched.
func (l *Loop) setNoFace() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = StateNoFace
}

// Snapshot returns the current state and matched identity, if any.
func (l *Loop) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Snapshot{State: l.state, Email: l.held}
}

// MarkAttendance records presence for the currently matched identity. It
// is only available in FACE_MATCHED. On success (including the idempotent
// already-marked outcome) the held match is cleared so the next re-match
// announces again, and the refreshed day listing is returned.
func (l *Loop) MarkAttendance(ctx context.Context) (status string, today []string, err error) {
	l.mu.Lock()
	email := l.held
	matched := l.state == StateFaceMatched
	l.mu.Unlock()

	if !matched || email == "" {
		return "", nil, ErrNotMatched
	}

	status, err = l.ledger.MarkAttendance(ctx, email)
	if err != nil {
		return "", nil, err
	}

	today, err = l.ledger.ListToday(ctx)
	if err != nil {
		l.logger.Warn("failed to refresh today's attendance", "error", err)
		today = nil
		err = nil
	}

	l.mu.Lock()
	l.held = ""
	l.state = StateFaceUnmatched
	l.mu.Unlock()

	return status, today, nil
}
