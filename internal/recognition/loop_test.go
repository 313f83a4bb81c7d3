package recognition

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/buildcrew/sitepulse-backend-go/internal/facematch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	openErr error
}

func (f *fakeSource) Open(ctx context.Context) error { return f.openErr }

func (f *fakeSource) Capture(ctx context.Context) (Frame, error) {
	return Frame{0x01}, nil
}

type fakeEmbedder struct {
	descriptor []float64
	err        error
}

func (f *fakeEmbedder) Extract(ctx context.Context, frame Frame) ([]float64, error) {
	return f.descriptor, f.err
}

type fakeStore struct {
	candidates []facematch.Candidate
	err        error
}

func (f *fakeStore) ListDescriptors(ctx context.Context) ([]facematch.Candidate, error) {
	return f.candidates, f.err
}

type fakeLedger struct {
	status  string
	markErr error
	today   []string
	marked  []string
}

func (f *fakeLedger) MarkAttendance(ctx context.Context, email string) (string, error) {
	if f.markErr != nil {
		return "", f.markErr
	}
	f.marked = append(f.marked, email)
	return f.status, nil
}

func (f *fakeLedger) ListToday(ctx context.Context) ([]string, error) {
	return f.today, nil
}

type recordingNotifier struct {
	found []string
	lost  int
}

func (r *recordingNotifier) MatchFound(email string) { r.found = append(r.found, email) }
func (r *recordingNotifier) MatchLost()              { r.lost++ }

func vec(fill float64) []float64 {
	d := make([]float64, 128)
	for i := range d {
		d[i] = fill
	}
	return d
}

func newTestLoop(embedder *fakeEmbedder, store *fakeStore, ledger *fakeLedger, notifier *recordingNotifier) *Loop {
	return NewLoop(
		&fakeSource{}, embedder, store, ledger, notifier,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		2*time.Second, facematch.Options{},
	)
}

func TestTick_NoFace(t *testing.T) {
	embedder := &fakeEmbedder{err: ErrNoFace}
	loop := newTestLoop(embedder, &fakeStore{}, &fakeLedger{}, &recordingNotifier{})

	loop.Tick(context.Background())

	snap := loop.Snapshot()
	assert.Equal(t, StateNoFace, snap.State)
	assert.Empty(t, snap.Email)
}

func TestTick_MatchAnnouncesOncePerTransition(t *testing.T) {
	store := &fakeStore{candidates: []facematch.Candidate{
		{Email: "alice@x.com", Descriptor: vec(0.0)},
		{Email: "bob@x.com", Descriptor: vec(0.5)},
	}}
	// Live descriptor matches bob at distance ~0.3 but alice is far away.
	live := vec(0.5)
	live[0] = 0.2
	embedder := &fakeEmbedder{descriptor: live}
	notifier := &recordingNotifier{}
	loop := newTestLoop(embedder, store, &fakeLedger{}, notifier)
	ctx := context.Background()

	loop.Tick(ctx)
	snap := loop.Snapshot()
	require.Equal(t, StateFaceMatched, snap.State)
	assert.Equal(t, "bob@x.com", snap.Email)
	assert.Equal(t, []string{"bob@x.com"}, notifier.found)

	// Same face on the next tick: matched, but silent.
	loop.Tick(ctx)
	assert.Equal(t, []string{"bob@x.com"}, notifier.found)
	assert.Equal(t, StateFaceMatched, loop.Snapshot().State)
}

func TestTick_DetectionBlinkDoesNotReannounce(t *testing.T) {
	store := &fakeStore{candidates: []facematch.Candidate{
		{Email: "bob@x.com", Descriptor: vec(0.0)},
	}}
	embedder := &fakeEmbedder{descriptor: vec(0.0)}
	notifier := &recordingNotifier{}
	ledger := &fakeLedger{}
	loop := newTestLoop(embedder, store, ledger, notifier)
	ctx := context.Background()

	loop.Tick(ctx)
	require.Equal(t, []string{"bob@x.com"}, notifier.found)

	// The detector misses one frame, then finds the same face again.
	embedder.err = ErrNoFace
	loop.Tick(ctx)
	assert.Equal(t, StateNoFace, loop.Snapshot().State)

	// Marking stays disabled while no face is on screen.
	_, _, err := loop.MarkAttendance(ctx)
	assert.ErrorIs(t, err, ErrNotMatched)

	embedder.err = nil
	loop.Tick(ctx)
	assert.Equal(t, StateFaceMatched, loop.Snapshot().State)
	assert.Equal(t, []string{"bob@x.com"}, notifier.found, "a blink must not re-chime")
}

func TestTick_FirstUnderThresholdBeatsNearest(t *testing.T) {
	// alice is within threshold but bob is nearer; store order wins.
	store := &fakeStore{candidates: []facematch.Candidate{
		{Email: "alice@x.com", Descriptor: vec(0.03)},
		{Email: "bob@x.com", Descriptor: vec(0.0)},
	}}
	embedder := &fakeEmbedder{descriptor: vec(0.0)}
	loop := newTestLoop(embedder, store, &fakeLedger{}, &recordingNotifier{})

	loop.Tick(context.Background())

	assert.Equal(t, "alice@x.com", loop.Snapshot().Email)
}

func TestTick_MatchLostAnnouncedOnce(t *testing.T) {
	store := &fakeStore{candidates: []facematch.Candidate{
		{Email: "alice@x.com", Descriptor: vec(0.0)},
	}}
	embedder := &fakeEmbedder{descriptor: vec(0.0)}
	notifier := &recordingNotifier{}
	loop := newTestLoop(embedder, store, &fakeLedger{}, notifier)
	ctx := context.Background()

	loop.Tick(ctx)
	require.Equal(t, StateFaceMatched, loop.Snapshot().State)

	// Stranger in front of the camera now.
	embedder.descriptor = vec(10.0)
	loop.Tick(ctx)
	assert.Equal(t, StateFaceUnmatched, loop.Snapshot().State)
	assert.Equal(t, 1, notifier.lost)

	loop.Tick(ctx)
	assert.Equal(t, 1, notifier.lost, "repeat unmatched ticks stay silent")
}

func TestTick_StoreFailureSkipsTickKeepingState(t *testing.T) {
	store := &fakeStore{candidates: []facematch.Candidate{
		{Email: "alice@x.com", Descriptor: vec(0.0)},
	}}
	embedder := &fakeEmbedder{descriptor: vec(0.0)}
	notifier := &recordingNotifier{}
	loop := newTestLoop(embedder, store, &fakeLedger{}, notifier)
	ctx := context.Background()

	loop.Tick(ctx)
	require.Equal(t, StateFaceMatched, loop.Snapshot().State)

	store.err = errors.New("store unreachable")
	loop.Tick(ctx)

	// Held match survives the failed tick; no spurious notifications.
	assert.Equal(t, StateFaceMatched, loop.Snapshot().State)
	assert.Equal(t, "alice@x.com", loop.Snapshot().Email)
	assert.Zero(t, notifier.lost)
}

func TestTick_InFlightGuardSkips(t *testing.T) {
	notifier := &recordingNotifier{}
	store := &fakeStore{candidates: []facematch.Candidate{
		{Email: "alice@x.com", Descriptor: vec(0.0)},
	}}
	loop := newTestLoop(&fakeEmbedder{descriptor: vec(0.0)}, store, &fakeLedger{}, notifier)

	loop.inFlight.Store(true)
	loop.Tick(context.Background())
	assert.Equal(t, StateNoFace, loop.Snapshot().State, "skipped tick must not touch state")

	loop.inFlight.Store(false)
	loop.Tick(context.Background())
	assert.Equal(t, StateFaceMatched, loop.Snapshot().State)
}

func TestMarkAttendance_OnlyWhileMatched(t *testing.T) {
	loop := newTestLoop(&fakeEmbedder{err: ErrNoFace}, &fakeStore{}, &fakeLedger{}, &recordingNotifier{})

	_, _, err := loop.MarkAttendance(context.Background())
	assert.ErrorIs(t, err, ErrNotMatched)
}

func TestMarkAttendance_ClearsHeldMatchForReannouncement(t *testing.T) {
	store := &fakeStore{candidates: []facematch.Candidate{
		{Email: "alice@x.com", Descriptor: vec(0.0)},
	}}
	embedder := &fakeEmbedder{descriptor: vec(0.0)}
	ledger := &fakeLedger{status: "marked", today: []string{"alice@x.com"}}
	notifier := &recordingNotifier{}
	loop := newTestLoop(embedder, store, ledger, notifier)
	ctx := context.Background()

	loop.Tick(ctx)
	require.Equal(t, StateFaceMatched, loop.Snapshot().State)

	status, today, err := loop.MarkAttendance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "marked", status)
	assert.Equal(t, []string{"alice@x.com"}, today)
	assert.Equal(t, []string{"alice@x.com"}, ledger.marked)
	assert.Empty(t, loop.Snapshot().Email)

	// Same face again: announced a second time.
	loop.Tick(ctx)
	assert.Equal(t, []string{"alice@x.com", "alice@x.com"}, notifier.found)
}

func TestMarkAttendance_AlreadyMarkedSurfacesStatus(t *testing.T) {
	store := &fakeStore{candidates: []facematch.Candidate{
		{Email: "alice@x.com", Descriptor: vec(0.0)},
	}}
	ledger := &fakeLedger{status: "already-marked"}
	loop := newTestLoop(&fakeEmbedder{descriptor: vec(0.0)}, store, ledger, &recordingNotifier{})
	ctx := context.Background()

	loop.Tick(ctx)
	status, _, err := loop.MarkAttendance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "already-marked", status)
}

func TestStart_DeviceErrorBlocksLoop(t *testing.T) {
	loop := NewLoop(
		&fakeSource{openErr: errors.New("camera unavailable")},
		&fakeEmbedder{}, &fakeStore{}, &fakeLedger{}, &recordingNotifier{},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		time.Second, facematch.Options{},
	)

	err := loop.Start(context.Background())
	assert.Error(t, err)
}
