package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/buildcrew/sitepulse-backend-go/internal/apiclient"
	"github.com/buildcrew/sitepulse-backend-go/internal/config"
	"github.com/buildcrew/sitepulse-backend-go/internal/facematch"
	"github.com/buildcrew/sitepulse-backend-go/internal/recognition"
)

// fixtureCamera replays pre-extracted descriptors from a JSON file in place
// of a physical camera. Each entry is one frame; an empty descriptor stands
// for a frame with no detectable face. The sequence loops forever so the
// kiosk keeps cycling through the fixture.
type fixtureCamera struct {
	path   string
	frames [][]float64
	next   int
}

func (c *fixtureCamera) Open(ctx context.Context) error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("failed to open camera fixture: %w", err)
	}
	if err := json.Unmarshal(data, &c.frames); err != nil {
		return fmt.Errorf("failed to parse camera fixture: %w", err)
	}
	if len(c.frames) == 0 {
		return errors.New("camera fixture contains no frames")
	}
	return nil
}

func (c *fixtureCamera) Capture(ctx context.Context) (recognition.Frame, error) {
	frame, err := json.Marshal(c.frames[c.next%len(c.frames)])
	if err != nil {
		return nil, err
	}
	c.next++
	return frame, nil
}

// fixtureEmbedder decodes the descriptor the fixtureCamera packed into the
// frame. A real deployment swaps this pair for a camera and a face model.
type fixtureEmbedder struct{}

func (fixtureEmbedder) Extract(ctx context.Context, frame recognition.Frame) ([]float64, error) {
	var descriptor []float64
	if err := json.Unmarshal(frame, &descriptor); err != nil {
		return nil, err
	}
	if len(descriptor) == 0 {
		return nil, recognition.ErrNoFace
	}
	return descriptor, nil
}

// consoleNotifier announces transitions on the terminal. The \a is the
// terminal bell, standing in for the kiosk chime.
type consoleNotifier struct{}

func (consoleNotifier) MatchFound(email string) {
	fmt.Printf("\a>> Welcome, %s! Press Enter to mark attendance.\n", email)
}

func (consoleNotifier) MatchLost() {
	fmt.Println(">> Face lost, watching for the next one.")
}

func main() {
	fixturePath := flag.String("fixture", "kiosk_frames.json", "path to the camera fixture file")
	flag.Parse()

	cfg, err := config.LoadKiosk()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	client := apiclient.New(cfg.APIBaseURL)

	loop := recognition.NewLoop(
		&fixtureCamera{path: *fixturePath},
		fixtureEmbedder{},
		client,
		client,
		consoleNotifier{},
		logger,
		cfg.Period,
		facematch.Options{
			Threshold: cfg.Threshold,
			Nearest:   cfg.Nearest,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Start(ctx); err != nil {
		// The kiosk stays up so enrollment and the API keep working; only
		// recognition is unavailable until the camera comes back.
		logger.Error("camera unavailable, recognition disabled", slog.Any("error", err))
		<-ctx.Done()
		return
	}
	logger.Info("recognition loop running",
		slog.String("api", cfg.APIBaseURL),
		slog.Duration("period", cfg.Period),
		slog.Float64("threshold", cfg.Threshold),
	)

	// Enter marks attendance for the currently matched face, the way the
	// kiosk's on-screen button does.
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			status, today, err := loop.MarkAttendance(ctx)
			if err != nil {
				if errors.Is(err, recognition.ErrNotMatched) {
					fmt.Println(">> No face is matched right now.")
					continue
				}
				logger.Error("failed to mark attendance", slog.Any("error", err))
				continue
			}
			fmt.Printf(">> Attendance: %s (today: %d marked)\n", status, len(today))
		}
	}()

	<-ctx.Done()
	loop.Stop()
	logger.Info("kiosk stopped")
}
