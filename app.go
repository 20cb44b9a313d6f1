package openhours

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/Workiva/go-datastructures/queue"
	"golang.org/x/sync/errgroup"

	"github.com/Xevion/go-openhours/internal"
	"github.com/Xevion/go-openhours/internal/rows"
	"github.com/Xevion/go-openhours/types"
)

var ErrInvalidArgs = errors.New("invalid arguments provided")

// App evaluates every row of an input file against one query day and time
// and appends the results to an output file.
type App struct {
	ctx       context.Context
	ctxCancel context.CancelFunc

	httpClient *internal.HttpClient

	input   string
	output  string
	day     Weekday
	time    ClockTime
	format  Format
	workers int
}

// Summary counts the rows written by Run.
type Summary struct {
	Rows         int
	Invalid      int
	Unparseable  int
	Open         int
	Closed       int
	SkippedRange int
}

type Item types.Item

func (i Item) Compare(other queue.Item) int {
	if i.Priority > other.(Item).Priority {
		return 1
	} else if i.Priority == other.(Item).Priority {
		return 0
	}
	return -1
}

// result is one output row waiting to be written in input order.
type result struct {
	index   int
	record  []string
	outcome Outcome
	short   bool
}

// NewApp validates the request and returns an App ready to Run.
func NewApp(request types.NewAppRequest) (*App, error) {
	if request.Input == "" || request.Output == "" {
		slog.Error("Input and Output are required arguments in NewAppRequest")
		return nil, ErrInvalidArgs
	}

	day, err := ParseWeekday(string(request.Day))
	if err != nil {
		return nil, fmt.Errorf("%w: day: %w", ErrInvalidArgs, err)
	}
	t, err := ParseClock(string(request.Time))
	if err != nil {
		return nil, fmt.Errorf("%w: time: %w", ErrInvalidArgs, err)
	}
	format, err := ParseFormat(request.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	workers := request.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, ctxCancel := context.WithCancel(context.Background())

	app := &App{
		ctx:       ctx,
		ctxCancel: ctxCancel,
		input:     request.Input,
		output:    request.Output,
		day:       day,
		time:      t,
		format:    format,
		workers:   workers,
	}
	if internal.IsRemote(request.Input) {
		app.httpClient = internal.NewHttpClient(ctx, request.HTTPTimeout)
	}
	return app, nil
}

// Close cancels a running Run and releases the HTTP client.
func (app *App) Close() error {
	if app.ctxCancel != nil {
		app.ctxCancel()
	}
	if app.httpClient != nil {
		return app.httpClient.Close()
	}
	return nil
}

// openInput returns the input as a reader, downloading it first when it is
// a URL.
func (app *App) openInput() (io.ReadCloser, error) {
	if app.httpClient != nil {
		body, err := app.httpClient.Fetch(app.input)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch input %q: %w", app.input, err)
		}
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	f, err := os.Open(app.input)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

// Run reads every input row, evaluates rows in parallel and appends one
// output row per input row, in input order. Only I/O failures are returned;
// rows that cannot be parsed are reported in the output.
func (app *App) Run() (Summary, error) {
	var summary Summary

	in, err := app.openInput()
	if err != nil {
		return summary, err
	}
	defer in.Close()

	reader, err := rows.NewReader(in)
	if err != nil {
		return summary, fmt.Errorf("failed to read input %q: %w", app.input, err)
	}

	out, err := rows.OpenAppend(app.output)
	if err != nil {
		return summary, err
	}
	defer out.Close()

	if err := out.WriteHeader(); err != nil {
		return summary, err
	}

	slog.Info("Starting", "input", app.input, "output", app.output, "day", app.day, "time", app.time, "workers", app.workers)

	ctx, cancel := context.WithCancel(app.ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan rows.Row)
	results := make(chan Item, app.workers)

	g.Go(func() error {
		defer close(jobs)
		for {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := reader.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case jobs <- row:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	for w := 0; w < app.workers; w++ {
		g.Go(func() error {
			for row := range jobs {
				r := app.evaluateRow(row)
				select {
				case results <- Item{Value: &r, Priority: float64(r.index)}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
		close(results)
	}()

	pending := queue.NewPriorityQueue(app.workers, false)
	defer pending.Dispose()

	next := 0
	var writeErr error
	for item := range results {
		if writeErr != nil {
			continue
		}
		if err := pending.Put(item); err != nil {
			writeErr = err
			cancel()
			continue
		}
		for !pending.Empty() {
			if pending.Peek().(Item).Priority != float64(next) {
				break
			}
			items, err := pending.Get(1)
			if err != nil {
				writeErr = err
				cancel()
				break
			}
			r := items[0].(Item).Value.(*result)
			if err := out.Write(r.record); err != nil {
				writeErr = err
				cancel()
				break
			}
			summary.add(*r)
			next++
		}
	}

	if writeErr != nil {
		<-done
		return summary, writeErr
	}
	if err := <-done; err != nil {
		return summary, fmt.Errorf("failed to read input %q: %w", app.input, err)
	}
	return summary, nil
}

// evaluateRow turns one input row into the output record.
func (app *App) evaluateRow(row rows.Row) result {
	oh, ok := row.OpeningHours()
	if !ok {
		slog.Warn("Row has no opening hours column", "row", row.Index, "fields", len(row.Fields))
		return result{
			index:  row.Index,
			record: []string{"", "invalid", "", ""},
			short:  true,
		}
	}

	out := Evaluate(oh, app.day, app.time)
	if out.Skipped != nil {
		slog.Debug("Time ranges skipped", "row", row.Index, "oh", out.Normalized, "error", out.Skipped)
	}

	r := result{index: row.Index, outcome: out}
	switch {
	case !out.Valid:
		r.record = []string{out.Normalized, "invalid", "", ""}
	case out.Err != nil:
		r.record = []string{out.Normalized, "valid", "", out.Err.Error()}
	default:
		rendered, err := out.Schedule.Render(app.format)
		if err != nil {
			slog.Warn("Failed to render schedule", "row", row.Index, "error", err)
			rendered = err.Error()
		}
		r.record = []string{out.Normalized, "valid", string(out.Open), rendered}
	}
	return r
}

func (s *Summary) add(r result) {
	s.Rows++
	switch {
	case r.short || !r.outcome.Valid:
		s.Invalid++
	case r.outcome.Err != nil:
		s.Unparseable++
	case r.outcome.Open == Open:
		s.Open++
	case r.outcome.Open == Closed:
		s.Closed++
	}
	if r.outcome.Skipped != nil {
		s.SkippedRange++
	}
}
