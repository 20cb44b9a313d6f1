package openhours

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xevion/go-openhours/internal/rows"
	"github.com/Xevion/go-openhours/types"
)

const mixedInput = `id;name;city;opening_hours
1;Bakery;Berlin;Mo-Fr 09:00-17:00
2;Kiosk;Berlin;Mo-Fr 9uhr-17uhr
3;Bar;Hamburg;Mo-Fr 7:30-23:00, Sa 09:00-12:00
4;Station;Munich;24/7
5;Broken
6;Church;Cologne;Su off
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readOutput(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

func newTestApp(t *testing.T, input, output string, workers int) *App {
	t.Helper()
	app, err := NewApp(types.NewAppRequest{
		Input:   input,
		Output:  output,
		Day:     "we",
		Time:    "12:00",
		Workers: workers,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestAppRun(t *testing.T) {
	input := writeInput(t, mixedInput)
	output := filepath.Join(t.TempDir(), "output.csv")

	summary, err := newTestApp(t, input, output, 3).Run()
	require.NoError(t, err)

	records := readOutput(t, output)
	require.Len(t, records, 7)
	assert.Equal(t, rows.Header, records[0])
	assert.Equal(t, []string{"mo-fr 09:00-17:00", "valid", "open", "[mo tu we th fr] 09:00-17:00"}, records[1])
	assert.Equal(t, []string{"mo-fr 9uhr-17uhr", "invalid", "", ""}, records[2])

	assert.Equal(t, []string{"mo-fr 7:30-23:00, sa 09:00-12:00", "valid", ""}, records[3][:3])
	assert.Contains(t, records[3][3], "check the commas and semicolons")

	assert.Equal(t, []string{"24/7", "valid", "open", "[mo tu we th fr sa su] 00:00-23:59"}, records[4])
	assert.Equal(t, []string{"", "invalid", "", ""}, records[5])
	assert.Equal(t, []string{"su off", "valid", "", ""}, records[6])

	assert.Equal(t, Summary{Rows: 6, Invalid: 2, Unparseable: 1, Open: 2}, summary)
}

func TestAppRun_Formats(t *testing.T) {
	input := writeInput(t, "id;name;city;oh\n1;a;b;Sa 09:00-12:00, 14:00-18:00\n")

	tests := []struct {
		format   string
		expected string
	}{
		{format: "text", expected: "[sa] 09:00-12:00,14:00-18:00"},
		{format: "json", expected: `[{"days":["sa"],"intervals":[{"start":"09:00","end":"12:00"},{"start":"14:00","end":"18:00"}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "output.csv")
			app, err := NewApp(types.NewAppRequest{
				Input:  input,
				Output: output,
				Day:    "sa",
				Time:   "15:00",
				Format: tt.format,
			})
			require.NoError(t, err)
			defer app.Close()

			_, err = app.Run()
			require.NoError(t, err)

			records := readOutput(t, output)
			require.Len(t, records, 2)
			assert.Equal(t, []string{"sa 09:00-12:00, 14:00-18:00", "valid", "open", tt.expected}, records[1])
		})
	}
}

func TestAppRun_PreservesOrder(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("id;name;city;oh\n")
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&sb, "%d;n;c;mo %d:00-%d:30\n", i, i%24, i%24)
	}
	input := writeInput(t, sb.String())
	output := filepath.Join(t.TempDir(), "output.csv")

	summary, err := newTestApp(t, input, output, 8).Run()
	require.NoError(t, err)
	assert.Equal(t, 200, summary.Rows)

	records := readOutput(t, output)
	require.Len(t, records, 201)
	for i, record := range records[1:] {
		assert.Equal(t, fmt.Sprintf("mo %d:00-%d:30", i%24, i%24), record[0])
	}
}

func TestAppRun_Appends(t *testing.T) {
	input := writeInput(t, mixedInput)
	output := filepath.Join(t.TempDir(), "output.csv")

	for i := 0; i < 2; i++ {
		_, err := newTestApp(t, input, output, 2).Run()
		require.NoError(t, err)
	}

	records := readOutput(t, output)
	require.Len(t, records, 14)
	assert.Equal(t, rows.Header, records[0])
	assert.Equal(t, rows.Header, records[7])
	assert.Equal(t, records[1:7], records[8:])
}

func TestAppRun_EmptyInput(t *testing.T) {
	input := writeInput(t, "")
	output := filepath.Join(t.TempDir(), "output.csv")

	summary, err := newTestApp(t, input, output, 2).Run()
	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
	assert.Equal(t, [][]string{rows.Header}, readOutput(t, output))
}

func TestAppRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := newTestApp(t, filepath.Join(dir, "nope.csv"), filepath.Join(dir, "output.csv"), 1).Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestAppRun_BadOutput(t *testing.T) {
	input := writeInput(t, mixedInput)
	output := filepath.Join(t.TempDir(), "missing", "output.csv")

	_, err := newTestApp(t, input, output, 1).Run()
	assert.Error(t, err)
}

func TestAppRun_RemoteInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/places.csv" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(mixedInput))
	}))
	defer server.Close()

	output := filepath.Join(t.TempDir(), "output.csv")
	app := newTestApp(t, server.URL+"/places.csv", output, 2)
	require.NotNil(t, app.httpClient)

	summary, err := app.Run()
	require.NoError(t, err)
	assert.Equal(t, 6, summary.Rows)
	assert.Len(t, readOutput(t, output), 7)

	missing := newTestApp(t, server.URL+"/other.csv", output, 2)
	_, err = missing.Run()
	assert.Error(t, err)
}

func TestNewApp_InvalidArgs(t *testing.T) {
	valid := types.NewAppRequest{Input: "in.csv", Output: "out.csv", Day: "mo", Time: "9:00"}

	tests := []struct {
		name   string
		modify func(r *types.NewAppRequest)
	}{
		{name: "missing input", modify: func(r *types.NewAppRequest) { r.Input = "" }},
		{name: "missing output", modify: func(r *types.NewAppRequest) { r.Output = "" }},
		{name: "bad day", modify: func(r *types.NewAppRequest) { r.Day = "xx" }},
		{name: "bad time", modify: func(r *types.NewAppRequest) { r.Time = "25:00" }},
		{name: "bad format", modify: func(r *types.NewAppRequest) { r.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := valid
			tt.modify(&request)
			app, err := NewApp(request)
			assert.Nil(t, app)
			assert.ErrorIs(t, err, ErrInvalidArgs)
		})
	}
}

func TestNewApp_Defaults(t *testing.T) {
	app, err := NewApp(types.NewAppRequest{Input: "in.csv", Output: "out.csv", Day: "Tuesday", Time: "7:05"})
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, Tuesday, app.day)
	assert.Equal(t, ClockTime(425), app.time)
	assert.Equal(t, FormatText, app.format)
	assert.Positive(t, app.workers)
	assert.Nil(t, app.httpClient)
}

func TestAppClose(t *testing.T) {
	app := &App{
		ctx:       context.Background(),
		ctxCancel: func() {},
	}

	err := app.Close()
	assert.NoError(t, err)
}

func TestAppCloseWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		ctx:       ctx,
		ctxCancel: cancel,
	}

	err := app.Close()
	assert.NoError(t, err)

	select {
	case <-ctx.Done():
	default:
		t.Error("Context was not cancelled by Close()")
	}
}

func TestAppWithNilFields(t *testing.T) {
	app := &App{}
	assert.NoError(t, app.Close())
}

func TestAppRun_Cancelled(t *testing.T) {
	input := writeInput(t, mixedInput)
	output := filepath.Join(t.TempDir(), "output.csv")

	app := newTestApp(t, input, output, 1)
	require.NoError(t, app.Close())

	type runResult struct {
		summary Summary
		err     error
	}
	done := make(chan runResult, 1)
	go func() {
		summary, err := app.Run()
		done <- runResult{summary, err}
	}()

	select {
	case r := <-done:
		assert.ErrorIs(t, r.err, context.Canceled)
		assert.Equal(t, Summary{}, r.summary)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Close")
	}

	assert.Equal(t, [][]string{rows.Header}, readOutput(t, output))
}

func TestAppRun_SingleRow(t *testing.T) {
	input := writeInput(t, "id;name;city;oh\n1;x;y;mo-fr 09:00-17:00\n")
	output := filepath.Join(t.TempDir(), "output.csv")

	summary, err := newTestApp(t, input, output, 1).Run()
	require.NoError(t, err)
	assert.Equal(t, Summary{Rows: 1, Open: 1}, summary)
	assert.Equal(t, [][]string{
		rows.Header,
		{"mo-fr 09:00-17:00", "valid", "open", "[mo tu we th fr] 09:00-17:00"},
	}, readOutput(t, output))
}

func TestAppRun_SkippedRanges(t *testing.T) {
	input := writeInput(t, "id;name;city;oh\n1;x;y;we 10:00-14:00, 15:00\n2;x;y;we 10:00-14:00\n")
	output := filepath.Join(t.TempDir(), "output.csv")

	summary, err := newTestApp(t, input, output, 2).Run()
	require.NoError(t, err)
	assert.Equal(t, Summary{Rows: 2, Open: 2, SkippedRange: 1}, summary)
}

func TestItemCompare(t *testing.T) {
	a := Item{Priority: 1}
	b := Item{Priority: 2}
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(Item{Priority: 1}))
}
