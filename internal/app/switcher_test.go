package app

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"appswitch/internal/storage"
	"appswitch/internal/wm"
	"appswitch/pkg/logger"
)

// fakeWindowServer is an in-memory WindowServer fixture.
type fakeWindowServer struct {
	windows       []wm.Window
	listErr       error
	activateErr   error
	activatedPIDs []int
}

func (f *fakeWindowServer) ListWindows() ([]wm.Window, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.windows, nil
}

func (f *fakeWindowServer) ActivateProcess(pid int) error {
	f.activatedPIDs = append(f.activatedPIDs, pid)
	return f.activateErr
}

func (f *fakeWindowServer) Name() string { return "fake" }

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(
		logger.WithFile(filepath.Join(t.TempDir(), "test.log")),
		logger.WithLevel(zerolog.Disabled),
	)
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	t.Cleanup(func() { log.Close() })
	return log
}

func newTestApp(t *testing.T, server wm.WindowServer) (*AppSwitch, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &AppSwitch{
		log:    newTestLogger(t),
		server: server,
		out:    out,
	}, out
}

func TestSwitchTo_singleMatch(t *testing.T) {
	server := &fakeWindowServer{
		windows: []wm.Window{{OwnerName: "Safari", OwnerPID: 501}},
	}
	a, out := newTestApp(t, server)

	if err := a.SwitchTo("Safari"); err != nil {
		t.Fatalf("SwitchTo returned error: %v", err)
	}
	if len(server.activatedPIDs) != 1 || server.activatedPIDs[0] != 501 {
		t.Errorf("activated pids = %v, want [501]", server.activatedPIDs)
	}
	if !strings.Contains(out.String(), "PID: 501") {
		t.Errorf("output %q should contain %q", out.String(), "PID: 501")
	}
	if !strings.Contains(out.String(), "Switched to: Safari") {
		t.Errorf("output %q should contain %q", out.String(), "Switched to: Safari")
	}
}

func TestSwitchTo_notFound(t *testing.T) {
	server := &fakeWindowServer{
		windows: []wm.Window{{OwnerName: "Finder", OwnerPID: 100}},
	}
	a, out := newTestApp(t, server)

	err := a.SwitchTo("Nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("SwitchTo error = %v, want ErrNotFound", err)
	}
	if !strings.Contains(out.String(), "not found") {
		t.Errorf("output %q should contain %q", out.String(), "not found")
	}
	if len(server.activatedPIDs) != 0 {
		t.Errorf("no activation expected, got %v", server.activatedPIDs)
	}
}

func TestSwitchTo_caseInsensitive(t *testing.T) {
	server := &fakeWindowServer{
		windows: []wm.Window{{OwnerName: "Safari", OwnerPID: 501}},
	}
	a, _ := newTestApp(t, server)

	if err := a.SwitchTo("safari"); err != nil {
		t.Fatalf("lowercase fragment should match: %v", err)
	}
	if len(server.activatedPIDs) != 1 || server.activatedPIDs[0] != 501 {
		t.Errorf("activated pids = %v, want [501]", server.activatedPIDs)
	}
}

func TestSwitchTo_substringMatch(t *testing.T) {
	server := &fakeWindowServer{
		windows: []wm.Window{{OwnerName: "Visual Studio Code", OwnerPID: 777}},
	}
	a, _ := newTestApp(t, server)

	if err := a.SwitchTo("code"); err != nil {
		t.Fatalf("substring fragment should match: %v", err)
	}
	if len(server.activatedPIDs) != 1 || server.activatedPIDs[0] != 777 {
		t.Errorf("activated pids = %v, want [777]", server.activatedPIDs)
	}
}

func TestSwitchTo_firstMatchWins(t *testing.T) {
	server := &fakeWindowServer{
		windows: []wm.Window{
			{OwnerName: "Code Helper", OwnerPID: 10},
			{OwnerName: "Visual Studio Code", OwnerPID: 20},
		},
	}
	a, _ := newTestApp(t, server)

	if err := a.SwitchTo("code"); err != nil {
		t.Fatalf("SwitchTo returned error: %v", err)
	}
	// Short-circuit on the first entry in snapshot order, never the second
	if len(server.activatedPIDs) != 1 || server.activatedPIDs[0] != 10 {
		t.Errorf("activated pids = %v, want [10]", server.activatedPIDs)
	}
}

func TestSwitchTo_skipsEmptyOwnerNames(t *testing.T) {
	server := &fakeWindowServer{
		windows: []wm.Window{
			{OwnerName: "", OwnerPID: 5},
			{OwnerName: "Safari", OwnerPID: 501},
		},
	}
	a, _ := newTestApp(t, server)

	if err := a.SwitchTo("safari"); err != nil {
		t.Fatalf("SwitchTo returned error: %v", err)
	}
	if len(server.activatedPIDs) != 1 || server.activatedPIDs[0] != 501 {
		t.Errorf("activated pids = %v, want [501]", server.activatedPIDs)
	}
}

func TestSwitchTo_invalidPID(t *testing.T) {
	server := &fakeWindowServer{
		windows: []wm.Window{{OwnerName: "Safari", OwnerPID: 0}},
	}
	a, out := newTestApp(t, server)

	err := a.SwitchTo("Safari")
	if !errors.Is(err, ErrInvalidProcess) {
		t.Fatalf("SwitchTo error = %v, want ErrInvalidProcess", err)
	}
	if len(server.activatedPIDs) != 0 {
		t.Errorf("no activation should be attempted for pid 0, got %v", server.activatedPIDs)
	}
	if !strings.Contains(out.String(), "not found or not running") {
		t.Errorf("output %q should report not found", out.String())
	}
}

func TestSwitchTo_enumerationFailure(t *testing.T) {
	server := &fakeWindowServer{
		listErr: &wm.EnumerationError{Err: fmt.Errorf("window server refused")},
	}
	a, out := newTestApp(t, server)

	if err := a.SwitchTo("Safari"); err == nil {
		t.Fatal("SwitchTo should fail when enumeration fails")
	}
	if got, want := out.String(), "Failed to get running applications list\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if len(server.activatedPIDs) != 0 {
		t.Errorf("no activation expected, got %v", server.activatedPIDs)
	}
}

func TestSwitchTo_activationRaiseFailure(t *testing.T) {
	server := &fakeWindowServer{
		windows: []wm.Window{{OwnerName: "Safari", OwnerPID: 501}},
		activateErr: &wm.ActivationError{
			Stage: wm.StageRaise,
			Code:  3,
			Err:   fmt.Errorf("rejected"),
		},
	}
	a, out := newTestApp(t, server)

	if err := a.SwitchTo("Safari"); err == nil {
		t.Fatal("SwitchTo should fail when activation fails")
	}
	if !strings.Contains(out.String(), "Failed to bring application to front (error: 3)") {
		t.Errorf("output %q should report the raise failure with code 3", out.String())
	}
}

func TestSwitchTo_activationLookupFailure(t *testing.T) {
	server := &fakeWindowServer{
		windows: []wm.Window{{OwnerName: "Safari", OwnerPID: 501}},
		activateErr: &wm.ActivationError{
			Stage: wm.StageLookup,
			Code:  -600,
			Err:   fmt.Errorf("no such process"),
		},
	}
	a, out := newTestApp(t, server)

	if err := a.SwitchTo("Safari"); err == nil {
		t.Fatal("SwitchTo should fail when pid lookup fails")
	}
	if !strings.Contains(out.String(), "Failed to get process serial number (error: -600)") {
		t.Errorf("output %q should report the lookup failure with code -600", out.String())
	}
}

func TestSwitchTo_historyFailureDoesNotChangeOutcome(t *testing.T) {
	server := &fakeWindowServer{
		windows: []wm.Window{{OwnerName: "Safari", OwnerPID: 501}},
	}
	a, out := newTestApp(t, server)

	// A closed store makes every AddSwitch fail; recording is best-effort
	// and must not affect the switch result
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	store.Close()
	a.store = store

	if err := a.SwitchTo("Safari"); err != nil {
		t.Fatalf("SwitchTo should succeed despite history failure: %v", err)
	}
	if len(server.activatedPIDs) != 1 || server.activatedPIDs[0] != 501 {
		t.Errorf("activated pids = %v, want [501]", server.activatedPIDs)
	}
	if !strings.Contains(out.String(), "Switched to: Safari (PID: 501)") {
		t.Errorf("output %q should contain the success line", out.String())
	}
}

func TestFindMatch_ordering(t *testing.T) {
	windows := []wm.Window{
		{OwnerName: "終端", OwnerPID: 1},
		{OwnerName: "Firefox", OwnerPID: 2},
		{OwnerName: "firefox-esr", OwnerPID: 3},
	}

	match, found := findMatch(windows, "FIREFOX")
	if !found {
		t.Fatal("expected a match")
	}
	if match.OwnerPID != 2 {
		t.Errorf("match pid = %d, want 2 (first in snapshot order)", match.OwnerPID)
	}
}

func TestFindMatch_noWindows(t *testing.T) {
	if _, found := findMatch(nil, "anything"); found {
		t.Error("empty snapshot should never match")
	}
}
