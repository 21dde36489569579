package cli

import (
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Settc/liftscript/internal/logging"
	"github.com/Settc/liftscript/internal/share"
	"github.com/Settc/liftscript/internal/store"
)

func shareCode(t *testing.T, out string) string {
	t.Helper()
	const prefix = "Share code: "
	i := strings.Index(out, prefix)
	if i < 0 {
		t.Fatalf("no share code in %q", out)
	}
	code := strings.TrimSpace(out[i+len(prefix):])
	if len(code) != share.CodeLength {
		t.Fatalf("code = %q, want %d characters", code, share.CodeLength)
	}
	return code
}

// TestShareImportLocal round-trips a workout through the local exchange.
func TestShareImportLocal(t *testing.T) {
	a := newTestApp(t)
	withText(t, a, "Squat\n5x135\n")

	code := shareCode(t, executeCommand(t, newShareCommand(bg, a), "--name", "Mine"))

	executeCommand(t, newNewCommand(bg, a))
	out := executeCommand(t, newImportCommand(bg, a), strings.ToLower(code))
	assertContains(t, out, `Imported "Mine"`)
	if got := currentText(t, a); got != "Squat\n5x135\n" {
		t.Fatalf("imported text = %q", got)
	}
}

func TestShareRequiresExercises(t *testing.T) {
	a := newTestApp(t)
	withText(t, a, "")

	if _, err := runCommand(newShareCommand(bg, a)); err == nil {
		t.Fatalf("sharing an empty workout should fail")
	}
}

func TestImportUnknownCode(t *testing.T) {
	a := newTestApp(t)

	if _, err := runCommand(newImportCommand(bg, a), "ZZZZZZ"); err == nil {
		t.Fatalf("expected error for unknown code")
	}
	if _, err := runCommand(newImportCommand(bg, a), "bad"); err == nil {
		t.Fatalf("expected error for malformed code")
	}
}

// TestShareRemote publishes through a share server configured by URL.
func TestShareRemote(t *testing.T) {
	db, err := store.Open(bg, filepath.Join(t.TempDir(), "server.db"), logging.NewNop())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	service := share.NewService(db, logging.NewNop())
	srv := httptest.NewServer(share.NewHandler(service, logging.NewNop()))
	t.Cleanup(srv.Close)

	a := newTestApp(t)
	a.cfg.Share.URL = srv.URL
	withText(t, a, "Bench\n5x95\n")
	if err := a.manager.SetCurrentName("Push"); err != nil {
		t.Fatalf("SetCurrentName: %v", err)
	}

	code := shareCode(t, executeCommand(t, newShareCommand(bg, a)))

	got, err := db.FindShare(bg, code)
	if err != nil {
		t.Fatalf("FindShare: %v", err)
	}
	if got.Name != "Push" || got.Text != "Bench\n5x95\n" {
		t.Fatalf("shared = %+v", got)
	}

	other := newTestApp(t)
	other.cfg.Share.URL = srv.URL
	out := executeCommand(t, newImportCommand(bg, other), code)
	assertContains(t, out, `Imported "Push"`)
	if text := currentText(t, other); text != "Bench\n5x95\n" {
		t.Fatalf("imported text = %q", text)
	}
}
