package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Settc/liftscript/internal/files"
)

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	out, err := runCommand(cmd, args...)
	if err != nil {
		t.Fatalf("cmd.Execute(%q): %v\n%s", args, err, out)
	}
	return out
}

func runCommand(cmd *cobra.Command, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// runRoot runs the full command tree over a the way ExecuteCommand does.
func runRoot(a *app, args ...string) (string, error) {
	cmd := newRootCommand(bg, a)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := execute(cmd, a)
	return buf.String(), err
}

func executeRoot(t *testing.T, mgr *files.Manager, args ...string) string {
	t.Helper()
	out, err := runRoot(newApp(mgr), args...)
	if err != nil {
		t.Fatalf("execute(%q): %v\n%s", args, err, out)
	}
	return out
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func assertNotContains(t *testing.T, output, want string) {
	t.Helper()
	if strings.Contains(output, want) {
		t.Fatalf("output %q unexpectedly contained substring %q", output, want)
	}
}

func newTempManager(t *testing.T) *files.Manager {
	t.Helper()
	base := t.TempDir()
	mgr, err := files.NewManager(base)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return mgr
}

// newTestApp returns an app over a temp directory with default config and a
// silent logger, as if the root command had already run its setup.
func newTestApp(t *testing.T) *app {
	t.Helper()
	a := newApp(newTempManager(t))
	t.Cleanup(a.close)
	return a
}

// withText stores text as the current workout.
func withText(t *testing.T, a *app, text string) {
	t.Helper()
	if err := a.manager.SaveText(text); err != nil {
		t.Fatalf("SaveText: %v", err)
	}
}

func currentText(t *testing.T, a *app) string {
	t.Helper()
	text, err := a.manager.LoadText()
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}
	return text
}

var bg = context.Background()
