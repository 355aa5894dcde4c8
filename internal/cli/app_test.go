// pattern: Functional Core
package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// newTestApp returns an app writing into buffers with exit captured.
func newTestApp(version string) (*App, *bytes.Buffer, *bytes.Buffer, *int) {
	app := NewApp(version)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := -1
	app.stdout = stdout
	app.stderr = stderr
	app.exit = func(c int) { code = c }
	return app, stdout, stderr, &code
}

func TestApp_PrintHelp_ListsCommandsInOrder(t *testing.T) {
	app := NewApp("1.0.0")
	app.AddCommand(&Command{Name: "list", Summary: "List things"})
	app.AddCommand(&Command{Name: "version", Summary: "Print version"})

	buf := &bytes.Buffer{}
	app.PrintHelp(buf)
	output := buf.String()

	if !strings.Contains(output, "clean-node-deps 1.0.0") {
		t.Errorf("help missing version header:\n%s", output)
	}
	listIdx := strings.Index(output, "list")
	versionIdx := strings.Index(output, "Print version")
	if listIdx < 0 || versionIdx < 0 || listIdx > versionIdx {
		t.Errorf("commands missing or out of order:\n%s", output)
	}
}

func TestApp_Execute_NoArgs_ReturnsTrueForClean(t *testing.T) {
	app := NewApp("1.0.0")
	if !app.Execute(nil) {
		t.Error("Execute(nil) returned false, want true")
	}
}

func TestApp_Execute_Command_Dispatches(t *testing.T) {
	app, _, _, code := newTestApp("1.0.0")
	var gotArgs []string
	app.AddCommand(&Command{
		Name: "list",
		Run: func(args []string) error {
			gotArgs = args
			return nil
		},
	})

	if app.Execute([]string{"list", "extra"}) {
		t.Error("Execute with command returned true, want false")
	}
	if len(gotArgs) != 1 || gotArgs[0] != "extra" {
		t.Errorf("command args = %v, want [extra]", gotArgs)
	}
	if *code != -1 {
		t.Errorf("exit called with %d on success", *code)
	}
}

func TestApp_Execute_CommandError_Exits(t *testing.T) {
	app, _, stderr, code := newTestApp("1.0.0")
	app.AddCommand(&Command{
		Name: "boom",
		Run:  func(args []string) error { return errors.New("kaput") },
	})

	app.Execute([]string{"boom"})

	if *code != 1 {
		t.Errorf("exit code = %d, want 1", *code)
	}
	if !strings.Contains(stderr.String(), "error: kaput") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestApp_Execute_UnknownCommand_Exits(t *testing.T) {
	app, _, stderr, code := newTestApp("1.0.0")

	app.Execute([]string{"frobnicate"})

	if *code != 1 {
		t.Errorf("exit code = %d, want 1", *code)
	}
	if !strings.Contains(stderr.String(), `unknown command "frobnicate"`) {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestApp_Execute_CommandHelp_PrintsUsage(t *testing.T) {
	app, _, stderr, _ := newTestApp("1.0.0")
	called := false
	app.AddCommand(&Command{
		Name:  "list",
		Usage: "Usage: cleandeps list",
		Run: func(args []string) error {
			called = true
			return nil
		},
	})

	app.Execute([]string{"list", "--help"})

	if called {
		t.Error("command ran despite --help")
	}
	if !strings.Contains(stderr.String(), "Usage: cleandeps list") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestApp_Execute_Help_PrintsToStdout(t *testing.T) {
	app, stdout, _, _ := newTestApp("2.0.0")
	if app.Execute([]string{"help"}) {
		t.Error("help returned true")
	}
	if !strings.Contains(stdout.String(), "clean-node-deps 2.0.0") {
		t.Errorf("stdout = %q", stdout.String())
	}
}
