package errors

import (
	"bytes"
	stderrors "errors"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"simple error", stderrors.New("storage not initialized"), "Error: storage not initialized"},
		{"goal not found", GoalNotFound("water", "clement"), `Error: goal not found: "water" for clement`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Format(tt.err); result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	result := Formatf("failed to load %s from %s", "data", "sqlite")
	if result != "Error: failed to load data from sqlite" {
		t.Errorf("Formatf() = %q", result)
	}
}

func TestGoalErrorsWrapSentinels(t *testing.T) {
	if !stderrors.Is(GoalNotFound("x", "charlotte"), ErrGoalNotFound) {
		t.Error("GoalNotFound should wrap ErrGoalNotFound")
	}

	err := AmbiguousGoal("s", []string{"Sommeil", "Séances de sport"})
	if !stderrors.Is(err, ErrAmbiguousGoal) {
		t.Error("AmbiguousGoal should wrap ErrAmbiguousGoal")
	}
	if !strings.Contains(err.Error(), "Sommeil, Séances de sport") {
		t.Errorf("expected candidates in message, got %q", err.Error())
	}
}

// TestFatal tests the Fatal function using exec helper process
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Fatal(stderrors.New("test error"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		if e.ExitCode() != 1 {
			t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
		}
		if !strings.Contains(stderr.String(), "Error: test error") {
			t.Errorf("Fatal() stderr = %q, want to contain %q", stderr.String(), "Error: test error")
		}
	} else {
		t.Errorf("Fatal() did not exit with error: %v", err)
	}
}

// TestFatal_NilError tests that Fatal does nothing when passed a nil error
func TestFatal_NilError(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal_NilError")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_NIL=1")

	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit, but got error: %v", err)
	}
}
