package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/duogoals/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}

// ErrGoalNotFound is returned when a goal reference matches no goal of the profile
var ErrGoalNotFound = stderrors.New("goal not found")

// ErrAmbiguousGoal is returned when a goal reference matches several goals
var ErrAmbiguousGoal = stderrors.New("goal reference is ambiguous")

// GoalNotFound wraps ErrGoalNotFound with the reference and profile that missed
func GoalNotFound(ref, profile string) error {
	return fmt.Errorf("%w: %q for %s", ErrGoalNotFound, ref, profile)
}

// AmbiguousGoal wraps ErrAmbiguousGoal with the candidate titles
func AmbiguousGoal(ref string, candidates []string) error {
	return fmt.Errorf("%w: %q matches %s", ErrAmbiguousGoal, ref, strings.Join(candidates, ", "))
}
