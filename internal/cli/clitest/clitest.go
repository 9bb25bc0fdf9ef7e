// Package clitest builds command contexts over a throwaway file slot.
package clitest

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/duogoals/internal/cli"
	"github.com/julianstephens/duogoals/internal/config"
	"github.com/julianstephens/duogoals/internal/constants"
	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/storage"
	"github.com/julianstephens/duogoals/internal/store"
)

// Now is the fixed clock of every test context: a Friday afternoon.
var Now = time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

// Env is a loaded context plus its captured output.
type Env struct {
	Ctx *cli.Context
	Out *bytes.Buffer
	Dir string
}

// New returns a context for profile over an empty file slot in a temp dir.
func New(t *testing.T, profile models.Profile) *Env {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		Storage: config.StorageConfig{
			Backend: constants.BackendFile,
			Path:    filepath.Join(dir, constants.DefaultDataFile),
		},
		Backups:   config.BackupsConfig{Max: 3},
		ConfigDir: dir,
	}

	slot := storage.NewFileStore(cfg.StoragePath())
	if err := slot.Load(); err != nil {
		t.Fatalf("failed to load slot: %v", err)
	}

	clock := func() time.Time { return Now }
	st := store.New(slot, store.WithClock(clock))
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}

	out := &bytes.Buffer{}
	return &Env{
		Ctx: &cli.Context{
			Config:  cfg,
			Slot:    slot,
			Store:   st,
			Profile: profile,
			Now:     clock,
			Out:     out,
			In:      strings.NewReader(""),
		},
		Out: out,
		Dir: dir,
	}
}

// AddGoal stores g for the context's profile.
func (e *Env) AddGoal(t *testing.T, g models.Goal) models.Goal {
	t.Helper()
	if err := e.Ctx.Store.AddGoal(context.Background(), e.Ctx.Profile, g); err != nil {
		t.Fatalf("failed to add goal: %v", err)
	}
	return g
}

// User returns the stored data of the context's profile.
func (e *Env) User(t *testing.T) models.UserData {
	t.Helper()
	user, ok := e.Ctx.Store.Snapshot().User(e.Ctx.Profile)
	if !ok {
		t.Fatalf("profile %s missing from snapshot", e.Ctx.Profile)
	}
	return user
}

// Answer makes the next confirmation prompt read answer.
func (e *Env) Answer(answer string) {
	e.Ctx.In = strings.NewReader(answer + "\n")
}
