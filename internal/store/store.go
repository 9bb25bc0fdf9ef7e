// Package store owns the in-memory AppData and keeps it in sync with its
// storage slot. All mutations are serialized and persisted before they
// become visible.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/duogoals/internal/constants"
	"github.com/julianstephens/duogoals/internal/logger"
	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/storage"
	"github.com/julianstephens/duogoals/internal/tracker"
)

// Store is the single writer of the app data.
type Store struct {
	slot storage.Provider
	key  string
	now  func() time.Time

	mu   sync.Mutex
	data models.AppData
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the clock used to stamp lastUpdated
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithKey overrides the slot key the data lives under
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

func New(slot storage.Provider, opts ...Option) *Store {
	s := &Store{
		slot: slot,
		key:  constants.StorageKey,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.data = models.NewAppData(s.now())
	return s
}

// Load reads the app data from the slot. An absent or unreadable value yields
// the default data; only slot I/O failures are returned.
func (s *Store) Load(ctx context.Context) error {
	raw, err := s.slot.Get(ctx, s.key)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to read app data: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if errors.Is(err, storage.ErrNotFound) {
		logger.Debug("No stored app data, starting fresh", "key", s.key)
		s.data = models.NewAppData(s.now())
		return nil
	}

	data, migrated, err := Decode(raw)
	if err != nil {
		logger.Warn("Stored app data is malformed, falling back to defaults", "key", s.key, "error", err)
		s.data = models.NewAppData(s.now())
		return nil
	}
	for _, p := range migrated {
		logger.Info("Added streak fields to stored profile", "profile", p)
	}

	s.data = data
	return nil
}

// Snapshot returns a deep copy of the current data.
func (s *Store) Snapshot() models.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// apply computes the next data from the current one, persists it and swaps
// it in. On a failed write the current data is kept.
func (s *Store) apply(ctx context.Context, op string, fn func(models.AppData) models.AppData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(s.data)
	next.LastUpdated = s.now().UTC().Format(time.RFC3339)

	if err := s.persist(ctx, next); err != nil {
		logger.Error("Failed to persist app data", "op", op, "error", err)
		return err
	}

	s.data = next
	logger.Debug("Applied mutation", "op", op)
	return nil
}

func (s *Store) persist(ctx context.Context, data models.AppData) error {
	raw, err := Encode(data)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.SlotTimeout)
	defer cancel()

	if err := s.slot.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("failed to save app data: %w", err)
	}
	return nil
}

func (s *Store) AddGoal(ctx context.Context, profile models.Profile, goal models.Goal) error {
	return s.apply(ctx, "add goal", func(d models.AppData) models.AppData {
		return tracker.AddGoal(d, profile, goal)
	})
}

func (s *Store) UpdateGoal(ctx context.Context, profile models.Profile, goalID string, patch models.GoalPatch) error {
	return s.apply(ctx, "update goal", func(d models.AppData) models.AppData {
		return tracker.UpdateGoal(d, profile, goalID, patch)
	})
}

func (s *Store) DeleteGoal(ctx context.Context, profile models.Profile, goalID string) error {
	return s.apply(ctx, "delete goal", func(d models.AppData) models.AppData {
		return tracker.DeleteGoal(d, profile, goalID)
	})
}

func (s *Store) UpdateDailyProgress(ctx context.Context, profile models.Profile, record models.DailyProgress) error {
	return s.apply(ctx, "update daily progress", func(d models.AppData) models.AppData {
		return tracker.UpdateDailyProgress(d, profile, record)
	})
}

func (s *Store) UpdateWeeklyProgress(ctx context.Context, profile models.Profile, record models.WeeklyProgress) error {
	return s.apply(ctx, "update weekly progress", func(d models.AppData) models.AppData {
		return tracker.UpdateWeeklyProgress(d, profile, record)
	})
}

// StepDaily nudges a daily goal's value for date by delta.
func (s *Store) StepDaily(ctx context.Context, profile models.Profile, goalID, date string, delta float64) error {
	return s.apply(ctx, "step daily progress", func(d models.AppData) models.AppData {
		return tracker.StepDaily(d, profile, goalID, date, delta)
	})
}

// StepWeekly nudges a weekly goal's value for week by delta.
func (s *Store) StepWeekly(ctx context.Context, profile models.Profile, goalID, week string, delta float64) error {
	return s.apply(ctx, "step weekly progress", func(d models.AppData) models.AppData {
		return tracker.StepWeekly(d, profile, goalID, week, delta)
	})
}

func (s *Store) RebuildStreak(ctx context.Context, profile models.Profile) error {
	return s.apply(ctx, "rebuild streak", func(d models.AppData) models.AppData {
		return tracker.RebuildStreak(d, profile)
	})
}

// Reset replaces everything with the default data.
func (s *Store) Reset(ctx context.Context) error {
	return s.apply(ctx, "reset", func(models.AppData) models.AppData {
		return models.NewAppData(s.now())
	})
}

// Replace installs externally supplied data, normalized like a load.
func (s *Store) Replace(ctx context.Context, data models.AppData) error {
	data = Normalize(data.Clone())
	return s.apply(ctx, "replace", func(models.AppData) models.AppData {
		return data
	})
}

func (s *Store) GetDailyProgress(profile models.Profile, date, goalID string) (models.DailyProgress, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.data.User(profile)
	if !ok {
		return models.DailyProgress{}, false
	}
	return user.Daily(date, goalID)
}

func (s *Store) GetWeeklyProgress(profile models.Profile, week, goalID string) (models.WeeklyProgress, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.data.User(profile)
	if !ok {
		return models.WeeklyProgress{}, false
	}
	return user.Weekly(week, goalID)
}
