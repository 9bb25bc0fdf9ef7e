package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/duogoals/internal/backup"
	"github.com/julianstephens/duogoals/internal/config"
	"github.com/julianstephens/duogoals/internal/constants"
	apperrors "github.com/julianstephens/duogoals/internal/errors"
	"github.com/julianstephens/duogoals/internal/logger"
	"github.com/julianstephens/duogoals/internal/models"
	"github.com/julianstephens/duogoals/internal/storage"
	"github.com/julianstephens/duogoals/internal/store"
	"github.com/julianstephens/duogoals/internal/utils"
)

// Context is handed to every command's Run method.
type Context struct {
	Config  *config.Config
	Slot    storage.Provider
	Store   *store.Store
	Profile models.Profile

	// Now, Out and In default to the wall clock, stdout and stdin.
	Now func() time.Time
	Out io.Writer
	In  io.Reader
}

func (c *Context) Clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Context) Stdout() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Stdout(), args...)
}

// Confirm prints prompt and reads a y/N answer.
func (c *Context) Confirm(prompt string) bool {
	in := c.In
	if in == nil {
		in = os.Stdin
	}
	c.Printf("%s [y/N]: ", prompt)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

// RequireProfile returns the profile chosen with --profile.
func (c *Context) RequireProfile() (models.Profile, error) {
	if !c.Profile.Valid() {
		return "", fmt.Errorf("no profile selected: pass --profile %s or --profile %s",
			models.ProfileClement, models.ProfileCharlotte)
	}
	return c.Profile, nil
}

// User returns the current data of the selected profile.
func (c *Context) User() (models.UserData, error) {
	profile, err := c.RequireProfile()
	if err != nil {
		return models.UserData{}, err
	}
	user, ok := c.Store.Snapshot().User(profile)
	if !ok {
		return models.NewUserData(profile), nil
	}
	return user, nil
}

// ResolveGoal finds a goal of the selected profile by id, case-insensitive
// title or id prefix, in that order.
func (c *Context) ResolveGoal(ref string) (models.Goal, error) {
	user, err := c.User()
	if err != nil {
		return models.Goal{}, err
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Goal{}, apperrors.GoalNotFound(ref, string(user.Profile))
	}

	if g, ok := user.Goal(ref); ok {
		return g, nil
	}

	var matches []models.Goal
	for _, g := range user.Goals {
		if strings.EqualFold(g.Title, ref) {
			matches = append(matches, g)
		}
	}
	if len(matches) == 0 {
		for _, g := range user.Goals {
			if strings.HasPrefix(g.ID, ref) {
				matches = append(matches, g)
			}
		}
	}

	switch len(matches) {
	case 0:
		return models.Goal{}, apperrors.GoalNotFound(ref, string(user.Profile))
	case 1:
		return matches[0], nil
	}
	candidates := make([]string, len(matches))
	for i, g := range matches {
		candidates[i] = fmt.Sprintf("%s (%s)", g.Title, ShortID(g.ID))
	}
	return models.Goal{}, apperrors.AmbiguousGoal(ref, candidates)
}

// BackupManager returns a manager over the loaded store.
func (c *Context) BackupManager() *backup.Manager {
	dir := constants.BackupDirName
	maxBackups := constants.MaxBackups
	if c.Config != nil {
		dir = c.Config.BackupDir()
		maxBackups = c.Config.Backups.Max
	}
	return backup.NewManager(c.Store, dir, maxBackups)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if c.Store == nil || c.Config == nil {
		return
	}
	_, err := c.BackupManager().CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ShortID is the id prefix shown in listings.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ParseAmount parses a progress value, accepting a decimal comma.
func ParseAmount(s string) (float64, error) {
	return utils.ParseAmount(s)
}

// FormatAmount prints a value without trailing zeros.
func FormatAmount(v float64) string {
	return utils.FormatAmount(v)
}
