// Package keyring keeps the postgres connection string in the OS keyring so
// it never has to live in the config file.
package keyring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/duogoals/internal/constants"
)

var (
	ErrNotFound           = errors.New("no connection string stored in keyring")
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// entry is the single service/user pair duogoals stores under.
type entry struct {
	service string
	user    string
}

var dsnEntry = entry{service: constants.AppName, user: constants.DefaultKeyringUser}

// translate maps go-keyring errors onto this package's sentinels.
func translate(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, keyring.ErrNotFound):
		return ErrNotFound
	default:
		return fmt.Errorf("%w: %s: %v", ErrKeyringUnavailable, op, err)
	}
}

func (e entry) get() (string, error) {
	v, err := keyring.Get(e.service, e.user)
	return v, translate(err, "read")
}

func (e entry) set(v string) error {
	return translate(keyring.Set(e.service, e.user, v), "write")
}

func (e entry) delete() error {
	return translate(keyring.Delete(e.service, e.user), "delete")
}

func GetConnectionString() (string, error) {
	return dsnEntry.get()
}

func SetConnectionString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return errors.New("connection string cannot be empty")
	}
	return dsnEntry.set(connStr)
}

func DeleteConnectionString() error {
	return dsnEntry.delete()
}

// IsAvailable reads an entry that never exists; only a not-found answer
// proves the keyring backend is reachable.
func IsAvailable() bool {
	_, err := entry{service: constants.AppName, user: "availability-check"}.get()
	return err == nil || errors.Is(err, ErrNotFound)
}

// Mask replaces any password in a URL or key=value connection string with ****.
func Mask(connStr string) string {
	if scheme, rest, ok := strings.Cut(connStr, "://"); ok &&
		(scheme == "postgres" || scheme == "postgresql") {
		at := strings.LastIndex(rest, "@")
		if at == -1 {
			return connStr
		}
		user, _, hasPass := strings.Cut(rest[:at], ":")
		if !hasPass {
			return connStr
		}
		return scheme + "://" + user + ":****" + rest[at:]
	}

	fields := strings.Fields(connStr)
	masked := false
	for i, f := range fields {
		if strings.HasPrefix(f, "password=") {
			fields[i] = "password=****"
			masked = true
		}
	}
	if !masked {
		return connStr
	}
	return strings.Join(fields, " ")
}
