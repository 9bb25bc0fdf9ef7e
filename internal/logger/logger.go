// Package logger writes duogoals' structured log to a rotating file under the
// config directory. Normal runs keep the terminal clean; --debug mirrors
// every record to stderr.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/duogoals/internal/constants"
)

// Logger stays nil until Init succeeds; the helpers below drop records until then.
var Logger *log.Logger

type Config struct {
	Debug  bool
	LogDir string
}

// FilePath is where records for logDir end up.
func FilePath(logDir string) string {
	return filepath.Join(logDir, constants.AppName+".log")
}

func Init(cfg Config) error {
	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		return err
	}

	var out io.Writer = &lumberjack.Logger{
		Filename:   FilePath(cfg.LogDir),
		MaxSize:    5, // MB; the data slot itself is tiny
		MaxBackups: 2,
		MaxAge:     30,
		Compress:   true,
	}
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          constants.AppName,
		Level:           log.WarnLevel,
	}
	if cfg.Debug {
		out = io.MultiWriter(os.Stderr, out)
		opts.Level = log.DebugLevel
		opts.ReportCaller = true
		// skip logAt and the level wrapper
		opts.CallerOffset = 2
	}

	Logger = log.NewWithOptions(out, opts)
	return nil
}

func logAt(level log.Level, msg string, keyvals []interface{}) {
	if Logger == nil {
		return
	}
	Logger.Log(level, msg, keyvals...)
}

func Debug(msg string, keyvals ...interface{}) { logAt(log.DebugLevel, msg, keyvals) }
func Info(msg string, keyvals ...interface{})  { logAt(log.InfoLevel, msg, keyvals) }
func Warn(msg string, keyvals ...interface{})  { logAt(log.WarnLevel, msg, keyvals) }
func Error(msg string, keyvals ...interface{}) { logAt(log.ErrorLevel, msg, keyvals) }

// Fatal records msg and exits 1, with or without an initialized logger.
func Fatal(msg string, keyvals ...interface{}) {
	logAt(log.FatalLevel, msg, keyvals)
	os.Exit(1)
}
