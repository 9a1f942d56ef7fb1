package logger

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

type Config struct {
	Out   io.Writer
	Debug bool
	JSON  bool
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs the global logger. The returned function is Reset.
func Setup(cfg Config) func() {
	if cfg.Out == nil {
		Reset()
		return Reset
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(cfg.Out, opts)
	} else {
		h = slog.NewTextHandler(cfg.Out, opts)
	}

	mu.Lock()
	global = slog.New(h)
	mu.Unlock()

	L().Debug("logger.initialized", "debug", cfg.Debug, "json", cfg.JSON)

	return Reset
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Reset restores the logger that discards all records.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
