// SPDX-License-Identifier: EPL-2.0

package logging

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pion/logging"
)

var loggerFactory = logging.NewDefaultLoggerFactory()

var (
	mu      sync.Mutex
	leveled []*logging.DefaultLeveledLogger
)

// NewLogger returns a leveled logger for scope.
func NewLogger(scope string) logging.LeveledLogger {
	l := loggerFactory.NewLogger(scope)

	if dl, ok := l.(*logging.DefaultLeveledLogger); ok {
		mu.Lock()
		leveled = append(leveled, dl)
		mu.Unlock()
	}

	return l
}

// SetLevel changes the level of every logger handed out so far and of the
// ones created later.
func SetLevel(level logging.LogLevel) {
	mu.Lock()
	defer mu.Unlock()

	loggerFactory.DefaultLogLevel = level
	for _, l := range leveled {
		l.SetLevel(level)
	}
}

// ParseLevel maps a level name (case insensitive) to a pion log level.
func ParseLevel(name string) (logging.LogLevel, error) {
	switch strings.ToLower(name) {
	case "disabled", "off":
		return logging.LogLevelDisabled, nil
	case "error":
		return logging.LogLevelError, nil
	case "warn", "warning":
		return logging.LogLevelWarn, nil
	case "info":
		return logging.LogLevelInfo, nil
	case "debug":
		return logging.LogLevelDebug, nil
	case "trace":
		return logging.LogLevelTrace, nil
	}

	return logging.LogLevelDisabled, fmt.Errorf("unknown log level %q", name)
}
