package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

// Level selects which messages reach the sink. Messages below the current
// level are dropped for every named logger at once.
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

var levelNames = map[string]Level{
	"debug":   Debug,
	"info":    Info,
	"notice":  Notice,
	"warning": Warning,
	"error":   Error,
}

// time, module and level, colored when the sink is a terminal
var lineFormat = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{module:-10s} %{level:.4s}%{color:reset} %{message}`,
)

// shared by every logger returned from New
var backend logging.LeveledBackend

// Logger is what packages hold at package level, e.g.
//
//	var logger = log.New("renderer")
//
// The hot path never logs; loggers report start, progress and totals.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Notice(args ...interface{})
	Noticef(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

// New returns the logger for module name.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all output to w without touching the level.
func SetSink(w io.Writer) {
	current := logging.NOTICE
	if backend != nil {
		current = backend.GetLevel("")
	}

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), lineFormat)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(current, "")
	logging.SetBackend(backend)
}

// SetLevel changes the verbosity of all modules. Unknown levels fall back to Error.
func SetLevel(level Level) {
	backendLevel, ok := backendLevels[level]
	if !ok {
		backendLevel = logging.ERROR
	}
	backend.SetLevel(backendLevel, "")
}

// ParseLevel maps a name like "debug" or "Warning" to a Level.
func ParseLevel(name string) (Level, error) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Notice, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
