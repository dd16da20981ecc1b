package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is the minimum severity a message needs to reach the sink
type Level logging.Level

// Levels accepted by SetLevel, from most to least verbose
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

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// leveledBackend is shared by every module logger
var leveledBackend logging.LeveledBackend

// Logger is the leveled logging surface handed out to packages
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for module name
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all module loggers to sink, keeping the current level
func SetSink(sink io.Writer) {
	level := logging.NOTICE
	if leveledBackend != nil {
		level = leveledBackend.GetLevel("")
	}

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	leveledBackend = logging.AddModuleLevel(formatted)
	leveledBackend.SetLevel(level, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel drops messages below level for every module.
// Unknown levels fall back to Notice.
func SetLevel(level Level) {
	backendLevel, ok := backendLevels[level]
	if !ok {
		backendLevel = logging.NOTICE
	}
	leveledBackend.SetLevel(backendLevel, "")
}

// VerbosityLevel maps the -v / -vv command line switches to a level
func VerbosityLevel(verbose, veryVerbose bool) Level {
	switch {
	case veryVerbose:
		return Debug
	case verbose:
		return Info
	default:
		return Notice
	}
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
