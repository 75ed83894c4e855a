package utils

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	mu       sync.Mutex
	loggers  = make(map[string]*logHandle)
	logLevel = logrus.InfoLevel
	colorful = SupportANSIColor(os.Stderr.Fd())
)

type logHandle struct {
	*logrus.Logger

	name     string
	colorful bool
}

const timeFormat = "2006/01/02 15:04:05.000000"

func (l *logHandle) Format(e *logrus.Entry) ([]byte, error) {
	lvlStr := strings.ToUpper(e.Level.String())
	if l.colorful {
		var color int
		switch e.Level {
		case logrus.TraceLevel, logrus.DebugLevel:
			color = 34 // blue
		case logrus.WarnLevel:
			color = 33 // yellow
		case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
			color = 31 // red
		default:
			color = 32 // green
		}
		lvlStr = fmt.Sprintf("\033[1;%dm%s\033[0m", color, lvlStr)
	}
	str := fmt.Sprintf("%s %s[%d] <%s>: %s",
		e.Time.Format(timeFormat), l.name, os.Getpid(), lvlStr, e.Message)
	if len(e.Data) != 0 {
		str += " " + fmt.Sprint(e.Data)
	}
	if !strings.HasSuffix(str, "\n") {
		str += "\n"
	}
	return []byte(str), nil
}

func newLogger(name string) *logHandle {
	l := &logHandle{Logger: logrus.New(), name: name, colorful: colorful}
	l.Formatter = l
	l.SetLevel(logLevel)
	return l
}

// GetLogger returns a logger mapped to name, creating it on first use.
func GetLogger(name string) *logHandle {
	mu.Lock()
	defer mu.Unlock()

	if logger, ok := loggers[name]; ok {
		return logger
	}
	logger := newLogger(name)
	loggers[name] = logger
	return logger
}

// SetLogLevel sets the level of every logger, including ones created later.
func SetLogLevel(lvl logrus.Level) {
	mu.Lock()
	defer mu.Unlock()
	logLevel = lvl
	for _, logger := range loggers {
		logger.SetLevel(lvl)
	}
}

func DisableLogColor() {
	mu.Lock()
	defer mu.Unlock()
	colorful = false
	for _, logger := range loggers {
		logger.colorful = false
	}
}

func SupportANSIColor(fd uintptr) bool {
	return isatty.IsTerminal(fd) && runtime.GOOS != "windows"
}
