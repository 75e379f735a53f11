package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"task-manager/backend/config"
)

const SystemName = "task-manager-api"

// Logger is the process-wide logger. It writes to stderr until InitLogger runs.
var Logger = logrus.New()
var once sync.Once

// CustomFormatter renders one line per entry with a fresh event id.
type CustomFormatter struct {
	SystemName string
}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	b.WriteString(fmt.Sprintf("Date: %s, Time: %s, ", entry.Time.Format("2006-01-02"), entry.Time.Format("15:04:05")))
	b.WriteString(fmt.Sprintf("Event Source: %s, ", f.SystemName))
	b.WriteString(fmt.Sprintf("Event Type: %s, ", strings.ToUpper(entry.Level.String())))
	b.WriteString(fmt.Sprintf("Event ID: %s, ", uuid.New().String()))
	b.WriteString(fmt.Sprintf("Message: %s", entry.Message))

	for _, key := range sortedKeys(entry.Data) {
		b.WriteString(fmt.Sprintf(", %s: %v", key, entry.Data[key]))
	}

	if entry.HasCaller() {
		b.WriteString(fmt.Sprintf(", Location: %s:%d in %s", filepath.Base(entry.Caller.File), entry.Caller.Line, entry.Caller.Function))
	}

	b.WriteByte('\n')

	return b.Bytes(), nil
}

// InitLogger configures Logger from cfg. Only the first call has an effect.
func InitLogger(cfg config.LoggingConfig) {
	once.Do(func() {
		configure(Logger, cfg)
		Logger.Infof("Event ID: LOGGER_INITIALIZED, Description: Logger initialized for %s at level %s", SystemName, Logger.GetLevel())
	})
}

func configure(l *logrus.Logger, cfg config.LoggingConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}

	l.SetOutput(output(cfg))
	l.SetFormatter(&CustomFormatter{SystemName: SystemName})
	l.SetLevel(level)
	l.SetReportCaller(true)
}

func output(cfg config.LoggingConfig) io.Writer {
	if cfg.File == "" {
		return os.Stdout
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			logrus.Fatalf("Event ID: LOG_DIR_CREATE_FAILED, Description: Failed to create log directory: %v", err)
		}
	}

	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
}

func sortedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
