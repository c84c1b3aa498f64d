package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is usable before InitLogger runs; InitLogger only reconfigures it.
var Log = logrus.New()

// LoggerConfig selects level, format and an optional rotating log file.
type LoggerConfig struct {
	Level   string
	Release bool
	File    string
}

// InitLogger initializes the structured logger
func InitLogger(cfg LoggerConfig) {
	Log.SetLevel(ParseLevel(cfg.Level))

	// JSON for production, text for development
	if cfg.Release {
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     true,
		})
	}

	var out io.Writer = os.Stdout
	if cfg.File != "" {
		logFile := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, logFile)
	}
	Log.SetOutput(out)

	Log.WithFields(logrus.Fields{
		"level": Log.GetLevel().String(),
		"file":  cfg.File,
	}).Info("Logger initialized successfully")
}

// ParseLevel maps LOG_LEVEL values onto logrus levels, defaulting to info.
func ParseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
