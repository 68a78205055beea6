package logging

import (
	log "github.com/sirupsen/logrus"
	"github.com/studentresult/srms/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures logrus from the log configuration. When a log file is
// configured, output goes through a size-rotated writer.
func Setup(cfg config.LogConfig) {
	level, errParse := log.ParseLevel(cfg.Level)
	if errParse != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if cfg.File != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		})
	}
}
