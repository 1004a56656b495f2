package logger

import (
	"Pulseboard/internal/api/config"
	"io"
	log "log/slog"
	"os"
)

var LogWriter io.Writer

func InitLogger() {
	level := log.LevelInfo
	if config.Cfg != nil && !config.Cfg.IsProduction() {
		level = log.LevelDebug
	}

	LogWriter = os.Stdout
	handler := log.NewJSONHandler(LogWriter, &log.HandlerOptions{Level: level})

	logger := log.New(&ContextHandler{handler})
	log.SetDefault(logger)
}
