package impl

import (
	"io"
	"log/slog"

	"whisper/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Chat: config.ChatConfig{
			HistoryLimit: 100,
			SendBuffer:   256,
		},
	}

	return cfg
}
