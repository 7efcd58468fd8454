package impl

import (
	"io"
	"log/slog"

	"github.com/kimkuhyun/JH0103/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Jobs.Statuses = []string{"PENDING", "DRAFT", "APPLIED", "CLOSED"}
	cfg.Auth.DefaultUserID = 1

	return cfg
}
