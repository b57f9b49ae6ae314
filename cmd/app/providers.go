package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/hireup-faq/internal/domain/faq"
	"github.com/yanqian/hireup-faq/internal/infra/config"
	"github.com/yanqian/hireup-faq/internal/infra/viewstate"
)

func provideFAQConfig(cfg *config.Config) faq.Config {
	return faq.Config{
		Path:        cfg.FAQ.Path,
		Title:       cfg.FAQ.Title,
		Description: cfg.FAQ.Description,
		StateTTL:    cfg.FAQ.StateTTL,
	}
}

func provideStateStore(cfg *config.Config, logger *slog.Logger) faq.StateStore {
	if !cfg.FAQ.Valkey.Enabled {
		logger.Info("faq valkey disabled, using memory view state")
		return viewstate.NewMemoryStore()
	}
	opt, err := buildValkeyOptions(cfg)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory view state", "error", err)
		return viewstate.NewMemoryStore()
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory view state", "error", err)
		return viewstate.NewMemoryStore()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory view state", "error", err)
		client.Close()
		return viewstate.NewMemoryStore()
	}
	logger.Info("faq valkey view state enabled", "addr", cfg.FAQ.Valkey.Addr)
	return viewstate.NewValkeyStore(client, cfg.FAQ.Valkey.Prefix)
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	addr := strings.TrimSpace(cfg.FAQ.Valkey.Addr)
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
