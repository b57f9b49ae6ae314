//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/hireup-faq/internal/bootstrap"
	"github.com/yanqian/hireup-faq/internal/domain/faq"
	"github.com/yanqian/hireup-faq/internal/infra/config"
	httpiface "github.com/yanqian/hireup-faq/internal/interface/http"
	"github.com/yanqian/hireup-faq/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideFAQConfig,
		provideStateStore,
		faq.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
