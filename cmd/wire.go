//go:build wireinject
// +build wireinject

package main

import (
	"ttsweb/config"
	V1 "ttsweb/hander/v1"
	"ttsweb/pkg/log"
	"ttsweb/serve"

	"github.com/google/wire"
)

func InitializeApp() *App {
	wire.Build(
		wire.Struct(new(App), "*"),
		wire.NewSet(
			serve.NewHttpServer,
			config.NewConfig,
			log.NewLogger,
			V1.ProviderSet,
		),
	)
	return &App{}
}
