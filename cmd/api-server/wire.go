//go:build wireinject
// +build wireinject

package main

import (
	"LearnHub/config"
	"LearnHub/dao"
	"LearnHub/dao/cache"
	"LearnHub/handler"
	"LearnHub/pkg/client"
	"LearnHub/pkg/database"
	"LearnHub/pkg/server"
	"LearnHub/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Course), "*"),
		wire.Struct(new(handler.Note), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
