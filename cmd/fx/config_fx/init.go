package config_fx

import (
	"go.uber.org/fx"

	"tripplanner/internal/config"
	"tripplanner/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(config.Load, provideJWTManager),
	fx.Invoke(configureLogger),
)

func provideJWTManager(cfg config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
}

func configureLogger(cfg config.Config) {
	utils.ConfigureLogger(cfg.LogLevel)
}
