package prompt_fx

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"tripplanner/internal/config"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(
	ProvideSuggestionClient)

// ProvideSuggestionClient returns the suggestion client for the configured
// provider, or nil when that provider has no API key; planning then relies on
// the catalog alone.
func ProvideSuggestionClient(lc fx.Lifecycle, cfg config.Config) (utils.POISuggestionClientInterface, error) {
	logger := log.WithField("prefix", "init")

	switch cfg.SuggestionProvider {
	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			logger.Info("OPENAI_API_KEY not set, AI suggestions disabled")
			return nil, nil
		}
		logger.Infof("Initializing openai suggestion client with model: %s", cfg.OpenAIModel)
		return utils.NewOpenAISuggestionClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil

	default:
		if cfg.GeminiAPIKey == "" {
			logger.Info("GEMINI_API_KEY not set, AI suggestions disabled")
			return nil, nil
		}
		logger.Infof("Initializing gemini suggestion client with model: %s", cfg.GeminiModel)
		client, err := utils.NewGeminiSuggestionClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})
		return client, nil
	}
}
