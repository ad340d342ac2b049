package itinerary_fx

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripcraft/internal/api/controllers"
	"tripcraft/internal/config"
	"tripcraft/internal/repositories"
	"tripcraft/internal/services"
	"tripcraft/pkg/llm"
	"tripcraft/pkg/metrics"
)

var Module = fx.Provide(
	ProvideModelFactory,
	ProvideRegistry,
	ProvidePlannerMetrics,
	ProvideItineraryService,
	controllers.NewItineraryController,
)

// ProvideModelFactory picks the Model Client adapter named by MODEL_PROVIDER.
func ProvideModelFactory(cfg *config.Config, logger *zap.Logger) (llm.Factory, error) {
	logger.Info("initializing model client",
		zap.String("provider", cfg.ModelProvider),
		zap.String("grounded_model", cfg.GroundedModel),
		zap.String("structured_model", cfg.StructuredModel))

	return NewModelFactory(cfg, logger)
}

func NewModelFactory(cfg *config.Config, logger *zap.Logger) (llm.Factory, error) {
	switch cfg.ModelProvider {
	case config.ProviderGemini:
		return llm.NewGeminiFactory(cfg.GeminiAPIKey, cfg.ModelTimeout, logger), nil
	case config.ProviderGeminiLegacy:
		return llm.NewLegacyGeminiFactory(cfg.GeminiAPIKey, cfg.ModelTimeout, logger), nil
	case config.ProviderOpenAI:
		return llm.NewOpenAIFactory(cfg.OpenAIAPIKey, cfg.ModelTimeout, logger), nil
	default:
		return nil, fmt.Errorf("unsupported model provider: %s. Use 'gemini', 'gemini-legacy' or 'openai'", cfg.ModelProvider)
	}
}

func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func ProvidePlannerMetrics(reg *prometheus.Registry) *metrics.PlannerMetrics {
	return metrics.NewPlannerMetrics(reg)
}

func ProvideItineraryService(
	factory llm.Factory,
	cfg *config.Config,
	logRepo repositories.GenerationLogRepositoryInterface,
	plannerMetrics *metrics.PlannerMetrics,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(factory, cfg.PlannerOptions(), logRepo, plannerMetrics, logger)
}
