package recommendfx

import (
	"go.uber.org/fx"

	"findflow/internal/services"
	"findflow/pkg/utils"
)

var Module = fx.Provide(
	provideRecommendationService)

func provideRecommendationService(ai utils.AIClientInterface) services.RecommendationServiceInterface {
	return services.NewRecommendationService(ai)
}
