package dialoguefx

import (
	"go.uber.org/fx"

	"findflow/internal/api/controllers"
	"findflow/internal/services"
)

var Module = fx.Provide(
	provideDialogueService,
	provideDialogueController)

func provideDialogueService(
	categories services.CategoryServiceInterface,
	recommendations services.RecommendationServiceInterface,
) services.DialogueServiceInterface {
	return services.NewDialogueService(categories, recommendations)
}

func provideDialogueController(dialogueService services.DialogueServiceInterface) *controllers.DialogueController {
	return controllers.NewDialogueController(dialogueService)
}
