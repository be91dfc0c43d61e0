package authfx

import (
	"go.uber.org/fx"

	"findflow/internal/api/controllers"
)

var Module = fx.Provide(
	provideAuthController)

func provideAuthController() *controllers.AuthController {
	return controllers.NewAuthController()
}
