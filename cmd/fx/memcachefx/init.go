package memcachefx

import (
	"go.uber.org/fx"

	"findflow/pkg/memcache"
)

var Module = fx.Provide(
	provideResolutionStore)

func provideResolutionStore() memcache.ResolutionStore {
	return memcache.NewResolutions()
}
