package categoryfx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"findflow/internal/api/controllers"
	"findflow/internal/repositories"
	"findflow/internal/services"
	"findflow/pkg/memcache"
	"findflow/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(
		provideCategoryRepo,
		provideEmbeddingRepo,
		provideCategoryService,
		provideCategoryController,
	),
	fx.Invoke(seedCategories),
)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepositoryInterface {
	return repositories.NewCategoryRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.CategoryEmbeddingRepositoryInterface {
	return repositories.NewCategoryEmbeddingRepository(db)
}

func provideCategoryService(
	repo repositories.CategoryRepositoryInterface,
	embeddings repositories.CategoryEmbeddingRepositoryInterface,
	ai utils.AIClientInterface,
	cache memcache.ResolutionStore,
) services.CategoryServiceInterface {
	return services.NewCategoryService(repo, embeddings, ai, cache)
}

func provideCategoryController(categoryService services.CategoryServiceInterface) *controllers.CategoryController {
	return controllers.NewCategoryController(categoryService)
}

// seedCategories loads the bundled schemas on first boot.
func seedCategories(categoryService services.CategoryServiceInterface) {
	path := os.Getenv("CATEGORY_SEED_FILE")
	if path == "" {
		path = "categories.json"
	}
	if _, err := os.Stat(path); err != nil {
		log.Printf("No category seed file at %s, skipping", path)
		return
	}
	if err := categoryService.SeedFromFile(context.Background(), path); err != nil {
		log.Printf("Category seeding failed: %v", err)
	}
}
