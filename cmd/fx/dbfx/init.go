package dbfx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"findflow/internal/infra"
	"findflow/internal/models/db_models"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(migrate),
)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}

func migrate(db *gorm.DB) {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Printf("Could not ensure pgvector extension: %v", err)
	}
	if err := db.AutoMigrate(
		&db_models.CategoryRecord{},
		&db_models.CategoryEmbedding{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}
