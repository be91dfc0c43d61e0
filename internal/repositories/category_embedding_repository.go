package repositories

import (
	"context"
	"fmt"

	"findflow/internal/models/db_models"
	"findflow/pkg/utils"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryEmbeddingRepositoryInterface interface {
	Upsert(ctx context.Context, embedding db_models.CategoryEmbedding) error
	ListAll(ctx context.Context) ([]db_models.CategoryEmbedding, error)
	NearestByVector(ctx context.Context, vector pgvector.Vector) (*db_models.CategoryEmbedding, error)
}

type CategoryEmbeddingRepository struct {
	db *gorm.DB
}

func NewCategoryEmbeddingRepository(db *gorm.DB) CategoryEmbeddingRepositoryInterface {
	return &CategoryEmbeddingRepository{db: db}
}

func (r *CategoryEmbeddingRepository) Upsert(ctx context.Context, embedding db_models.CategoryEmbedding) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"aliases", "embedding"}),
	}).Create(&embedding).Error
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (r *CategoryEmbeddingRepository) ListAll(ctx context.Context) ([]db_models.CategoryEmbedding, error) {
	var embeddings []db_models.CategoryEmbedding
	err := r.db.WithContext(ctx).Find(&embeddings).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return embeddings, nil
}

func (r *CategoryEmbeddingRepository) NearestByVector(ctx context.Context, vector pgvector.Vector) (*db_models.CategoryEmbedding, error) {
	var results []db_models.CategoryEmbedding

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM category_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7  -- Only return results with >70% similarity
        ORDER BY embedding <=> $1  -- Cosine distance (closer to 0 is better)
        LIMIT 1
    `

	err := r.db.WithContext(ctx).Raw(query, vecStr).Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}
