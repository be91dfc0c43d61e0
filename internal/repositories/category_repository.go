package repositories

import (
	"context"
	"errors"
	"fmt"

	"findflow/internal/models/db_models"
	"findflow/pkg/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepositoryInterface interface {
	GetByName(ctx context.Context, name string) (*db_models.Category, error)
	ListNames(ctx context.Context) ([]string, error)
	LoadAll(ctx context.Context) ([]db_models.Category, error)
	Save(ctx context.Context, category *db_models.Category) error
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{db: db}
}

type CategoryRepository struct {
	db *gorm.DB
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*db_models.Category, error) {
	var record db_models.CategoryRecord
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	category, err := record.ToCategory()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrSchemaInvalid, err)
	}
	return &category, nil
}

func (r *CategoryRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&db_models.CategoryRecord{}).
		Order("name asc").
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return names, nil
}

func (r *CategoryRepository) LoadAll(ctx context.Context) ([]db_models.Category, error) {
	var records []db_models.CategoryRecord
	err := r.db.WithContext(ctx).Order("name asc").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	categories := make([]db_models.Category, 0, len(records))
	for _, record := range records {
		category, err := record.ToCategory()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrSchemaInvalid, err)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// Save upserts by name so admin updates replace the stored schema.
func (r *CategoryRepository) Save(ctx context.Context, category *db_models.Category) error {
	record, err := db_models.NewCategoryRecord(*category)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrSchemaInvalid, err)
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"specs", "budget_bands", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}
