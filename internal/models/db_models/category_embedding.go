package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// CategoryEmbedding stores a vector for a category name plus its known
// aliases, used by the resolver's similarity stage.
type CategoryEmbedding struct {
	CategoryName string          `gorm:"primaryKey;column:category_name"`
	Aliases      pq.StringArray  `gorm:"type:text[]"`
	Embedding    pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
}

func (CategoryEmbedding) TableName() string {
	return "category_embeddings"
}
