package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findflow/internal/models/db_models"
	"findflow/internal/models/request_models"
	"findflow/internal/models/response_models"
	"findflow/pkg/memcache"
	"findflow/pkg/utils"
)

type fakeCategoryRepo struct {
	categories map[string]db_models.Category
}

func newFakeCategoryRepo(categories ...db_models.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: map[string]db_models.Category{}}
	for _, c := range categories {
		repo.categories[c.Name] = c
	}
	return repo
}

func (r *fakeCategoryRepo) GetByName(_ context.Context, name string) (*db_models.Category, error) {
	if c, ok := r.categories[name]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *fakeCategoryRepo) ListNames(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(r.categories))
	for name := range r.categories {
		names = append(names, name)
	}
	return names, nil
}

func (r *fakeCategoryRepo) LoadAll(_ context.Context) ([]db_models.Category, error) {
	all := make([]db_models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		all = append(all, c)
	}
	return all, nil
}

func (r *fakeCategoryRepo) Save(_ context.Context, category *db_models.Category) error {
	r.categories[category.Name] = *category
	return nil
}

type fakeEmbeddingRepo struct {
	rows    map[string]db_models.CategoryEmbedding
	nearest *db_models.CategoryEmbedding
}

func newFakeEmbeddingRepo() *fakeEmbeddingRepo {
	return &fakeEmbeddingRepo{rows: map[string]db_models.CategoryEmbedding{}}
}

func (r *fakeEmbeddingRepo) Upsert(_ context.Context, embedding db_models.CategoryEmbedding) error {
	r.rows[embedding.CategoryName] = embedding
	return nil
}

func (r *fakeEmbeddingRepo) ListAll(_ context.Context) ([]db_models.CategoryEmbedding, error) {
	all := make([]db_models.CategoryEmbedding, 0, len(r.rows))
	for _, row := range r.rows {
		all = append(all, row)
	}
	return all, nil
}

func (r *fakeEmbeddingRepo) NearestByVector(_ context.Context, _ pgvector.Vector) (*db_models.CategoryEmbedding, error) {
	return r.nearest, nil
}

type fakeAI struct {
	recognized     string
	recognizeErr   error
	created        *db_models.Category
	createErr      error
	recognizeCalls int
	createCalls    int
}

func (f *fakeAI) GetEmbedding(_ context.Context, _ string) (pgvector.Vector, error) {
	return pgvector.NewVector(make([]float32, 4)), nil
}

func (f *fakeAI) RecognizeCategory(_ context.Context, _ string, _ []string) (string, error) {
	f.recognizeCalls++
	return f.recognized, f.recognizeErr
}

func (f *fakeAI) CreateCategory(_ context.Context, _ string) (*db_models.Category, error) {
	f.createCalls++
	return f.created, f.createErr
}

func (f *fakeAI) SearchProducts(_ context.Context, _ request_models.ProductSearchQuery) (*response_models.ProductSearchResult, error) {
	return nil, errors.New("not implemented")
}

func newCategoryService(repo *fakeCategoryRepo, embeddings *fakeEmbeddingRepo, ai *fakeAI) CategoryServiceInterface {
	return NewCategoryService(repo, embeddings, ai, memcache.NewResolutions())
}

func TestResolveExactMatchIgnoresCase(t *testing.T) {
	svc := newCategoryService(newFakeCategoryRepo(db_models.Category{Name: "Phone"}), newFakeEmbeddingRepo(), &fakeAI{})

	resolution, err := svc.Resolve(context.Background(), "phone")
	require.NoError(t, err)
	assert.Equal(t, response_models.MatchExact, resolution.MatchType)
	assert.Equal(t, "Phone", resolution.Category)
}

func TestResolveAliasMatch(t *testing.T) {
	ai := &fakeAI{}
	svc := newCategoryService(newFakeCategoryRepo(db_models.Category{Name: "Headphones"}), newFakeEmbeddingRepo(), ai)

	resolution, err := svc.Resolve(context.Background(), "kulaklık")
	require.NoError(t, err)
	assert.Equal(t, response_models.MatchExact, resolution.MatchType)
	assert.Equal(t, "Headphones", resolution.Category)
	assert.Zero(t, ai.recognizeCalls)
}

func TestResolvePartialMatch(t *testing.T) {
	ai := &fakeAI{}
	svc := newCategoryService(newFakeCategoryRepo(db_models.Category{Name: "Television"}), newFakeEmbeddingRepo(), ai)

	resolution, err := svc.Resolve(context.Background(), "tele")
	require.NoError(t, err)
	assert.Equal(t, response_models.MatchPartial, resolution.MatchType)
	assert.Equal(t, "Television", resolution.Category)
	assert.Zero(t, ai.recognizeCalls, "a name match must not reach the AI")
}

func TestResolvePartialMatchAvoidsFalsePositive(t *testing.T) {
	ai := &fakeAI{recognized: "Headphones"}
	repo := newFakeCategoryRepo(db_models.Category{Name: "Phone"}, db_models.Category{Name: "Headphones"})
	svc := newCategoryService(repo, newFakeEmbeddingRepo(), ai)

	// "headphones" contains "phone" but not as a prefix or suffix start,
	// so it must not partial-match Phone
	resolution, err := svc.Resolve(context.Background(), "headphones")
	require.NoError(t, err)
	assert.Equal(t, "Headphones", resolution.Category)
	assert.Equal(t, response_models.MatchExact, resolution.MatchType)
}

func TestResolveEmbeddingMatch(t *testing.T) {
	embeddings := newFakeEmbeddingRepo()
	embeddings.nearest = &db_models.CategoryEmbedding{CategoryName: "Drone"}
	ai := &fakeAI{}
	svc := newCategoryService(newFakeCategoryRepo(db_models.Category{Name: "Drone"}), embeddings, ai)

	resolution, err := svc.Resolve(context.Background(), "uçan kamera")
	require.NoError(t, err)
	assert.Equal(t, response_models.MatchEmbedding, resolution.MatchType)
	assert.Equal(t, "Drone", resolution.Category)
	assert.Zero(t, ai.recognizeCalls)
}

func TestResolveAIRecognitionAndCaching(t *testing.T) {
	ai := &fakeAI{recognized: "Phone"}
	svc := newCategoryService(newFakeCategoryRepo(db_models.Category{Name: "Phone"}), newFakeEmbeddingRepo(), ai)

	resolution, err := svc.Resolve(context.Background(), "akıllı telefon")
	require.NoError(t, err)
	assert.Equal(t, response_models.MatchAIRecognition, resolution.MatchType)
	assert.Equal(t, "Phone", resolution.Category)
	assert.Equal(t, 1, ai.recognizeCalls)

	// the second identical query is served from cache
	_, err = svc.Resolve(context.Background(), "Akıllı Telefon ")
	require.NoError(t, err)
	assert.Equal(t, 1, ai.recognizeCalls)
}

func TestResolveAICreation(t *testing.T) {
	created := db_models.Category{
		Name:  "Robot Vacuum",
		Specs: []db_models.QuestionSpec{boolSpec("mapping", 0.9)},
	}
	ai := &fakeAI{created: &created}
	repo := newFakeCategoryRepo()
	svc := newCategoryService(repo, newFakeEmbeddingRepo(), ai)

	resolution, err := svc.Resolve(context.Background(), "robot süpürge")
	require.NoError(t, err)
	assert.Equal(t, response_models.MatchAICreated, resolution.MatchType)
	assert.Equal(t, "Robot Vacuum", resolution.Category)

	stored, err := repo.GetByName(context.Background(), "Robot Vacuum")
	require.NoError(t, err)
	require.NotNil(t, stored, "a created category must be persisted")
}

func TestResolveUnresolvable(t *testing.T) {
	ai := &fakeAI{createErr: errors.New("model unavailable")}
	svc := newCategoryService(newFakeCategoryRepo(), newFakeEmbeddingRepo(), ai)

	resolution, err := svc.Resolve(context.Background(), "tamamen anlamsız")
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrCategoryUnresolvable)
	assert.Equal(t, response_models.MatchNone, resolution.MatchType)
}

func TestEnsureCategoryResolvesFreeText(t *testing.T) {
	ai := &fakeAI{recognized: "Phone"}
	repo := newFakeCategoryRepo(db_models.Category{Name: "Phone", Specs: []db_models.QuestionSpec{boolSpec("camera_important", 0.8)}})
	svc := newCategoryService(repo, newFakeEmbeddingRepo(), ai)

	category, err := svc.EnsureCategory(context.Background(), "en iyi telefon hangisi")
	require.NoError(t, err)
	require.NotNil(t, category)
	assert.Equal(t, "Phone", category.Name)
}

func TestSaveRejectsInvalidSchema(t *testing.T) {
	svc := newCategoryService(newFakeCategoryRepo(), newFakeEmbeddingRepo(), &fakeAI{})

	bad := db_models.Category{
		Name: "Broken",
		Specs: []db_models.QuestionSpec{
			func() db_models.QuestionSpec {
				s := boolSpec("later", 0.5)
				s.DependsOn = []db_models.Dependency{{ID: "missing", Eq: true}}
				return s
			}(),
		},
	}

	err := svc.Save(context.Background(), &bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrSchemaInvalid)
}
