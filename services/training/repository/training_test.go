package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
)

func setupTrainingRepo(t *testing.T) (*TrainingRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewTrainingRepo(&models.Config{}, sqlx.NewDb(db, "pgx")), mock
}

func moduleRowColumns() []string {
	return []string{"id", "title", "description", "content", "duration_minutes", "language", "is_active", "created_at", "updated_at"}
}

func storyRowColumns() []string {
	return []string{"id", "title", "description", "farmer_id", "location", "before_images", "after_images", "is_featured", "created_at", "updated_at"}
}

func TestCreateModule_Repo(t *testing.T) {
	repo, mock := setupTrainingRepo(t)

	mock.ExpectExec("INSERT INTO training_modules").
		WillReturnResult(sqlmock.NewResult(0, 1))

	module := &models.TrainingModule{Title: "Drip irrigation basics", Language: "en", IsActive: true}
	require.NoError(t, repo.CreateModule(context.Background(), module))
	assert.NotEqual(t, uuid.Nil, module.ID)
}

func TestGetModule_NotFound(t *testing.T) {
	repo, mock := setupTrainingRepo(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM training_modules WHERE id =").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(moduleRowColumns()))

	_, err := repo.GetModule(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrModuleNotFound)
}

func TestListModules_LanguageFilter(t *testing.T) {
	repo, mock := setupTrainingRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM training_modules WHERE is_active = true AND language =").
		WithArgs("hi").
		WillReturnRows(sqlmock.NewRows(moduleRowColumns()).
			AddRow(uuid.New(), "Drip irrigation", "", nil, 30, "hi", true, now, now))

	list, err := repo.ListModules(context.Background(), "hi")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "hi", list[0].Language)
}

func TestCreateStory_Repo(t *testing.T) {
	repo, mock := setupTrainingRepo(t)

	mock.ExpectExec("INSERT INTO success_stories").
		WillReturnResult(sqlmock.NewResult(0, 1))

	story := &models.SuccessStory{Title: "Doubled yield", FarmerID: uuid.New()}
	require.NoError(t, repo.CreateStory(context.Background(), story))
	assert.NotEqual(t, uuid.Nil, story.ID)
}

func TestListStories_FeaturedOnly(t *testing.T) {
	repo, mock := setupTrainingRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM success_stories WHERE is_featured = true").
		WillReturnRows(sqlmock.NewRows(storyRowColumns()).
			AddRow(uuid.New(), "Doubled yield", "", uuid.New(), nil, nil, nil, true, now, now))

	list, err := repo.ListStories(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsFeatured)
}

func TestGetStory_NotFound(t *testing.T) {
	repo, mock := setupTrainingRepo(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM success_stories WHERE id =").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(storyRowColumns()))

	_, err := repo.GetStory(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrStoryNotFound)
}
