package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/agriconnect/agriconnect/services/schemes/mocks"
)

func setupSchemeTest(t *testing.T) (*SchemeUC, *mocks.MockSchemeRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockSchemeRepo(ctrl)
	return NewSchemeUC(mockRepo, &models.Config{}), mockRepo
}

func ngoAdmin() *models.User {
	return &models.User{ID: uuid.New(), Role: models.RoleNGOAdmin, IsActive: true}
}

func TestCreateScheme_AdminOnly(t *testing.T) {
	uc, _ := setupSchemeTest(t)
	actor := &models.User{ID: uuid.New(), Role: models.RoleFarmer}

	_, err := uc.CreateScheme(context.Background(), actor, &models.GovernmentScheme{Title: "PM-KISAN"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestCreateScheme_Success(t *testing.T) {
	uc, mockRepo := setupSchemeTest(t)

	mockRepo.EXPECT().
		CreateScheme(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, scheme *models.GovernmentScheme) error {
			assert.True(t, scheme.IsActive)
			scheme.ID = uuid.New()
			return nil
		})

	scheme, err := uc.CreateScheme(context.Background(), ngoAdmin(), &models.GovernmentScheme{Title: "PM-KISAN"})
	require.NoError(t, err)
	assert.Equal(t, "PM-KISAN", scheme.Title)
}

func TestCreateScheme_MissingTitle(t *testing.T) {
	uc, _ := setupSchemeTest(t)

	_, err := uc.CreateScheme(context.Background(), ngoAdmin(), &models.GovernmentScheme{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestUpdateScheme_AdminOnly(t *testing.T) {
	uc, _ := setupSchemeTest(t)
	actor := &models.User{ID: uuid.New(), Role: models.RoleExpert}

	_, err := uc.UpdateScheme(context.Background(), actor, uuid.New(), &models.GovernmentScheme{Title: "X"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestUpdateScheme_PreservesIdentity(t *testing.T) {
	uc, mockRepo := setupSchemeTest(t)
	schemeID := uuid.New()
	current := &models.GovernmentScheme{ID: schemeID, Title: "Old title"}

	mockRepo.EXPECT().GetScheme(gomock.Any(), schemeID).Return(current, nil)
	mockRepo.EXPECT().
		UpdateScheme(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, scheme *models.GovernmentScheme) error {
			assert.Equal(t, schemeID, scheme.ID)
			assert.Equal(t, "New title", scheme.Title)
			return nil
		})

	_, err := uc.UpdateScheme(context.Background(), ngoAdmin(), schemeID, &models.GovernmentScheme{Title: "New title"})
	assert.NoError(t, err)
}

func TestUpdateScheme_NotFound(t *testing.T) {
	uc, mockRepo := setupSchemeTest(t)

	mockRepo.EXPECT().GetScheme(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrSchemeNotFound)

	_, err := uc.UpdateScheme(context.Background(), ngoAdmin(), uuid.New(), &models.GovernmentScheme{Title: "X"})
	assert.ErrorIs(t, err, apperrors.ErrSchemeNotFound)
}

func TestListSchemes_PassesFlag(t *testing.T) {
	uc, mockRepo := setupSchemeTest(t)

	mockRepo.EXPECT().ListSchemes(gomock.Any(), true).Return([]*models.GovernmentScheme{}, nil)

	_, err := uc.ListSchemes(context.Background(), true)
	assert.NoError(t, err)
}
