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
)

func TestGetUserByID_Success(t *testing.T) {
	uc, mockRepo, _ := setupAuthTest(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, PhoneNumber: "9999999999", Role: models.RoleFarmer}, nil)

	user, err := uc.GetUserByID(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}

func TestGetUserByID_MalformedID(t *testing.T) {
	uc, _, _ := setupAuthTest(t)

	_, err := uc.GetUserByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateUser_OnlyMutableFields(t *testing.T) {
	uc, mockRepo, _ := setupAuthTest(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, PhoneNumber: "9999999999", Name: "Old", Language: "en", Role: models.RoleFarmer}, nil)
	mockRepo.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			assert.Equal(t, "New Name", u.Name)
			assert.Equal(t, "hi", u.Language)
			assert.Equal(t, "9999999999", u.PhoneNumber)
			assert.Equal(t, models.RoleFarmer, u.Role)
			return nil
		})

	user, err := uc.UpdateUser(context.Background(), userID, &models.UserUpdateRequest{Name: "New Name", Language: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
}

func TestUpdateUser_EmptyFieldsKeepCurrentValues(t *testing.T) {
	uc, mockRepo, _ := setupAuthTest(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Name: "Old", Language: "en", Role: models.RoleFarmer}, nil)
	mockRepo.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			assert.Equal(t, "Old", u.Name)
			assert.Equal(t, "hi", u.Language)
			return nil
		})

	_, err := uc.UpdateUser(context.Background(), userID, &models.UserUpdateRequest{Language: "hi"})
	assert.NoError(t, err)
}

func TestUpdateUser_NotFound(t *testing.T) {
	uc, mockRepo, _ := setupAuthTest(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(nil, apperrors.ErrUserNotFound)

	_, err := uc.UpdateUser(context.Background(), userID, &models.UserUpdateRequest{Name: "New Name"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpsertFarmerProfile(t *testing.T) {
	uc, mockRepo, _ := setupAuthTest(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Role: models.RoleFarmer}, nil)
	mockRepo.EXPECT().
		UpsertFarmerProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p *models.FarmerProfile) error {
			assert.Equal(t, userID, p.UserID)
			assert.Equal(t, 2.5, p.LandArea)
			return nil
		})

	err := uc.UpsertFarmerProfile(context.Background(), userID, &models.FarmerProfile{LandArea: 2.5, Village: "Rampur"})
	assert.NoError(t, err)
}

func TestUpsertFarmerProfile_UnknownUser(t *testing.T) {
	uc, mockRepo, _ := setupAuthTest(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(nil, apperrors.ErrUserNotFound)

	err := uc.UpsertFarmerProfile(context.Background(), userID, &models.FarmerProfile{})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
