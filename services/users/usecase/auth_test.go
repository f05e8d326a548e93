package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	jwtpkg "github.com/agriconnect/agriconnect/internal/pkg/jwt"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/agriconnect/agriconnect/services/users/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		App: models.AppConfig{Environment: "development"},
		JWT: models.JWTConfig{Secret: "test-secret", Expiration: 1440, Issuer: "agriconnect-test"},
		OTP: models.OTPConfig{Length: 6, Expiration: 5, MaxAttempts: 3},
	}
}

func setupAuthTest(t *testing.T) (*UserUC, *mocks.MockUserRepo, *mocks.MockUserGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)

	uc := NewUserUC(mockRepo, mockGW, testConfig())
	uc.generateCode = func(int) string { return "123456" }
	return uc, mockRepo, mockGW
}

func pendingOTP(phone, code string, userID uuid.UUID) *models.OTP {
	now := time.Now()
	return &models.OTP{
		PhoneNumber: phone,
		Code:        code,
		UserID:      userID,
		CreatedAt:   now,
		ExpiresAt:   now.Add(5 * time.Minute),
	}
}

func TestRequestOTP_AutoRegistersNewNumber(t *testing.T) {
	uc, mockRepo, mockGW := setupAuthTest(t)

	mockRepo.EXPECT().
		GetUserByPhone(gomock.Any(), "9999999999").
		Return(nil, apperrors.ErrUserNotFound)

	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			assert.Equal(t, "9999999999", u.PhoneNumber)
			assert.Equal(t, models.RoleFarmer, u.Role)
			assert.True(t, u.IsActive)
			u.ID = uuid.New()
			return nil
		})

	mockGW.EXPECT().PublishUserCreated(gomock.Any(), gomock.Any()).Return(nil)

	mockRepo.EXPECT().
		CreateOTP(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, otp *models.OTP) error {
			assert.Equal(t, "123456", otp.Code)
			assert.Equal(t, "9999999999", otp.PhoneNumber)
			assert.Zero(t, otp.Attempts)
			assert.True(t, otp.ExpiresAt.After(time.Now()))
			return nil
		})

	mockGW.EXPECT().PublishOTPRequested(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := uc.RequestOTP(context.Background(), "9999999999")
	require.NoError(t, err)
	assert.Equal(t, "123456", resp.Code) // development build returns the code
	assert.Equal(t, "OTP sent successfully", resp.Message)
}

func TestRequestOTP_ExistingUserNotDuplicated(t *testing.T) {
	uc, mockRepo, mockGW := setupAuthTest(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		GetUserByPhone(gomock.Any(), "9999999999").
		Return(&models.User{ID: userID, PhoneNumber: "9999999999", Role: models.RoleFarmer, IsActive: true}, nil)

	// No CreateUser expectation: an existing phone number must not
	// produce a second record.
	mockRepo.EXPECT().
		CreateOTP(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, otp *models.OTP) error {
			assert.Equal(t, userID, otp.UserID)
			return nil
		})
	mockGW.EXPECT().PublishOTPRequested(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.RequestOTP(context.Background(), "9999999999")
	assert.NoError(t, err)
}

func TestRequestOTP_ProductionOmitsCode(t *testing.T) {
	uc, mockRepo, mockGW := setupAuthTest(t)
	uc.cfg.App.Environment = "production"

	mockRepo.EXPECT().
		GetUserByPhone(gomock.Any(), "9999999999").
		Return(&models.User{ID: uuid.New(), PhoneNumber: "9999999999", Role: models.RoleFarmer, IsActive: true}, nil)
	mockRepo.EXPECT().CreateOTP(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishOTPRequested(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := uc.RequestOTP(context.Background(), "9999999999")
	require.NoError(t, err)
	assert.Empty(t, resp.Code)
}

func TestRequestOTP_InvalidPhone(t *testing.T) {
	uc, _, _ := setupAuthTest(t)

	_, err := uc.RequestOTP(context.Background(), "12345")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPhoneNumber)
}

func TestRequestOTP_GatewayFailureIsNotFatal(t *testing.T) {
	uc, mockRepo, mockGW := setupAuthTest(t)

	mockRepo.EXPECT().
		GetUserByPhone(gomock.Any(), "9999999999").
		Return(&models.User{ID: uuid.New(), PhoneNumber: "9999999999", Role: models.RoleFarmer, IsActive: true}, nil)
	mockRepo.EXPECT().CreateOTP(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishOTPRequested(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	_, err := uc.RequestOTP(context.Background(), "9999999999")
	assert.NoError(t, err)
}

func TestVerifyOTP_Success(t *testing.T) {
	uc, mockRepo, _ := setupAuthTest(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		GetOTP(gomock.Any(), "9999999999").
		Return(pendingOTP("9999999999", "123456", userID), nil)
	mockRepo.EXPECT().DeleteOTP(gomock.Any(), "9999999999").Return(nil)
	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, PhoneNumber: "9999999999", Role: models.RoleFarmer, IsActive: true}, nil)

	resp, err := uc.VerifyOTP(context.Background(), "9999999999", "123456")
	require.NoError(t, err)

	assert.Equal(t, userID.String(), resp.UserID)
	assert.Equal(t, models.RoleFarmer, resp.Role)
	assert.Equal(t, "bearer", resp.TokenType)

	// The minted token must round-trip through validation
	claims, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	subject, err := claims.SubjectID()
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	uc, mockRepo, _ := setupAuthTest(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		GetOTP(gomock.Any(), "9999999999").
		Return(pendingOTP("9999999999", "123456", userID), nil)
	mockRepo.EXPECT().
		UpdateOTP(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, otp *models.OTP) error {
			assert.Equal(t, 1, otp.Attempts)
			return nil
		})

	_, err := uc.VerifyOTP(context.Background(), "9999999999", "000000")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredential)
}

func TestVerifyOTP_RevokedAfterMaxAttempts(t *testing.T) {
	uc, mockRepo, _ := setupAuthTest(t)
	otp := pendingOTP("9999999999", "123456", uuid.New())
	otp.Attempts = 2 // one failure away from the limit of 3

	mockRepo.EXPECT().GetOTP(gomock.Any(), "9999999999").Return(otp, nil)
	mockRepo.EXPECT().DeleteOTP(gomock.Any(), "9999999999").Return(nil)

	_, err := uc.VerifyOTP(context.Background(), "9999999999", "000000")
	assert.ErrorIs(t, err, apperrors.ErrTooManyAttempts)
}

func TestVerifyOTP_NoPendingCode(t *testing.T) {
	uc, mockRepo, _ := setupAuthTest(t)

	mockRepo.EXPECT().
		GetOTP(gomock.Any(), "9999999999").
		Return(nil, apperrors.ErrNoPendingOTP)

	_, err := uc.VerifyOTP(context.Background(), "9999999999", "123456")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredential)
}

func TestVerifyOTP_ExpiredCode(t *testing.T) {
	uc, mockRepo, _ := setupAuthTest(t)
	otp := pendingOTP("9999999999", "123456", uuid.New())
	otp.ExpiresAt = time.Now().Add(-time.Minute)

	mockRepo.EXPECT().GetOTP(gomock.Any(), "9999999999").Return(otp, nil)
	mockRepo.EXPECT().DeleteOTP(gomock.Any(), "9999999999").Return(nil)

	_, err := uc.VerifyOTP(context.Background(), "9999999999", "123456")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredential)
}

func TestVerifyOTP_StaleCodeAfterReissue(t *testing.T) {
	// A second RequestOTP overwrites the ledger record, so the first
	// code no longer matches what is stored.
	uc, mockRepo, _ := setupAuthTest(t)

	mockRepo.EXPECT().
		GetOTP(gomock.Any(), "9999999999").
		Return(pendingOTP("9999999999", "654321", uuid.New()), nil)
	mockRepo.EXPECT().UpdateOTP(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.VerifyOTP(context.Background(), "9999999999", "123456")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredential)
}

func TestVerifyOTP_UserVanished(t *testing.T) {
	uc, mockRepo, _ := setupAuthTest(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		GetOTP(gomock.Any(), "9999999999").
		Return(pendingOTP("9999999999", "123456", userID), nil)
	mockRepo.EXPECT().DeleteOTP(gomock.Any(), "9999999999").Return(nil)
	mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(nil, apperrors.ErrUserNotFound)

	_, err := uc.VerifyOTP(context.Background(), "9999999999", "123456")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredential)
}

func TestPasswordLogin_UnknownPhone(t *testing.T) {
	uc, mockRepo, _ := setupAuthTest(t)

	mockRepo.EXPECT().
		GetUserByPhone(gomock.Any(), "9999999999").
		Return(nil, apperrors.ErrUserNotFound)

	_, err := uc.PasswordLogin(context.Background(), "9999999999", "ignored")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestPasswordLogin_KnownPhone(t *testing.T) {
	uc, mockRepo, _ := setupAuthTest(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		GetUserByPhone(gomock.Any(), "9999999999").
		Return(&models.User{ID: userID, PhoneNumber: "9999999999", Role: models.RoleVLE, IsActive: true}, nil)

	resp, err := uc.PasswordLogin(context.Background(), "9999999999", "anything")
	require.NoError(t, err)
	assert.Equal(t, userID.String(), resp.UserID)
	assert.Equal(t, models.RoleVLE, resp.Role)
}

func TestAuthenticate_ActiveUser(t *testing.T) {
	uc, mockRepo, _ := setupAuthTest(t)
	userID := uuid.New()

	token, _, err := jwtpkg.GenerateToken(userID, "9999999999", models.RoleFarmer, uc.cfg)
	require.NoError(t, err)

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, PhoneNumber: "9999999999", Role: models.RoleFarmer, IsActive: true}, nil)

	user, err := uc.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}

func TestAuthenticate_DeactivatedUser(t *testing.T) {
	// The token is still inside its validity window, but the account's
	// active flag has been cleared since issuance.
	uc, mockRepo, _ := setupAuthTest(t)
	userID := uuid.New()

	token, _, err := jwtpkg.GenerateToken(userID, "9999999999", models.RoleFarmer, uc.cfg)
	require.NoError(t, err)

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, PhoneNumber: "9999999999", Role: models.RoleFarmer, IsActive: false}, nil)

	_, err = uc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	uc, _, _ := setupAuthTest(t)

	_, err := uc.Authenticate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthenticate_MissingUser(t *testing.T) {
	uc, mockRepo, _ := setupAuthTest(t)
	userID := uuid.New()

	token, _, err := jwtpkg.GenerateToken(userID, "9999999999", models.RoleFarmer, uc.cfg)
	require.NoError(t, err)

	mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(nil, apperrors.ErrUserNotFound)

	_, err = uc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
