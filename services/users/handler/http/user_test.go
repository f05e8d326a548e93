package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/agriconnect/agriconnect/services/users/mocks"
)

func setupUserHandlerTest(t *testing.T) (*UserHandler, *mocks.MockUserUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockUserUC(ctrl)
	return NewUserHandler(mockUC), mockUC, echo.New()
}

func TestGetUser_Success(t *testing.T) {
	handler, mockUC, e := setupUserHandlerTest(t)
	userID := uuid.New()

	mockUC.EXPECT().
		GetUserByID(gomock.Any(), userID.String()).
		Return(&models.User{ID: userID, PhoneNumber: "9999999999", Role: models.RoleFarmer}, nil)

	c, rec := jsonRequest(e, nethttp.MethodGet, "/api/users/"+userID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(userID.String())
	require.NoError(t, handler.GetUser(c))

	assert.Equal(t, nethttp.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "User retrieved successfully", resp["message"])
}

func TestGetUser_NotFound(t *testing.T) {
	handler, mockUC, e := setupUserHandlerTest(t)
	userID := uuid.New()

	mockUC.EXPECT().
		GetUserByID(gomock.Any(), userID.String()).
		Return(nil, apperrors.ErrUserNotFound)

	c, rec := jsonRequest(e, nethttp.MethodGet, "/api/users/"+userID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(userID.String())
	require.NoError(t, handler.GetUser(c))

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestUpdateMe_Success(t *testing.T) {
	handler, mockUC, e := setupUserHandlerTest(t)
	userID := uuid.New()

	mockUC.EXPECT().
		UpdateUser(gomock.Any(), userID, &models.UserUpdateRequest{Name: "New Name", Language: "hi"}).
		Return(&models.User{ID: userID, Name: "New Name", Language: "hi", Role: models.RoleFarmer}, nil)

	c, rec := jsonRequest(e, nethttp.MethodPut, "/api/users/me", `{"name":"New Name","language":"hi"}`)
	c.Set("user", &models.User{ID: userID, Role: models.RoleFarmer})
	require.NoError(t, handler.UpdateMe(c))

	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestUpdateMe_NoContextUser(t *testing.T) {
	handler, _, e := setupUserHandlerTest(t)

	c, rec := jsonRequest(e, nethttp.MethodPut, "/api/users/me", `{"name":"New Name"}`)
	require.NoError(t, handler.UpdateMe(c))

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestUpsertFarmerProfile_Success(t *testing.T) {
	handler, mockUC, e := setupUserHandlerTest(t)
	userID := uuid.New()

	mockUC.EXPECT().
		UpsertFarmerProfile(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, p *models.FarmerProfile) error {
			assert.Equal(t, "Rampur", p.Village)
			return nil
		})

	c, rec := jsonRequest(e, nethttp.MethodPut, "/api/users/me/farmer-profile",
		`{"village":"Rampur","district":"Sitapur","land_area":2.5}`)
	c.Set("user", &models.User{ID: userID, Role: models.RoleFarmer})
	require.NoError(t, handler.UpsertFarmerProfile(c))

	assert.Equal(t, nethttp.StatusOK, rec.Code)
}
