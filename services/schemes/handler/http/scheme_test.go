package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriconnect/agriconnect/internal/pkg/apperrors"
	"github.com/agriconnect/agriconnect/internal/pkg/models"
	"github.com/agriconnect/agriconnect/services/schemes/mocks"
)

func setupSchemeHandlerTest(t *testing.T) (*SchemeHandler, *mocks.MockSchemeUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockSchemeUC(ctrl)
	return NewSchemeHandler(mockUC), mockUC, echo.New()
}

func jsonRequest(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateScheme_Handler(t *testing.T) {
	handler, mockUC, e := setupSchemeHandlerTest(t)
	admin := &models.User{ID: uuid.New(), Role: models.RoleNGOAdmin}

	mockUC.EXPECT().
		CreateScheme(gomock.Any(), admin, gomock.Any()).
		Return(&models.GovernmentScheme{ID: uuid.New(), Title: "PM-KISAN", IsActive: true}, nil)

	c, rec := jsonRequest(e, nethttp.MethodPost, "/api/schemes", `{"title":"PM-KISAN"}`)
	c.Set("user", admin)
	require.NoError(t, handler.CreateScheme(c))

	assert.Equal(t, nethttp.StatusCreated, rec.Code)
}

func TestCreateScheme_Forbidden(t *testing.T) {
	handler, mockUC, e := setupSchemeHandlerTest(t)
	user := &models.User{ID: uuid.New(), Role: models.RoleFarmer}

	mockUC.EXPECT().
		CreateScheme(gomock.Any(), user, gomock.Any()).
		Return(nil, apperrors.ErrForbidden)

	c, rec := jsonRequest(e, nethttp.MethodPost, "/api/schemes", `{"title":"PM-KISAN"}`)
	c.Set("user", user)
	require.NoError(t, handler.CreateScheme(c))

	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
}

func TestListSchemes_InactiveOnlyForAdmin(t *testing.T) {
	handler, mockUC, e := setupSchemeHandlerTest(t)
	user := &models.User{ID: uuid.New(), Role: models.RoleFarmer}

	// A non-admin asking for inactive listings still gets active only
	mockUC.EXPECT().
		ListSchemes(gomock.Any(), false).
		Return([]*models.GovernmentScheme{}, nil)

	c, rec := jsonRequest(e, nethttp.MethodGet, "/api/schemes?include_inactive=true", "")
	c.Set("user", user)
	require.NoError(t, handler.ListSchemes(c))

	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestGetScheme_NotFound(t *testing.T) {
	handler, mockUC, e := setupSchemeHandlerTest(t)
	id := uuid.New()

	mockUC.EXPECT().GetScheme(gomock.Any(), id).Return(nil, apperrors.ErrSchemeNotFound)

	c, rec := jsonRequest(e, nethttp.MethodGet, "/api/schemes/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, handler.GetScheme(c))

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}
