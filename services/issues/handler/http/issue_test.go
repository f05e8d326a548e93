package http

import (
	"context"
	"encoding/json"
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
	"github.com/agriconnect/agriconnect/services/issues/mocks"
)

func setupIssueHandlerTest(t *testing.T) (*IssueHandler, *mocks.MockIssueUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockIssueUC(ctrl)
	return NewIssueHandler(mockUC), mockUC, echo.New()
}

func jsonRequest(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateIssue_Handler(t *testing.T) {
	handler, mockUC, e := setupIssueHandlerTest(t)
	reporter := &models.User{ID: uuid.New(), Role: models.RoleFarmer}

	mockUC.EXPECT().
		CreateIssue(gomock.Any(), reporter, gomock.Any()).
		Return(&models.Issue{ID: uuid.New(), Title: "Broken pump", Status: models.IssueStatusReported}, nil)

	c, rec := jsonRequest(e, nethttp.MethodPost, "/api/issues", `{"title":"Broken pump","category":"irrigation"}`)
	c.Set("user", reporter)
	require.NoError(t, handler.CreateIssue(c))

	assert.Equal(t, nethttp.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestCreateIssue_NoContextUser(t *testing.T) {
	handler, _, e := setupIssueHandlerTest(t)

	c, rec := jsonRequest(e, nethttp.MethodPost, "/api/issues", `{"title":"x"}`)
	require.NoError(t, handler.CreateIssue(c))

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestGetIssue_BadID(t *testing.T) {
	handler, _, e := setupIssueHandlerTest(t)

	c, rec := jsonRequest(e, nethttp.MethodGet, "/api/issues/xyz", "")
	c.SetParamNames("id")
	c.SetParamValues("xyz")
	require.NoError(t, handler.GetIssue(c))

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestPatchIssue_Forbidden(t *testing.T) {
	handler, mockUC, e := setupIssueHandlerTest(t)
	actor := &models.User{ID: uuid.New(), Role: models.RoleFarmer}
	issueID := uuid.New()

	mockUC.EXPECT().
		PatchIssue(gomock.Any(), actor, issueID, gomock.Any()).
		Return(nil, apperrors.ErrForbidden)

	c, rec := jsonRequest(e, nethttp.MethodPatch, "/api/issues/"+issueID.String(), `{"title":"hijacked"}`)
	c.SetParamNames("id")
	c.SetParamValues(issueID.String())
	c.Set("user", actor)
	require.NoError(t, handler.PatchIssue(c))

	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
}

func TestListIssues_MineFilter(t *testing.T) {
	handler, mockUC, e := setupIssueHandlerTest(t)
	user := &models.User{ID: uuid.New(), Role: models.RoleFarmer}

	mockUC.EXPECT().
		ListIssues(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter *models.IssueFilter) ([]*models.Issue, error) {
			require.NotNil(t, filter.ReportedBy)
			assert.Equal(t, user.ID, *filter.ReportedBy)
			assert.Equal(t, models.IssueStatusReported, filter.Status)
			return []*models.Issue{}, nil
		})

	c, rec := jsonRequest(e, nethttp.MethodGet, "/api/issues?mine=true&status=reported", "")
	c.Set("user", user)
	require.NoError(t, handler.ListIssues(c))

	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestAddIssueUpdate_Handler(t *testing.T) {
	handler, mockUC, e := setupIssueHandlerTest(t)
	actor := &models.User{ID: uuid.New(), Role: models.RoleVLE}
	issueID := uuid.New()

	mockUC.EXPECT().
		AddIssueUpdate(gomock.Any(), actor, issueID, &models.IssueUpdateRequest{
			Status: models.IssueStatusResolved,
			Notes:  "done",
		}).
		Return(&models.IssueUpdate{ID: uuid.New(), IssueID: issueID, Status: models.IssueStatusResolved}, nil)

	c, rec := jsonRequest(e, nethttp.MethodPost, "/api/issues/"+issueID.String()+"/updates",
		`{"status":"resolved","notes":"done"}`)
	c.SetParamNames("id")
	c.SetParamValues(issueID.String())
	c.Set("user", actor)
	require.NoError(t, handler.AddIssueUpdate(c))

	assert.Equal(t, nethttp.StatusCreated, rec.Code)
}
