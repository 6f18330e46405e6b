package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beacon-cms/beacon/internal/application/form/usecases"
	"github.com/beacon-cms/beacon/internal/domain/form"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type stubFormRepo struct {
	form.FormRepository
	created []*form.Form
}

func (r *stubFormRepo) Create(_ context.Context, f *form.Form) error {
	if err := f.SetID(uint(len(r.created) + 1)); err != nil {
		return err
	}
	r.created = append(r.created, f)
	return nil
}

func newFormTestRouter(t *testing.T) (*gin.Engine, *stubFormRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &stubFormRepo{}
	manageUC := usecases.NewManageFormsUseCase(repo, logger.NewLogger())
	handler := NewFormHandler(manageUC, nil, nil, nil, nil)

	router := gin.New()
	router.POST("/api/admin/forms", handler.CreateForm)
	return router, repo
}

func postForm(router *gin.Engine, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/forms", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFormHandler_CreateForm_NotificationSettings(t *testing.T) {
	router, repo := newFormTestRouter(t)

	w := postForm(router, gin.H{
		"slug":               "contact",
		"name":               "Contact",
		"email_notification": true,
		"notify_emails":      []string{"team@example.com"},
		"dynamic_recipients": true,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.created, 1)
	assert.True(t, repo.created[0].EmailNotification())
	assert.True(t, repo.created[0].DynamicRecipients())

	var resp struct {
		Data struct {
			EmailNotification bool     `json:"email_notification"`
			NotifyEmails      []string `json:"notify_emails"`
			DynamicRecipients bool     `json:"dynamic_recipients"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.EmailNotification)
	assert.True(t, resp.Data.DynamicRecipients)
	assert.Equal(t, []string{"team@example.com"}, resp.Data.NotifyEmails)
}

func TestFormHandler_CreateForm_InvalidNotifyEmail(t *testing.T) {
	router, repo := newFormTestRouter(t)

	w := postForm(router, gin.H{
		"slug":          "contact",
		"name":          "Contact",
		"notify_emails": []string{"not-an-address"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Validation failed")
	assert.Empty(t, repo.created)
}

func TestFormHandler_CreateForm_OverlongName(t *testing.T) {
	router, repo := newFormTestRouter(t)

	name := make([]byte, 101)
	for i := range name {
		name[i] = 'a'
	}
	w := postForm(router, gin.H{"slug": "contact", "name": string(name)})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.created)
}
