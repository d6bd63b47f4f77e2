package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio_backend/internal/models"
	"studio_backend/internal/services/dto"
	"studio_backend/internal/validator"
	"studio_backend/pkg/apperrors"
	"studio_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeIntakeService struct {
	castingCalls int
	sponsorCalls int
	lastReq      *dto.SubmitSponsorRequest
	castingErr   error
	sponsorErr   error
	sponsor      *models.Sponsor
	headshots    int
	voiceSamples int
}

func (f *fakeIntakeService) SubmitCasting(ctx context.Context, db *gorm.DB, req *dto.SubmitCastingRequest, headshots, voiceSamples []*multipart.FileHeader) (*models.CastingApplication, error) {
	f.castingCalls++
	f.headshots = len(headshots)
	f.voiceSamples = len(voiceSamples)
	if f.castingErr != nil {
		return nil, f.castingErr
	}
	return &models.CastingApplication{}, nil
}

func (f *fakeIntakeService) SubmitSponsor(ctx context.Context, db *gorm.DB, req *dto.SubmitSponsorRequest) (*models.Sponsor, error) {
	f.sponsorCalls++
	f.lastReq = req
	if f.sponsorErr != nil {
		return nil, f.sponsorErr
	}
	return f.sponsor, nil
}

func newTestRouter(register func(*gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(string(contextkeys.DBContextKey), (*gorm.DB)(nil))
		c.Next()
	})
	api := router.Group("/api")
	register(api)
	return router
}

func TestSubmitSponsor_ReturnsSuccess(t *testing.T) {
	intake := &fakeIntakeService{sponsor: &models.Sponsor{}}
	handler := NewSponsorHandler(NewBaseHandler(validator.New()), intake, nil)
	router := newTestRouter(handler.RegisterRoutes)

	body, _ := json.Marshal(map[string]string{
		"companyName":     "Acme Pictures",
		"contactName":     "Sam Lee",
		"email":           "partner@acme.test",
		"partnershipType": "Event Sponsorship",
		"message":         "Interested in sponsoring.",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sponsor/submit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
	assert.Equal(t, 1, intake.sponsorCalls)
	assert.Equal(t, "Acme Pictures", intake.lastReq.CompanyName)
}

func TestSubmitSponsor_HoneypotStillSucceeds(t *testing.T) {
	// The service reports success with a nil record for flagged spam; the
	// wire response must be indistinguishable from a real success.
	intake := &fakeIntakeService{sponsor: nil}
	handler := NewSponsorHandler(NewBaseHandler(validator.New()), intake, nil)
	router := newTestRouter(handler.RegisterRoutes)

	body, _ := json.Marshal(map[string]string{
		"companyName":     "Bot Corp",
		"contactName":     "Bot",
		"email":           "bot@spam.test",
		"partnershipType": "Other",
		"message":         "buy now",
		"_honey":          "http://spam.example",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sponsor/submit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
	assert.Equal(t, "http://spam.example", intake.lastReq.Honey)
}

func TestSubmitSponsor_MissingFieldsError(t *testing.T) {
	intake := &fakeIntakeService{
		sponsorErr: apperrors.New(apperrors.CodeValidationFailed, "sponsor", "Missing required fields", http.StatusBadRequest),
	}
	handler := NewSponsorHandler(NewBaseHandler(validator.New()), intake, nil)
	router := newTestRouter(handler.RegisterRoutes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sponsor/submit", bytes.NewReader([]byte(`{"email":"a@b.c"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields", resp["error"])
}

func TestSubmitSponsor_MalformedBody(t *testing.T) {
	intake := &fakeIntakeService{}
	handler := NewSponsorHandler(NewBaseHandler(validator.New()), intake, nil)
	router := newTestRouter(handler.RegisterRoutes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sponsor/submit", bytes.NewReader([]byte(`not-json`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields", resp["error"])
	assert.Equal(t, 0, intake.sponsorCalls)
}
