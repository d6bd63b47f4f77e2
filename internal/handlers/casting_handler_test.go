package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio_backend/internal/validator"
	"studio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func castingForm(t *testing.T, fields map[string]string, headshots, voiceSamples int) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	for i := 0; i < headshots; i++ {
		part, err := w.CreateFormFile("headshots", "face.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
	}
	for i := 0; i < voiceSamples; i++ {
		part, err := w.CreateFormFile("voiceSamples", "sample.mp3")
		require.NoError(t, err)
		_, err = part.Write([]byte("mp3-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func castingFields() map[string]string {
	return map[string]string{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@example.com",
		"gender":    "female",
		"signature": "Jane Doe",
	}
}

func TestSubmitCasting_ReturnsSuccess(t *testing.T) {
	intake := &fakeIntakeService{}
	handler := NewCastingHandler(NewBaseHandler(validator.New()), intake, nil, nil)
	router := newTestRouter(handler.RegisterRoutes)

	body, contentType := castingForm(t, castingFields(), 2, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/casting/submit", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
	assert.Equal(t, 1, intake.castingCalls)
	assert.Equal(t, 2, intake.headshots)
	assert.Equal(t, 1, intake.voiceSamples)
}

func TestSubmitCasting_ServiceErrorPassedThrough(t *testing.T) {
	intake := &fakeIntakeService{
		castingErr: apperrors.New(apperrors.CodeValidationFailed, "casting", "Missing required fields", http.StatusBadRequest),
	}
	handler := NewCastingHandler(NewBaseHandler(validator.New()), intake, nil, nil)
	router := newTestRouter(handler.RegisterRoutes)

	body, contentType := castingForm(t, map[string]string{"firstName": "Jane"}, 1, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/casting/submit", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields", resp["error"])
}

func TestSubmitCasting_RejectsUnknownGender(t *testing.T) {
	intake := &fakeIntakeService{}
	handler := NewCastingHandler(NewBaseHandler(validator.New()), intake, nil, nil)
	router := newTestRouter(handler.RegisterRoutes)

	fields := castingFields()
	fields["gender"] = "robot"
	body, contentType := castingForm(t, fields, 1, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/casting/submit", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, intake.castingCalls)
}

func TestSubmitCasting_RejectsUnknownSocialPlatform(t *testing.T) {
	intake := &fakeIntakeService{}
	handler := NewCastingHandler(NewBaseHandler(validator.New()), intake, nil, nil)
	router := newTestRouter(handler.RegisterRoutes)

	fields := castingFields()
	fields["socialType"] = "myspace"
	body, contentType := castingForm(t, fields, 1, 1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/casting/submit", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, intake.castingCalls)
}

func TestSubmitCasting_NonMultipartBody(t *testing.T) {
	intake := &fakeIntakeService{}
	handler := NewCastingHandler(NewBaseHandler(validator.New()), intake, nil, nil)
	router := newTestRouter(handler.RegisterRoutes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/casting/submit", bytes.NewReader([]byte(`{"firstName":"Jane"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, intake.castingCalls)
}
