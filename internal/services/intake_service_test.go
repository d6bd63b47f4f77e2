package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"studio_backend/internal/models"
	"studio_backend/internal/services/dto"
	"studio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeApplicationRepo struct {
	created     []*models.CastingApplication
	createErr   error
	byID        map[string]*models.CastingApplication
	evaluations map[string]string
	unevaluated []models.CastingApplication
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		byID:        map[string]*models.CastingApplication{},
		evaluations: map[string]string{},
	}
}

func (r *fakeApplicationRepo) Create(db *gorm.DB, app *models.CastingApplication) error {
	if r.createErr != nil {
		return r.createErr
	}
	if app.ID == "" {
		app.ID = fmt.Sprintf("app-%d", len(r.created)+1)
	}
	r.created = append(r.created, app)
	r.byID[app.ID] = app
	return nil
}

func (r *fakeApplicationRepo) GetByID(db *gorm.DB, id string) (*models.CastingApplication, error) {
	app, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return app, nil
}

func (r *fakeApplicationRepo) List(db *gorm.DB, status string, page, pageSize int) ([]models.CastingApplication, int64, error) {
	var out []models.CastingApplication
	for _, app := range r.created {
		if status == "" || app.Status == status {
			out = append(out, *app)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeApplicationRepo) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	app, ok := r.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	app.Status = string(status)
	return nil
}

func (r *fakeApplicationRepo) UpdateEvaluation(db *gorm.DB, id string, evaluation string) error {
	r.evaluations[id] = evaluation
	return nil
}

func (r *fakeApplicationRepo) ListUnevaluated(db *gorm.DB, limit int) ([]models.CastingApplication, error) {
	if limit > len(r.unevaluated) {
		limit = len(r.unevaluated)
	}
	return r.unevaluated[:limit], nil
}

type fakeSponsorRepo struct {
	created   []*models.Sponsor
	createErr error
}

func (r *fakeSponsorRepo) Create(db *gorm.DB, sponsor *models.Sponsor) error {
	if r.createErr != nil {
		return r.createErr
	}
	if sponsor.ID == "" {
		sponsor.ID = fmt.Sprintf("sponsor-%d", len(r.created)+1)
	}
	r.created = append(r.created, sponsor)
	return nil
}

func (r *fakeSponsorRepo) GetByID(db *gorm.DB, id string) (*models.Sponsor, error) {
	for _, s := range r.created {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSponsorRepo) List(db *gorm.DB, status string, page, pageSize int) ([]models.Sponsor, int64, error) {
	var out []models.Sponsor
	for _, s := range r.created {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSponsorRepo) Update(db *gorm.DB, sponsor *models.Sponsor) error { return nil }

func (r *fakeSponsorRepo) UpdateStatus(db *gorm.DB, id string, status models.SponsorStatus) error {
	return nil
}

func (r *fakeSponsorRepo) Delete(db *gorm.DB, id string) error { return nil }

type fakeStorage struct {
	saved   []string
	saveErr error
	deleted []string
}

func (s *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, path)
	return nil
}

func (s *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	s.deleted = append(s.deleted, path)
	return nil
}

func (s *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	return false, nil
}

func (s *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "/api/files/" + path, nil
}

type fakeNotifier struct {
	castingCalls []string
	sponsorCalls []string
	statusCalls  []string
}

func (n *fakeNotifier) CastingSubmitted(ctx context.Context, db *gorm.DB, app *models.CastingApplication, fileNames []string) {
	n.castingCalls = append(n.castingCalls, app.Email)
}

func (n *fakeNotifier) SponsorSubmitted(ctx context.Context, db *gorm.DB, sponsor *models.Sponsor) {
	n.sponsorCalls = append(n.sponsorCalls, sponsor.Email)
}

func (n *fakeNotifier) ApplicationStatusChanged(ctx context.Context, db *gorm.DB, app *models.CastingApplication) {
	n.statusCalls = append(n.statusCalls, app.Status)
}

func fileHeader(t *testing.T, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

type intakeFixture struct {
	service      IntakeService
	applications *fakeApplicationRepo
	sponsors     *fakeSponsorRepo
	store        *fakeStorage
	notifier     *fakeNotifier
}

func newIntakeFixture(config IntakeConfig) *intakeFixture {
	f := &intakeFixture{
		applications: newFakeApplicationRepo(),
		sponsors:     &fakeSponsorRepo{},
		store:        &fakeStorage{},
		notifier:     &fakeNotifier{},
	}
	f.service = NewIntakeService(f.applications, f.sponsors, f.store, f.notifier, config)
	return f
}

func submitCastingRequest() *dto.SubmitCastingRequest {
	return &dto.SubmitCastingRequest{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		Phone:        "+15550001111",
		Gender:       "female",
		SocialHandle: "@janedoe",
		SocialType:   "instagram",
		Bio:          "Ten years of acting and voice training.",
		Signature:    "Jane Doe",
	}
}

func submitSponsorRequest() *dto.SubmitSponsorRequest {
	return &dto.SubmitSponsorRequest{
		CompanyName:     "Acme Pictures",
		ContactName:     "Sam Lee",
		Email:           "partner@acme.test",
		PartnershipType: "Event Sponsorship",
		Message:         "We would love to sponsor your next premiere.",
	}
}

func TestSubmitCasting_Success(t *testing.T) {
	f := newIntakeFixture(IntakeConfig{
		ImageTypes: []string{"image/jpeg"},
		AudioTypes: []string{"audio/mpeg"},
	})

	headshots := []*multipart.FileHeader{
		fileHeader(t, "face1.jpg", "image/jpeg", "jpeg-bytes"),
		fileHeader(t, "face2.jpg", "image/jpeg", "jpeg-bytes"),
	}
	voices := []*multipart.FileHeader{
		fileHeader(t, "sample.mp3", "audio/mpeg", "mp3-bytes"),
	}

	app, err := f.service.SubmitCasting(context.Background(), nil, submitCastingRequest(), headshots, voices)
	require.NoError(t, err)
	require.NotNil(t, app)

	assert.Equal(t, string(models.ApplicationStatusPending), app.Status)
	assert.Nil(t, app.AIEvaluation)
	assert.Len(t, f.store.saved, 3)
	assert.Len(t, f.applications.created, 1)
	assert.Equal(t, []string{"jane@example.com"}, f.notifier.castingCalls)
}

func TestSubmitCasting_MissingFields(t *testing.T) {
	f := newIntakeFixture(IntakeConfig{})

	req := submitCastingRequest()
	req.Email = ""

	_, err := f.service.SubmitCasting(context.Background(), nil, req, nil, nil)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, "Missing required fields", appErr.Message)
	assert.Equal(t, 400, appErr.HTTPCode)

	assert.Empty(t, f.store.saved)
	assert.Empty(t, f.applications.created)
	assert.Empty(t, f.notifier.castingCalls)
}

func TestSubmitCasting_RequiresAttachments(t *testing.T) {
	f := newIntakeFixture(IntakeConfig{})

	_, err := f.service.SubmitCasting(context.Background(), nil, submitCastingRequest(), nil, nil)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, "At least one headshot is required", appErr.Message)
}

func TestSubmitCasting_RejectsWrongContentType(t *testing.T) {
	f := newIntakeFixture(IntakeConfig{
		ImageTypes: []string{"image/jpeg"},
		AudioTypes: []string{"audio/mpeg"},
	})

	headshots := []*multipart.FileHeader{
		fileHeader(t, "script.pdf", "application/pdf", "pdf-bytes"),
	}
	voices := []*multipart.FileHeader{
		fileHeader(t, "sample.mp3", "audio/mpeg", "mp3-bytes"),
	}

	_, err := f.service.SubmitCasting(context.Background(), nil, submitCastingRequest(), headshots, voices)
	require.Error(t, err)
	assert.Empty(t, f.store.saved)
	assert.Empty(t, f.applications.created)
}

func TestSubmitCasting_StorageFailureAborts(t *testing.T) {
	f := newIntakeFixture(IntakeConfig{
		ImageTypes: []string{"image/jpeg"},
		AudioTypes: []string{"audio/mpeg"},
	})
	f.store.saveErr = errors.New("bucket unavailable")

	headshots := []*multipart.FileHeader{
		fileHeader(t, "face.jpg", "image/jpeg", "jpeg-bytes"),
	}
	voices := []*multipart.FileHeader{
		fileHeader(t, "sample.mp3", "audio/mpeg", "mp3-bytes"),
	}

	_, err := f.service.SubmitCasting(context.Background(), nil, submitCastingRequest(), headshots, voices)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeStorageError, appErr.Code)

	assert.Empty(t, f.applications.created)
	assert.Empty(t, f.notifier.castingCalls)
}

func TestSubmitCasting_PersistenceFailurePropagates(t *testing.T) {
	f := newIntakeFixture(IntakeConfig{
		ImageTypes: []string{"image/jpeg"},
		AudioTypes: []string{"audio/mpeg"},
	})
	f.applications.createErr = errors.New("connection reset")

	headshots := []*multipart.FileHeader{
		fileHeader(t, "face.jpg", "image/jpeg", "jpeg-bytes"),
	}
	voices := []*multipart.FileHeader{
		fileHeader(t, "sample.mp3", "audio/mpeg", "mp3-bytes"),
	}

	_, err := f.service.SubmitCasting(context.Background(), nil, submitCastingRequest(), headshots, voices)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeDatabaseError, appErr.Code)
	assert.Empty(t, f.notifier.castingCalls)
}

func TestSubmitCasting_DuplicatesCreateSeparateRecords(t *testing.T) {
	f := newIntakeFixture(IntakeConfig{
		ImageTypes: []string{"image/jpeg"},
		AudioTypes: []string{"audio/mpeg"},
	})

	for i := 0; i < 2; i++ {
		headshots := []*multipart.FileHeader{
			fileHeader(t, "face.jpg", "image/jpeg", "jpeg-bytes"),
		}
		voices := []*multipart.FileHeader{
			fileHeader(t, "sample.mp3", "audio/mpeg", "mp3-bytes"),
		}
		_, err := f.service.SubmitCasting(context.Background(), nil, submitCastingRequest(), headshots, voices)
		require.NoError(t, err)
	}

	assert.Len(t, f.applications.created, 2)
	assert.NotEqual(t, f.applications.created[0].ID, f.applications.created[1].ID)
}

func TestSubmitSponsor_Success(t *testing.T) {
	f := newIntakeFixture(IntakeConfig{})

	sponsor, err := f.service.SubmitSponsor(context.Background(), nil, submitSponsorRequest())
	require.NoError(t, err)
	require.NotNil(t, sponsor)

	assert.Equal(t, string(models.SponsorStatusPending), sponsor.Status)
	assert.Len(t, f.sponsors.created, 1)
	assert.Equal(t, []string{"partner@acme.test"}, f.notifier.sponsorCalls)
}

func TestSubmitSponsor_MissingFields(t *testing.T) {
	f := newIntakeFixture(IntakeConfig{})

	req := submitSponsorRequest()
	req.Message = ""

	_, err := f.service.SubmitSponsor(context.Background(), nil, req)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, "Missing required fields", appErr.Message)
	assert.Empty(t, f.sponsors.created)
}

func TestSubmitSponsor_HoneypotDropsSilently(t *testing.T) {
	f := newIntakeFixture(IntakeConfig{})

	req := submitSponsorRequest()
	req.Honey = "http://spam.example"

	sponsor, err := f.service.SubmitSponsor(context.Background(), nil, req)
	require.NoError(t, err)
	assert.Nil(t, sponsor)

	assert.Empty(t, f.sponsors.created)
	assert.Empty(t, f.notifier.sponsorCalls)
}

func TestSubmitSponsor_HoneypotRejectPolicy(t *testing.T) {
	f := &intakeFixture{
		applications: newFakeApplicationRepo(),
		sponsors:     &fakeSponsorRepo{},
		store:        &fakeStorage{},
		notifier:     &fakeNotifier{},
	}
	f.service = NewIntakeService(f.applications, f.sponsors, f.store, f.notifier, IntakeConfig{
		SpamPolicy: SpamPolicyReject,
	})

	req := submitSponsorRequest()
	req.Honey = "http://spam.example"

	_, err := f.service.SubmitSponsor(context.Background(), nil, req)
	require.Error(t, err)
	assert.Empty(t, f.sponsors.created)
}

func TestSubmitSponsor_PersistenceFailurePropagates(t *testing.T) {
	f := newIntakeFixture(IntakeConfig{})
	f.sponsors.createErr = errors.New("connection reset")

	_, err := f.service.SubmitSponsor(context.Background(), nil, submitSponsorRequest())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeDatabaseError, appErr.Code)
	assert.Empty(t, f.notifier.sponsorCalls)
}
