package services

import (
	"context"
	"testing"

	"studio_backend/internal/models"
	"studio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateApplicationStatus_NotifiesApplicant(t *testing.T) {
	repo := newFakeApplicationRepo()
	repo.byID["app-1"] = &models.CastingApplication{
		BaseModel: models.BaseModel{ID: "app-1"},
		Email:     "jane@example.com",
		Status:    string(models.ApplicationStatusPending),
	}
	repo.created = append(repo.created, repo.byID["app-1"])
	notifier := &fakeNotifier{}

	service := NewCastingService(repo, notifier)

	app, err := service.UpdateApplicationStatus(context.Background(), nil, "app-1", models.ApplicationStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, string(models.ApplicationStatusApproved), app.Status)
	assert.Equal(t, []string{string(models.ApplicationStatusApproved)}, notifier.statusCalls)
}

func TestUpdateApplicationStatus_RejectedCanBeReapproved(t *testing.T) {
	repo := newFakeApplicationRepo()
	repo.byID["app-1"] = &models.CastingApplication{
		BaseModel: models.BaseModel{ID: "app-1"},
		Status:    string(models.ApplicationStatusRejected),
	}
	notifier := &fakeNotifier{}

	service := NewCastingService(repo, notifier)

	app, err := service.UpdateApplicationStatus(context.Background(), nil, "app-1", models.ApplicationStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, string(models.ApplicationStatusApproved), app.Status)
}

func TestUpdateApplicationStatus_UnknownStatus(t *testing.T) {
	service := NewCastingService(newFakeApplicationRepo(), &fakeNotifier{})

	_, err := service.UpdateApplicationStatus(context.Background(), nil, "app-1", models.ApplicationStatus("archived"))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestUpdateApplicationStatus_NotFound(t *testing.T) {
	service := NewCastingService(newFakeApplicationRepo(), &fakeNotifier{})

	_, err := service.UpdateApplicationStatus(context.Background(), nil, "missing", models.ApplicationStatusApproved)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
