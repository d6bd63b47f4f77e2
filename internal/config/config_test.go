package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_FillsUploadLimits(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, int64(25*1024*1024), cfg.Upload.MaxSize)
	assert.Equal(t, []string{"image/jpeg", "image/png", "image/webp"}, cfg.Upload.ImageTypes)
	assert.Equal(t, []string{"audio/mpeg", "audio/wav", "audio/mp4", "audio/x-m4a", "audio/webm"}, cfg.Upload.AudioTypes)
}

func TestApplyDefaults_BaseURLOnlyForLocalStorage(t *testing.T) {
	local := &Config{}
	applyDefaults(local)
	assert.Equal(t, "local", local.Storage.Type)
	assert.Equal(t, "/api/files", local.Storage.BaseURL)

	s3 := &Config{}
	s3.Storage.Type = "s3"
	applyDefaults(s3)
	assert.Empty(t, s3.Storage.BaseURL)
}

func TestEmailConfigured(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.EmailConfigured())

	cfg.Email.SMTPHost = "smtp.example.com"
	assert.True(t, cfg.EmailConfigured())
}
