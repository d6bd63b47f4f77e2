package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusPayload struct {
	Status string `json:"status" validate:"required,is-sponsor-status"`
}

type partnershipPayload struct {
	PartnershipType string `json:"partnershipType" validate:"omitempty,is-partnership-type"`
}

func TestValidate_SponsorStatus(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&statusPayload{Status: "active"}))
	require.NoError(t, v.Validate(&statusPayload{Status: "pending"}))

	err := v.Validate(&statusPayload{Status: "archived"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "status")
}

func TestValidate_RequiredReportsJSONName(t *testing.T) {
	v := New()

	err := v.Validate(&statusPayload{})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", vErr.Errors["status"])
}

func TestValidate_PartnershipType(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&partnershipPayload{}))
	require.NoError(t, v.Validate(&partnershipPayload{PartnershipType: "Event Sponsorship"}))
	require.Error(t, v.Validate(&partnershipPayload{PartnershipType: "Space Travel"}))
}

type applicantPayload struct {
	Gender     string `json:"gender" validate:"omitempty,is-gender"`
	SocialType string `json:"socialType" validate:"omitempty,is-social-platform"`
}

func TestValidate_Gender(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&applicantPayload{}))
	require.NoError(t, v.Validate(&applicantPayload{Gender: "female"}))
	require.NoError(t, v.Validate(&applicantPayload{Gender: "Non-Binary"}))

	err := v.Validate(&applicantPayload{Gender: "robot"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "gender")
}

func TestValidate_SocialPlatform(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&applicantPayload{SocialType: "instagram"}))
	require.NoError(t, v.Validate(&applicantPayload{SocialType: "TikTok"}))

	err := v.Validate(&applicantPayload{SocialType: "myspace"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "socialType")
}
