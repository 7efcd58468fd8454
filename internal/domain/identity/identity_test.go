package identity

import (
	"testing"

	domainerrors "github.com/kimkuhyun/JH0103/internal/domain/errors"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Google(t *testing.T) {
	identity, err := Normalize("google", "sub", map[string]any{
		"sub":     "108",
		"name":    "Kim Dev",
		"email":   "kim@example.com",
		"picture": "https://lh3.example.com/p.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "google", identity.Provider)
	assert.Equal(t, "108", identity.ProviderID)
	assert.Equal(t, "Kim Dev", identity.DisplayName)
	assert.Equal(t, "kim@example.com", identity.Email)
	assert.Equal(t, "https://lh3.example.com/p.png", identity.AvatarURL)
	assert.Equal(t, "sub", identity.PrimaryAttributeKey)
}

func TestNormalize_GithubCoercesNumericID(t *testing.T) {
	identity, err := Normalize("github", "id", map[string]any{
		"login":      "bob",
		"email":      "b@x.com",
		"avatar_url": "u",
		"id":         float64(42), // JSON numbers decode as float64
	})

	require.NoError(t, err)
	assert.Equal(t, "github", identity.Provider)
	assert.Equal(t, "42", identity.ProviderID)
	assert.Equal(t, "bob", identity.DisplayName)
	assert.Equal(t, "b@x.com", identity.Email)
	assert.Equal(t, "u", identity.AvatarURL)
}

func TestNormalize_GithubLargeNumericID(t *testing.T) {
	identity, err := Normalize("github", "id", map[string]any{
		"login": "octo",
		"id":    float64(123456789),
	})

	require.NoError(t, err)
	assert.Equal(t, "123456789", identity.ProviderID)
}

func TestNormalize_NaverReadsNestedResponse(t *testing.T) {
	identity, err := Normalize("naver", "response", map[string]any{
		// Decoys at the top level must be ignored for naver.
		"name":  "outer",
		"email": "outer@x.com",
		"response": map[string]any{
			"name":          "Kim",
			"email":         "k@x.com",
			"profile_image": "p",
			"id":            "n1",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "n1", identity.ProviderID)
	assert.Equal(t, "id", identity.PrimaryAttributeKey)
	assert.Equal(t, "Kim", identity.DisplayName)
	assert.Equal(t, "k@x.com", identity.Email)
	assert.Equal(t, "p", identity.AvatarURL)
	assert.Equal(t, "n1", identity.RawAttributes["id"])
}

func TestNormalize_NaverMissingResponseFails(t *testing.T) {
	_, err := Normalize("naver", "response", map[string]any{"name": "Kim"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMalformedIdentityPayload))
}

func TestNormalize_UnknownProviderFallsBackToDefaultShape(t *testing.T) {
	assert.False(t, Known("kakao"))

	identity, err := Normalize("kakao", "sub", map[string]any{
		"sub":  "k-77",
		"name": "Choi",
	})

	require.NoError(t, err)
	assert.Equal(t, "kakao", identity.Provider)
	assert.Equal(t, "k-77", identity.ProviderID)
	assert.Equal(t, "Choi", identity.DisplayName)
}

func TestNormalize_MissingOptionalFieldsAreEmptyNotErrors(t *testing.T) {
	identity, err := Normalize("github", "id", map[string]any{
		"login": "quiet",
		"id":    "9",
		// no email, no avatar_url
	})

	require.NoError(t, err)
	assert.Empty(t, identity.Email)
	assert.Empty(t, identity.AvatarURL)
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("google"))
	assert.True(t, Known("github"))
	assert.True(t, Known("naver"))
	assert.False(t, Known("Google")) // dispatch is case-sensitive
}
