package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupLifecycle(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	payload := gin.H{"username": "ada", "email": "ada@x.com", "password": "secret1"}

	w := env.do(t, http.MethodPost, "/api/auth/signup", "", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeJSON(t, w)
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "ada@x.com", body["email"])
	assert.Equal(t, false, body["confirmed"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, w.Body.String(), "secret1")

	// Same email again conflicts, regardless of other fields.
	w = env.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{
		"username": "other", "email": "ada@x.com", "password": "different1",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Account already exists", decodeJSON(t, w)["detail"])
}

func TestSignupValidation(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	cases := []struct {
		name    string
		payload gin.H
		field   string
	}{
		{"short password", gin.H{"username": "ada", "email": "a@x.com", "password": "abc"}, "password"},
		{"bad email", gin.H{"username": "ada", "email": "not-an-email", "password": "secret1"}, "email"},
		{"missing username", gin.H{"email": "a@x.com", "password": "secret1"}, "username"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/auth/signup", "", tc.payload)
			require.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeJSON(t, w)
			errs, ok := body["errors"].(map[string]any)
			require.True(t, ok, "expected field errors, got %s", w.Body.String())
			assert.Contains(t, errs, tc.field)
		})
	}
}

func TestLoginErrorMessages(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ghost@x.com", "password": "secret1"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email", decodeJSON(t, w)["detail"])

	w = env.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{"username": "ada", "email": "ada@x.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Unconfirmed beats both wrong and correct passwords.
	for _, pw := range []string{"wrong-pass", "secret1"} {
		w = env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ada@x.com", "password": pw})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Email not confirmed", decodeJSON(t, w)["detail"])
	}

	token, _, err := env.auth.JWT.GenerateEmailToken("ada@x.com")
	require.NoError(t, err)
	w = env.do(t, http.MethodGet, "/api/auth/confirmed_email/"+token, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Email confirmed", decodeJSON(t, w)["message"])

	w = env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ada@x.com", "password": "wrong-pass"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid password", decodeJSON(t, w)["detail"])

	w = env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ada@x.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "bearer", body["token_type"])
	assert.NotEmpty(t, body["access_token"])
	assert.NotEmpty(t, body["refresh_token"])
}

func TestConfirmEmailEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/api/auth/confirmed_email/garbage", "", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Invalid token for email verification", decodeJSON(t, w)["detail"])

	ghost, _, err := env.auth.JWT.GenerateEmailToken("ghost@x.com")
	require.NoError(t, err)
	w = env.do(t, http.MethodGet, "/api/auth/confirmed_email/"+ghost, "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Verification error", decodeJSON(t, w)["detail"])

	env.signupAndConfirm(t, "ada", "ada@x.com", "secret1")
	token, _, err := env.auth.JWT.GenerateEmailToken("ada@x.com")
	require.NoError(t, err)
	w = env.do(t, http.MethodGet, "/api/auth/confirmed_email/"+token, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Your email is already confirmed", decodeJSON(t, w)["message"])
}

func TestRefreshEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	pair := env.signupAndConfirm(t, "ada", "ada@x.com", "secret1")

	w := env.do(t, http.MethodGet, "/api/auth/refresh_token", pair.RefreshToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rotated := decodeJSON(t, w)
	assert.NotEmpty(t, rotated["refresh_token"])

	// The superseded token now mismatches; the attempt revokes the stored one.
	w = env.do(t, http.MethodGet, "/api/auth/refresh_token", pair.RefreshToken, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid refresh token", decodeJSON(t, w)["detail"])

	// Including the freshly rotated token, which was just revoked.
	w = env.do(t, http.MethodGet, "/api/auth/refresh_token", rotated["refresh_token"].(string), nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid refresh token", decodeJSON(t, w)["detail"])
}

func TestRefreshRejectsWrongTokens(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	pair := env.signupAndConfirm(t, "ada", "ada@x.com", "secret1")

	w := env.do(t, http.MethodGet, "/api/auth/refresh_token", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authenticated", decodeJSON(t, w)["detail"])

	w = env.do(t, http.MethodGet, "/api/auth/refresh_token", pair.AccessToken, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid scope for token", decodeJSON(t, w)["detail"])

	w = env.do(t, http.MethodGet, "/api/auth/refresh_token", "garbage", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Could not validate credentials", decodeJSON(t, w)["detail"])
}

func TestLogoutEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	pair := env.signupAndConfirm(t, "ada", "ada@x.com", "secret1")

	w := env.do(t, http.MethodPost, "/api/auth/logout", pair.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, env.users.users["ada@x.com"].RefreshToken)

	// The old refresh token is unusable afterwards.
	w = env.do(t, http.MethodGet, "/api/auth/refresh_token", pair.RefreshToken, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeAndAvatar(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	pair := env.signupAndConfirm(t, "ada", "ada@x.com", "secret1")

	w := env.do(t, http.MethodGet, "/api/users/me", pair.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "ada@x.com", body["email"])
	assert.Equal(t, true, body["confirmed"])
	assert.NotContains(t, body, "password")

	w = env.do(t, http.MethodGet, "/api/users/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authenticated", decodeJSON(t, w)["detail"])

	w = env.do(t, http.MethodPatch, "/api/users/avatar", pair.AccessToken, gin.H{
		"avatar_url": "https://avatars.example.com/ada.png",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "https://avatars.example.com/ada.png", decodeJSON(t, w)["avatar"])

	w = env.do(t, http.MethodPatch, "/api/users/avatar", pair.AccessToken, gin.H{"avatar_url": "not a url"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
