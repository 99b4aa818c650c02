// filepath: internal/services/auth/auth_test.go
package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"apodapi/internal/config"
	"apodapi/internal/models"
	"apodapi/internal/services/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticKeyVerifier(t *testing.T) {
	ctx := context.Background()
	v := auth.NewStaticKeyVerifier("s3cret")

	assert.NoError(t, v.Verify(ctx, "s3cret"))
	assert.ErrorIs(t, v.Verify(ctx, "S3CRET"), auth.ErrInvalidKey)
	assert.ErrorIs(t, v.Verify(ctx, "s3cret "), auth.ErrInvalidKey)
	assert.ErrorIs(t, v.Verify(ctx, ""), auth.ErrInvalidKey)

	// An unset secret must not accept an empty header.
	empty := auth.NewStaticKeyVerifier("")
	assert.ErrorIs(t, empty.Verify(ctx, ""), auth.ErrInvalidKey)
}

func TestBcryptKeyVerifier(t *testing.T) {
	ctx := context.Background()
	hash, err := auth.HashKey("rotate-me")
	require.NoError(t, err)

	v, err := auth.NewBcryptKeyVerifier(hash)
	require.NoError(t, err)
	assert.NoError(t, v.Verify(ctx, "rotate-me"))
	assert.ErrorIs(t, v.Verify(ctx, "rotate-you"), auth.ErrInvalidKey)
	assert.ErrorIs(t, v.Verify(ctx, ""), auth.ErrInvalidKey)

	_, err = auth.NewBcryptKeyVerifier("not-a-hash")
	assert.Error(t, err)
}

func TestJWTKeyVerifier(t *testing.T) {
	ctx := context.Background()
	v := auth.NewJWTKeyVerifier("shared-secret")

	t.Run("Valid Token", func(t *testing.T) {
		token, err := v.IssueToken("scheduler", time.Hour)
		require.NoError(t, err)
		assert.NoError(t, v.Verify(ctx, token))
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := v.IssueToken("scheduler", -time.Minute)
		require.NoError(t, err)
		assert.ErrorIs(t, v.Verify(ctx, token), auth.ErrInvalidKey)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := auth.NewJWTKeyVerifier("other-secret").IssueToken("scheduler", time.Hour)
		require.NoError(t, err)
		assert.ErrorIs(t, v.Verify(ctx, token), auth.ErrInvalidKey)
	})

	t.Run("Wrong Issuer", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("shared-secret"))
		require.NoError(t, err)
		assert.ErrorIs(t, v.Verify(ctx, token), auth.ErrInvalidKey)
	})

	t.Run("No Expiry", func(t *testing.T) {
		claims := jwt.RegisteredClaims{Issuer: auth.Issuer}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("shared-secret"))
		require.NoError(t, err)
		assert.ErrorIs(t, v.Verify(ctx, token), auth.ErrInvalidKey)
	})

	t.Run("Garbage", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify(ctx, "not.a.jwt"), auth.ErrInvalidKey)
	})
}

func TestNewKeyVerifier(t *testing.T) {
	v, err := auth.NewKeyVerifier(config.AuthConfig{Mode: config.AuthModeStatic, APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &auth.StaticKeyVerifier{}, v)

	v, err = auth.NewKeyVerifier(config.AuthConfig{Mode: config.AuthModeJWT, JWTSecret: "s"})
	require.NoError(t, err)
	assert.IsType(t, &auth.JWTKeyVerifier{}, v)

	_, err = auth.NewKeyVerifier(config.AuthConfig{Mode: config.AuthModeBcrypt, APIKeyHash: "plain"})
	assert.Error(t, err)

	_, err = auth.NewKeyVerifier(config.AuthConfig{Mode: "ldap"})
	assert.Error(t, err)
}

func TestRequireAPIKey(t *testing.T) {
	mw := auth.NewMiddleware(auth.NewStaticKeyVerifier("s3cret"))

	router := mux.NewRouter()
	router.Handle("/apod", mw.RequireAPIKey(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))).Methods(http.MethodPost)

	server := httptest.NewServer(router)
	defer server.Close()

	tests := []struct {
		name     string
		key      string
		wantCode int
	}{
		{"Valid Key", "s3cret", http.StatusCreated},
		{"Wrong Key", "guess", http.StatusUnauthorized},
		{"Missing Key", "", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodPost, server.URL+"/apod", nil)
			if tc.key != "" {
				req.Header.Set("x-api-key", tc.key)
			}
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantCode, resp.StatusCode)
			if tc.wantCode == http.StatusUnauthorized {
				var body models.ErrorResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, "Unauthorized", body.Error)
				assert.Equal(t, "Invalid or missing API key", body.Cause)
				assert.Equal(t, http.StatusUnauthorized, body.Code)
				assert.NotEmpty(t, body.Timestamp)
			}
		})
	}
}
