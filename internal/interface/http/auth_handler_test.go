package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("Should create identity and return id and email", func(t *testing.T) {
		r := newTestRouter(newMemUserRepo(), newMemItemRepo(), newTestJWT())

		w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"email": "Alice@Example.com", "password": "supersecret",
		})
		require.Equal(t, http.StatusOK, w.Code)
		var data struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.NotEmpty(t, data.ID)
		assert.Equal(t, "alice@example.com", data.Email)
		assert.NotContains(t, w.Body.String(), "supersecret")
	})

	t.Run("Should reject a duplicate email and leave the first identity intact", func(t *testing.T) {
		r := newTestRouter(newMemUserRepo(), newMemItemRepo(), newTestJWT())

		register(t, r, "alice@example.com", "supersecret")
		w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"email": "ALICE@example.com", "password": "othersecret",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "already registered", env.Error["email"])

		// first account still logs in with its original password
		login(t, r, "alice@example.com", "supersecret")
	})

	t.Run("Should reject a too-short password with field detail", func(t *testing.T) {
		r := newTestRouter(newMemUserRepo(), newMemItemRepo(), newTestJWT())

		w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"email": "bob@example.com", "password": "short",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Error, "password")
	})

	t.Run("Should reject an invalid email with field detail", func(t *testing.T) {
		r := newTestRouter(newMemUserRepo(), newMemItemRepo(), newTestJWT())

		w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"email": "not-an-email", "password": "supersecret",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Error, "email")
	})
}

func TestLogin(t *testing.T) {
	t.Run("Should return a token whose subject is the registered id", func(t *testing.T) {
		jwt := newTestJWT()
		r := newTestRouter(newMemUserRepo(), newMemItemRepo(), jwt)

		id := register(t, r, "alice@example.com", "supersecret")
		token := login(t, r, "alice@example.com", "supersecret")

		claims, err := jwt.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, id, claims.Subject)
		assert.Equal(t, "alice@example.com", claims.Email)
	})

	t.Run("Should return identical 401 bodies for unknown email and wrong password", func(t *testing.T) {
		r := newTestRouter(newMemUserRepo(), newMemItemRepo(), newTestJWT())
		register(t, r, "alice@example.com", "supersecret")

		wUnknown, _ := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
			"email": "ghost@example.com", "password": "supersecret",
		})
		wWrongPwd, _ := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
			"email": "alice@example.com", "password": "wrongsecret",
		})

		assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
		assert.Equal(t, http.StatusUnauthorized, wWrongPwd.Code)
		assert.Equal(t, stripVolatile(t, wUnknown.Body.Bytes()), stripVolatile(t, wWrongPwd.Body.Bytes()))
	})
}

// stripVolatile removes per-request fields so two response bodies can be
// compared for the enumeration-resistance property.
func stripVolatile(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m))
	delete(m, "timestamp")
	delete(m, "request_id")
	return m
}
