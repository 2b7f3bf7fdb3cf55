package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserDuplicateEmail(t *testing.T) {
	r := setup(t)

	registerUser(t, r, "u1@example.com")

	w := doJSON(t, r, "POST", "/auth/user/register", map[string]interface{}{
		"fullName":    "Someone Else",
		"email":       "u1@example.com",
		"password":    "different1",
		"phoneNumber": "5550101",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", decode(t, w)["message"])
}

func TestRegisterUserValidation(t *testing.T) {
	r := setup(t)

	w := doJSON(t, r, "POST", "/auth/user/register", map[string]interface{}{
		"fullName": "No Email",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginUsesOneMessageForBothFailureModes(t *testing.T) {
	r := setup(t)
	registerUser(t, r, "u1@example.com")

	unknown := doJSON(t, r, "POST", "/auth/user/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "secret123",
	}, "")
	wrongPass := doJSON(t, r, "POST", "/auth/user/login", map[string]interface{}{
		"email":    "u1@example.com",
		"password": "wrong-password",
	}, "")

	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, http.StatusBadRequest, wrongPass.Code)
	// Identical bodies, so the endpoint cannot be used to probe for
	// registered emails
	assert.Equal(t, unknown.Body.String(), wrongPass.Body.String())
}

func TestLoginReturnsUsableToken(t *testing.T) {
	r := setup(t)
	registerUser(t, r, "u1@example.com")

	w := doJSON(t, r, "POST", "/auth/user/login", map[string]interface{}{
		"email":    "u1@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token := decode(t, w)["token"].(string)

	feed := doJSON(t, r, "GET", "/food", nil, token)
	assert.Equal(t, http.StatusOK, feed.Code)
}

func TestLoginSetsAuthCookie(t *testing.T) {
	r := setup(t)
	registerUser(t, r, "u1@example.com")

	w := doJSON(t, r, "POST", "/auth/user/login", map[string]interface{}{
		"email":    "u1@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	var found bool
	for _, ck := range cookies {
		if ck.Name == "token" && ck.Value != "" {
			found = true
			assert.True(t, ck.HttpOnly)
		}
	}
	assert.True(t, found, "expected a token cookie")
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	r := setup(t)

	assert.Equal(t, http.StatusUnauthorized, doJSON(t, r, "GET", "/food", nil, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, r, "POST", "/food/like", map[string]interface{}{"id": 1}, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, r, "GET", "/foodpartner/auth/check", nil, "").Code)
}

func TestPartnerAuthCheck(t *testing.T) {
	r := setup(t)
	partnerToken := registerPartner(t, r, "p1@example.com")
	userToken := registerUser(t, r, "u1@example.com")

	w := doJSON(t, r, "GET", "/foodpartner/auth/check", nil, partnerToken)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	partner := body["foodPartner"].(map[string]interface{})
	assert.Equal(t, "Testaurant", partner["restaurantName"])

	// A user session is not a partner session
	w = doJSON(t, r, "GET", "/foodpartner/auth/check", nil, userToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenForDeletedAccountRejected(t *testing.T) {
	r := setup(t)
	token := registerUser(t, r, "u1@example.com")

	require.NoError(t, deleteAllUsers())

	w := doJSON(t, r, "GET", "/food", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
