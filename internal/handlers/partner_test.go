package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"foodreel/internal/db"
	"foodreel/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartnerProfile(t *testing.T) {
	r := setup(t)
	token := registerUser(t, r, "u1@example.com")
	partner := seedPartner(t, "bistro")
	seedFoodItem(t, partner.ID, "noodles")
	seedFoodItem(t, partner.ID, "dumplings")

	w := doJSON(t, r, "GET", fmt.Sprintf("/foodpartner/%d", partner.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)

	profile := body["foodPartner"].(map[string]interface{})
	assert.Equal(t, "bistro", profile["restaurantName"])
	assert.Equal(t, "Pat Owner", profile["ownerName"])
	assert.NotContains(t, profile, "password")

	stats := body["statistics"].(map[string]interface{})
	assert.Equal(t, float64(2), stats["totalMeals"])
	assert.Equal(t, float64(20), stats["customersServed"])

	items := body["foodItems"].([]interface{})
	assert.Len(t, items, 2)
}

func TestPartnerProfileNotFound(t *testing.T) {
	r := setup(t)
	token := registerUser(t, r, "u1@example.com")

	w := doJSON(t, r, "GET", "/foodpartner/4242", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPartnerProfileRequiresUserSession(t *testing.T) {
	r := setup(t)
	partner := seedPartner(t, "bistro")

	w := doJSON(t, r, "GET", fmt.Sprintf("/foodpartner/%d", partner.ID), nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPartnerProfileNormalizesLegacyRows(t *testing.T) {
	r := setup(t)
	token := registerUser(t, r, "u1@example.com")

	// Pre-rename rows carried the restaurant name in the "name" column
	// and may miss newer fields entirely
	legacy := models.FoodPartner{
		LegacyName: "Old Bistro",
		Email:      "legacy@example.com",
		Phone:      "555-legacy",
		Password:   "x",
	}
	require.NoError(t, db.DB.Create(&legacy).Error)

	w := doJSON(t, r, "GET", fmt.Sprintf("/foodpartner/%d", legacy.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode(t, w)["foodPartner"].(map[string]interface{})
	assert.Equal(t, "Old Bistro", profile["restaurantName"])
	assert.Equal(t, "Owner Name Not Available", profile["ownerName"])
	assert.Equal(t, "Address Not Available", profile["address"])
}

func TestCustomersServedKFormat(t *testing.T) {
	r := setup(t)
	token := registerUser(t, r, "u1@example.com")
	partner := seedPartner(t, "bistro")

	// 150 meals -> 1500 customers -> rendered with a K suffix
	for i := 0; i < 150; i++ {
		seedFoodItem(t, partner.ID, fmt.Sprintf("dish-%d", i))
	}

	w := doJSON(t, r, "GET", fmt.Sprintf("/foodpartner/%d", partner.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)["statistics"].(map[string]interface{})
	assert.Equal(t, float64(150), stats["totalMeals"])
	assert.Equal(t, "1K", stats["customersServed"])
}
