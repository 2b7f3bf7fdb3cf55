package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"foodreel/internal/db"
	"foodreel/internal/models"
	"foodreel/internal/router"
	"foodreel/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setup wires the full route table against a fresh in-memory database.
func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	g, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(g))
	db.DB = g

	// Profile cache is process-global; stale entries from a previous test
	// would alias row ids across databases
	utils.GetCache().Purge()

	r := gin.New()
	router.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func registerUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/auth/user/register", map[string]interface{}{
		"fullName":    "Test User",
		"email":       email,
		"password":    "secret123",
		"phoneNumber": "5550100",
	}, "")
	require.Equal(t, 201, w.Code, w.Body.String())
	return decode(t, w)["token"].(string)
}

func registerPartner(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/auth/foodpartner/register", map[string]interface{}{
		"restaurantName": "Testaurant",
		"ownerName":      "Pat Owner",
		"email":          email,
		"password":       "secret123",
		"phone":          "555" + email,
		"address":        "1 Test Street",
	}, "")
	require.Equal(t, 201, w.Code, w.Body.String())
	return decode(t, w)["token"].(string)
}

// seedPartner inserts a partner row directly, bypassing the auth surface.
func seedPartner(t *testing.T, name string) models.FoodPartner {
	t.Helper()
	partner := models.FoodPartner{
		RestaurantName: name,
		OwnerName:      "Pat Owner",
		Email:          name + "@example.com",
		Phone:          "555-" + name,
		Address:        "1 Test Street",
		Password:       "x",
	}
	require.NoError(t, db.DB.Create(&partner).Error)
	return partner
}

// seedFoodItem inserts a food item row directly, skipping the upload
// pipeline.
func seedFoodItem(t *testing.T, partnerID uint, name string) models.FoodItem {
	t.Helper()
	item := models.FoodItem{
		Name:          name,
		Description:   "seeded",
		VideoURL:      "https://cdn.example.com/v/" + name + ".mp4",
		FoodPartnerID: partnerID,
	}
	require.NoError(t, db.DB.Create(&item).Error)
	return item
}

// seedUser inserts a user row directly and returns it.
func seedUser(t *testing.T, email string) models.User {
	t.Helper()
	user := models.User{
		FullName: "Seeded User",
		Email:    email,
		Phone:    "5550123",
		Password: "x",
	}
	require.NoError(t, db.DB.Create(&user).Error)
	return user
}

// at builds a timestamp n seconds in the past, for rows whose ordering
// matters.
func at(secondsAgo int) time.Time {
	return time.Now().Add(-time.Duration(secondsAgo) * time.Second)
}

func deleteAllUsers() error {
	return db.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.User{}).Error
}
