package handlers

import (
	"fmt"
	"net/http"
	"time"

	"foodreel/internal/db"
	"foodreel/internal/middleware"
	"foodreel/internal/models"
	"foodreel/internal/utils"

	"github.com/gin-gonic/gin"
)

type PartnerHandler struct{}

func NewPartnerHandler() *PartnerHandler {
	return &PartnerHandler{}
}

func profileCacheKey(id uint) string {
	return fmt.Sprintf("partner:profile:%d", id)
}

// AuthCheck confirms the current session belongs to a food partner.
func (h *PartnerHandler) AuthCheck(c *gin.Context) {
	partner := c.MustGet(middleware.PartnerKey).(*models.FoodPartner)
	c.JSON(http.StatusOK, gin.H{
		"message":     "Food partner authenticated successfully",
		"foodPartner": partner.Summary(),
	})
}

// Profile returns the partner's public profile, derived statistics and
// food items. Responses are cached briefly; food item creation
// invalidates the key.
func (h *PartnerHandler) Profile(c *gin.Context) {
	id := utils.StringToInt(c.Param("id"))
	key := profileCacheKey(uint(id))

	if cached := utils.GetCache().Get(key); cached != nil {
		if body, ok := cached.(gin.H); ok {
			c.JSON(http.StatusOK, body)
			return
		}
	}

	var partner models.FoodPartner
	if err := db.DB.First(&partner, id).Error; err != nil {
		fail(c, http.StatusNotFound, "Food partner not found")
		return
	}
	// Normalize legacy field layouts before anything leaves this handler
	partner.Normalize()

	var items []models.FoodItem
	if err := db.DB.Where("food_partner_id = ?", partner.ID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch food items")
		return
	}

	totalMeals := len(items)
	// Placeholder heuristic, not a measured quantity
	customersServed := totalMeals * 10

	body := gin.H{
		"message": "Food partner profile fetched successfully",
		"foodPartner": gin.H{
			"_id":            partner.ID,
			"restaurantName": partner.RestaurantName,
			"ownerName":      partner.OwnerName,
			"address":        partner.Address,
			"email":          partner.Email,
			"phone":          partner.Phone,
		},
		"statistics": gin.H{
			"totalMeals":      totalMeals,
			"customersServed": formatCustomersServed(customersServed),
		},
		"foodItems": items,
	}

	utils.GetCache().Set(key, body, time.Minute)
	c.JSON(http.StatusOK, body)
}

// formatCustomersServed renders large counts with a K suffix, matching
// what the profile page displays.
func formatCustomersServed(n int) interface{} {
	if n > 1000 {
		return fmt.Sprintf("%dK", n/1000)
	}
	return n
}
