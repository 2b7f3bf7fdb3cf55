package middleware

import (
	"net/http"
	"strings"

	"foodreel/internal/db"
	"foodreel/internal/models"
	"foodreel/internal/utils"

	"github.com/gin-gonic/gin"
)

const UserKey = "user"
const PartnerKey = "foodPartner"

// bearerToken pulls the session token from the httpOnly cookie or the
// Authorization header.
func bearerToken(c *gin.Context) string {
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// AuthUser ensures the request carries a valid user session and loads the
// user into the context.
func AuthUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Please login to continue"})
			return
		}

		id, kind, err := utils.ParseToken(token)
		if err != nil || kind != utils.TokenKindUser {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		var user models.User
		if err := db.DB.First(&user, id).Error; err != nil {
			// Token outlived the account
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(UserKey, &user)
		c.Next()
	}
}

// AuthPartner is the food partner counterpart of AuthUser.
func AuthPartner() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		id, kind, err := utils.ParseToken(token)
		if err != nil || kind != utils.TokenKindPartner {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		var partner models.FoodPartner
		if err := db.DB.First(&partner, id).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(PartnerKey, &partner)
		c.Next()
	}
}
