package handlers

import (
	"net/http"

	"foodreel/internal/db"
	"foodreel/internal/models"
	"foodreel/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type registerUserRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phoneNumber"`
}

type registerPartnerRequest struct {
	RestaurantName string `json:"restaurantName" binding:"required"`
	OwnerName      string `json:"ownerName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Phone          string `json:"phone" binding:"required"`
	Address        string `json:"address" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// One message for unknown email and wrong password, so login failures
// cannot be used to enumerate registered accounts.
const invalidCredentialsMsg = "Invalid email or password"

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing or invalid registration fields")
		return
	}

	var existing models.User
	if err := db.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		fail(c, http.StatusBadRequest, "User already exists")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	user := models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hash,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		// Unique index is the authoritative guard under racing registrations
		fail(c, http.StatusBadRequest, "User already exists")
		return
	}

	token, err := utils.SignToken(user.ID, utils.TokenKindUser)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	setAuthCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
		"token":   token,
	})
}

func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing email or password")
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		fail(c, http.StatusBadRequest, invalidCredentialsMsg)
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		fail(c, http.StatusBadRequest, invalidCredentialsMsg)
		return
	}

	token, err := utils.SignToken(user.ID, utils.TokenKindUser)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	setAuthCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"message": "User logged in successfully",
		"user":    user,
		"token":   token,
	})
}

func (h *AuthHandler) LogoutUser(c *gin.Context) {
	clearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "User logged out successfully"})
}

func (h *AuthHandler) RegisterPartner(c *gin.Context) {
	var req registerPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing or invalid registration fields")
		return
	}

	var existing models.FoodPartner
	if err := db.DB.Where("email = ? OR phone = ?", req.Email, req.Phone).First(&existing).Error; err == nil {
		fail(c, http.StatusBadRequest, "Food partner already exists")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to register food partner")
		return
	}

	partner := models.FoodPartner{
		RestaurantName: req.RestaurantName,
		OwnerName:      req.OwnerName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		Password:       hash,
	}
	if err := db.DB.Create(&partner).Error; err != nil {
		fail(c, http.StatusBadRequest, "Food partner already exists")
		return
	}

	token, err := utils.SignToken(partner.ID, utils.TokenKindPartner)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	setAuthCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Food partner registered successfully",
		"partner": partner,
		"token":   token,
	})
}

func (h *AuthHandler) LoginPartner(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing email or password")
		return
	}

	var partner models.FoodPartner
	if err := db.DB.Where("email = ?", req.Email).First(&partner).Error; err != nil {
		fail(c, http.StatusBadRequest, invalidCredentialsMsg)
		return
	}
	if !utils.CheckPasswordHash(req.Password, partner.Password) {
		fail(c, http.StatusBadRequest, invalidCredentialsMsg)
		return
	}

	token, err := utils.SignToken(partner.ID, utils.TokenKindPartner)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	setAuthCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"message": "Food partner logged in successfully",
		"partner": partner,
		"token":   token,
	})
}

func (h *AuthHandler) LogoutPartner(c *gin.Context) {
	clearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Food partner logged out successfully"})
}
