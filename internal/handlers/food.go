package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"foodreel/internal/db"
	"foodreel/internal/middleware"
	"foodreel/internal/models"
	"foodreel/internal/services"
	"foodreel/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// maxVideoBytes caps uploaded video size at 50 MB.
const maxVideoBytes = 50 << 20

type FoodHandler struct {
	storage *services.StorageService
}

func NewFoodHandler() *FoodHandler {
	return &FoodHandler{
		storage: services.NewStorageService(),
	}
}

type toggleRequest struct {
	ID uint `json:"id" binding:"required"`
}

// Create handles the partner's multipart video upload. The upload must
// complete before the food item row is written, so a failed upload never
// leaves a partial record.
func (h *FoodHandler) Create(c *gin.Context) {
	partner := c.MustGet(middleware.PartnerKey).(*models.FoodPartner)

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		fail(c, http.StatusBadRequest, "Food item name is required")
		return
	}
	description := c.PostForm("description")

	fileHeader, err := c.FormFile("video")
	if err != nil || fileHeader.Size == 0 {
		fail(c, http.StatusBadRequest, "Video file is required")
		return
	}
	if fileHeader.Size > maxVideoBytes {
		fail(c, http.StatusBadRequest, "Video file exceeds the 50 MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, "Video file is required")
		return
	}
	defer file.Close()

	buffer, err := io.ReadAll(file)
	if err != nil || len(buffer) == 0 {
		fail(c, http.StatusBadRequest, "Video file is required")
		return
	}

	result, err := h.storage.Upload(c.Request.Context(), buffer, utils.UploadFileName(name))
	if err != nil {
		if errors.Is(err, services.ErrUploadTimeout) {
			fail(c, http.StatusRequestTimeout, "Video upload timed out")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to upload video")
		return
	}

	item := models.FoodItem{
		Name:          name,
		Description:   description,
		VideoURL:      result.URL,
		FoodPartnerID: partner.ID,
	}
	if err := db.DB.Create(&item).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to save food item")
		return
	}

	// Profile stats changed
	utils.GetCache().Delete(profileCacheKey(partner.ID))

	c.JSON(http.StatusCreated, gin.H{
		"message": "Food item added successfully",
		"food":    item,
	})
}

// List returns every food item newest first, annotated with the viewer's
// like/save status and live counts. Per-item status lookups are separate
// queries; fine at this scale.
func (h *FoodHandler) List(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(*models.User)

	var items []models.FoodItem
	if err := db.DB.Preload("FoodPartner").Order("created_at DESC").Find(&items).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch food items")
		return
	}

	for i := range items {
		if err := annotateFoodItem(&items[i], user.ID); err != nil {
			fail(c, http.StatusInternalServerError, "Failed to fetch food items")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Food items fetched successfully",
		"foodItems": items,
		"count":     len(items),
	})
}

// annotateFoodItem fills the viewer flags, live counters and the partner
// summary on a fetched item. The join tables are the ground truth for the
// counts; the denormalized columns only serve sorts and quick reads. A
// store failure must surface, not read as "zero likes".
func annotateFoodItem(item *models.FoodItem, viewerID uint) error {
	var likeCount int64
	if err := db.DB.Model(&models.Like{}).Where("food_item_id = ?", item.ID).Count(&likeCount).Error; err != nil {
		return err
	}
	item.LikeCount = int(likeCount)

	// Only top-level comments are visible in the count; tombstones keep
	// their slot until their replies are gone.
	var commentCount int64
	if err := db.DB.Model(&models.Comment{}).
		Where("food_item_id = ? AND parent_id IS NULL", item.ID).
		Count(&commentCount).Error; err != nil {
		return err
	}
	item.CommentCount = int(commentCount)

	var like models.Like
	switch err := db.DB.Where("user_id = ? AND food_item_id = ?", viewerID, item.ID).First(&like).Error; {
	case err == nil:
		item.IsLiked = true
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	var save models.Save
	switch err := db.DB.Where("user_id = ? AND food_item_id = ?", viewerID, item.ID).First(&save).Error; {
	case err == nil:
		item.IsSaved = true
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	if item.FoodPartner.ID != 0 {
		summary := item.FoodPartner.Summary()
		item.Partner = &summary
	}
	return nil
}

// ToggleLike flips the viewer's like on a food item. The (user, food)
// unique index is the authoritative duplicate guard; the existence check
// is only a fast path.
func (h *FoodHandler) ToggleLike(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(*models.User)

	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Food item id is required")
		return
	}

	var food models.FoodItem
	if err := db.DB.First(&food, req.ID).Error; err != nil {
		fail(c, http.StatusNotFound, "Food item not found")
		return
	}

	liked := false
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		if err := tx.Where("user_id = ? AND food_item_id = ?", user.ID, food.ID).First(&existing).Error; err == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			return tx.Model(&models.FoodItem{}).Where("id = ?", food.ID).
				UpdateColumn("like_count", gorm.Expr("like_count - ?", 1)).Error
		}

		like := models.Like{UserID: user.ID, FoodItemID: food.ID}
		if err := tx.Create(&like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the race to a concurrent request; the row exists,
				// so the store's verdict wins.
				liked = true
				return nil
			}
			return err
		}
		liked = true
		return tx.Model(&models.FoodItem{}).Where("id = ?", food.ID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to toggle like")
		return
	}

	var likeCount int64
	db.DB.Model(&models.Like{}).Where("food_item_id = ?", food.ID).Count(&likeCount)

	c.JSON(http.StatusOK, gin.H{
		"message":   "Like toggled successfully",
		"liked":     liked,
		"likeCount": likeCount,
	})
}

// ToggleSave is symmetric to ToggleLike but maintains no counter.
func (h *FoodHandler) ToggleSave(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(*models.User)

	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Food item id is required")
		return
	}

	var food models.FoodItem
	if err := db.DB.First(&food, req.ID).Error; err != nil {
		fail(c, http.StatusNotFound, "Food item not found")
		return
	}

	saved := false
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Save
		if err := tx.Where("user_id = ? AND food_item_id = ?", user.ID, food.ID).First(&existing).Error; err == nil {
			return tx.Delete(&existing).Error
		}

		save := models.Save{UserID: user.ID, FoodItemID: food.ID}
		if err := tx.Create(&save).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				saved = true
				return nil
			}
			return err
		}
		saved = true
		return nil
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to toggle save")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Save toggled successfully",
		"saved":   saved,
	})
}

// ListLiked returns the viewer's liked items, newest like first.
func (h *FoodHandler) ListLiked(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(*models.User)

	var likes []models.Like
	if err := db.DB.Preload("FoodItem.FoodPartner").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&likes).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch liked items")
		return
	}

	items := make([]models.FoodItem, 0, len(likes))
	for _, like := range likes {
		if like.FoodItem.ID == 0 {
			continue
		}
		item := like.FoodItem
		if err := annotateFoodItem(&item, user.ID); err != nil {
			fail(c, http.StatusInternalServerError, "Failed to fetch liked items")
			return
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Liked food items fetched successfully",
		"foodItems": items,
		"count":     len(items),
	})
}

// ListSaved returns the viewer's saved items, newest save first.
func (h *FoodHandler) ListSaved(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(*models.User)

	var saves []models.Save
	if err := db.DB.Preload("FoodItem.FoodPartner").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&saves).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch saved items")
		return
	}

	items := make([]models.FoodItem, 0, len(saves))
	for _, save := range saves {
		if save.FoodItem.ID == 0 {
			continue
		}
		item := save.FoodItem
		if err := annotateFoodItem(&item, user.ID); err != nil {
			fail(c, http.StatusInternalServerError, "Failed to fetch saved items")
			return
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Saved food items fetched successfully",
		"foodItems": items,
		"count":     len(items),
	})
}
