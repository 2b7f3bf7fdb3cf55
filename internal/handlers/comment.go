package handlers

import (
	"net/http"
	"unicode/utf8"

	"foodreel/internal/db"
	"foodreel/internal/middleware"
	"foodreel/internal/models"
	"foodreel/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const maxCommentLength = 500

// eagerReplyCount is how many oldest replies ride along with each
// top-level comment in a listing.
const eagerReplyCount = 3

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

type addCommentRequest struct {
	FoodID   uint   `json:"foodId" binding:"required"`
	Text     string `json:"text" binding:"required"`
	ParentID *uint  `json:"parentCommentId"`
}

type updateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// Add creates a top-level comment or a reply. Only top-level comments
// count toward FoodItem.CommentCount.
func (h *CommentHandler) Add(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(*models.User)

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Food item id and comment text are required")
		return
	}

	text := utils.SanitizeCommentText(req.Text)
	if text == "" {
		fail(c, http.StatusBadRequest, "Comment text is required")
		return
	}
	// The limit is characters, not bytes; multibyte text must not be
	// penalized for its encoding
	if utf8.RuneCountInString(text) > maxCommentLength {
		fail(c, http.StatusBadRequest, "Comment text cannot exceed 500 characters")
		return
	}

	var food models.FoodItem
	if err := db.DB.First(&food, req.FoodID).Error; err != nil {
		fail(c, http.StatusNotFound, "Food item not found")
		return
	}

	if req.ParentID != nil {
		var parent models.Comment
		if err := db.DB.First(&parent, *req.ParentID).Error; err != nil || parent.Deleted {
			fail(c, http.StatusNotFound, "Parent comment not found")
			return
		}
		if parent.FoodItemID != food.ID {
			fail(c, http.StatusBadRequest, "Parent comment does not belong to this food item")
			return
		}
		// Two-level thread: replies to replies are not allowed
		if parent.ParentID != nil {
			fail(c, http.StatusBadRequest, "Replies to replies are not allowed")
			return
		}
	}

	userID := user.ID
	comment := models.Comment{
		UserID:     &userID,
		FoodItemID: food.ID,
		Text:       text,
		ParentID:   req.ParentID,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		if comment.ParentID == nil {
			return tx.Model(&models.FoodItem{}).Where("id = ?", food.ID).
				UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1)).Error
		}
		return nil
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	comment.Author = &models.CommentAuthor{ID: user.ID, FullName: user.FullName}
	comment.Replies = []models.Comment{}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added successfully",
		"comment": comment,
	})
}

// List returns a page of top-level comments for a food item, each with
// its 3 oldest replies attached.
func (h *CommentHandler) List(c *gin.Context) {
	foodID := utils.StringToInt(c.Param("id"))

	var food models.FoodItem
	if err := db.DB.First(&food, foodID).Error; err != nil {
		fail(c, http.StatusNotFound, "Food item not found")
		return
	}

	page := utils.QueryInt(c.Query("page"), 1)
	limit := utils.QueryInt(c.Query("limit"), 20)
	if limit > 100 {
		limit = 100
	}

	var total int64
	db.DB.Model(&models.Comment{}).
		Where("food_item_id = ? AND parent_id IS NULL", food.ID).
		Count(&total)

	order := "created_at DESC"
	switch c.Query("sortBy") {
	case "oldest":
		order = "created_at ASC"
	case "popular":
		order = "like_count DESC, created_at DESC"
	}

	var comments []models.Comment
	if err := db.DB.
		Where("food_item_id = ? AND parent_id IS NULL", food.ID).
		Order(order).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&comments).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}

	for i := range comments {
		attachReplies(&comments[i])
	}
	fillAuthors(comments)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Comments fetched successfully",
		"comments":   comments,
		"pagination": paginate(page, limit, total),
	})
}

// Replies returns the paginated full reply list of a comment, oldest
// first.
func (h *CommentHandler) Replies(c *gin.Context) {
	commentID := utils.StringToInt(c.Param("id"))

	var parent models.Comment
	if err := db.DB.First(&parent, commentID).Error; err != nil {
		fail(c, http.StatusNotFound, "Comment not found")
		return
	}

	page := utils.QueryInt(c.Query("page"), 1)
	limit := utils.QueryInt(c.Query("limit"), 20)
	if limit > 100 {
		limit = 100
	}

	var total int64
	db.DB.Model(&models.Comment{}).Where("parent_id = ?", parent.ID).Count(&total)

	var replies []models.Comment
	if err := db.DB.
		Where("parent_id = ?", parent.ID).
		Order("created_at ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&replies).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch replies")
		return
	}

	for i := range replies {
		replies[i].Replies = []models.Comment{}
	}
	fillAuthors(replies)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Replies fetched successfully",
		"replies":    replies,
		"pagination": paginate(page, limit, total),
	})
}

// Update edits a comment's text. Author-only; tombstones have no author
// and therefore can never be edited.
func (h *CommentHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(*models.User)
	commentID := utils.StringToInt(c.Param("commentId"))

	var comment models.Comment
	if err := db.DB.First(&comment, commentID).Error; err != nil {
		fail(c, http.StatusNotFound, "Comment not found")
		return
	}
	if comment.UserID == nil || *comment.UserID != user.ID {
		fail(c, http.StatusForbidden, "You can only edit your own comments")
		return
	}

	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Comment text is required")
		return
	}
	text := utils.SanitizeCommentText(req.Text)
	if text == "" {
		fail(c, http.StatusBadRequest, "Comment text is required")
		return
	}
	if utf8.RuneCountInString(text) > maxCommentLength {
		fail(c, http.StatusBadRequest, "Comment text cannot exceed 500 characters")
		return
	}

	if err := db.DB.Model(&comment).Update("text", text).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update comment")
		return
	}

	comment.Text = text
	comment.Author = &models.CommentAuthor{ID: user.ID, FullName: user.FullName}
	comment.Replies = []models.Comment{}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment updated successfully",
		"comment": comment,
	})
}

// Delete removes a comment. A comment that still has replies cannot be
// physically removed without orphaning them, so it becomes a tombstone in
// place; a leaf is hard-deleted, and a top-level leaf gives its slot back
// to FoodItem.CommentCount.
func (h *CommentHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(*models.User)
	commentID := utils.StringToInt(c.Param("commentId"))

	var comment models.Comment
	if err := db.DB.First(&comment, commentID).Error; err != nil {
		fail(c, http.StatusNotFound, "Comment not found")
		return
	}
	if comment.UserID == nil || *comment.UserID != user.ID {
		fail(c, http.StatusForbidden, "You can only delete your own comments")
		return
	}

	var replyCount int64
	db.DB.Model(&models.Comment{}).Where("parent_id = ?", comment.ID).Count(&replyCount)

	if replyCount > 0 {
		err := db.DB.Model(&comment).Updates(map[string]interface{}{
			"user_id": nil,
			"text":    models.DeletedCommentText,
			"deleted": true,
		}).Error
		if err != nil {
			fail(c, http.StatusInternalServerError, "Failed to delete comment")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&comment).Error; err != nil {
			return err
		}
		if comment.ParentID == nil {
			return tx.Model(&models.FoodItem{}).Where("id = ?", comment.FoodItemID).
				UpdateColumn("comment_count", gorm.Expr("comment_count - ?", 1)).Error
		}
		return nil
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to delete comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// attachReplies loads the oldest replies and the total reply count for a
// top-level comment.
func attachReplies(comment *models.Comment) {
	comment.Replies = []models.Comment{}
	db.DB.Where("parent_id = ?", comment.ID).
		Order("created_at ASC").
		Limit(eagerReplyCount).
		Find(&comment.Replies)
	for i := range comment.Replies {
		comment.Replies[i].Replies = []models.Comment{}
	}
	db.DB.Model(&models.Comment{}).Where("parent_id = ?", comment.ID).Count(&comment.ReplyCount)
}

// fillAuthors resolves author summaries for a batch of comments and their
// eager replies in one user query. Tombstones keep a nil author.
func fillAuthors(comments []models.Comment) {
	idSet := make(map[uint]bool)
	var collect func(list []models.Comment)
	collect = func(list []models.Comment) {
		for _, cm := range list {
			if cm.UserID != nil {
				idSet[*cm.UserID] = true
			}
			collect(cm.Replies)
		}
	}
	collect(comments)

	if len(idSet) == 0 {
		return
	}
	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	var users []models.User
	db.DB.Where("id IN ?", ids).Find(&users)
	byID := make(map[uint]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	var apply func(list []models.Comment)
	apply = func(list []models.Comment) {
		for i := range list {
			if list[i].UserID != nil {
				if u, ok := byID[*list[i].UserID]; ok {
					list[i].Author = &models.CommentAuthor{ID: u.ID, FullName: u.FullName}
				}
			}
			apply(list[i].Replies)
		}
	}
	apply(comments)
}
