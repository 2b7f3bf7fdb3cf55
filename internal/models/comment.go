package models

import (
	"time"
)

// DeletedCommentText replaces the body of a tombstoned comment.
const DeletedCommentText = "[This comment has been deleted]"

// Comment is a node in a two-level thread. Top-level comments have a nil
// ParentID and count toward FoodItem.CommentCount; replies hang off their
// parent and do not. A comment whose replies still exist cannot be removed,
// so deletion turns it into a tombstone instead (Deleted=true, UserID=nil).
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"_id"`
	UserID     *uint     `gorm:"index" json:"user"` // nil marks a tombstone
	User       *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	FoodItemID uint      `gorm:"not null;index" json:"food"`
	FoodItem   FoodItem  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Text       string    `gorm:"size:500;not null" json:"text"`
	ParentID   *uint     `gorm:"index" json:"parentComment"` // nil for top-level comments
	LikeCount  int       `gorm:"default:0" json:"likeCount"`
	Deleted    bool      `gorm:"default:false" json:"deleted"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Filled at query time, not persisted
	Author     *CommentAuthor `gorm:"-" json:"author,omitempty"`
	Replies    []Comment      `gorm:"-" json:"replies"`
	ReplyCount int64          `gorm:"-" json:"replyCount"`
}

// CommentAuthor is the public author shape attached to listed comments.
type CommentAuthor struct {
	ID       uint   `json:"_id"`
	FullName string `json:"fullName"`
}
