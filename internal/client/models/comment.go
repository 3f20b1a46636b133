package models

// Comment is the document stored in the comments collection. Immutable once
// created; PostID is a soft reference (posts are never deleted in scope).
type Comment struct {
	CommentID string `json:"commentId"`
	PostID    string `json:"postId"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"` // epoch millis
}
