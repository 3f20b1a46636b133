package models

// Post is the document stored in the posts collection. PostID is an
// immutable UUID assigned at creation. Username and UserImage are
// denormalized snapshots of the author's profile; UserImage is re-synced
// by a batch update when the author changes their profile image.
type Post struct {
	PostID      string   `json:"postId"`
	UserID      string   `json:"userId"`
	Username    string   `json:"username,omitempty"`
	UserImage   string   `json:"userImage,omitempty"`
	PostImage   string   `json:"postImage,omitempty"`
	Description string   `json:"description,omitempty"`
	CreatedAt   int64    `json:"createdAt"` // epoch millis
	Likes       []string `json:"likes,omitempty"`
	SearchTerms []string `json:"searchTerms,omitempty"`
}

// LikedBy reports whether userID is in the post's likes.
func (p Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
