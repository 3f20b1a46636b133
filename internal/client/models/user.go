// Package models defines the domain records the engine synchronizes:
// sessions, user profiles, posts, and comments. Field tags match the
// document layout used by the backend collections.
package models

// Session identifies the currently authenticated user.
type Session struct {
	UserID string `json:"userId"`
}

// UserProfile is the document stored in the users collection, one per
// account, keyed by UserID and owned exclusively by its user.
//
// Following holds the user ids this user follows. It must never contain
// the user's own id; ToggleFollow rejects self-follow.
type UserProfile struct {
	UserID    string   `json:"userId"`
	Name      string   `json:"name,omitempty"`
	Username  string   `json:"username,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	ImageURL  string   `json:"imageUrl,omitempty"`
	Following []string `json:"following,omitempty"`
}

// IsFollowing reports whether userID is in the profile's following list.
func (p UserProfile) IsFollowing(userID string) bool {
	for _, id := range p.Following {
		if id == userID {
			return true
		}
	}
	return false
}

// ProfilePatch carries optional profile edits. Nil fields keep the prior
// value when merged over an existing profile.
type ProfilePatch struct {
	Name     *string
	Username *string
	Bio      *string
	ImageURL *string
}
