// Package common contains shared constants and sentinel errors used across
// InstaPhotos components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// Backend collection names.
const (
	CollectionUsers    = "users"
	CollectionPosts    = "posts"
	CollectionComments = "comments"
)
