package constants

// ContextKeyUserID is the gin context key under which the Basic Auth
// middleware stores the authenticated user's ID.
const ContextKeyUserID = "user_id"

// BcryptCost is the work factor applied when hashing passwords.
const BcryptCost = 12

const (
	MaxTitleLength       = 50
	MaxDescriptionLength = 255
)

const (
	MinPasswordLength = 6
	MaxPasswordLength = 20
)
