package constants

// Session
const (
	SessionCookieName     = "stache_session"
	ContextKeyUserID      = "user_id"
	ContextKeyCurrentUser = "current_user"
	SessionMaxAge         = 86400 * 7 // 7 days
)

// Validation bounds
const (
	MinUsernameLength = 3
	MaxUsernameLength = 32
	MinPasswordLength = 8
)

// SlugFallback is used when a stache name contains no usable characters.
const SlugFallback = "stache"
