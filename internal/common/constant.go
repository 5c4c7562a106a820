package common

const (
	// TokenStorageKey is the secrets-store key holding the bearer token.
	// The session manager is the only writer of this key.
	TokenStorageKey = "auth_token"

	// UserStorageKey is the cache-store key holding the last fetched
	// profile as a JSON blob. It is an optimistic hint for cold starts,
	// never an authorization source.
	UserStorageKey = "user_profile"
)
