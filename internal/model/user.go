package model

const (
	minUsernameLen      = 5
	minFavoriteGenreLen = 3
)

// User represents an account that can authenticate and add books. Users
// are never updated or deleted through this API.
type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	FavoriteGenre string `json:"favoriteGenre"`
}

// Validate checks the field length constraints. A violation is returned as
// a validation error carrying the offending input so callers can correct it.
func (u *User) Validate() error {
	invalidArgs := map[string]interface{}{
		"username":      u.Username,
		"favoriteGenre": u.FavoriteGenre,
	}

	if len(u.Username) < minUsernameLen {
		return NewValidationError("username must be at least 5 characters", invalidArgs)
	}
	if len(u.FavoriteGenre) < minFavoriteGenreLen {
		return NewValidationError("favoriteGenre must be at least 3 characters", invalidArgs)
	}
	return nil
}
