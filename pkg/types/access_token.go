package types

type AccessToken struct {
	ID        int64  `json:"id" db:"id"`
	UserID    string `json:"user_id" db:"user_id"`
	Token     string `json:"token" db:"token"`
	Info      string `json:"info" db:"info"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
	ExpiresAt int64  `json:"expires_at" db:"expires_at"`
}

// UserTokenMeta is the cached view of a validated access token.
type UserTokenMeta struct {
	UserID    string `json:"user_id"`
	ExpiresAt int64  `json:"expires_at"`
}

type User struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Email     string `json:"email" db:"email"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
	UpdatedAt int64  `json:"updated_at" db:"updated_at"`
}
