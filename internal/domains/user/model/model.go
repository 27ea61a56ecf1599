package model

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"
)

// User holds a hashed credential in Password, never the plaintext.
type User struct {
	ID       int64   `db:"id"`
	Username *string `db:"username"`
	Password string  `db:"password"`
	Email    *string `db:"email"`
}
