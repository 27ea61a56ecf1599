package dto

import "todoapi/internal/domains/user/model"

type CreateUserRequest struct {
	ID       int64   `json:"id"       swaggerignore:"true"`
	Username *string `json:"username" example:"alice"`
	Password *string `json:"password" example:"s3cret"            validate:"required"`
	Email    *string `json:"email"    example:"alice@example.com"`
}

// ToModel copies the request into a user whose password is the given digest.
func (c *CreateUserRequest) ToModel(digest string) model.User {
	return model.User{
		Username: c.Username,
		Password: digest,
		Email:    c.Email,
	}
}

// UpdateUserRequest replaces username and email. A nil password keeps the stored digest.
type UpdateUserRequest struct {
	ID       int64   `json:"id"       swaggerignore:"true"`
	Username *string `json:"username" example:"alice"`
	Password *string `json:"password" example:"n3w-s3cret"`
	Email    *string `json:"email"    example:"alice@example.com"`
}

func (u *UpdateUserRequest) ToModel() model.User {
	return model.User{
		Username: u.Username,
		Email:    u.Email,
	}
}

type UserResponse struct {
	ID       int64   `json:"id"       example:"1"`
	Username *string `json:"username" example:"alice"`
	Password string  `json:"password" example:"dGhpcyBpcyBhIGRpZ2VzdA"`
	Email    *string `json:"email"    example:"alice@example.com"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Password = model.Password
	r.Email = model.Email
}

func FromModels(models []model.User) []UserResponse {
	res := make([]UserResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type SignInRequest struct {
	Username *string `json:"username" example:"alice"`
	Password *string `json:"password" example:"s3cret" validate:"required"`
}

type SignInResponse struct {
	IsVerified bool   `json:"isVerified"`
	ID         *int64 `json:"id,omitempty" example:"1"`
}
