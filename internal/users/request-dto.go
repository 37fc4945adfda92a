package users

// AdminListQuery filters the user table in the back office
type AdminListQuery struct {
	Query string `form:"q"`
	Role  string `form:"role" binding:"omitempty,oneof=all customer staff manager admin"`
}

type CreateUserRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"omitempty,max=20"`
	Password       string `json:"password" validate:"required,min=6"`
	Role           string `json:"role" validate:"omitempty,oneof=customer staff manager admin"`
	MembershipTier string `json:"membership_tier" validate:"omitempty,oneof=Bronze Silver Gold Platinum"`
	Status         string `json:"status" validate:"omitempty,oneof=active inactive locked"`
}

type UpdateUserRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone          *string `json:"phone" validate:"omitempty,max=20"`
	Role           *string `json:"role" validate:"omitempty,oneof=customer staff manager admin"`
	MembershipTier *string `json:"membership_tier" validate:"omitempty,oneof=Bronze Silver Gold Platinum"`
	Status         *string `json:"status" validate:"omitempty,oneof=active inactive locked"`
}
