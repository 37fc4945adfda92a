package users

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusLocked   Status = "locked"
)

// DefaultTier is the membership tier every new account starts in
const DefaultTier = "Bronze"

type User struct {
	ID             string    `json:"id" gorm:"primaryKey;size:64"`
	Name           string    `json:"name" gorm:"not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone          string    `json:"phone"`
	Password       string    `json:"-" gorm:"not null"` // hide in json
	Role           Role      `json:"role" gorm:"size:20;not null;default:'customer'"`
	Status         Status    `json:"status" gorm:"size:20;not null;default:'active'"`
	MembershipTier string    `json:"membership_tier" gorm:"size:20;not null;default:'Bronze'"`
	PointsBalance  int       `json:"points_balance" gorm:"not null;default:0;check:points_balance >= 0"`
	MemberSince    string    `json:"member_since"`
	QRCode         string    `json:"qr_code"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsLocked() bool {
	return u.Status == StatusLocked
}
