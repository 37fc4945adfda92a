package users

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("an account with this email already exists")
	ErrCannotDeleteSelf    = errors.New("cannot delete your own account")
	ErrInsufficientBalance = errors.New("points balance too low")
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, search string, role string) ([]User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userID, hashedPassword string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)

	// AdjustPoints adds delta (negative to spend) and sets the tier inside tx
	AdjustPoints(tx *gorm.DB, userID string, delta int, tier string) error
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// NormalizeEmail is how emails are stored and compared
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *repository) Create(ctx context.Context, user *User) error {
	user.Email = NormalizeEmail(user.Email)
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("email = ?", NormalizeEmail(email)).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List filters by a name or email substring and a role; empty or "all" role matches every role
func (r *repository) List(ctx context.Context, search string, role string) ([]User, error) {
	query := r.db.WithContext(ctx).Model(&User{})
	if s := strings.ToLower(strings.TrimSpace(search)); s != "" {
		like := "%" + s + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if role != "" && role != "all" {
		query = query.Where("role = ?", role)
	}

	var users []User
	err := query.Order("created_at").Order("id").Find(&users).Error
	return users, err
}

func (r *repository) Update(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *repository) UpdatePassword(ctx context.Context, userID, hashedPassword string) error {
	result := r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", userID).
		Update("password", hashedPassword)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Count(&count).Error
	return count, err
}

func (r *repository) AdjustPoints(tx *gorm.DB, userID string, delta int, tier string) error {
	query := tx.Model(&User{}).Where("id = ?", userID)
	if delta < 0 {
		query = query.Where("points_balance >= ?", -delta)
	}

	result := query.Updates(map[string]interface{}{
		"points_balance":  gorm.Expr("points_balance + ?", delta),
		"membership_tier": tier,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if delta < 0 {
			return ErrInsufficientBalance
		}
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
