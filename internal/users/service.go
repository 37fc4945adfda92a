package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cineplex/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context, q AdminListQuery) (*AdminUserList, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error)
	DeleteUser(ctx context.Context, id, actorID string) error
}

type service struct {
	repo Repository
	now  func() time.Time
	log  *logger.Logger
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now, log: logger.GetDefault()}
}

// QRCode is the membership card code for a tier, e.g. MEMBER-BRONZE-1735689600
func QRCode(tier string, now time.Time) string {
	return fmt.Sprintf("MEMBER-%s-%d", strings.ToUpper(tier), now.Unix())
}

// HashPassword hashes a plain password with bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// NewMember builds a fresh active account in the default tier
func NewMember(name, email, phone, hashedPassword string, role Role, now time.Time) *User {
	return &User{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(name),
		Email:          NormalizeEmail(email),
		Phone:          strings.TrimSpace(phone),
		Password:       hashedPassword,
		Role:           role,
		Status:         StatusActive,
		MembershipTier: DefaultTier,
		MemberSince:    now.Format("2006-01-02"),
		QRCode:         QRCode(DefaultTier, now),
	}
}

func (s *service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListUsers(ctx context.Context, q AdminListQuery) (*AdminUserList, error) {
	list, err := s.repo.List(ctx, q.Query, q.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	return &AdminUserList{Users: list, Shown: len(list), Total: total}, nil
}

func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := RoleCustomer
	if req.Role != "" {
		role = Role(req.Role)
	}
	user := NewMember(req.Name, req.Email, req.Phone, hashed, role, s.now())
	if req.MembershipTier != "" {
		user.MembershipTier = req.MembershipTier
		user.QRCode = QRCode(req.MembershipTier, s.now())
	}
	if req.Status != "" {
		user.Status = Status(req.Status)
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info("user created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *service) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Role != nil {
		user.Role = Role(*req.Role)
	}
	if req.MembershipTier != nil {
		user.MembershipTier = *req.MembershipTier
	}
	if req.Status != nil {
		user.Status = Status(*req.Status)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.log.Info("user updated", "user_id", id, "role", user.Role, "status", user.Status)
	return user, nil
}

func (s *service) DeleteUser(ctx context.Context, id, actorID string) error {
	if id == actorID {
		return ErrCannotDeleteSelf
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deleted", "user_id", id, "by", actorID)
	return nil
}
