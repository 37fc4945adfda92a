package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cineplex/internal/shared/config"
	"cineplex/internal/shared/constants"
	"cineplex/internal/users"
	"cineplex/internal/validation"
	"cineplex/pkg/cache"
	"cineplex/pkg/logger"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNoAccount          = errors.New("no account found with this email")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrAccountLocked      = errors.New("account is locked, please contact support")
	ErrInvalidCredentials = errors.New("current password is incorrect")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidResetToken  = errors.New("reset link is invalid or has expired")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrInvalidInput       = errors.New("validation failed")
)

// InputError carries per-field messages from the registration form
type InputError struct {
	Fields validation.Errors
}

func (e *InputError) Error() string {
	return ErrInvalidInput.Error()
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

const minPasswordLength = 6

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	ForgotPassword(ctx context.Context, email string) (*ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req *ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID string, req *ChangePasswordRequest) error
	Me(ctx context.Context, userID string) (*users.User, error)
	ValidateToken(tokenString string) (*JWTClaims, error)
}

type service struct {
	repo   users.Repository
	cache  cache.Service
	config *config.Config
	now    func() time.Time
	log    *logger.Logger
}

func NewService(repo users.Repository, cacheService cache.Service, cfg *config.Config) Service {
	return &service{
		repo:   repo,
		cache:  cacheService,
		config: cfg,
		now:    time.Now,
		log:    logger.GetDefault(),
	}
}

func (s *service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	errs := validation.RegistrationSchema().ValidateAll(map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
		"phone":    req.Phone,
	})
	if len(errs) > 0 {
		return nil, &InputError{Fields: errs}
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, users.ErrEmailTaken
	}

	hashed, err := users.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := users.NewMember(req.Name, req.Email, req.Phone, hashed, users.RoleCustomer, s.now())
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.LogAuthSuccess(ctx, user.ID, "register")
	resp, err := s.authResponse(user)
	if err != nil {
		return nil, err
	}
	resp.Password = &PasswordFeedback{
		Score:    validation.PasswordStrength(req.Password),
		Strength: validation.ValidatePassword(req.Password).Strength,
	}
	return resp, nil
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			s.log.LogAuthFailure(ctx, "no_account", req.Email)
			return nil, ErrNoAccount
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.log.LogAuthFailure(ctx, "invalid_password", req.Email)
		return nil, ErrInvalidPassword
	}

	if user.IsLocked() {
		s.log.LogAuthFailure(ctx, "account_locked", req.Email)
		return nil, ErrAccountLocked
	}

	s.log.LogAuthSuccess(ctx, user.ID, "password")
	return s.authResponse(user)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.validateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if claims.Type != TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if s.cache.Exists(ctx, constants.BuildRevokedTokenKey(claims.ID)) {
		return nil, ErrInvalidToken
	}

	// Verify user still exists
	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user.IsLocked() {
		return nil, ErrAccountLocked
	}

	// Refresh tokens are single use
	s.revoke(ctx, claims)

	return s.generateTokenPair(user.ID, user.Email, string(user.Role))
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	claims, err := s.validateToken(refreshToken)
	if err != nil || claims.Type != TokenTypeRefresh {
		return nil
	}
	s.revoke(ctx, claims)
	return nil
}

func (s *service) revoke(ctx context.Context, claims *JWTClaims) {
	ttl := s.config.JWT.RefreshExpiresIn
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(s.now())
	}
	if ttl <= 0 {
		return
	}
	if err := s.cache.Set(ctx, constants.BuildRevokedTokenKey(claims.ID), claims.UserID, ttl); err != nil {
		s.log.Warn("failed to revoke refresh token", "user_id", claims.UserID, "error", err)
	}
}

func (s *service) ForgotPassword(ctx context.Context, email string) (*ForgotPasswordResponse, error) {
	if r := validation.ValidateEmail(email); !r.IsValid {
		return nil, &InputError{Fields: validation.Errors{"email": r.Error}}
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrNoAccount
		}
		return nil, err
	}

	token := uuid.New().String()
	ttl := s.config.Redis.TempDataTTL
	if err := s.cache.Set(ctx, constants.BuildResetTokenKey(token), user.ID, ttl); err != nil {
		return nil, fmt.Errorf("failed to store reset token: %w", err)
	}

	s.log.Info("password reset requested", "user_id", user.ID)
	return &ForgotPasswordResponse{ResetToken: token, ExpiresIn: int64(ttl.Seconds())}, nil
}

func (s *service) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	token, password := req.Token, req.Password
	if !validation.ValidateMinLength(password, minPasswordLength, "Password").IsValid {
		return ErrWeakPassword
	}
	if err := confirmPassword(password, req.ConfirmPassword); err != nil {
		return err
	}

	var userID string
	if err := s.cache.Get(ctx, constants.BuildResetTokenKey(token), &userID); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return ErrInvalidResetToken
		}
		return err
	}

	hashed, err := users.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, userID, hashed); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, constants.BuildResetTokenKey(token)); err != nil {
		s.log.Warn("failed to delete reset token", "user_id", userID, "error", err)
	}
	s.log.Info("password reset", "user_id", userID)
	return nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req *ChangePasswordRequest) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	// Verify current password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if err := confirmPassword(req.NewPassword, req.ConfirmPassword); err != nil {
		return err
	}

	hashed, err := users.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, userID, hashed)
}

// confirmPassword checks the optional confirmation field of a password form
func confirmPassword(password, confirmation string) error {
	if confirmation == "" {
		return nil
	}
	if r := validation.ValidateMatch(password, confirmation, "Passwords"); !r.IsValid {
		return &InputError{Fields: validation.Errors{"confirm_password": r.Error}}
	}
	return nil
}

func (s *service) Me(ctx context.Context, userID string) (*users.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *service) ValidateToken(tokenString string) (*JWTClaims, error) {
	return s.validateToken(tokenString)
}

func (s *service) authResponse(user *users.User) (*AuthResponse, error) {
	tokenPair, err := s.generateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		User:         user,
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

func (s *service) generateTokenPair(userID, email, role string) (*TokenPair, error) {
	now := s.now()

	accessToken, err := s.signToken(userID, email, role, TokenTypeAccess, now, s.config.JWT.JWTExpiresIn)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.signToken(userID, email, role, TokenTypeRefresh, now, s.config.JWT.RefreshExpiresIn)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.config.JWT.JWTExpiresIn.Seconds()),
	}, nil
}

func (s *service) signToken(userID, email, role, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := JWTClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "cineplex",
			Subject:   userID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWT.Secret))
}

func (s *service) validateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.JWT.Secret), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
