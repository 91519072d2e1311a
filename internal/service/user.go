package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storefront-backend/internal/auth"
	"storefront-backend/internal/config"
	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// dashboards maps each role to its landing page. Plain lookup, nothing more.
var dashboards = map[model.Role]string{
	model.RoleAdmin:       "/admin",
	model.RoleEditor:      "/editor",
	model.RoleManager:     "/manager",
	model.RoleCustomer:    "/account",
	model.RoleProCustomer: "/account/pro",
}

type UserService interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	Dashboard(role model.Role) string
}

type userServiceImpl struct {
	userRepo repository.UserRepository
	jwtCfg   *config.JWT
}

func NewUserService(userRepo repository.UserRepository, jwtCfg *config.JWT) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || len(password) < 8 {
		return nil, fmt.Errorf("email and a password of at least 8 characters are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleCustomer,
		Tier:         "BRONZE",
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("store user: %w", err)
	}

	return user, nil
}

func (s *userServiceImpl) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.Sign(s.jwtCfg, user)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return token, user, nil
}

func (s *userServiceImpl) Dashboard(role model.Role) string {
	if dest, ok := dashboards[role]; ok {
		return dest
	}
	return "/account"
}
