package usecase

import (
	"errors"
	"strings"
	"time"

	"batilink/internal/entity"
	"batilink/internal/repo/persistent"
	"batilink/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUseCase interface {
	Register(email, password string) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCase{userRepo: userRepo, jwtService: jwtService}
}

func (uc *authUseCase) Register(email, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := uc.userRepo.GetByEmail(email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         "USER",
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now()
	if err := uc.userRepo.TouchLastLogin(user.ID, now); err != nil {
		return nil, "", err
	}
	user.LastLoginAt = &now

	token, err := uc.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
