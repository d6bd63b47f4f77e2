package services

import (
	"studio_backend/internal/auth"
	"studio_backend/internal/repositories"
	"studio_backend/internal/services/dto"
	"studio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AuthService exchanges admin credentials for a session token.
type AuthService interface {
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid email or password")
		}
		return nil, apperrors.NewPersistenceError("auth", err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("Invalid email or password")
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	}, nil
}
