package usecase

import (
	authdomain "activityhub-backend/internal/auth/domain"
	authdto "activityhub-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	ValidateToken(tokenString string) (*authdomain.User, error)

	// Team members are the reference data for team views, leaderboards and summaries
	ListMembers() ([]*authdomain.User, error)

	// Theme preference, the single persisted UI setting
	GetTheme(userID string) (string, error)
	SetTheme(userID, theme string) error
}
