package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Claims embeds the registered claims and adds the account role so the
// middleware can authorize recruiter-only routes without a user lookup.
type Claims struct {
	Role models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type userService struct {
	repo           storage.UserRepository
	sessions       SessionStore
	jwtSecret      string
	jwtExpiration  time.Duration
	refreshExpires time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, sessions SessionStore, jwtSecret string, jwtExpiration, refreshExpires time.Duration) UserService {
	return &userService{
		repo:           repo,
		sessions:       sessions,
		jwtSecret:      jwtSecret,
		jwtExpiration:  jwtExpiration,
		refreshExpires: refreshExpires,
	}
}

var _ UserService = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req *dto.RegisterUserRequest) (*models.User, error) {
	user, err := s.repo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Printf("UserService: Error creating user: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *TokenPair, error) {
	emailReq := dto.GetUserByEmailRequest{Email: req.Email}
	user, err := s.repo.GetByEmail(ctx, &emailReq)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, nil, ErrInvalidCredentials
		}
		log.Printf("UserService: Error fetching user by email %s during login: %v", req.Email, err)
		return nil, nil, fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *userService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*TokenPair, error) {
	userID, err := s.sessions.Get(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			return nil, ErrSessionExpired
		}
		log.Printf("UserService: Error loading session: %v", err)
		return nil, fmt.Errorf("internal error during refresh: %w", err)
	}

	user, err := s.repo.GetByID(ctx, &dto.GetUserByIDRequest{ID: userID})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		log.Printf("UserService: Error fetching user %s during refresh: %v", userID, err)
		return nil, fmt.Errorf("internal error during refresh: %w", err)
	}

	// Rotate: the presented token is single-use.
	if err := s.sessions.Delete(ctx, req.RefreshToken); err != nil {
		log.Printf("UserService: Error rotating session for user %s: %v", userID, err)
		return nil, fmt.Errorf("internal error during refresh: %w", err)
	}
	return s.issueTokens(ctx, user)
}

func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	if req.RefreshToken == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, req.RefreshToken); err != nil {
		log.Printf("UserService: Error revoking session for user %s: %v", req.UserID, err)
		return fmt.Errorf("internal error during logout: %w", err)
	}
	return nil
}

func (s *userService) GetUserByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.repo.UpdateProfile(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("UserService: Error updating profile for user %s: %v", req.UserID, err)
		return nil, fmt.Errorf("internal error updating profile: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateExperiences(ctx context.Context, req *dto.UpdateExperienceRequest) (*models.User, error) {
	user, err := s.repo.UpdateExperiences(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("UserService: Error updating experiences for user %s: %v", req.UserID, err)
		return nil, fmt.Errorf("internal error updating experiences: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateEducations(ctx context.Context, req *dto.UpdateEducationRequest) (*models.User, error) {
	user, err := s.repo.UpdateEducations(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("UserService: Error updating educations for user %s: %v", req.UserID, err)
		return nil, fmt.Errorf("internal error updating educations: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateCertifications(ctx context.Context, req *dto.UpdateCertificationsRequest) (*models.User, error) {
	user, err := s.repo.UpdateCertifications(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("UserService: Error updating certifications for user %s: %v", req.UserID, err)
		return nil, fmt.Errorf("internal error updating certifications: %w", err)
	}
	return user, nil
}

func (s *userService) issueTokens(ctx context.Context, user *models.User) (*TokenPair, error) {
	now := time.Now()
	claims := &Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		log.Printf("UserService: Error generating JWT token for user %s: %v", user.Email, err)
		return nil, fmt.Errorf("failed to generate login token: %w", err)
	}

	refreshToken := uuid.NewString()
	if err := s.sessions.Save(ctx, refreshToken, user.ID, s.refreshExpires); err != nil {
		log.Printf("UserService: Error persisting session for user %s: %v", user.Email, err)
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
