package service

import (
	"context"
	"errors"
	"time"

	"travely/internal/cache"
	apperrors "travely/internal/errors"
	"travely/internal/models"
	"travely/internal/repository"
	"travely/internal/validator"
	"travely/pkg/auth"
)

// AuthService handles authentication business logic.
type AuthService struct {
	userRepo      repository.UserRepository
	resetTokens   cache.ResetTokenStore
	jwtManager    *auth.JWTManager
	google        GoogleVerifier
	resetTokenTTL time.Duration
}

// AuthServiceConfig holds configuration for AuthService.
type AuthServiceConfig struct {
	UserRepo      repository.UserRepository
	ResetTokens   cache.ResetTokenStore
	JWTManager    *auth.JWTManager
	Google        GoogleVerifier
	ResetTokenTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:      cfg.UserRepo,
		resetTokens:   cfg.ResetTokens,
		jwtManager:    cfg.JWTManager,
		google:        cfg.Google,
		resetTokenTTL: cfg.ResetTokenTTL,
	}
}

// Register creates a new user account and returns the session token.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     validator.SanitizeText(req.Name),
		Email:    req.Email,
		Password: hashedPassword,
		Mobile:   req.Mobile,
		Country:  validator.SanitizeText(req.Country),
		Type:     req.Type,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

// Login authenticates a user. Unknown email and wrong password fail with the
// same error so callers cannot tell which check failed.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// ForgotPassword issues a single-use, time-bounded reset token for the
// account. The token is returned for delivery; only its hash is stored.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	token, err := auth.GenerateResetToken()
	if err != nil {
		return "", err
	}

	data := &cache.ResetTokenData{
		UserID:    user.ID.Hex(),
		CreatedAt: time.Now(),
	}
	if err := s.resetTokens.Create(ctx, auth.HashResetToken(token), data, s.resetTokenTTL); err != nil {
		return "", err
	}

	return token, nil
}

// ResetPassword redeems a reset token and overwrites the user's credential.
// The token is invalidated whether or not the overwrite succeeds.
func (s *AuthService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	tokenHash := auth.HashResetToken(req.Token)

	data, err := s.resetTokens.Get(ctx, tokenHash)
	if err != nil {
		return err
	}
	if data == nil {
		return apperrors.ErrInvalidResetToken
	}

	userID, err := parseObjectID(data.UserID)
	if err != nil {
		return apperrors.ErrInvalidResetToken
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	_ = s.resetTokens.Consume(ctx, tokenHash)

	return s.userRepo.SetPassword(ctx, userID, hashedPassword)
}

// CheckEmail reports whether an email is already registered.
func (s *AuthService) CheckEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GoogleLoginURL builds the provider redirect URL for the given state nonce.
func (s *AuthService) GoogleLoginURL(state string) string {
	return s.google.AuthCodeURL(state)
}

// GoogleCallback completes the delegated login. The provider profile is
// resolved to a persistent local account: matched by linked identity first,
// then by email (linking on the way), otherwise a new traveler account is
// created. The session always carries the local user identity.
func (s *AuthService) GoogleCallback(ctx context.Context, code string) (*models.AuthResponse, error) {
	profile, err := s.google.Exchange(ctx, code)
	if err != nil {
		return nil, apperrors.ErrOAuthExchange
	}

	user, err := s.userRepo.FindByGoogleID(ctx, profile.ID)
	if err == nil {
		return s.authResponse(user)
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	// Same email registered locally: link the external identity to it
	user, err = s.userRepo.FindByEmail(ctx, profile.Email)
	if err == nil {
		if err := s.userRepo.LinkGoogleID(ctx, user.ID, profile.ID); err != nil {
			return nil, err
		}
		user.GoogleID = profile.ID
		return s.authResponse(user)
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	// First federated login: create the local account. No local credential is
	// set, so password login stays disabled until a reset.
	user = &models.User{
		Name:     profile.Name,
		Email:    profile.Email,
		Type:     models.TypeTraveler,
		GoogleID: profile.ID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

// authResponse issues a session token for a user.
func (s *AuthService) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, err := s.jwtManager.GenerateToken(user.ID.Hex(), user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}
