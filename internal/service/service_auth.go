package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Harry2k21/house-finder-v1/internal/config"
	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/internal/store"
	"github.com/Harry2k21/house-finder-v1/internal/utils"
	"github.com/Harry2k21/house-finder-v1/models"
)

const minPasswordLength = 6

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, and the JWT session token
// lifecycle, using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that every field is present, that the two password fields
// match, and that the password meets the minimum length, then hashes the
// password with bcrypt and delegates persistence to the UserRepository.
//
// Taken usernames and emails are pre-checked to fail fast, but the insert
// itself is the real uniqueness check, so two concurrent registrations of the
// same name cannot both succeed. The losing insert surfaces as
// store.ErrUsernameAlreadyExists or store.ErrEmailAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Email == "" || request.Password == "" || request.ConfirmPassword == "" {
		log.Error().Str("username", request.Username).Msg("incomplete registration data")
		return models.User{}, ErrInvalidDataProvided
	}
	if request.Password != request.ConfirmPassword {
		return models.User{}, ErrPasswordsDoNotMatch
	}
	if len(request.Password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	// Fail fast on a taken identity before the bcrypt work. The insert below
	// stays the authority: a registration racing past this check still loses
	// on the unique constraint.
	if taken, err := a.userRepository.UsernameExists(ctx, request.Username); err != nil {
		log.Err(err).Str("username", request.Username).Msg("username lookup failed")
		return models.User{}, fmt.Errorf("username lookup failed: %w", err)
	} else if taken {
		return models.User{}, store.ErrUsernameAlreadyExists
	}
	if taken, err := a.userRepository.EmailExists(ctx, request.Email); err != nil {
		log.Err(err).Str("email", request.Email).Msg("email lookup failed")
		return models.User{}, fmt.Errorf("email lookup failed: %w", err)
	} else if taken {
		return models.User{}, store.ErrEmailAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by username and compares the stored bcrypt hash
// against the supplied password. Both an unknown username and a wrong
// password collapse into ErrInvalidCredentials so the response does not leak
// which one was at fault.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Username == "" || request.Password == "" {
		log.Error().Str("username", request.Username).Msg("incomplete login data")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", request.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(request.Password)); err != nil {
		log.Error().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
