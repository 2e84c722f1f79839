// Package services holds the authenticator server's business logic.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/authshell/internal/auth"
	"github.com/dmitrijs2005/authshell/internal/common"
	"github.com/dmitrijs2005/authshell/internal/cryptox"
	"github.com/dmitrijs2005/authshell/internal/logging"
	"github.com/dmitrijs2005/authshell/internal/server/config"
	"github.com/dmitrijs2005/authshell/internal/server/models"
	"github.com/dmitrijs2005/authshell/internal/server/repositories/repomanager"
)

const saltSize = 32

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Session is what a successful login or registration hands back.
type Session struct {
	User *models.User
	TokenPair
}

type RegisterInput struct {
	UserName        string
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	logger                       logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewUserService wires the service to its repositories. db may be nil when
// m does not need a database handle.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		logger:                       logger.With("module", "users"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

func validateRegistration(in RegisterInput) error {
	if utf8.RuneCountInString(in.UserName) < common.MinUsernameLength {
		return common.ErrorUsernameTooShort
	}
	if in.Password == "" {
		return common.ErrorEmptyPassword
	}
	if in.Password != in.ConfirmPassword {
		return common.ErrorPasswordsMismatch
	}
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		return common.ErrorInvalidEmail
	}
	return nil
}

func (s *UserService) makeVerifier(password string, salt []byte) []byte {
	masterKey := cryptox.DeriveMasterKey([]byte(password), salt)
	defer common.WipeByteArray(masterKey)
	return cryptox.MakeVerifier(masterKey)
}

func (s *UserService) createUser(ctx context.Context, user *models.User, password string) (*models.User, error) {
	user.Salt = common.GenerateRandByteArray(saltSize)
	user.Verifier = s.makeVerifier(password, user.Salt)

	user, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// Register creates a regular account and signs it in.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	user, err := s.createUser(ctx, &models.User{
		UserName:  in.UserName,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      models.RoleUser,
	}, in.Password)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID, "username", user.UserName)

	pair, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, TokenPair: *pair}, nil
}

// EnsureUser creates user with password unless the username is taken.
func (s *UserService) EnsureUser(ctx context.Context, user *models.User, password string) error {
	_, err := s.createUser(ctx, user, password)
	if err != nil && !errors.Is(err, common.ErrorAlreadyExists) {
		return err
	}
	return nil
}

func (s *UserService) generateAccessToken(user *models.User) (string, error) {
	token, err := auth.GenerateToken(user.ID, user.UserName, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *UserService) generateRefreshToken() (string, error) {
	token, err := common.MakeRandHexString(32)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *UserService) checkVerifier(verifier []byte, verifierCandidate []byte) bool {
	return subtle.ConstantTimeCompare(verifier, verifierCandidate) == 1
}

// Login returns common.ErrorUnauthorized for unknown users and wrong
// passwords alike.
func (s *UserService) Login(ctx context.Context, userName, password string) (*Session, error) {

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	if !s.checkVerifier(user.Verifier, s.makeVerifier(password, user.Salt)) {
		return nil, common.ErrorUnauthorized
	}

	pair, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, TokenPair: *pair}, nil
}

// Logout revokes every refresh token of userID.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	if err := s.repomanager.RefreshTokens(s.db).DeleteByUser(ctx, userID); err != nil {
		s.logger.Error(ctx, "refresh token revocation failed", "user_id", userID, "error", err)
		return common.ErrorInternal
	}
	return nil
}

// ForgotPassword accepts any well-formed address. Unknown addresses are
// not disclosed to the caller.
func (s *UserService) ForgotPassword(ctx context.Context, email string) (bool, error) {
	if !strings.Contains(email, "@") {
		return false, common.ErrorInvalidEmail
	}

	user, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		s.logger.Info(ctx, "password reset requested", "user_id", user.ID)
	case errors.Is(err, common.ErrorNotFound):
		s.logger.Debug(ctx, "password reset for unknown address")
	default:
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return false, common.ErrorInternal
	}

	return true, nil
}

func (s *UserService) generateTokenPair(ctx context.Context, user *models.User) (*TokenPair, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refreshtoken, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}

	refreshTokenRepo := s.repomanager.RefreshTokens(s.db)
	err = refreshTokenRepo.Create(ctx, user.ID, refreshtoken, s.refreshTokenValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "refresh token store failed", "user_id", user.ID, "error", err)
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshtoken}, nil
}
