package application

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/sirupsen/logrus"

	"contacts-api/internal/domain/entity"
	"contacts-api/internal/domain/repository"
	"contacts-api/pkg/helpers"
	"contacts-api/pkg/mailer"
)

// Error messages are part of the API contract: login deliberately
// distinguishes unknown email, unconfirmed email and wrong password.
var (
	ErrEmailTaken          = errors.New("account already exists")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrEmailNotConfirmed   = errors.New("email not confirmed")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrVerificationFailed  = errors.New("verification error")
	ErrInvalidCredentials  = errors.New("could not validate credentials")
	ErrInvalidEmailToken   = errors.New("invalid token for email verification")
)

// Confirmation outcomes; confirming twice is a no-op with its own message.
const (
	MsgEmailConfirmed   = "Email confirmed"
	MsgAlreadyConfirmed = "Your email is already confirmed"
)

// AvatarLookup resolves an avatar URL for an email. Failures are
// swallowed by callers; signup never depends on the avatar service.
type AvatarLookup interface {
	ImageURL(ctx context.Context, email string) (string, error)
}

// EmailPublisher enqueues email jobs for the background worker.
type EmailPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService orchestrates the account lifecycle:
// unregistered -> registered (unconfirmed) -> confirmed.
type AuthService struct {
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
	Avatars AvatarLookup
	Pub     EmailPublisher
	Logger  *logrus.Logger
	BaseURL string
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, avatars AvatarLookup, pub EmailPublisher, logger *logrus.Logger, baseURL string) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Avatars: avatars, Pub: pub, Logger: logger, BaseURL: baseURL}
}

// Signup registers a new unconfirmed account, hashes the password,
// resolves a best-effort avatar and enqueues the confirmation email.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*entity.User, error) {
	existing, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	avatar := ""
	if s.Avatars != nil {
		if url, aErr := s.Avatars.ImageURL(ctx, email); aErr == nil {
			avatar = url
		} else if s.Logger != nil {
			s.Logger.WithError(aErr).WithField("email", email).Debug("avatar lookup failed")
		}
	}

	u := &entity.User{Username: username, Email: email, Password: hash, AvatarURL: avatar}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.sendConfirmationEmail(ctx, u)
	return u, nil
}

// sendConfirmationEmail enqueues the confirmation mail. Enqueue failures
// are logged and swallowed so signup stays available without the broker.
func (s *AuthService) sendConfirmationEmail(ctx context.Context, u *entity.User) {
	if s.Pub == nil {
		return
	}
	token, _, err := s.JWT.GenerateEmailToken(u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Warn("email token generation failed")
		}
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateConfirmEmail,
		Data: map[string]string{
			"Username":   u.Username,
			"ConfirmURL": s.BaseURL + "/api/auth/confirmed_email/" + token,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("confirmation email enqueue failed")
	}
}

// Login verifies credentials and confirmation status, then issues a
// token pair and stores the refresh token as the single active one.
// The confirmation check runs before the password check, so an
// unconfirmed account always fails with ErrEmailNotConfirmed.
func (s *AuthService) Login(ctx context.Context, email, password string) (TokenPair, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return TokenPair{}, err
	}
	if u == nil {
		return TokenPair{}, ErrInvalidEmail
	}
	if !u.Confirmed {
		return TokenPair{}, ErrEmailNotConfirmed
	}
	if !helpers.VerifyPassword(u.Password, password) {
		return TokenPair{}, ErrInvalidPassword
	}
	return s.issuePair(ctx, u)
}

func (s *AuthService) issuePair(ctx context.Context, u *entity.User) (TokenPair, error) {
	access, _, err := s.JWT.GenerateAccessToken(u.Email)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, _, err := s.JWT.GenerateRefreshToken(u.Email)
	if err != nil {
		return TokenPair{}, err
	}
	if err := s.Users.UpdateRefreshToken(ctx, u.ID, refresh); err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh rotates the token pair. A presented token that does not match
// the stored one revokes the stored token before failing, so a stolen
// refresh token is single-use at best.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	email, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return TokenPair{}, err
	}
	if u == nil {
		return TokenPair{}, ErrInvalidRefreshToken
	}
	if subtle.ConstantTimeCompare([]byte(u.RefreshToken), []byte(refreshToken)) != 1 {
		if rErr := s.Users.UpdateRefreshToken(ctx, u.ID, ""); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("user_id", u.ID).Error("refresh token revocation failed")
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}
	return s.issuePair(ctx, u)
}

// ConfirmEmail flips the confirmed flag for the user named by the email
// token. Confirming twice is a no-op with a distinct message.
func (s *AuthService) ConfirmEmail(ctx context.Context, token string) (string, error) {
	email, err := s.JWT.ParseEmailToken(token)
	if err != nil {
		return "", ErrInvalidEmailToken
	}
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrVerificationFailed
	}
	if u.Confirmed {
		return MsgAlreadyConfirmed, nil
	}
	if err := s.Users.ConfirmEmail(ctx, email); err != nil {
		return "", err
	}
	return MsgEmailConfirmed, nil
}

// Logout revokes the stored refresh token.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	return s.Users.UpdateRefreshToken(ctx, userID, "")
}

// GetCurrentUser resolves an access token to its user; any failure maps
// to the same credentials error.
func (s *AuthService) GetCurrentUser(ctx context.Context, accessToken string) (*entity.User, error) {
	email, err := s.JWT.ParseAccessToken(accessToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// UpdateAvatar sets the user's avatar URL.
func (s *AuthService) UpdateAvatar(ctx context.Context, email, url string) (*entity.User, error) {
	u, err := s.Users.UpdateAvatarURL(ctx, email, url)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidEmail
	}
	return u, nil
}
