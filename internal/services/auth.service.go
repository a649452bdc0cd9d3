package services

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/zha7nea/callcenter/internal/auth"
	"github.com/zha7nea/callcenter/internal/model"
	"github.com/zha7nea/callcenter/internal/repository"
	"github.com/zha7nea/callcenter/pkg/logger"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

type TokenIssuer interface {
	Issue(username string, role model.Role) (string, error)
	Verify(token string) (*model.Identity, error)
	TTL() time.Duration
}

type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthService struct {
	userRepo UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	denylist TokenDenylist
}

// NewAuthService builds the service. denylist may be nil, in which case
// tokens stay valid until they expire and Logout is unavailable.
func NewAuthService(userRepo UserRepository, hasher PasswordHasher, tokens TokenIssuer, denylist TokenDenylist) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		denylist: denylist,
	}
}

func (s *AuthService) Register(ctx context.Context, p model.Credentials) (*model.User, error) {
	if err := p.ValidateRegistration(); err != nil {
		return nil, err
	}
	u, err := s.createUser(ctx, strings.TrimSpace(*p.Username), *p.Password, model.RoleUser)
	if err != nil {
		return nil, err
	}
	logger.Info("user registered", "username", u.Username)
	return u, nil
}

// SeedAdmin creates an admin account. A taken username is reported as
// ErrUsernameTaken.
func (s *AuthService) SeedAdmin(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, model.MissingFields("username", "password")
	}
	return s.createUser(ctx, username, password, model.RoleAdmin)
}

func (s *AuthService) createUser(ctx context.Context, username, password string, role model.Role) (*model.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	u, err := s.userRepo.Create(ctx, &model.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, p model.Credentials) (*model.AccessToken, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	// bcrypt ignores bytes past the limit, so a longer input never matches
	if len(*p.Password) > model.MaxPasswordBytes {
		return nil, ErrInvalidCredentials
	}
	u, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(*p.Username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "load user")
	}
	if err := s.hasher.Verify(u.PasswordHash, *p.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "verify password")
	}

	token, err := s.tokens.Issue(u.Username, u.Role)
	if err != nil {
		return nil, errors.Wrap(err, "issue token")
	}
	return &model.AccessToken{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.tokens.TTL() / time.Second),
	}, nil
}

// Authenticate verifies a bearer token and checks it against the denylist.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*model.Identity, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	id, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if s.denylist != nil {
		revoked, err := s.denylist.IsRevoked(ctx, id.TokenID)
		if err != nil {
			return nil, errors.Wrap(err, "check token denylist")
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}
	return id, nil
}

func (s *AuthService) LogoutEnabled() bool {
	return s.denylist != nil
}

// Logout revokes the token the identity was verified from.
func (s *AuthService) Logout(ctx context.Context, id *model.Identity) error {
	if s.denylist == nil {
		return errors.New("token denylist is not configured")
	}
	if err := s.denylist.Revoke(ctx, id.TokenID, id.ExpiresAt); err != nil {
		return errors.Wrap(err, "revoke token")
	}
	logger.Info("user logged out", "username", id.Username)
	return nil
}
