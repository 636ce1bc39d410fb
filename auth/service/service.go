package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"esportconnect/auth/storage"
	"esportconnect/auth/users"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrForbidden     = errors.New("access denied")
	ErrNotAuthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is reserved for a backend that actually
	// verifies passwords. The demo backend never returns it.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingUsername = errors.New("username is required")
	ErrMissingEmail    = errors.New("email is required")
	ErrMissingPassword = errors.New("password is required")
	ErrMissingRole     = errors.New("role is required")
)

// Service is the session store: it owns the current authenticated
// identity and persists it across restarts. At most one identity is
// current at a time.
type Service struct {
	storage storage.AuthStorage
	cfg     Config
	log     *logrus.Entry

	mu      sync.RWMutex
	current users.User
}

// New builds the store and restores a previously persisted session, if
// any. A malformed persisted record is treated as no session.
func New(ctx context.Context, cfg Config, st storage.AuthStorage, log *logrus.Logger) (*Service, error) {
	s := Service{
		cfg:     cfg,
		storage: st,
		log:     log.WithField("module", "auth"),
	}
	s.restore(ctx)
	return &s, nil
}

// Login resolves an identity for the given email and role and makes it
// current. The password is accepted but not verified against anything:
// when no seeded identity matches, a fresh one is synthesized, so login
// cannot fail on credentials.
func (s *Service) Login(ctx context.Context, email, password string, role users.Role) (users.User, error) {
	_ = password

	u, err := s.storage.GetUserByEmailAndRole(ctx, email, role)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		u = synthesize(email, role)
	case err != nil:
		return users.User{}, err
	}
	if err := s.setCurrent(ctx, u); err != nil {
		return users.User{}, err
	}
	return u, nil
}

// RegisterForm carries the sign-up fields. Company and position are
// accepted for recruiters, but the identity record has no field for
// them and they are dropped.
type RegisterForm struct {
	Username string
	Email    string
	Password string
	Role     users.Role
	Company  string
	Position string
}

func (f RegisterForm) Validate() error {
	var err error
	if f.Username == "" {
		err = errors.Join(err, ErrMissingUsername)
	}
	if f.Email == "" {
		err = errors.Join(err, ErrMissingEmail)
	}
	if f.Password == "" {
		err = errors.Join(err, ErrMissingPassword)
	}
	if f.Role == "" {
		err = errors.Join(err, ErrMissingRole)
	} else if _, rerr := users.ParseRole(string(f.Role)); rerr != nil {
		err = errors.Join(err, rerr)
	}
	return err
}

// Register always synthesizes a new identity and makes it current. It
// never looks up seeded identities.
func (s *Service) Register(ctx context.Context, form RegisterForm) (users.User, error) {
	if err := form.Validate(); err != nil {
		return users.User{}, err
	}
	u := users.User{
		ID:        uuid.New(),
		Username:  form.Username,
		Email:     form.Email,
		Role:      form.Role,
		Avatar:    form.Role.DefaultAvatar(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.setCurrent(ctx, u); err != nil {
		return users.User{}, err
	}
	return u, nil
}

// Logout clears the current identity and removes the persisted record.
// It is idempotent.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.storage.ClearSession(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.current = users.User{}
	s.mu.Unlock()
	return nil
}

// CurrentUser returns the current identity, if one is authenticated.
func (s *Service) CurrentUser() (users.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, !s.current.IsZero()
}

// restore runs once at startup. Any problem with the persisted record,
// malformed payload included, leaves the store unauthenticated.
func (s *Service) restore(ctx context.Context) {
	payload, err := s.storage.LoadSession(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNoSession) {
			s.log.WithError(err).Warn("cannot read persisted session")
		}
		return
	}
	u, err := decodeRecord(payload)
	if err != nil {
		s.log.WithError(err).Warn("malformed session record, starting unauthenticated")
		return
	}
	s.mu.Lock()
	s.current = u
	s.mu.Unlock()
	s.log.WithField("user", u.Username).Info("session restored")
}

func (s *Service) setCurrent(ctx context.Context, u users.User) error {
	payload, err := encodeRecord(u)
	if err != nil {
		return err
	}
	if err := s.storage.SaveSession(ctx, payload); err != nil {
		return err
	}
	s.mu.Lock()
	s.current = u
	s.mu.Unlock()
	return nil
}

// synthesize builds a demo identity for an email without a seeded match.
// The username is the local part of the email.
func synthesize(email string, role users.Role) users.User {
	username := email
	if at := strings.Index(email, "@"); at >= 0 {
		username = email[:at]
	}
	return users.User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Role:      role,
		Avatar:    role.DefaultAvatar(),
		CreatedAt: time.Now().UTC(),
	}
}

// GenerateJWTCookie issues the session cookie for the web layer.
func (s *Service) GenerateJWTCookie(userID uuid.UUID, host string) (*fiber.Cookie, error) {
	expiresIn, err := time.ParseDuration(s.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	expirationTime := time.Now().Add(expiresIn)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: expirationTime.Unix(),
		IssuedAt:  time.Now().Unix(),
		Subject:   userID.String(),
	})
	tokenString, err := token.SignedString([]byte(s.cfg.Token))
	if err != nil {
		return nil, err
	}
	return &fiber.Cookie{
		Name:     "token",
		Value:    tokenString,
		Path:     "/",
		Domain:   host,
		Expires:  expirationTime,
		HTTPOnly: true,
	}, nil
}

// Auth resolves the request's identity from the session cookie and
// checks it against the configured route rules. An empty or stale
// cookie resolves to the guest identity.
func (s *Service) Auth(ctx context.Context, cookie string, method string, url string) (users.User, error) {
	user, err := s.userFromToken(cookie)
	if err != nil {
		return users.User{}, ErrNotAuthorized
	}

	for _, rule := range s.cfg.Rules {
		r, err := regexp.Compile(rule.Path)
		if err != nil {
			return users.User{}, err
		}
		if !r.MatchString(url) {
			continue
		}
		for _, ruleMethod := range rule.Method {
			if ruleMethod != "*" && ruleMethod != method {
				continue
			}
			for _, role := range rule.Allow {
				if role == "*" || role == string(user.Role) {
					return user, nil
				}
			}
			return users.User{}, ErrForbidden
		}
	}
	return users.User{}, ErrForbidden
}

// userFromToken maps a cookie back to the current identity. The token
// subject must match the store's current identity, there is never more
// than one live session.
func (s *Service) userFromToken(cookie string) (users.User, error) {
	if cookie == "" {
		return users.User{}, nil
	}
	token, err := jwt.ParseWithClaims(cookie, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Token), nil
	})
	if err != nil || !token.Valid {
		return users.User{}, nil
	}
	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok {
		return users.User{}, errors.New("bad token claims")
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return users.User{}, err
	}
	current, ok := s.CurrentUser()
	if !ok || current.ID != id {
		return users.User{}, nil
	}
	return current, nil
}
