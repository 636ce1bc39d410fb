package service

import (
	"context"
	"io"
	"testing"
	"time"

	"esportconnect/auth/storage"
	"esportconnect/auth/users"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	users   map[string]users.User
	session []byte
}

var _ storage.AuthStorage = (*fakeStorage)(nil)

func newFakeStorage(seeded ...users.User) *fakeStorage {
	f := fakeStorage{
		users: make(map[string]users.User),
	}
	for _, u := range seeded {
		f.users[u.Email+"|"+string(u.Role)] = u
	}
	return &f
}

func (f *fakeStorage) GetUserByEmailAndRole(_ context.Context, email string, role users.Role) (users.User, error) {
	u, ok := f.users[email+"|"+string(role)]
	if !ok {
		return users.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (f *fakeStorage) SaveSession(_ context.Context, payload []byte) error {
	f.session = payload
	return nil
}

func (f *fakeStorage) LoadSession(_ context.Context) ([]byte, error) {
	if f.session == nil {
		return nil, storage.ErrNoSession
	}
	return f.session, nil
}

func (f *fakeStorage) ClearSession(_ context.Context) error {
	f.session = nil
	return nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testConfig() Config {
	return Config{
		Namespace:  "test_user",
		Token:      "test-secret",
		Expiration: "1h",
		Rules: []Rule{
			{
				Name:   "create job postings",
				Path:   "^/jobs/new",
				Method: []string{"*"},
				Allow:  []string{"recruiter"},
				Order:  1,
			},
		},
	}
}

func seededRecruiter() users.User {
	return users.User{
		ID:        uuid.New(),
		Username:  "ESportsRecruiter",
		Email:     "recruiter@esports.com",
		Role:      users.RoleRecruiter,
		Avatar:    users.RoleRecruiter.DefaultAvatar(),
		CreatedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLoginSeededIdentity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	recruiter := seededRecruiter()
	st := newFakeStorage(recruiter)
	svc, err := New(ctx, testConfig(), st, testLogger())
	require.NoError(t, err)

	got, err := svc.Login(ctx, "recruiter@esports.com", "whatever", users.RoleRecruiter)
	require.NoError(t, err)
	require.Equal(t, recruiter, got)

	current, ok := svc.CurrentUser()
	require.True(t, ok)
	require.Equal(t, recruiter, current)
	require.NotNil(t, st.session, "login must persist the session")
}

func TestLoginSynthesizesUnknownIdentity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, err := New(ctx, testConfig(), newFakeStorage(), testLogger())
	require.NoError(t, err)

	got, err := svc.Login(ctx, "new@example.com", "any-password-at-all", users.RoleRecruiter)
	require.NoError(t, err)
	require.Equal(t, "new", got.Username, "username is the local part of the email")
	require.Equal(t, "new@example.com", got.Email)
	require.Equal(t, users.RoleRecruiter, got.Role)
	require.Equal(t, users.RoleRecruiter.DefaultAvatar(), got.Avatar)
	require.False(t, got.IsZero())
}

func TestLoginRoleMismatchSynthesizes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	recruiter := seededRecruiter()
	svc, err := New(ctx, testConfig(), newFakeStorage(recruiter), testLogger())
	require.NoError(t, err)

	// same email, different role: the seeded identity must not leak
	got, err := svc.Login(ctx, recruiter.Email, "pw", users.RolePlayer)
	require.NoError(t, err)
	require.NotEqual(t, recruiter.ID, got.ID)
	require.Equal(t, users.RolePlayer, got.Role)
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, err := New(ctx, testConfig(), newFakeStorage(), testLogger())
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterForm{})
	require.ErrorIs(t, err, ErrMissingUsername)
	require.ErrorIs(t, err, ErrMissingEmail)
	require.ErrorIs(t, err, ErrMissingPassword)
	require.ErrorIs(t, err, ErrMissingRole)

	_, ok := svc.CurrentUser()
	require.False(t, ok, "failed registration must not authenticate")
}

func TestRegisterAlwaysSynthesizes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	recruiter := seededRecruiter()
	svc, err := New(ctx, testConfig(), newFakeStorage(recruiter), testLogger())
	require.NoError(t, err)

	got, err := svc.Register(ctx, RegisterForm{
		Username: "AnotherRecruiter",
		Email:    recruiter.Email,
		Password: "pw",
		Role:     users.RoleRecruiter,
		Company:  "Team Liquid",
		Position: "Head of Talent",
	})
	require.NoError(t, err)
	require.NotEqual(t, recruiter.ID, got.ID)
	require.Equal(t, "AnotherRecruiter", got.Username)
}

func TestLogoutIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newFakeStorage()
	svc, err := New(ctx, testConfig(), st, testLogger())
	require.NoError(t, err)

	_, err = svc.Login(ctx, "someone@example.com", "pw", users.RolePlayer)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	_, ok := svc.CurrentUser()
	require.False(t, ok)
	require.Nil(t, st.session)

	require.NoError(t, svc.Logout(ctx))
}

func TestRestorePersistedSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newFakeStorage()
	first, err := New(ctx, testConfig(), st, testLogger())
	require.NoError(t, err)
	logged, err := first.Login(ctx, "pro@gaming.com", "pw", users.RolePlayer)
	require.NoError(t, err)

	second, err := New(ctx, testConfig(), st, testLogger())
	require.NoError(t, err)
	current, ok := second.CurrentUser()
	require.True(t, ok)
	require.Equal(t, logged.ID, current.ID)
	require.Equal(t, logged.Username, current.Username)
}

func TestRestoreMalformedPayload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newFakeStorage()
	st.session = []byte("{not json")

	svc, err := New(ctx, testConfig(), st, testLogger())
	require.NoError(t, err, "a broken record must not fail startup")
	_, ok := svc.CurrentUser()
	require.False(t, ok)
}

func TestRestoreRejectsUnknownRole(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newFakeStorage()
	st.session = []byte(`{"id":"` + uuid.NewString() + `","username":"x","email":"x@x.com","role":"superuser","createdAt":"2024-01-01T00:00:00Z"}`)

	svc, err := New(ctx, testConfig(), st, testLogger())
	require.NoError(t, err)
	_, ok := svc.CurrentUser()
	require.False(t, ok)
}

func TestAuthGuardsRuleRoutes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, err := New(ctx, testConfig(), newFakeStorage(), testLogger())
	require.NoError(t, err)

	// guest
	_, err = svc.Auth(ctx, "", "GET", "/jobs/new")
	require.ErrorIs(t, err, ErrForbidden)

	// player
	player, err := svc.Login(ctx, "player@example.com", "pw", users.RolePlayer)
	require.NoError(t, err)
	cookie, err := svc.GenerateJWTCookie(player.ID, "localhost")
	require.NoError(t, err)
	_, err = svc.Auth(ctx, cookie.Value, "GET", "/jobs/new")
	require.ErrorIs(t, err, ErrForbidden)

	// recruiter
	recruiter, err := svc.Login(ctx, "recruiter@example.com", "pw", users.RoleRecruiter)
	require.NoError(t, err)
	cookie, err = svc.GenerateJWTCookie(recruiter.ID, "localhost")
	require.NoError(t, err)
	got, err := svc.Auth(ctx, cookie.Value, "POST", "/jobs/new")
	require.NoError(t, err)
	require.Equal(t, recruiter.ID, got.ID)
}

func TestAuthStaleTokenIsGuest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, err := New(ctx, testConfig(), newFakeStorage(), testLogger())
	require.NoError(t, err)

	old, err := svc.Login(ctx, "first@example.com", "pw", users.RolePlayer)
	require.NoError(t, err)
	cookie, err := svc.GenerateJWTCookie(old.ID, "localhost")
	require.NoError(t, err)

	// a second login replaces the single live session
	_, err = svc.Login(ctx, "second@example.com", "pw", users.RoleRecruiter)
	require.NoError(t, err)

	_, err = svc.Auth(ctx, cookie.Value, "GET", "/jobs/new")
	require.ErrorIs(t, err, ErrForbidden, "stale token must resolve to guest")
}

func TestSessionRecordRoundTrip(t *testing.T) {
	t.Parallel()
	u := seededRecruiter()
	payload, err := encodeRecord(u)
	require.NoError(t, err)
	got, err := decodeRecord(payload)
	require.NoError(t, err)
	require.Equal(t, u, got)
}
