package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"esportconnect/auth/storage"
	"esportconnect/auth/users"
	"esportconnect/gen/model"
	"esportconnect/gen/table"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sirupsen/logrus"
)

// Storage keeps seeded identities and the persisted session record in a
// local sqlite file.
type Storage struct {
	db        *sql.DB
	namespace string
	log       *logrus.Entry
}

var _ storage.AuthStorage = (*Storage)(nil)

func New(db *sql.DB, namespace string, log *logrus.Logger) *Storage {
	return &Storage{
		db:        db,
		namespace: namespace,
		log:       log.WithField("module", "auth-storage"),
	}
}

func (s *Storage) GetUserByEmailAndRole(ctx context.Context, email string, role users.Role) (users.User, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		WHERE(table.Users.Email.EQ(sqlite.String(email)).
			AND(table.Users.Role.EQ(sqlite.String(string(role))))).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, storage.ErrNotFound
		}
		return users.User{}, err
	}
	return convertUser(dbUser)
}

func (s *Storage) SaveSession(ctx context.Context, payload []byte) error {
	_, err := table.Session.
		DELETE().
		WHERE(table.Session.Namespace.EQ(sqlite.String(s.namespace))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	rec := model.Session{
		Namespace: s.namespace,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC(),
	}
	_, err = table.Session.
		INSERT(table.Session.AllColumns).
		MODEL(rec).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	s.log.Debug("session record saved")
	return nil
}

func (s *Storage) LoadSession(ctx context.Context) ([]byte, error) {
	var rec model.Session
	err := table.Session.
		SELECT(table.Session.AllColumns).
		FROM(table.Session).
		WHERE(table.Session.Namespace.EQ(sqlite.String(s.namespace))).
		QueryContext(ctx, s.db, &rec)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNoSession
		}
		return nil, err
	}
	return []byte(rec.Payload), nil
}

func (s *Storage) ClearSession(ctx context.Context) error {
	_, err := table.Session.
		DELETE().
		WHERE(table.Session.Namespace.EQ(sqlite.String(s.namespace))).
		ExecContext(ctx, s.db)
	return err
}
