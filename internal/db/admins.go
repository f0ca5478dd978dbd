package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/calaxer013-byte/LlaqtaShield/internal/models"
	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"
)

// CreateAdmin registers a reviewer account. The password is stored as a
// bcrypt hash, never in clear.
func (sdb *SharedDB) CreateAdmin(ctx context.Context, admin *models.Admin, passwd string) error {
	var exists bool
	err := pgxscan.Get(ctx, sdb.db, &exists,
		"SELECT exists(SELECT 1 FROM usuarios_admin WHERE username = $1)",
		admin.Username)
	if err != nil {
		return err
	}
	if exists {
		return ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passwd), sdb.bcryptCost)
	if err != nil {
		return err
	}

	return execTx(ctx, sdb.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, _ := psql.
			Insert("usuarios_admin").
			Columns("username", "passwd_hash").
			Values(admin.Username, hash).
			Suffix("RETURNING id").
			ToSql()

		row := tx.QueryRow(ctx, sql, args...)
		return row.Scan(&admin.ID)
	})
}

// VerifyAdmin checks a credential pair against usuarios_admin. Unknown
// usernames and wrong passwords both come back as ErrBadCredentials.
func (sdb *SharedDB) VerifyAdmin(ctx context.Context, username, passwd string) error {
	sql, args, _ := psql.
		Select("passwd_hash").
		From("usuarios_admin").
		Where(sq.Eq{"username": username}).
		ToSql()

	var hash string
	err := pgxscan.Get(ctx, sdb.db, &hash, sql, args...)
	if pgxscan.NotFound(err) {
		return ErrBadCredentials
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(passwd)) != nil {
		return ErrBadCredentials
	}
	return nil
}
