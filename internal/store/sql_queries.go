package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-session-auth/models"
)

const usersTable = "users"

var userColumns = []string{"id", "name", "email", "role", "password_hash", "created_at"}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.Role.String(), user.PasswordHash, user.CreatedAt).
		ToSql()
}

// buildSelectUserByEmailQuery matches email case-insensitively, like the
// unique index on users.
func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Expr("lower(email) = lower(?)", email)).
		Limit(1).
		ToSql()
}
