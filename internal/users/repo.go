package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type User struct {
	Username  string `json:"username"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
}

// Repo is a read-only directory of registered users. Account writes
// happen in the registration service, never here.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// FindByUsername returns nil, nil when the user is unknown.
func (r *Repo) FindByUsername(ctx context.Context, username string) (*User, error) {
	const q = `
select username, first_name, last_name, email
from users
where username = $1;
`
	var u User
	err := r.db.QueryRow(ctx, q, username).Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
