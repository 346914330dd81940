package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/port"
)

const userColumns = `id, name, email, password, role, created_at, updated_at`

type userRepository struct {
	pool *pgxpool.Pool
}

func NewUser(pool *pgxpool.Pool) port.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM users ORDER BY id`, userColumns))
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanUser: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return users, nil
}

func (r *userRepository) GetUser(ctx context.Context, userID int64) (domain.User, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns), userID)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.NotFoundError{Entity: domain.EntityUser, ID: userID}
		}
		return domain.User{}, fmt.Errorf("scanUser: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns), email)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.NotFoundError{Entity: domain.EntityUser}
		}
		return domain.User{}, fmt.Errorf("scanUser: %w", err)
	}

	return user, nil
}

func (r *userRepository) InsertUser(ctx context.Context, user domain.User) (domain.User, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`INSERT INTO users (name, email, password, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING %s`, userColumns),
		user.Name, user.Email, user.PasswordHash, user.Role,
	)

	inserted, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("scanUser: %w", err)
	}

	return inserted, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user domain.User) (domain.User, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`UPDATE users
		 SET name = $2, email = $3, password = $4, role = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING %s`, userColumns),
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role,
	)

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.NotFoundError{Entity: domain.EntityUser, ID: user.ID}
		}
		return domain.User{}, fmt.Errorf("scanUser: %w", err)
	}

	return updated, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return domain.NotFoundError{Entity: domain.EntityUser, ID: userID}
	}

	return nil
}

func (r *userRepository) UpsertUserByEmail(ctx context.Context, user domain.User) (domain.User, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`INSERT INTO users (name, email, password, role)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO UPDATE
		 SET name = EXCLUDED.name, password = EXCLUDED.password, role = EXCLUDED.role, updated_at = now()
		 RETURNING %s`, userColumns),
		user.Name, user.Email, user.PasswordHash, user.Role,
	)

	upserted, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("scanUser: %w", err)
	}

	return upserted, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var user domain.User

	if err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role,
		&user.CreatedAt, &user.UpdatedAt,
	); err != nil {
		return domain.User{}, err
	}

	return user, nil
}
