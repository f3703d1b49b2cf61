package postgres

import (
	"context"
	"errors"
	"fmt"

	"tasko/internal/models/user"
	"tasko/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepo struct {
	storage *Storage
}

func NewUserRepo(s *Storage) *UserRepo {
	return &UserRepo{storage: s}
}

func (r *UserRepo) Create(ctx context.Context, u *user.User) (string, error) {
	id := uuid.NewString()

	query := `INSERT INTO users (id, email, password) VALUES ($1, $2, $3)`
	if _, err := r.storage.pool.Exec(ctx, query, id, u.Email, u.Password); err != nil {
		return "", fmt.Errorf("inserción de usuario: %w", err)
	}
	return id, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	query := `SELECT id, email, password FROM users WHERE id = $1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT id, email, password FROM users WHERE email = $1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *UserRepo) Update(ctx context.Context, u *user.User) error {
	query := `UPDATE users SET email = $2, password = $3 WHERE id = $1`

	tag, err := r.storage.pool.Exec(ctx, query, u.ID, u.Email, u.Password)
	if err != nil {
		return fmt.Errorf("actualización de usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminación de usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepo) GetAll(ctx context.Context) ([]*user.User, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT id, email, password FROM users ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("consulta de usuarios: %w", err)
	}
	defer rows.Close()

	res := []*user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lectura de usuarios: %w", err)
	}
	return res, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Email, &u.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("lectura de usuario: %w", err)
	}
	return &u, nil
}
