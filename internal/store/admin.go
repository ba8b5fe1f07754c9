package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"CrowdCheck/internal/models"
)

// AdminStore — постгрес-реализация AdminStoreI.
type AdminStore struct {
	db *sql.DB
}

func NewAdminStore(db *sql.DB) *AdminStore {
	return &AdminStore{db: db}
}

func (s *AdminStore) GetByLogin(ctx context.Context, login string) (*models.Administrator, error) {
	var a models.Administrator
	err := s.db.QueryRowContext(ctx,
		`SELECT id, login, password_hash FROM administrators WHERE login = $1`, login).
		Scan(&a.ID, &a.Login, &a.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: get administrator: %w", err)
	}
	return &a, nil
}

// EnsureAdmin — идемпотентный бутстрап единственной админской учётки.
// Повторный старт процесса с теми же (или другими) кредами ничего не меняет.
func (s *AdminStore) EnsureAdmin(ctx context.Context, login, passwordHash string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO administrators (login, password_hash)
		 VALUES ($1, $2)
		 ON CONFLICT (login) DO NOTHING`,
		login, passwordHash)
	if err != nil {
		return fmt.Errorf("store: ensure administrator: %w", err)
	}
	return nil
}
