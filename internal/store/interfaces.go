package store

import (
	"context"

	"CrowdCheck/internal/models"
)

// CampaignStoreI — операции над кампаниями.
// Интерфейс нужен, чтобы хендлеры тестировались без живого постгреса.
type CampaignStoreI interface {
	Insert(ctx context.Context, c *models.Campaign) (int64, error)
	List(ctx context.Context, f models.CampaignFilter) ([]models.Campaign, error)
	Aggregate(ctx context.Context) (models.CampaignStats, error)
	// SetStatus возвращает false, если кампании с таким id нет.
	// Это не ошибка: решение «что делать с неизвестным id» за вызывающим.
	SetStatus(ctx context.Context, id int64, status string) (bool, error)
}

// AdminStoreI — операции над учётками администраторов.
type AdminStoreI interface {
	// GetByLogin возвращает (nil, nil), если администратора нет.
	GetByLogin(ctx context.Context, login string) (*models.Administrator, error)
	// EnsureAdmin идемпотентно создаёт администратора, если его ещё нет.
	EnsureAdmin(ctx context.Context, login, passwordHash string) error
}
