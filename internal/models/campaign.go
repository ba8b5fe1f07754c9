package models

import "time"

// Статусы модерации кампании. Храним строками — так они лежат в БД
// и так их видит админ в дашборде.
const (
	StatusPending        = "Pending"
	StatusApproved       = "Approved"
	StatusRejected       = "Rejected"
	StatusPotentialFraud = "Potential Fraud"
)

// Campaign — заявка на краудфандинговую кампанию.
// trust_score считается один раз при подаче и больше не пересчитывается.
type Campaign struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Amount      int64      `json:"amount"`
	Address     string     `json:"address"`
	TrustScore  int        `json:"trust_score"`
	Status      string     `json:"status"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// CampaignFilter — фильтр списка для админки.
// Пустые поля не фильтруют (пустой фильтр = все кампании).
type CampaignFilter struct {
	Name   string // подстрока, без учёта регистра
	Status string // точное совпадение
}

// CampaignStats — агрегаты для панели дашборда.
type CampaignStats struct {
	Total    int     `json:"total"`
	Approved int     `json:"approved"`
	Rejected int     `json:"rejected"`
	Pending  int     `json:"pending"`
	AvgScore float64 `json:"avg_score"` // средний trust_score по ВСЕМ кампаниям, 2 знака
}
