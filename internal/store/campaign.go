package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strconv"

	"CrowdCheck/internal/models"
)

// CampaignStore — постгрес-реализация CampaignStoreI.
type CampaignStore struct {
	db *sql.DB
}

func NewCampaignStore(db *sql.DB) *CampaignStore {
	return &CampaignStore{db: db}
}

func (s *CampaignStore) Insert(ctx context.Context, c *models.Campaign) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO campaigns (name, description, amount, address, trust_score, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		c.Name, c.Description, c.Amount, c.Address, c.TrustScore, c.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("store: insert campaign: %w", err)
	}
	return id, nil
}

// List — выборка под дашборд. Имя матчится подстрокой без учёта регистра
// (ILIKE), статус — точным совпадением. Пустые поля фильтра не ограничивают.
func (s *CampaignStore) List(ctx context.Context, f models.CampaignFilter) ([]models.Campaign, error) {
	query := `SELECT id, name, description, amount, address, trust_score, status, created_at
		FROM campaigns`
	var (
		args  []any
		where string
	)
	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		where = ` WHERE name ILIKE $` + strconv.Itoa(len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		if where == "" {
			where = ` WHERE `
		} else {
			where += ` AND `
		}
		where += `status = $` + strconv.Itoa(len(args))
	}
	query += where + ` ORDER BY id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: list campaigns: %w", err)
	}
	defer rows.Close()

	var list []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.Amount, &c.Address,
			&c.TrustScore, &c.Status, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("store: scan campaign: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: rows: %w", err)
	}
	return list, nil
}

// Aggregate — счётчики по статусам и средний trust score по всем кампаниям.
// На пустой таблице всё по нулям.
func (s *CampaignStore) Aggregate(ctx context.Context) (models.CampaignStats, error) {
	var st models.CampaignStats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = $1),
		       COUNT(*) FILTER (WHERE status = $2),
		       COUNT(*) FILTER (WHERE status = $3),
		       COALESCE(AVG(trust_score), 0)
		FROM campaigns`,
		models.StatusApproved, models.StatusRejected, models.StatusPending,
	).Scan(&st.Total, &st.Approved, &st.Rejected, &st.Pending, &st.AvgScore)
	if err != nil {
		return models.CampaignStats{}, fmt.Errorf("store: aggregate: %w", err)
	}
	st.AvgScore = math.Round(st.AvgScore*100) / 100
	return st, nil
}

func (s *CampaignStore) SetStatus(ctx context.Context, id int64, status string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE campaigns SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return false, fmt.Errorf("store: set status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("store: rows affected: %w", err)
	}
	return n > 0, nil
}
