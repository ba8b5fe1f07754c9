package trust

import (
	"fmt"
	"strings"

	"CrowdCheck/internal/models"
)

// Фразы-маркеры мошенничества. Каждая найденная фраза снимает 15 баллов,
// повторы одной и той же фразы не считаются.
var suspiciousPhrases = []string{"urgent", "double money", "guaranteed return"}

// Score считает trust score заявки. Детерминированная функция без побочных
// эффектов: 100 минус штрафы, не ниже 0.
//   - сумма > 100000            → −30
//   - адрес пустой или < 10 симв → −20
//   - каждая подозрительная фраза в описании (без учёта регистра) → −15
func Score(amount int64, address, description string) int {
	score := 100

	if amount > 100000 {
		score -= 30
	}

	if address == "" || len(address) < 10 {
		score -= 20
	}

	desc := strings.ToLower(description)
	for _, phrase := range suspiciousPhrases {
		if strings.Contains(desc, phrase) {
			score -= 15
		}
	}

	if score < 0 {
		score = 0
	}
	return score
}

// Policy — политика назначения начального статуса (см. конфиг TRUST_POLICY).
type Policy string

const (
	// PolicyManual — всё уходит в Pending, решает человек.
	PolicyManual Policy = "manual"
	// PolicyThreshold — score >= 70 автоодобряется, остальное помечается
	// как потенциальное мошенничество и минует очередь.
	PolicyThreshold Policy = "threshold"
)

const autoApproveThreshold = 70

// ParsePolicy валидирует значение из конфига.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyManual, PolicyThreshold:
		return Policy(s), nil
	case "":
		return PolicyManual, nil
	}
	return "", fmt.Errorf("unknown trust policy %q (want manual or threshold)", s)
}

// InitialStatus — статус новой кампании по выбранной политике.
func (p Policy) InitialStatus(score int) string {
	if p == PolicyThreshold {
		if score >= autoApproveThreshold {
			return models.StatusApproved
		}
		return models.StatusPotentialFraud
	}
	return models.StatusPending
}
