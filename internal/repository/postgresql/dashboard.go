package postgresql

import (
	"context"
	"fmt"

	"github.com/campushr/letters-backend-go/internal/domain/dashboard"
	"github.com/campushr/letters-backend-go/internal/domain/letter"
	"github.com/campushr/letters-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetCounts returns user, letter, and template totals in a single query
func (r *dashboardRepositoryImpl) GetCounts(ctx context.Context) (dashboard.Counts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM generated_letters) AS total_letters,
			(SELECT COUNT(*) FROM letter_templates) AS total_templates
	`

	var counts dashboard.Counts
	err := q.QueryRow(ctx, query).Scan(&counts.Users, &counts.Letters, &counts.Templates)
	if err != nil {
		return dashboard.Counts{}, fmt.Errorf("failed to get dashboard counts: %w", err)
	}
	return counts, nil
}

// GetRecentLetters returns the newest generated letters
func (r *dashboardRepositoryImpl) GetRecentLetters(ctx context.Context, limit int) ([]letter.GeneratedLetter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + letterColumns + `
		FROM generated_letters
		ORDER BY generated_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent letters: %w", err)
	}
	defer rows.Close()

	var letters []letter.GeneratedLetter
	for rows.Next() {
		found, err := scanLetter(rows)
		if err != nil {
			return nil, err
		}
		letters = append(letters, found)
	}
	return letters, rows.Err()
}
