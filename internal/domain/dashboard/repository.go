package dashboard

import (
	"context"

	"github.com/campushr/letters-backend-go/internal/domain/letter"
)

// Counts combines the three entity totals in a single query round trip
type Counts struct {
	Users     int64
	Letters   int64
	Templates int64
}

type DashboardRepository interface {
	GetCounts(ctx context.Context) (Counts, error)
	GetRecentLetters(ctx context.Context, limit int) ([]letter.GeneratedLetter, error)
}
