package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/campushr/letters-backend-go/internal/domain/dashboard"
	"github.com/campushr/letters-backend-go/internal/domain/letter"
	gocache "github.com/patrickmn/go-cache"
)

const (
	statsCacheKey = "admin_stats"
	statsCacheTTL = 30 * time.Second

	recentLettersLimit = 5
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	cache         *gocache.Cache
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		cache:         gocache.New(statsCacheTTL, time.Minute),
	}
}

// GetStats implements dashboard.DashboardService. Counts are cached
// briefly; the dashboard polls and exact freshness does not matter.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	if cached, found := s.cache.Get(statsCacheKey); found {
		return cached.(dashboard.StatsResponse), nil
	}

	counts, err := s.dashboardRepo.GetCounts(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to get counts: %w", err)
	}

	recent, err := s.dashboardRepo.GetRecentLetters(ctx, recentLettersLimit)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to get recent letters: %w", err)
	}

	stats := dashboard.StatsResponse{
		TotalUsers:     counts.Users,
		TotalLetters:   counts.Letters,
		TotalTemplates: counts.Templates,
		RecentLetters:  letter.NewListResponse(recent),
	}

	s.cache.Set(statsCacheKey, stats, gocache.DefaultExpiration)
	return stats, nil
}
