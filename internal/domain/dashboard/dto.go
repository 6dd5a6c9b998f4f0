package dashboard

import "github.com/campushr/letters-backend-go/internal/domain/letter"

// StatsResponse is the admin dashboard summary: entity counts plus the
// newest generated letters.
type StatsResponse struct {
	TotalUsers     int64             `json:"total_users"`
	TotalLetters   int64             `json:"total_letters"`
	TotalTemplates int64             `json:"total_templates"`
	RecentLetters  []letter.Response `json:"recent_letters"`
}
