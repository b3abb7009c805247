package models

import "time"

// StatsPeriod selects the aggregation window for dashboard stats.
type StatsPeriod string

const (
	// StatsPeriod7d covers the trailing seven days.
	StatsPeriod7d StatsPeriod = "7d"
	// StatsPeriod30d covers the trailing thirty days.
	StatsPeriod30d StatsPeriod = "30d"
	// StatsPeriodAll covers the account's lifetime.
	StatsPeriodAll StatsPeriod = "all"
)

// Valid reports whether the period is a known window.
func (p StatsPeriod) Valid() bool {
	return p == StatsPeriod7d || p == StatsPeriod30d || p == StatsPeriodAll
}

// StatsPeriods lists the supported windows in a stable order.
func StatsPeriods() []StatsPeriod {
	return []StatsPeriod{StatsPeriod7d, StatsPeriod30d, StatsPeriodAll}
}

// Stats is a read-only aggregate computed by the analytics pipeline outside
// this service. One row exists per (user, period); this service only reads.
type Stats struct {
	ID            uint        `gorm:"primaryKey" json:"-"`
	UserID        string      `gorm:"size:36;not null;uniqueIndex:idx_stats_user_period" json:"-"`
	Period        StatsPeriod `gorm:"type:varchar(10);not null;uniqueIndex:idx_stats_user_period" json:"period"`
	ProfileViews  int         `gorm:"not null;default:0" json:"profile_views"`
	LinkClicks    int         `gorm:"not null;default:0" json:"link_clicks"`
	TopLinkTitle  string      `gorm:"size:200" json:"-"`
	TopLinkClicks int         `gorm:"not null;default:0" json:"-"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Stats) TableName() string {
	return "stats"
}

// TopClickedLink is the nested wire shape for the most clicked link.
type TopClickedLink struct {
	Title  string `json:"title"`
	Clicks int    `json:"clicks"`
}

// StatsDTO is the API response model for dashboard stats.
type StatsDTO struct {
	ProfileViews   int            `json:"profile_views"`
	LinkClicks     int            `json:"link_clicks"`
	TopClickedLink TopClickedLink `json:"top_clicked_link"`
	Period         StatsPeriod    `json:"period"`
}

// DTO converts the stored row into its API shape.
func (s *Stats) DTO() StatsDTO {
	return StatsDTO{
		ProfileViews: s.ProfileViews,
		LinkClicks:   s.LinkClicks,
		TopClickedLink: TopClickedLink{
			Title:  s.TopLinkTitle,
			Clicks: s.TopLinkClicks,
		},
		Period: s.Period,
	}
}
