// Package model provides data transfer objects for statistics module.
package model

// TeamStatistics describes one team the caller belongs to.
type TeamStatistics struct {
	TeamID      string `json:"team_id"`
	Name        string `json:"name"`
	IsAdmin     bool   `json:"is_admin"`
	MemberCount int    `json:"member_count"`
	AdminCount  int    `json:"admin_count"`
}

// TeamStatisticsResponse represents response for GET /statistics/teams.
type TeamStatisticsResponse struct {
	TotalTeams   int              `json:"total_teams"`
	AdminTeams   int              `json:"admin_teams"`
	TotalMembers int              `json:"total_members"`
	Teams        []TeamStatistics `json:"teams"`
}
