package dto

type DashboardStatsDTO struct {
	TotalUsers          int64   `json:"total_users"`
	TotalConsultants    int64   `json:"total_consultants"`
	PendingConsultants  int64   `json:"pending_consultants"`
	TotalClients        int64   `json:"total_clients"`
	TotalSessions       int64   `json:"total_sessions"`
	PendingSessions     int64   `json:"pending_sessions"`
	ConfirmedSessions   int64   `json:"confirmed_sessions"`
	CompletedSessions   int64   `json:"completed_sessions"`
	CancelledSessions   int64   `json:"cancelled_sessions"`
	TotalReviews        int64   `json:"total_reviews"`
	AveragePlatformRate float64 `json:"average_platform_rate"`
}
