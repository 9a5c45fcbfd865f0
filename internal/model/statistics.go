package model

// UserStats aggregates user counts for the admin dashboard
type UserStats struct {
	ActiveUsers    int64 `json:"active_users"`
	InactiveUsers  int64 `json:"inactive_users"`
	NewThisMonth   int64 `json:"new_this_month"`
	TotalClients   int64 `json:"total_clients"`
	TotalLogistics int64 `json:"total_logistics"`
	TotalAdmins    int64 `json:"total_admins"`
}
