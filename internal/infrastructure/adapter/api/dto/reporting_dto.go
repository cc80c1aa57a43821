package dto

// HistoryItem represents one deposit in a history or summary listing
type HistoryItem struct {
	Reference string `json:"reference"`
	Material  string `json:"material"`
	MachineID string `json:"machineId"`
	WeightKg  string `json:"weightKg"`
	Points    string `json:"points"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// HistoryResponse represents one page of a user's deposit history
type HistoryResponse struct {
	Deposits   []HistoryItem `json:"deposits"`
	TotalCount int64         `json:"totalCount"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

// MaterialTotalsPayload aggregates deposits per material
type MaterialTotalsPayload struct {
	Material      string `json:"material"`
	TotalWeightKg string `json:"totalWeightKg"`
	TotalPoints   string `json:"totalPoints"`
	DepositCount  uint64 `json:"depositCount"`
}

// SummaryResponse represents a user's recycling summary
type SummaryResponse struct {
	UserID        uint64                  `json:"userId"`
	TotalWeightKg string                  `json:"totalWeightKg"`
	TotalPoints   string                  `json:"totalPoints"`
	DepositCount  uint64                  `json:"depositCount"`
	Breakdown     []MaterialTotalsPayload `json:"breakdown"`
	Recent        []HistoryItem           `json:"recent"`
}

// MachineTotalsPayload aggregates deposits per machine
type MachineTotalsPayload struct {
	MachineID     string `json:"machineId"`
	Location      string `json:"location"`
	TotalWeightKg string `json:"totalWeightKg"`
	DepositCount  uint64 `json:"depositCount"`
}

// SystemStatsResponse represents the staff-only platform statistics
type SystemStatsResponse struct {
	TotalWeightKg string                  `json:"totalWeightKg"`
	TotalPoints   string                  `json:"totalPoints"`
	DepositCount  uint64                  `json:"depositCount"`
	TopMaterials  []MaterialTotalsPayload `json:"topMaterials"`
	TopMachines   []MachineTotalsPayload  `json:"topMachines"`
}

// HealthResponse represents the service health report
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Materials int    `json:"materials"`
	Machines  int    `json:"machines"`
	Version   string `json:"version"`
}
