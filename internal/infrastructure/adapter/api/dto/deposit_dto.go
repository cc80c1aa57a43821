package dto

// DepositRequest represents the API request for recording a deposit
type DepositRequest struct {
	WeightKg  string `json:"weightKg" binding:"required"`
	Material  string `json:"material" binding:"required"`
	MachineID string `json:"machineId" binding:"required"`
	Notes     string `json:"notes"`
}

// StatisticsPayload carries a user's cumulative totals after a deposit
type StatisticsPayload struct {
	TotalWeightKg string `json:"totalWeightKg"`
	TotalPoints   string `json:"totalPoints"`
	DepositCount  uint64 `json:"depositCount"`
}

// DepositResponse represents the API response for a recorded deposit
type DepositResponse struct {
	Reference    string            `json:"reference"`
	UserID       uint64            `json:"userId"`
	Material     string            `json:"material"`
	MachineID    string            `json:"machineId"`
	WeightKg     string            `json:"weightKg"`
	PointsEarned string            `json:"pointsEarned"`
	CreatedAt    string            `json:"createdAt"`
	Statistics   StatisticsPayload `json:"statistics"`
}
