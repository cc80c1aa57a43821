package dto

// MaterialResponse represents one accepted material in the catalog
type MaterialResponse struct {
	Name        string `json:"name"`
	PointsPerKg string `json:"pointsPerKg"`
	Description string `json:"description,omitempty"`
}

// MachineResponse represents one machine in the catalog
type MachineResponse struct {
	MachineID string `json:"machineId"`
	Location  string `json:"location"`
	Status    string `json:"status"`
}
