package migration

import (
	"github.com/dropme/rvm-backend/internal/infrastructure/adapter/model"
)

// seedMaterial describes one material to seed. Rates are stored in
// hundredths of a point per kilogram.
type seedMaterial struct {
	name        string
	pointsPerKg int64
	description string
}

type seedMachine struct {
	machineID string
	location  string
}

var defaultMaterials = []seedMaterial{
	{name: "Plastic", pointsPerKg: 100, description: "PET bottles and plastic containers"},
	{name: "Metal", pointsPerKg: 300, description: "Aluminum cans and metal containers"},
	{name: "Glass", pointsPerKg: 200, description: "Glass bottles and jars"},
}

var defaultMachines = []seedMachine{
	{machineID: "RVM-001", location: "Cairo Mall - New Cairo"},
	{machineID: "RVM-002", location: "Alexandria Center - Corniche"},
	{machineID: "RVM-003", location: "Giza Station - Pyramids Area"},
}

// defaultStatisticsUsers lists user IDs that get a zero-valued
// statistics row on first start, for local development
var defaultStatisticsUsers = []uint64{1, 2, 3}

// SeedReferenceData inserts the default materials, machines and
// development statistics rows. Existing rows are left untouched, so the
// seed is safe to run on every start.
func (m *Migrator) SeedReferenceData() error {
	now := m.timeProvider.Now()

	for _, sm := range defaultMaterials {
		material := model.Material{
			Name:        sm.name,
			PointsPerKg: sm.pointsPerKg,
			Description: sm.description,
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		result := m.db.Where(model.Material{Name: sm.name}).
			Attrs(material).
			FirstOrCreate(&model.Material{})
		if result.Error != nil {
			m.logger.Error("Failed to seed material", map[string]any{
				"material": sm.name,
				"error":    result.Error.Error(),
			})
			return result.Error
		}
	}

	for _, sm := range defaultMachines {
		machine := model.Machine{
			MachineID: sm.machineID,
			Location:  sm.location,
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		}
		result := m.db.Where(model.Machine{MachineID: sm.machineID}).
			Attrs(machine).
			FirstOrCreate(&model.Machine{})
		if result.Error != nil {
			m.logger.Error("Failed to seed machine", map[string]any{
				"machine_id": sm.machineID,
				"error":      result.Error.Error(),
			})
			return result.Error
		}
	}

	for _, userID := range defaultStatisticsUsers {
		stats := model.UserStatistics{
			UserID:    userID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		result := m.db.Where(model.UserStatistics{UserID: userID}).
			Attrs(stats).
			FirstOrCreate(&model.UserStatistics{})
		if result.Error != nil {
			m.logger.Error("Failed to seed user statistics", map[string]any{
				"user_id": userID,
				"error":   result.Error.Error(),
			})
			return result.Error
		}
	}

	m.logger.Info("Reference data seeded", map[string]any{
		"materials": len(defaultMaterials),
		"machines":  len(defaultMachines),
	})
	return nil
}
