// Command gen regenerates the type-safe gorm query helpers for the persistence models.
package main

import (
	"upkeep/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.DeviceRegistrationModel{},
		model.DeliveryLedgerModel{},
		model.InAppNotificationModel{},
		model.EquipmentModel{},
		model.EventModel{},
		model.EventAttendeeModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
