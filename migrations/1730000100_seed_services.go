package migrations

import (
	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"

	domain "event-marketplace/internal/core"
)

func init() {
	m.Register(func(app core.App) error {
		services, err := app.FindCollectionByNameOrId("services")
		if err != nil {
			return err
		}

		for _, entry := range domain.Catalog {
			if _, err := app.FindFirstRecordByFilter("services", "name = {:name}", dbx.Params{"name": entry.Name}); err == nil {
				continue
			}

			record := core.NewRecord(services)
			record.Set("name", entry.Name)
			record.Set("description", entry.Description)
			if err := app.Save(record); err != nil {
				return err
			}
		}
		return nil

	}, func(app core.App) error {
		for _, entry := range domain.Catalog {
			record, err := app.FindFirstRecordByFilter("services", "name = {:name}", dbx.Params{"name": entry.Name})
			if err != nil {
				continue
			}
			if err := app.Delete(record); err != nil {
				return err
			}
		}
		return nil
	})
}
