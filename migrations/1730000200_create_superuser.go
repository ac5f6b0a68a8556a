package migrations

import (
	"os"

	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

// Creates the first dashboard superuser from INITIAL_ADMIN_EMAIL / INITIAL_ADMIN_PASSWORD
func init() {
	m.Register(func(app core.App) error {
		total, err := app.CountRecords(core.CollectionNameSuperusers)
		if err != nil {
			return err
		}
		if total > 0 {
			return nil
		}

		email := os.Getenv("INITIAL_ADMIN_EMAIL")
		pass := os.Getenv("INITIAL_ADMIN_PASSWORD")
		if email == "" || pass == "" {
			return nil // created later via the dashboard installer
		}

		superusers, err := app.FindCollectionByNameOrId(core.CollectionNameSuperusers)
		if err != nil {
			return err
		}

		record := core.NewRecord(superusers)
		record.SetEmail(email)
		record.SetPassword(pass)

		return app.Save(record)
	}, nil)
}
