package climate

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrSchemaMismatch = errors.New("database schema does not match the climate models")

var requiredColumns = []struct {
	model   interface{ TableName() string }
	columns []string
}{
	{Station{}, []string{"id", "station", "name", "latitude", "longitude", "elevation"}},
	{Measurement{}, []string{"id", "station", "date", "prcp", "tobs"}},
}

// VerifySchema checks that the station and measurement tables exist with the columns
// the models map to. The tables are owned by whoever loads the dataset, so nothing is migrated.
func VerifySchema(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, table := range requiredColumns {
		if !migrator.HasTable(table.model.TableName()) {
			return fmt.Errorf("%w: table %q not found", ErrSchemaMismatch, table.model.TableName())
		}

		for _, column := range table.columns {
			if !migrator.HasColumn(table.model, column) {
				return fmt.Errorf("%w: column %q missing from table %q", ErrSchemaMismatch, column, table.model.TableName())
			}
		}
	}

	return nil
}
