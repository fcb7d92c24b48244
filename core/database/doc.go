// Package database handles database connections and schema inspection.
//
// It wraps GORM to open either an embedded SQLite file (the default) or a MySQL
// server, depending on Config.Driver. The marks feature persists highlighted
// record ids through the returned *gorm.DB.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live table definition so callers
// can confirm a table matches the model they expect before trusting it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	missing, err := database.MissingColumns(db, "marked_records", "record_id")
package database
