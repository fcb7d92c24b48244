// Package config provides configuration management for the catalog manager.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from `default` struct tags on each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, API key and body limit
//   - Storage: S3/MinIO credentials and bucket
//   - Log: logging level and format
//   - Database: sqlite or MySQL connection for marks
//   - Catalog: source backend, known sources and text schema field names
//   - Tabular: import/export header labels and validation limits
//   - Marks: which backend persists marked ids
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Catalog.DefaultSource)
package config
