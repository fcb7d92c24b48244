package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"catalog-manager/core/catalog"
	"catalog-manager/core/database"
	"catalog-manager/core/logger"
	"catalog-manager/core/server"
	"catalog-manager/core/storage"
	"catalog-manager/core/tabular"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Marks backends.
const (
	MarksBackendDatabase = "database"
	MarksBackendStorage  = "storage"
)

// Config is the application configuration. Each section maps to an env
// prefix, e.g. SERVER_PORT or MARKS_BACKEND.
type Config struct {
	Server   server.Config   `mapstructure:"server"`
	Storage  storage.Config  `mapstructure:"storage"`
	Log      logger.Config   `mapstructure:"log"`
	Database database.Config `mapstructure:"database"`
	Catalog  catalog.Config  `mapstructure:"catalog"`
	Tabular  tabular.Config  `mapstructure:"tabular"`
	Marks    MarksConfig     `mapstructure:"marks"`
}

// MarksConfig selects the store for marked record ids.
type MarksConfig struct {
	// Backend is database or storage.
	Backend string `mapstructure:"backend" default:"database"`
	// Object is the object name of the marks document for the storage backend.
	Object string `mapstructure:"object" default:"marks/highlighted.json"`
}

// LoadConfig reads .env from dir, overlays the environment and applies the
// `default` struct tags. A missing .env file is not an error.
func LoadConfig(dir string) (*Config, error) {
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	setDefaults(v, reflect.TypeOf(Config{}), "")

	// CATALOG_SOURCE_DIR -> catalog.source_dir
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown backend and driver names.
func (c *Config) Validate() error {
	switch c.Catalog.Backend {
	case catalog.BackendFile, catalog.BackendStorage:
	default:
		return fmt.Errorf("unknown catalog backend %q", c.Catalog.Backend)
	}
	switch c.Marks.Backend {
	case MarksBackendDatabase, MarksBackendStorage:
	default:
		return fmt.Errorf("unknown marks backend %q", c.Marks.Backend)
	}
	switch c.Database.Driver {
	case database.DriverSQLite, database.DriverMySQL:
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	return nil
}

// setDefaults registers every mapstructure key of t with viper, using the
// `default` tag as value. Registering empty defaults too is what makes
// AutomaticEnv see the key. Slice defaults stay comma separated and are split
// by viper's decode hook.
func setDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			setDefaults(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
