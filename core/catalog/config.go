package catalog

import "catalog-manager/core/textproto"

const (
	BackendFile    = "file"
	BackendStorage = "storage"
)

// Config holds configuration for catalog sources and their text schema.
type Config struct {
	// Backend selects where source text is read from (file, storage).
	Backend string `mapstructure:"backend" default:"file"`
	// SourceDir is the directory holding source files for the file backend.
	SourceDir string `mapstructure:"source_dir" default:"data"`
	// Prefix is the object key prefix for the storage backend.
	Prefix string `mapstructure:"prefix" default:"catalog/"`
	// DefaultSource is used when no source is requested explicitly.
	DefaultSource string `mapstructure:"default_source" default:"dorama_info.txtpb"`
	// Sources lists the known source ids.
	Sources []string `mapstructure:"sources" default:"dorama_info.txtpb,top_100_dorama_info.txtpb,top_5_lt_2000_dorama_info.txtpb,top_5_ge_2000_dorama_info.txtpb"`
	// RepeatedFields lists the snake_case names that repeat within a message.
	RepeatedFields []string `mapstructure:"repeated_fields" default:"main_actor,doramas"`
	// RecordsField is the top-level repeated message holding the records.
	RecordsField string `mapstructure:"records_field" default:"doramas"`
	// IDField is the source field carrying the record id.
	IDField string `mapstructure:"id_field" default:"dorama_info_id"`
	// PrimaryTitleField is the source field carrying the primary title.
	PrimaryTitleField string `mapstructure:"primary_title_field" default:"chinese_title"`
	// SecondaryTitleField is the source field carrying the secondary title.
	SecondaryTitleField string `mapstructure:"secondary_title_field" default:"japanese_title"`
	// YearField is the source field carrying the year.
	YearField string `mapstructure:"year_field" default:"release_year"`
	// CastField is the source field carrying cast members.
	CastField string `mapstructure:"cast_field" default:"main_actor"`
}

// Schema builds the record schema described by the configuration.
func (c Config) Schema() Schema {
	return Schema{
		Text:         textproto.NewSchema(c.RepeatedFields...),
		RecordsField: c.RecordsField,
		Fields: FieldNames{
			ID:             c.IDField,
			PrimaryTitle:   c.PrimaryTitleField,
			SecondaryTitle: c.SecondaryTitleField,
			Year:           c.YearField,
			Cast:           c.CastField,
		},
	}
}

// IsKnownSource reports whether source is listed in Sources.
func (c Config) IsKnownSource(source string) bool {
	for _, s := range c.Sources {
		if s == source {
			return true
		}
	}
	return false
}
