package catalog

import "catalog-manager/core/textproto"

// Record is one catalog entry.
type Record struct {
	ID             string   `mapstructure:"id" json:"id"`
	PrimaryTitle   string   `mapstructure:"primaryTitle" json:"primary_title"`
	SecondaryTitle string   `mapstructure:"secondaryTitle" json:"secondary_title"`
	Year           int      `mapstructure:"year" json:"year"`
	Cast           []string `mapstructure:"cast" json:"cast"`
}

// FieldNames maps record attributes to the snake_case names used in source text.
type FieldNames struct {
	ID             string
	PrimaryTitle   string
	SecondaryTitle string
	Year           string
	Cast           string
}

// Schema describes how records are laid out in source text.
type Schema struct {
	// Text declares the repeated names for the parser.
	Text textproto.Schema
	// RecordsField is the top-level repeated message holding records.
	RecordsField string
	// Fields maps record attributes to source names.
	Fields FieldNames
}

// DefaultSchema returns the schema of the reference catalog.
func DefaultSchema() Schema {
	return Schema{
		Text:         textproto.NewSchema("main_actor", "doramas"),
		RecordsField: "doramas",
		Fields: FieldNames{
			ID:             "dorama_info_id",
			PrimaryTitle:   "chinese_title",
			SecondaryTitle: "japanese_title",
			Year:           "release_year",
			Cast:           "main_actor",
		},
	}
}

// pairs lists canonical record keys alongside their source names.
func (f FieldNames) pairs() [][2]string {
	return [][2]string{
		{"id", f.ID},
		{"primaryTitle", f.PrimaryTitle},
		{"secondaryTitle", f.SecondaryTitle},
		{"year", f.Year},
		{"cast", f.Cast},
	}
}
