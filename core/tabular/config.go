package tabular

// Config holds the tabular file layout and validation limits.
// Header labels are configuration so localized files can be accepted.
type Config struct {
	// YearLabel is the header label of the year column.
	YearLabel string `mapstructure:"year_label" default:"year"`
	// PrimaryTitleLabel is the header label of the primary title column.
	PrimaryTitleLabel string `mapstructure:"primary_title_label" default:"primaryTitle"`
	// SecondaryTitleLabel is the header label of the secondary title column.
	SecondaryTitleLabel string `mapstructure:"secondary_title_label" default:"secondaryTitle"`
	// CastLabel is the header label of the cast column.
	CastLabel string `mapstructure:"cast_label" default:"cast"`
	// IDLabel is the header label of the id column.
	IDLabel string `mapstructure:"id_label" default:"id"`
	// MaxDisplayedErrors caps how many row errors are shown to a person.
	MaxDisplayedErrors int `mapstructure:"max_displayed_errors" default:"10"`
	// MinYear is the lowest accepted year.
	MinYear int `mapstructure:"min_year" default:"1900"`
	// YearHorizon is how many years past the current one are accepted.
	YearHorizon int `mapstructure:"year_horizon" default:"10"`
}

// DefaultConfig returns the configuration matching the reference header.
func DefaultConfig() Config {
	return Config{
		YearLabel:           "year",
		PrimaryTitleLabel:   "primaryTitle",
		SecondaryTitleLabel: "secondaryTitle",
		CastLabel:           "cast",
		IDLabel:             "id",
		MaxDisplayedErrors:  10,
		MinYear:             1900,
		YearHorizon:         10,
	}
}

// Header returns the column labels in file order.
func (c Config) Header() []string {
	return []string{c.YearLabel, c.PrimaryTitleLabel, c.SecondaryTitleLabel, c.CastLabel, c.IDLabel}
}
