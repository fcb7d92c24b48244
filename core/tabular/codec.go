package tabular

import (
	"strconv"
	"strings"
	"time"

	"catalog-manager/core/catalog"
)

// CastSeparator joins cast members inside the cast column.
const CastSeparator = ";"

// Codec reads and writes the tabular import/export format.
type Codec struct {
	cfg Config
	now func() time.Time
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock overrides the clock used for the accepted year range.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		c.now = now
	}
}

// NewCodec creates a codec for the given layout.
func NewCodec(cfg Config, opts ...Option) *Codec {
	if cfg.MaxDisplayedErrors <= 0 {
		cfg.MaxDisplayedErrors = 10
	}
	c := &Codec{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the codec layout.
func (c *Codec) Config() Config {
	return c.cfg
}

// Serialize writes the header followed by one row per record, latest year first.
// Records of the same year keep their relative order.
func (c *Codec) Serialize(records []catalog.Record) string {
	var b strings.Builder
	writeRow(&b, c.cfg.Header())
	for _, group := range catalog.GroupByYear(records) {
		for _, r := range group.Records {
			writeRow(&b, []string{
				strconv.Itoa(r.Year),
				r.PrimaryTitle,
				r.SecondaryTitle,
				strings.Join(r.Cast, CastSeparator),
				r.ID,
			})
		}
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(SerializeField(f))
	}
	b.WriteByte('\n')
}

// SerializeField quotes s when it holds a comma, a double quote or a newline,
// doubling embedded quotes.
func SerializeField(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ParseRow splits one record into trimmed fields. Commas inside double quotes
// do not split, and "" inside quotes yields a literal quote.
func ParseRow(line string) []string {
	fields := make([]string, 0, 5)
	var current strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"' && inQuotes && i+1 < len(runes) && runes[i+1] == '"':
			current.WriteRune('"')
			i++
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	return append(fields, strings.TrimSpace(current.String()))
}

// rawRow is one record of the file with the physical line it starts on.
type rawRow struct {
	line int
	text string
}

// splitRows splits text into records on newlines outside quotes. Blank records are dropped.
func splitRows(text string) []rawRow {
	var rows []rawRow
	var current strings.Builder
	inQuotes := false
	line, start := 1, 1

	flush := func() {
		record := strings.TrimSuffix(current.String(), "\r")
		if strings.TrimSpace(record) != "" {
			rows = append(rows, rawRow{line: start, text: record})
		}
		current.Reset()
	}

	for _, ch := range text {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
			current.WriteRune(ch)
		case ch == '\n' && !inQuotes:
			flush()
			line++
			start = line
		case ch == '\n':
			line++
			current.WriteRune(ch)
		default:
			current.WriteRune(ch)
		}
	}
	flush()
	return rows
}
