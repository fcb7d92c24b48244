package textproto

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Decode binds a normalized tree onto out, which must be a pointer.
// Unknown keys are ignored and scalars are weakly converted, so a numeric
// identifier can land in a string field.
func Decode(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("failed to decode: %w", err)
	}
	return nil
}
