package doctemplate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the structure of tpl: required metadata, page settings,
// block identity and block id uniqueness. Unknown block types are accepted.
func Validate(tpl DocumentTemplate) error {
	if err := validate.Struct(tpl); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	seen := make(map[string]bool, len(tpl.Blocks))
	for _, b := range tpl.Blocks {
		if seen[b.ID] {
			return fmt.Errorf("%w: duplicate block id %q", ErrInvalidTemplate, b.ID)
		}
		seen[b.ID] = true
	}
	return nil
}
