package validate

import "github.com/go-playground/validator/v10"

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct checks the request body against its validate tags. Services
// re-validate authoritatively; this only rejects malformed input early.
func Struct(s any) error {
	return v.Struct(s)
}
