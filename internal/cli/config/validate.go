package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(koanfName)
	return v
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// describeFieldError renders a validation failure using the config key
// path, e.g. "canvas.width must be greater than 0 (got -1)".
func describeFieldError(fe validator.FieldError) string {
	key := keyPath(fe.Namespace())
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s (got %v)", key, fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("%s must be at least %s (got %v)", key, fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s (got %v)", key, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s] (got %q)", key, fe.Param(), fe.Value())
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color like #00ff00 (got %q)", key, fe.Value())
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", key, fe.Param())
	default:
		return fmt.Sprintf("%s failed %q validation", key, fe.Tag())
	}
}

// keyPath converts a namespace like "Config.canvas.point_radius" into the
// config key "canvas.point_radius".
func keyPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// koanfName reports fields by their config key instead of their Go name.
func koanfName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("koanf"), ",")
	if name == "-" {
		return ""
	}
	return name
}
