package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/marmos91/dittofs-ufs/pkg/security"
)

// newValidator returns a validator with the custom tags used by Config.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("posixmode", func(fl validator.FieldLevel) bool {
		_, err := security.ParseMode(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks struct tags and the cross-field rules struct tags cannot express.
//
// Validation errors name the failing field and tag, e.g.
// "Config.Logging.Level failed on 'oneof'".
func Validate(cfg *Config) error {
	if err := newValidator().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on '%s' (value %q)",
					fe.Namespace(), fe.Tag(), fmt.Sprint(fe.Value())))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}

	if cfg.Security.GroupMapping.Type == GroupMappingStatic && len(cfg.Security.GroupMapping.Static) == 0 {
		return fmt.Errorf("security.group_mapping.static must list at least one user when type is %q", GroupMappingStatic)
	}

	for userName, groups := range cfg.Security.GroupMapping.Static {
		if len(groups) == 0 {
			return fmt.Errorf("security.group_mapping.static.%s has no groups", userName)
		}
	}

	return nil
}
