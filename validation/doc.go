// Package validation checks configuration structs against their
// `validate` struct tags and reports failures as *errors.AppError.
//
//	type Config struct {
//	    Level string `mapstructure:"level" validate:"oneof=debug info warning error critical"`
//	    Root  string `mapstructure:"root" validate:"required,loggername"`
//	}
//	err := validation.Validate(cfg)
//
// Field names in messages follow the mapstructure key, so they match the
// configuration file and environment variable names.
package validation
