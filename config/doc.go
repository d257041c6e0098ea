// Package config loads ergolog settings from a YAML file, a .env file and
// ERGOLOG_* environment variables.
//
// It uses Viper for file and environment handling and godotenv for .env
// files. Environment values override the file:
//
//	cfg, err := config.Load(config.WithConfigFile("ergolog.yml"))
//	if err != nil { ... }
//	_ = logger.Init(cfg)
//
// ERGOLOG_DEFAULT_LOGGER is accepted as an alias of the root key, and flag
// variables such as ERGOLOG_NO_COLORS treat any non-empty value as set, the
// same rule logger.ConfigFromEnv applies.
package config
