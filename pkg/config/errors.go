package config

import "errors"

var (
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrEnvFile       = errors.New("failed to read env file")
	ErrNilPointer    = errors.New("nil pointer provided to config loader")
)
