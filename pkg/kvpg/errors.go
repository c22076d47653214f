package kvpg

import "errors"

var (
	ErrFailedToParseConfig = errors.New("failed to parse postgres connection config")
	ErrFailedToOpenConn    = errors.New("failed to open postgres connection")
	ErrHealthcheckFailed   = errors.New("postgres healthcheck failed")
	ErrInvalidTableName    = errors.New("invalid preferences table name")
)
