package config

import "errors"

var (
	errNoTokenSignKey  = errors.New("token sign key is not set")
	errNoTokenDuration = errors.New("token duration is not set")
	errNoDatabaseDSN   = errors.New("database DSN is not set")
	errNoServerAddress = errors.New("server address is not set")
)
