package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnsupportedDBEngine error if config db.gormengine names an unknown driver.
	ErrUnsupportedDBEngine = errors.New("toml config db.gormengine is not supported")

	// ErrPageSizeOutOfRange error if config authorization.pagesize is negative or too large.
	ErrPageSizeOutOfRange = errors.New("toml config authorization.pagesize out of range")
)
