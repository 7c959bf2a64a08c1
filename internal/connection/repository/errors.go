package repository

import "errors"

var ErrConfigNotFound = errors.New("config key not found")
