package admin

import "errors"

var ErrSeedFailed = errors.New("failed to generate sample data")
