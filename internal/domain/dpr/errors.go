package dpr

import "errors"

var (
	ErrDPRNotFound = errors.New("no daily progress reports found")
)
