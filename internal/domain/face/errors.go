package face

import "errors"

var (
	ErrDescriptorNotFound = errors.New("no descriptor enrolled for this email")
)
