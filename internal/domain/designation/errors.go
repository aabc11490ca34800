package designation

import "errors"

var ErrDesignationNotFound = errors.New("designation not found")
