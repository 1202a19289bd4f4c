package errors

import (
	"fmt"
)

var (
	ErrNotFound     = fmt.Errorf("not found")
	ErrDuplicateKey = fmt.Errorf("duplicate key")
	ErrInvalidInput = fmt.Errorf("invalid input")
)
