package bst

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyTree       = fmt.Errorf("%w: tree is empty", ErrInvalidArgument)
)
