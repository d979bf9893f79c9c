package collections

import "errors"

var (
	ErrKeyNotFound     = errors.New("key not found")
	ErrValueExisted    = errors.New("value existed")
	ErrValueNotExisted = errors.New("value not existed")
)
