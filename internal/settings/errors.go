package settings

import "errors"

var (
	ErrReadFile   = errors.New("failed to read settings file")
	ErrDecodeFile = errors.New("failed to decode settings file")
)
