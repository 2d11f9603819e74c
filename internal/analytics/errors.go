package analytics

import "errors"

var ErrUnknownColor = errors.New("unknown color label")
