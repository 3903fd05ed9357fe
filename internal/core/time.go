package core

import (
	"time"

	"github.com/tscott-dev/lumen/internal/value"
)

func builtinTimeMs(_ *value.Environment, args []value.Value) (value.Value, error) {
	return value.NewInteger(time.Now().UnixMilli()), nil
}
