package conf

import (
	"errors"

	"github.com/settml/go-settml/schema"
)

var (
	errInternal = errors.New("internal error")

	ErrStructure = schema.ErrStructure
)
