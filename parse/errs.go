package parse

import "github.com/settml/go-settml/schema"

var (
	ErrStructure = schema.ErrStructure
	ErrResource  = schema.ErrResource
)
