package encode

type EncodeOption func(*EncState)

// EncodeColors renders with c instead of plain text.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}
