package domain

// Badge is a rendered stats image fetched from the badge endpoint.
type Badge struct {
	Username     string
	ContentType  string
	CacheControl string
	Body         []byte
}

// Size returns the body length in bytes.
func (b *Badge) Size() int { return len(b.Body) }
