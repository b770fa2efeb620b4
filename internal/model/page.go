package model

// IndexPage carries the values rendered on the root page.
// UserAgent is taken verbatim from the request header and may be empty.
type IndexPage struct {
	UserAgent string
}

// UserPage carries the values rendered on the greeting page.
type UserPage struct {
	Name string
}
