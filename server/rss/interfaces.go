package rss

// HttpContext allows us to use gin's context
type HttpContext interface {
	// Header sets a response header
	Header(name, value string)
	// String sends a string
	String(code int, format string, values ...interface{})
}
