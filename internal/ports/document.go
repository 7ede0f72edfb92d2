package ports

// Document is a parsed page whose links can be rewritten in place.
// Implementations must return anchors in document order so that
// "first match wins" lookups behave like a DOM query selector.
type Document interface {
	// Anchors returns every <a> element in the document, in document order.
	Anchors() []Anchor
}

// Anchor is a single hyperlink element.
type Anchor interface {
	// Href returns the current href attribute, or "" when absent.
	Href() string

	// SetHref overwrites the href attribute, adding it if missing.
	SetHref(href string)

	// Attr returns the value of an arbitrary attribute (e.g. "data-service").
	Attr(key string) (string, bool)
}
