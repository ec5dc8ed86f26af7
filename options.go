package geotext

import "github.com/tsawler/geotext/address"

// ExtractOptions holds configuration for an Extractor.
type ExtractOptions struct {
	// locale is the two-character tag extraction is gated on.
	locale string

	// postalCodeRadius is how many characters around a city mention are
	// searched for its postal code.
	postalCodeRadius int

	// snippetMargin is how much context each address snippet keeps on
	// either side of the linked pair.
	snippetMargin int
}

// Option configures an Extractor at construction time.
type Option func(*ExtractOptions)

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		locale:           "fr",
		postalCodeRadius: address.DefaultSearchRadius,
		snippetMargin:    address.DefaultSnippetMargin,
	}
}

// Locale sets the locale tag extraction is gated on. The default is "fr";
// changing it only makes sense with a gazetteer for that locale.
func Locale(tag string) Option {
	return func(o *ExtractOptions) { o.locale = tag }
}

// PostalCodeRadius sets the postal-code search radius in characters.
func PostalCodeRadius(chars int) Option {
	return func(o *ExtractOptions) { o.postalCodeRadius = chars }
}

// SnippetMargin sets the address-snippet context margin in characters.
func SnippetMargin(chars int) Option {
	return func(o *ExtractOptions) { o.snippetMargin = chars }
}
