// Package urlquery turns typed filter structs into URL query parameters.
//
// Fields are mapped through `url:"name,omitempty"` tags as understood by
// go-querystring. Embedded structs are flattened, nil pointers and zero
// scalars are skipped, a non-nil pointer is emitted even when it points at
// a zero value, and slices repeat the parameter once per element.
// Parameters whose every value is blank are dropped.
package urlquery

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// Encode returns the query parameters of filter. A nil filter or a value
// that is not a struct yields empty parameters.
func Encode(filter any) url.Values {
	values, err := query.Values(filter)
	if err != nil || values == nil {
		return url.Values{}
	}

	for name, vs := range values {
		if blank(vs) {
			delete(values, name)
		}
	}
	return values
}

func blank(vs []string) bool {
	for _, v := range vs {
		if v != "" {
			return false
		}
	}
	return true
}
