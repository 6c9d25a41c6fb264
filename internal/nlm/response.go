package nlm

import "encoding/json"

// Kind tags the shape of a successful response.
type Kind int

const (
	// KindJSON is a response decoded as JSON.
	KindJSON Kind = iota
	// KindXML is a raw XML text response (".xml" endpoints).
	KindXML
	// KindNoContent marks a 2xx response with an empty body. It is a
	// success, but carries no payload; callers must not mistake it for data.
	KindNoContent
)

// Response is the tagged result of a GET: exactly one of JSON or XML is
// populated, depending on Kind.
type Response struct {
	Kind Kind
	JSON json.RawMessage
	XML  string
}

// IsNoContent reports whether the service returned a 2xx with an empty body.
func (r *Response) IsNoContent() bool { return r.Kind == KindNoContent }
