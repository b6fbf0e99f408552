package spec

// EndpointKey uniquely identifies an endpoint within one document.
type EndpointKey struct {
	Path   string
	Method string
}

// Document is the in-memory representation of one API version.
// Read-only after construction.
type Document struct {
	File      string
	Version   string
	Endpoints map[EndpointKey]Endpoint
}

// Endpoint describes a single (path, method) entry.
type Endpoint struct {
	Path       string
	Method     string
	Parameters map[string]Parameter
	Responses  map[int]bool
}

// Parameter describes one request parameter of an endpoint.
type Parameter struct {
	Name     string
	Required bool
	Type     string
}

// ParameterTypes are the recognized semantic type tags.
var ParameterTypes = map[string]bool{
	"string":  true,
	"integer": true,
	"number":  true,
	"boolean": true,
	"array":   true,
	"object":  true,
}

// Endpoint returns the endpoint for (path, method), if present.
func (d *Document) Endpoint(path, method string) (Endpoint, bool) {
	ep, ok := d.Endpoints[EndpointKey{Path: path, Method: method}]
	return ep, ok
}
