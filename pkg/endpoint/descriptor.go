package endpoint

import (
	"fmt"
	"net/http"
	"strings"
)

// MirrorPrefix is the leading path segment of the read-only mirror API.
const MirrorPrefix = "mirrors"

// API selects which side of the remote service an operation targets.
type API uint8

const (
	// Primary is the transactional API. Every mutation goes here.
	Primary API = iota
	// Mirror is the read-optimized historical query API.
	Mirror
)

func (a API) String() string {
	switch a {
	case Primary:
		return "primary"
	case Mirror:
		return "mirror"
	default:
		return fmt.Sprintf("api(%d)", uint8(a))
	}
}

// Placement says where an operation's caller-supplied parameters travel,
// beyond the path identifiers.
type Placement uint8

const (
	NoParams Placement = iota
	QueryParams
	BodyParams
)

func (p Placement) String() string {
	switch p {
	case NoParams:
		return "none"
	case QueryParams:
		return "query"
	case BodyParams:
		return "body"
	default:
		return fmt.Sprintf("placement(%d)", uint8(p))
	}
}

// Shape tags the response payload.
type Shape string

const (
	// ShapeObject is a single JSON object.
	ShapeObject Shape = "object"
	// ShapePage is a mirror listing with a links.next cursor.
	ShapePage Shape = "page"
)

// Descriptor maps one operation to one HTTP call. Template is relative to
// the owning group's base path; segments written as {name} are replaced by
// the call's path values, in order.
type Descriptor struct {
	Operation string
	Method    string
	API       API
	Template  string
	Params    Placement
	Shape     Shape
}

// Path builds the request path for base and the given path values. Values
// are interpolated literally.
func (d Descriptor) Path(base string, values ...string) (string, error) {
	segments := make([]string, 0, 3)
	if d.API == Mirror {
		segments = append(segments, MirrorPrefix)
	}
	segments = append(segments, base)

	expanded, err := expandTemplate(d.Template, values)
	if err != nil {
		return "", fmt.Errorf("%s: %w", d.Operation, err)
	}
	if expanded != "" {
		segments = append(segments, expanded)
	}
	return strings.Join(segments, "/"), nil
}

// Placeholders returns the names of the template's path values.
func (d Descriptor) Placeholders() []string {
	names := []string{}
	for _, segment := range splitTemplate(d.Template) {
		if name, ok := placeholderName(segment); ok {
			names = append(names, name)
		}
	}
	return names
}

// Mutating reports whether the descriptor's verb changes remote state.
func (d Descriptor) Mutating() bool {
	return d.Method != http.MethodGet
}

func expandTemplate(template string, values []string) (string, error) {
	segments := splitTemplate(template)
	next := 0
	for index, segment := range segments {
		name, ok := placeholderName(segment)
		if !ok {
			continue
		}
		if next >= len(values) {
			return "", fmt.Errorf("missing path value for %s", name)
		}
		if strings.TrimSpace(values[next]) == "" {
			return "", fmt.Errorf("%s is required", name)
		}
		segments[index] = values[next]
		next++
	}
	if next != len(values) {
		return "", fmt.Errorf("template %q takes %d path values, got %d", template, next, len(values))
	}
	return strings.Join(segments, "/"), nil
}

func splitTemplate(template string) []string {
	if template == "" {
		return nil
	}
	return strings.Split(template, "/")
}

func placeholderName(segment string) (string, bool) {
	if len(segment) < 3 || !strings.HasPrefix(segment, "{") || !strings.HasSuffix(segment, "}") {
		return "", false
	}
	return segment[1 : len(segment)-1], true
}
