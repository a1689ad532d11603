package endpoint

import (
	"fmt"
	"net/http"
	"strings"
)

// Catalogue is the fixed operation list of one group.
type Catalogue []Descriptor

// Lookup returns the descriptor registered for operation.
func (c Catalogue) Lookup(operation string) (Descriptor, bool) {
	for _, descriptor := range c {
		if descriptor.Operation == operation {
			return descriptor, true
		}
	}
	return Descriptor{}, false
}

// Clone returns a copy callers may keep without aliasing the group's list.
func (c Catalogue) Clone() Catalogue {
	cloned := make(Catalogue, len(c))
	copy(cloned, c)
	return cloned
}

// Validate checks the catalogue-wide rules: one descriptor per operation,
// known verbs, mutations only on the primary API, mirror reads only via GET,
// and well-formed templates.
func (c Catalogue) Validate() error {
	seen := map[string]struct{}{}
	for _, descriptor := range c {
		if strings.TrimSpace(descriptor.Operation) == "" {
			return fmt.Errorf("descriptor with template %q has no operation name", descriptor.Template)
		}
		if _, exists := seen[descriptor.Operation]; exists {
			return fmt.Errorf("operation %s is declared twice", descriptor.Operation)
		}
		seen[descriptor.Operation] = struct{}{}

		switch descriptor.Method {
		case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			return fmt.Errorf("operation %s uses unsupported method %q", descriptor.Operation, descriptor.Method)
		}
		if descriptor.Mutating() && descriptor.API != Primary {
			return fmt.Errorf("operation %s mutates state but targets the %s API", descriptor.Operation, descriptor.API)
		}
		if descriptor.Method == http.MethodGet && descriptor.Params == BodyParams {
			return fmt.Errorf("operation %s sends a body with GET", descriptor.Operation)
		}
		if descriptor.Shape != ShapeObject && descriptor.Shape != ShapePage {
			return fmt.Errorf("operation %s has unknown response shape %q", descriptor.Operation, descriptor.Shape)
		}
		if descriptor.Shape == ShapePage && descriptor.API != Mirror {
			return fmt.Errorf("operation %s is paged but targets the %s API", descriptor.Operation, descriptor.API)
		}
		for _, segment := range splitTemplate(descriptor.Template) {
			if segment == "" {
				return fmt.Errorf("operation %s has an empty segment in %q", descriptor.Operation, descriptor.Template)
			}
			if strings.ContainsAny(segment, "{}") {
				if _, ok := placeholderName(segment); !ok {
					return fmt.Errorf("operation %s has a malformed placeholder %q", descriptor.Operation, segment)
				}
			}
		}
	}
	return nil
}
