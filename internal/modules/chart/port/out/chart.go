package out

import "healthlog/internal/modules/chart/domain"

// Renderer draws a spec. inspect is the index whose details are shown, or -1.
type Renderer interface {
	Render(spec domain.Spec, inspect int) (string, error)
}
