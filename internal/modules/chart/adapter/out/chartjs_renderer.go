package out

import (
	"encoding/json"
	"fmt"

	"healthlog/internal/modules/chart/domain"
	chartout "healthlog/internal/modules/chart/port/out"
)

// ChartJSRenderer emits the spec as a Chart.js configuration. The footers
// array carries the tooltip footer for each label index.
type ChartJSRenderer struct{}

func NewChartJSRenderer() chartout.Renderer {
	return ChartJSRenderer{}
}

func (ChartJSRenderer) Render(spec domain.Spec, _ int) (string, error) {
	if spec.Data.Labels == nil {
		spec.Data.Labels = []string{}
	}
	if spec.Footers == nil {
		spec.Footers = []string{}
	}
	raw, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal chart spec: %w", err)
	}
	return string(raw), nil
}
