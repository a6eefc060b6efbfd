package domain

import (
	"fmt"
	"strings"
)

type Variant string

const (
	// VariantLine draws all four series as lines on two Y axes.
	VariantLine Variant = "line"
	// VariantCombo draws exercise as background bars under pain and pill lines.
	VariantCombo Variant = "combo"
)

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantLine, VariantCombo:
		return v, nil
	case "":
		return VariantCombo, nil
	default:
		return "", fmt.Errorf("unsupported chart variant %q", s)
	}
}

// Point is one record as the chart sees it.
type Point struct {
	Label    string
	Pain     int
	Pills    int
	Exercise bool
	Healthy  bool
	Weather  string
	Activity string
	Notes    string
}

type Role string

const (
	RolePain     Role = "pain"
	RolePills    Role = "pills"
	RoleExercise Role = "exercise"
	RoleHealthy  Role = "healthy"
)

// Spec follows the Chart.js configuration layout so it can be handed to a
// browser as-is.
type Spec struct {
	Type    string   `json:"type"`
	Data    Data     `json:"data"`
	Options Options  `json:"options"`
	Footers []string `json:"footers"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Role               Role      `json:"-"`
	Type               string    `json:"type,omitempty"`
	Label              string    `json:"label"`
	Data               []float64 `json:"data"`
	BorderColor        string    `json:"borderColor"`
	BackgroundColor    string    `json:"backgroundColor"`
	Fill               bool      `json:"fill"`
	Stepped            bool      `json:"stepped,omitempty"`
	Tension            float64   `json:"tension,omitempty"`
	YAxisID            string    `json:"yAxisID"`
	Order              int       `json:"order,omitempty"`
	BarPercentage      float64   `json:"barPercentage,omitempty"`
	CategoryPercentage float64   `json:"categoryPercentage,omitempty"`
}

type Options struct {
	Responsive  bool            `json:"responsive"`
	Interaction Interaction     `json:"interaction"`
	Scales      map[string]Axis `json:"scales"`
}

type Interaction struct {
	Mode      string `json:"mode"`
	Intersect bool   `json:"intersect"`
}

type Axis struct {
	Type     string     `json:"type"`
	Position string     `json:"position"`
	Min      float64    `json:"min"`
	Max      float64    `json:"max"`
	Ticks    *Ticks     `json:"ticks,omitempty"`
	Grid     *Grid      `json:"grid,omitempty"`
	Title    *AxisTitle `json:"title,omitempty"`
}

type Ticks struct {
	StepSize float64 `json:"stepSize"`
}

type Grid struct {
	DrawOnChartArea bool `json:"drawOnChartArea"`
}

type AxisTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

const (
	AxisMain      = "y-axis-main"
	AxisSecondary = "y-axis-secondary"
	AxisSingle    = "y"
	ScaleMax      = 5
)

// Dataset returns the series with the given role.
func (s Spec) Dataset(role Role) (Dataset, bool) {
	for _, d := range s.Data.Datasets {
		if d.Role == role {
			return d, true
		}
	}
	return Dataset{}, false
}
