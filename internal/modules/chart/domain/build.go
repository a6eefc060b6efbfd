package domain

import "strings"

// Build lays out points as a chart of the given variant. It does not reorder
// or filter.
func Build(points []Point, variant Variant) Spec {
	labels := make([]string, len(points))
	footers := make([]string, len(points))
	pain := make([]float64, len(points))
	pills := make([]float64, len(points))
	exercise := make([]float64, len(points))
	healthy := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.Label
		footers[i] = Footer(p)
		pain[i] = float64(p.Pain)
		pills[i] = float64(p.Pills)
		exercise[i] = flag(p.Exercise)
		healthy[i] = flag(p.Healthy)
	}

	if variant == VariantLine {
		return lineSpec(labels, footers, pain, pills, exercise, healthy)
	}
	for i := range exercise {
		exercise[i] *= ScaleMax
	}
	return comboSpec(labels, footers, pain, pills, exercise)
}

func lineSpec(labels, footers []string, pain, pills, exercise, healthy []float64) Spec {
	return Spec{
		Type: "line",
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{
				{Role: RolePain, Label: "Pain (1-5)", Data: pain, BorderColor: "rgba(255, 99, 132, 1)", BackgroundColor: "rgba(255, 99, 132, 0.2)", YAxisID: AxisMain},
				{Role: RolePills, Label: "Pills (0-2)", Data: pills, BorderColor: "rgba(54, 162, 235, 1)", BackgroundColor: "rgba(54, 162, 235, 0.2)", YAxisID: AxisMain},
				{Role: RoleExercise, Label: "Exercise done (yes=1, no=0)", Data: exercise, BorderColor: "rgba(75, 192, 192, 1)", BackgroundColor: "rgba(75, 192, 192, 0.2)", Stepped: true, YAxisID: AxisSecondary},
				{Role: RoleHealthy, Label: "Feels healthy (yes=1, no=0)", Data: healthy, BorderColor: "rgba(255, 206, 86, 1)", BackgroundColor: "rgba(255, 206, 86, 0.2)", Stepped: true, YAxisID: AxisSecondary},
			},
		},
		Options: Options{
			Responsive:  true,
			Interaction: Interaction{Mode: "index"},
			Scales: map[string]Axis{
				AxisMain: {
					Type: "linear", Position: "left", Min: 0, Max: ScaleMax,
					Title: &AxisTitle{Display: true, Text: "Pain / Pills"},
				},
				AxisSecondary: {
					Type: "linear", Position: "right", Min: 0, Max: 1,
					Ticks: &Ticks{StepSize: 1},
					Grid:  &Grid{DrawOnChartArea: false},
					Title: &AxisTitle{Display: true, Text: "Yes / No"},
				},
			},
		},
		Footers: footers,
	}
}

func comboSpec(labels, footers []string, pain, pills, exercise []float64) Spec {
	return Spec{
		Type: "bar",
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{
				{Role: RolePain, Type: "line", Label: "Pain (1-5)", Data: pain, BorderColor: "rgba(255, 99, 132, 1)", BackgroundColor: "rgba(255, 99, 132, 0.2)", Tension: 0.4, YAxisID: AxisSingle, Order: 1},
				{Role: RolePills, Type: "line", Label: "Pills (0-2)", Data: pills, BorderColor: "rgba(54, 162, 235, 1)", BackgroundColor: "rgba(54, 162, 235, 0.2)", Tension: 0.4, YAxisID: AxisSingle, Order: 1},
				{Role: RoleExercise, Type: "bar", Label: "Exercise done", Data: exercise, BorderColor: "rgba(75, 192, 192, 0)", BackgroundColor: "rgba(75, 192, 192, 0.15)", YAxisID: AxisSingle, Order: 2, BarPercentage: 1, CategoryPercentage: 1},
			},
		},
		Options: Options{
			Responsive:  true,
			Interaction: Interaction{Mode: "index"},
			Scales: map[string]Axis{
				AxisSingle: {
					Type: "linear", Position: "left", Min: 0, Max: ScaleMax,
					Ticks: &Ticks{StepSize: 1},
				},
			},
		},
		Footers: footers,
	}
}

// Footer joins the non-empty free-text fields of p, one per line.
func Footer(p Point) string {
	var sb strings.Builder
	if p.Weather != "" {
		sb.WriteString("Weather: " + p.Weather + "\n")
	}
	if p.Activity != "" {
		sb.WriteString("Activity: " + p.Activity + "\n")
	}
	if p.Notes != "" {
		sb.WriteString("Notes: " + p.Notes + "\n")
	}
	return strings.TrimSpace(sb.String())
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
