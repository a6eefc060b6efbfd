package dto

import recorddto "healthlog/internal/modules/record/dto"

type RenderInput struct {
	Records []recorddto.RecordOutput
	Variant string
	// Inspect selects the point whose footer is shown; negative means the last.
	Inspect int
}

type RenderOutput struct {
	Output     string
	Variant    string
	Points     int
	Inspect    int
	InspectDay string
	Footer     string
	InstanceID int
	Live       int
}
