package usecase

import (
	"context"
	"fmt"

	"healthlog/internal/modules/chart/domain"
	"healthlog/internal/modules/chart/dto"
	chartin "healthlog/internal/modules/chart/port/in"
	"healthlog/internal/modules/chart/service"
	recorddto "healthlog/internal/modules/record/dto"
	apperrors "healthlog/internal/platform/errors"
)

type Interactor struct {
	host *service.Host
}

func NewInteractor(host *service.Host) chartin.Usecase {
	return &Interactor{host: host}
}

func (i *Interactor) Render(_ context.Context, input dto.RenderInput) (dto.RenderOutput, error) {
	variant, err := domain.ParseVariant(input.Variant)
	if err != nil {
		return dto.RenderOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	points := ToPoints(input.Records)
	inspect := clampInspect(input.Inspect, len(points))

	inst := i.host.Mount(domain.Build(points, variant))
	rendered, err := inst.Draw(inspect)
	if err != nil {
		return dto.RenderOutput{}, err
	}
	out := dto.RenderOutput{
		Output:     rendered,
		Variant:    string(variant),
		Points:     len(points),
		Inspect:    inspect,
		InstanceID: inst.ID(),
		Live:       i.host.Live(),
	}
	if inspect >= 0 {
		out.InspectDay = points[inspect].Label
		out.Footer = domain.Footer(points[inspect])
	}
	return out, nil
}

func (i *Interactor) Teardown() {
	i.host.Teardown()
}

func ToPoints(records []recorddto.RecordOutput) []domain.Point {
	points := make([]domain.Point, 0, len(records))
	for _, r := range records {
		points = append(points, domain.Point{
			Label:    r.Date,
			Pain:     r.PainLevel,
			Pills:    r.PillCount,
			Exercise: r.ExerciseDone == "yes",
			Healthy:  r.FeelsHealthy == "yes",
			Weather:  r.Weather,
			Activity: r.ActivityNote,
			Notes:    r.Notes,
		})
	}
	return points
}

func clampInspect(inspect, n int) int {
	if n == 0 {
		return -1
	}
	if inspect < 0 || inspect >= n {
		return n - 1
	}
	return inspect
}
