package readers

import (
	"github.com/reusee/rsvp/fixations"
	"github.com/reusee/rsvp/rates"
)

// Frame is what a surface needs to repaint after a step.
type Frame struct {
	Presentation fixations.Presentation
	Position     int
	Total        int
	Phase        Phase
	Rate         rates.Rate
}

func (f Frame) IsPlaying() bool {
	return f.Phase == Playing
}

// Surface paints frames. Present is called inside a controller step and must
// return without waiting on anything that may call back into the controller.
type Surface interface {
	Present(Frame)
}

type SurfaceFunc func(Frame)

var _ Surface = SurfaceFunc(nil)

func (s SurfaceFunc) Present(frame Frame) {
	s(frame)
}
