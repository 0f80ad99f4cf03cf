package logger

import "controlling_window/internal/vent"

// VentTracer reports every decider branch at debug level.
func (l *Logger) VentTracer() vent.Tracer {
	return vent.TracerFunc(func(b vent.Branch, in vent.Input) {
		l.Debugw("vent_branch",
			"branch", string(b),
			"reason", b.Description(),
			"desired_c", in.DesiredC,
			"inside_c", in.InsideC,
			"outside_c", in.OutsideC,
			"favorable", in.Favorable,
		)
	})
}
