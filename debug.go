package polymorph

import (
	"time"

	"github.com/rs/zerolog"
)

// debugLogInterval is how often accumulated frame timings are logged.
const debugLogInterval = time.Second

// debugStats accumulates per-tick timings while RunConfig.Debug is set.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	ticks      int
	frames     int
	since      time.Time
	lastRegens int
}

func (d *debugStats) reset(now time.Time) {
	d.updateTime, d.drawTime = 0, 0
	d.ticks, d.frames = 0, 0
	d.since = now
}

// logRetarget emits an event for every regeneration since the last call.
func (d *debugStats) logRetarget(log zerolog.Logger, m *MorphingShape) {
	if m.Regenerations() == d.lastRegens {
		return
	}
	d.lastRegens = m.Regenerations()
	target := m.Target()
	b := target.Bounds()
	log.Debug().
		Int("regenerations", d.lastRegens).
		Float64("elapsed", m.Elapsed()).
		Float64("width", b.Width).
		Float64("height", b.Height).
		Msg("new target polygon")
}

// logTimings emits averaged timings once per debugLogInterval.
func (d *debugStats) logTimings(log zerolog.Logger, now time.Time) {
	if d.since.IsZero() {
		d.reset(now)
		return
	}
	if now.Sub(d.since) < debugLogInterval {
		return
	}
	ev := log.Debug().Int("ticks", d.ticks).Int("frames", d.frames)
	if d.ticks > 0 {
		ev = ev.Dur("update_avg", d.updateTime/time.Duration(d.ticks))
	}
	if d.frames > 0 {
		ev = ev.Dur("draw_avg", d.drawTime/time.Duration(d.frames))
	}
	ev.Msg("frame timings")
	d.reset(now)
}
