package scroll

import "sort"

// State is the playback state of the controller.
type State int

const (
	Stopped State = iota
	Playing
	PausedAtHeading
	PausedManual
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case PausedAtHeading:
		return "paused at heading"
	case PausedManual:
		return "paused"
	default:
		return "stopped"
	}
}

// Bounds for user-adjustable settings. Mutations outside these ranges
// clamp silently rather than erroring.
const (
	MinSpeed = 10.0 // px/sec
	MaxSpeed = 500.0

	MinFontSize = 8.0
	MaxFontSize = 72.0

	MinPauseDuration = 0.5 // seconds
	MaxPauseDuration = 10.0
)

// Defaults match the tool's initial settings.
const (
	DefaultSpeed         = 50.0
	DefaultFontSize      = 18.0
	DefaultPauseDuration = 2.0
	SpeedStep            = 10.0
)

// Controller owns playback state and advances the scroll position once
// per rendered frame. It performs no rendering or measurement itself;
// the caller supplies elapsed wall-clock time, heading offsets and the
// content height on every advance.
type Controller struct {
	state    State
	position float64
	speed    float64
	fontSize float64

	pauseAtHeadings bool
	autoRestart     bool
	pauseDuration   float64
	pauseRemaining  float64
}

// NewController returns a stopped controller with default settings.
func NewController() *Controller {
	return &Controller{
		speed:         DefaultSpeed,
		fontSize:      DefaultFontSize,
		pauseDuration: DefaultPauseDuration,
	}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Position() float64 { return c.position }

func (c *Controller) Speed() float64 { return c.speed }

func (c *Controller) FontSize() float64 { return c.fontSize }

func (c *Controller) PauseDuration() float64 { return c.pauseDuration }

func (c *Controller) PauseAtHeadings() bool { return c.pauseAtHeadings }

func (c *Controller) AutoRestart() bool { return c.autoRestart }

func (c *Controller) PauseRemaining() float64 { return c.pauseRemaining }

// Start begins playback from the current position.
func (c *Controller) Start() {
	if c.state == Stopped {
		c.state = Playing
	}
}

// TogglePlay flips between playing and manually paused. A pending
// heading pause is cancelled by a manual pause. From Stopped it starts
// playback.
func (c *Controller) TogglePlay() {
	switch c.state {
	case Stopped:
		c.state = Playing
	case Playing:
		c.state = PausedManual
	case PausedAtHeading:
		c.pauseRemaining = 0
		c.state = PausedManual
	case PausedManual:
		c.state = Playing
	}
}

// Restart resets position to the top. Playback in progress (including
// an automatic heading pause) resumes immediately; a manual pause or a
// stop leaves the controller stopped at the top.
func (c *Controller) Restart() {
	wasPlaying := c.state == Playing || c.state == PausedAtHeading
	c.position = 0
	c.pauseRemaining = 0
	if wasPlaying {
		c.state = Playing
	} else {
		c.state = Stopped
	}
}

// SetSpeed sets the scroll speed in px/sec, clamped to [MinSpeed, MaxSpeed].
func (c *Controller) SetSpeed(v float64) {
	c.speed = clamp(v, MinSpeed, MaxSpeed)
}

// AdjustSpeed moves the speed by delta px/sec, clamped.
func (c *Controller) AdjustSpeed(delta float64) {
	c.SetSpeed(c.speed + delta)
}

// SetFontSize sets the base font size, clamped to [MinFontSize, MaxFontSize].
func (c *Controller) SetFontSize(v float64) {
	c.fontSize = clamp(v, MinFontSize, MaxFontSize)
}

// AdjustFontSize moves the font size by delta, clamped.
func (c *Controller) AdjustFontSize(delta float64) {
	c.SetFontSize(c.fontSize + delta)
}

// SetPauseDuration sets the heading pause length in seconds, clamped
// to [MinPauseDuration, MaxPauseDuration].
func (c *Controller) SetPauseDuration(v float64) {
	c.pauseDuration = clamp(v, MinPauseDuration, MaxPauseDuration)
}

func (c *Controller) SetPauseAtHeadings(on bool) { c.pauseAtHeadings = on }

func (c *Controller) SetAutoRestart(on bool) { c.autoRestart = on }

// SetPosition moves the scroll position directly (manual nudge),
// clamped to [0, contentHeight].
func (c *Controller) SetPosition(pos, contentHeight float64) {
	c.position = clamp(pos, 0, max(contentHeight, 0))
}

// ClampPosition keeps the position inside the content after a reload
// or resize changed the content height.
func (c *Controller) ClampPosition(contentHeight float64) {
	c.SetPosition(c.position, contentHeight)
}

// Advance moves the position by speed*elapsed. The result depends only
// on the total elapsed wall-clock time, not on how many frames covered
// it. headingOffsets must be sorted ascending.
//
// While paused at a heading the elapsed time is charged against the
// pause timer first; any remainder past the timer becomes movement, so
// a long frame straddling the end of a pause loses no time.
func (c *Controller) Advance(elapsed float64, headingOffsets []float64, contentHeight float64) {
	if elapsed <= 0 {
		return
	}
	if c.state == PausedAtHeading {
		c.pauseRemaining -= elapsed
		if c.pauseRemaining > 0 {
			return
		}
		carry := -c.pauseRemaining
		c.pauseRemaining = 0
		c.state = Playing
		elapsed = carry
		if elapsed <= 0 {
			return
		}
	}
	if c.state != Playing {
		return
	}

	candidate := c.position + c.speed*elapsed

	if c.pauseAtHeadings {
		if h, ok := nextHeading(headingOffsets, c.position, candidate); ok {
			c.position = h
			c.state = PausedAtHeading
			c.pauseRemaining = c.pauseDuration
			return
		}
	}

	if candidate >= contentHeight {
		if c.autoRestart {
			c.position = 0
			return
		}
		c.position = max(contentHeight, 0)
		c.state = Stopped
		return
	}
	c.position = candidate
}

// nextHeading returns the smallest offset in the open-closed interval
// (position, candidate]. Scrolling stops at the next heading reached
// and never skips past several in one frame; duplicate offsets at the
// same position pause once, first match wins.
func nextHeading(offsets []float64, position, candidate float64) (float64, bool) {
	i := sort.SearchFloat64s(offsets, position)
	for i < len(offsets) && offsets[i] <= position {
		i++
	}
	if i < len(offsets) && offsets[i] <= candidate {
		return offsets[i], true
	}
	return 0, false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
