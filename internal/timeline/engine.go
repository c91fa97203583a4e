package timeline

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/cheerioskun/slotpick/internal/broadcast"
	"github.com/cheerioskun/slotpick/internal/models"
	"github.com/cheerioskun/slotpick/internal/utils"
)

// Origin tags the durations this engine publishes
const Origin = "timeline"

const (
	// DefaultMinMinutes is the shortest selection a resize may produce
	DefaultMinMinutes = 1
	// DefaultMaxMinutes is the longest selection a resize may produce, and the initial length
	DefaultMaxMinutes = 10
)

// Mode is the interaction state of the engine
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizingLeft
	ModeResizingRight
)

// String returns a human-readable representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModeResizingLeft:
		return "resizing-left"
	case ModeResizingRight:
		return "resizing-right"
	default:
		return "unknown"
	}
}

// Target is what a pointer-down landed on
type Target int

const (
	TargetBox Target = iota
	TargetLeftHandle
	TargetRightHandle
)

// transitions maps a pointer-down target to the mode it starts
var transitions = map[Target]Mode{
	TargetBox:         ModeDragging,
	TargetLeftHandle:  ModeResizingLeft,
	TargetRightHandle: ModeResizingRight,
}

// State is the selection as the rendering layer sees it
type State struct {
	Left  float64
	Width float64
	Valid bool
	Mode  Mode
}

// Right returns the right edge of the selection
func (s State) Right() float64 {
	return s.Left + s.Width
}

// Span is an allowed range laid out on the timeline
type Span struct {
	Range models.AllowedRange
	Left  float64
	Width float64
}

// Channel is the last-value duration broadcast the engine talks to
type Channel interface {
	Publish(v broadcast.Value)
	Subscribe(handler func(broadcast.Value)) func()
}

// Option configures an Engine
type Option func(*Engine)

// WithChannel connects the engine to a shared duration channel
func WithChannel(ch Channel) Option {
	return func(e *Engine) {
		e.channel = ch
	}
}

// WithDurationLimits overrides the 1 and 10 minute resize limits
func WithDurationLimits(minMinutes, maxMinutes float64) Option {
	return func(e *Engine) {
		e.minMinutes = minMinutes
		e.maxMinutes = maxMinutes
	}
}

type clockSpan struct {
	start, end models.Clock
}

// Engine owns the selection box on a timeline and drives it from pointer events.
// It is not safe for concurrent use; one surface owns it at a time.
type Engine struct {
	cfg     Config
	mapper  *Mapper
	allowed []clockSpan

	// selection
	present bool
	left    float64
	width   float64
	valid   bool
	mode    Mode

	// interaction snapshot, meaningful while mode != ModeIdle
	anchorX     float64
	anchorWidth float64
	anchorLeft  float64

	minMinutes float64
	maxMinutes float64

	duration     int
	label        string
	durationText string

	channel     Channel
	unsubscribe func()
}

// NewEngine validates cfg, lays the timeline out at width pixels and places the
// initial selection on the first allowed range
func NewEngine(cfg Config, width float64, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mapper, err := NewMapper(cfg.StartHour, cfg.EndHour, width)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:        cfg,
		mapper:     mapper,
		minMinutes: DefaultMinMinutes,
		maxMinutes: DefaultMaxMinutes,
	}
	for _, opt := range opts {
		opt(e)
	}
	if !(e.minMinutes > 0) || e.maxMinutes < e.minMinutes {
		return nil, fmt.Errorf("%w: %v-%v minutes", ErrInvalidDuration, e.minMinutes, e.maxMinutes)
	}
	// a box wider than the track could never be dragged back inside it
	if e.maxMinutes > float64(cfg.TotalMinutes()) {
		return nil, fmt.Errorf("%w: %v minutes exceeds the %d minute timeline",
			ErrInvalidDuration, e.maxMinutes, cfg.TotalMinutes())
	}

	for _, r := range cfg.AllowedRanges {
		// already validated above
		start, end, _ := r.Bounds()
		e.allowed = append(e.allowed, clockSpan{start: start, end: end})
	}

	if e.channel != nil {
		e.unsubscribe = e.channel.Subscribe(e.receive)
	}

	e.placeInitial()
	return e, nil
}

// Close detaches the engine from its channel
func (e *Engine) Close() {
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
}

func (e *Engine) placeInitial() {
	if len(e.allowed) == 0 {
		utils.Debug("timeline: no allowed ranges, selection hidden")
		return
	}

	e.present = true
	e.left = e.mapper.ClockToPixels(e.allowed[0].start)
	e.width = e.initialWidth()
	// the first range is trusted without a containment check
	e.valid = true
	e.refresh()

	utils.Debug("timeline: initial selection left=%.2f width=%.2f", e.left, e.width)
}

func (e *Engine) initialWidth() float64 {
	width := math.Floor(e.MaxWidth())
	if width < e.MinWidth() {
		// flooring would leave the box narrower than any resize could produce
		width = e.MaxWidth()
	}
	return width
}

// Config returns the configuration the engine was built from
func (e *Engine) Config() Config {
	return e.cfg
}

// Mapper returns the current coordinate mapper
func (e *Engine) Mapper() *Mapper {
	return e.mapper
}

// Width returns the timeline width in pixels
func (e *Engine) Width() float64 {
	return e.mapper.Width()
}

// MinWidth is the width of the shortest allowed selection
func (e *Engine) MinWidth() float64 {
	return e.mapper.MinutesToPixels(e.minMinutes)
}

// MaxWidth is the width of the longest allowed selection
func (e *Engine) MaxWidth() float64 {
	return e.mapper.MinutesToPixels(e.maxMinutes)
}

// Selection returns the current selection; false means there is no selection to draw
func (e *Engine) Selection() (State, bool) {
	if !e.present {
		return State{}, false
	}
	return State{Left: e.left, Width: e.width, Valid: e.valid, Mode: e.mode}, true
}

// Mode returns the interaction state
func (e *Engine) Mode() Mode {
	return e.mode
}

// DurationMinutes returns the selection length rounded to whole minutes
func (e *Engine) DurationMinutes() int {
	return e.duration
}

// RangeLabel returns the selection as "h:mm am a h:mm am"
func (e *Engine) RangeLabel() string {
	return e.label
}

// DurationText is the duration currently on display. It is the engine's own
// value unless another widget published more recently.
func (e *Engine) DurationText() string {
	return e.durationText
}

// TickLabels returns the axis labels
func (e *Engine) TickLabels() []string {
	return e.cfg.TickLabels()
}

// AllowedSpans lays the allowed ranges out on the timeline in start order
func (e *Engine) AllowedSpans() []Span {
	sorted := models.SortRanges(e.cfg.AllowedRanges)
	spans := make([]Span, 0, len(sorted))
	for _, r := range sorted {
		start, end, _ := r.Bounds()
		left := e.mapper.ClockToPixels(start)
		spans = append(spans, Span{
			Range: r,
			Left:  left,
			Width: e.mapper.ClockToPixels(end) - left,
		})
	}
	return spans
}

// Contains reports whether [left, left+width] lies entirely within a single allowed range
func (e *Engine) Contains(left, width float64) bool {
	right := left + width
	for _, r := range e.allowed {
		if left >= e.mapper.ClockToPixels(r.start) && right <= e.mapper.ClockToPixels(r.end) {
			return true
		}
	}
	return false
}

// PointerDown starts an interaction. It is ignored when there is no selection
// or an interaction is already running.
func (e *Engine) PointerDown(x float64, target Target) bool {
	if !e.present || e.mode != ModeIdle || math.IsNaN(x) {
		return false
	}
	mode, ok := transitions[target]
	if !ok {
		return false
	}

	e.mode = mode
	if mode == ModeDragging {
		e.anchorX = x - e.left
	} else {
		e.anchorX = x
		e.anchorWidth = e.width
		e.anchorLeft = e.left
	}

	utils.Debug("timeline: %s started at x=%.2f", mode, x)
	return true
}

// PointerMove feeds one pointer position into the running interaction.
// It returns false when idle. Out-of-range coordinates are clamped, never rejected.
func (e *Engine) PointerMove(x float64) bool {
	if e.mode == ModeIdle || math.IsNaN(x) {
		return false
	}

	switch e.mode {
	case ModeDragging:
		e.drag(x)
	case ModeResizingLeft:
		e.resizeLeft(x)
	case ModeResizingRight:
		e.resizeRight(x)
	}

	e.valid = e.Contains(e.left, e.width)
	e.refresh()
	return true
}

// PointerUp ends the running interaction whatever the selection's validity
func (e *Engine) PointerUp() {
	if e.mode == ModeIdle {
		return
	}

	utils.Debug("timeline: %s ended left=%.2f width=%.2f valid=%t", e.mode, e.left, e.width, e.valid)
	e.mode = ModeIdle
	e.refresh()
}

func (e *Engine) drag(x float64) {
	maxLeft := math.Max(0, e.mapper.Width()-e.width)
	e.left = clamp(x-e.anchorX, 0, maxLeft)
}

func (e *Engine) resizeLeft(x float64) {
	delta := e.anchorX - x
	newWidth := clamp(e.anchorWidth+delta, e.MinWidth(), e.MaxWidth())
	newLeft := math.Max(0, e.anchorLeft-delta)

	// past the right boundary the frame is dropped rather than snapped
	if newLeft+newWidth <= e.mapper.Width() {
		e.left = newLeft
		e.width = newWidth
	}
}

func (e *Engine) resizeRight(x float64) {
	delta := x - e.anchorX
	newWidth := clamp(e.anchorWidth+delta, e.MinWidth(), e.MaxWidth())

	if e.anchorLeft+newWidth <= e.mapper.Width() {
		e.width = newWidth
	}
}

// Nudge drags the selection by delta pixels as a complete down/move/up sequence
func (e *Engine) Nudge(delta float64) bool {
	if !e.PointerDown(e.left, TargetBox) {
		return false
	}
	e.PointerMove(e.left + delta)
	e.PointerUp()
	return true
}

// ResizeBy moves one edge of the selection by delta pixels as a complete
// down/move/up sequence on that edge's handle
func (e *Engine) ResizeBy(handle Target, delta float64) bool {
	var x float64
	switch handle {
	case TargetLeftHandle:
		x = e.left
	case TargetRightHandle:
		x = e.left + e.width
	default:
		return false
	}

	if !e.PointerDown(x, handle) {
		return false
	}
	e.PointerMove(x + delta)
	e.PointerUp()
	return true
}

// SetWidth relays the timeline out at a new width, keeping the selection at the
// same times of day
func (e *Engine) SetWidth(width float64) error {
	mapper, err := NewMapper(e.cfg.StartHour, e.cfg.EndHour, width)
	if err != nil {
		return err
	}

	scale := width / e.mapper.Width()
	e.mapper = mapper

	e.left *= scale
	e.width *= scale
	e.anchorX *= scale
	e.anchorLeft *= scale
	e.anchorWidth *= scale

	if e.present {
		e.refresh()
	}
	return nil
}

// TimeRange returns the selection as wall-clock times on the given day
func (e *Engine) TimeRange(day time.Time) (*models.TimeRange, bool) {
	if !e.present {
		return nil, false
	}
	tr, err := models.ClockRange(day, e.mapper.PixelsToClock(e.left), e.mapper.PixelsToClock(e.left+e.width))
	if err != nil {
		return nil, false
	}
	return tr, true
}

// refresh recomputes the derived duration and label and publishes the duration
func (e *Engine) refresh() {
	e.duration = int(math.Round(e.mapper.PixelsToMinutes(e.width)))
	e.label = fmt.Sprintf("%s a %s",
		e.mapper.PixelsToClock(e.left).Format12(),
		e.mapper.PixelsToClock(e.left+e.width).Format12())

	text := strconv.Itoa(e.duration)
	e.durationText = text
	if e.channel != nil {
		e.channel.Publish(broadcast.Value{Text: text, Origin: Origin})
	}
}

// receive shows durations published by other widgets without recomputing
func (e *Engine) receive(v broadcast.Value) {
	if v.Origin == Origin {
		return
	}
	e.durationText = v.Text
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
