package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap/zapcore"
)

const (
	logPanelWidth = 340
	logMaxEntries = 60
	logLineHeight = 16
)

// Event is a single line in the event log.
type Event struct {
	Tick    int
	Source  string // e.g. "config", "job", "target"
	Level   zapcore.Level
	Message string
}

// EventLog is a ring buffer of recent events rendered beside the viewport.
type EventLog struct {
	entries []Event
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{
		entries: make([]Event, logMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (l *EventLog) Add(tick int, source string, level zapcore.Level, msg string) {
	l.entries[l.head] = Event{
		Tick:    tick,
		Source:  source,
		Level:   level,
		Message: msg,
	}
	l.head = (l.head + 1) % logMaxEntries
	if l.count < logMaxEntries {
		l.count++
	}
}

// Recent returns entries oldest first.
func (l *EventLog) Recent() []Event {
	result := make([]Event, l.count)
	for i := 0; i < l.count; i++ {
		idx := (l.head - l.count + i + logMaxEntries) % logMaxEntries
		result[i] = l.entries[idx]
	}
	return result
}

func levelColor(level zapcore.Level) color.RGBA {
	switch {
	case level >= zapcore.ErrorLevel:
		return color.RGBA{R: 220, G: 60, B: 60, A: 255}
	case level == zapcore.WarnLevel:
		return color.RGBA{R: 230, G: 170, B: 40, A: 255}
	case level == zapcore.DebugLevel:
		return color.RGBA{R: 90, G: 90, B: 110, A: 255}
	default:
		return color.RGBA{R: 80, G: 180, B: 110, A: 255}
	}
}

// Draw renders the panel at panelX spanning the full window height.
func (l *EventLog) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 12, G: 12, B: 18, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 60, G: 60, B: 90, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 18, color.RGBA{R: 24, G: 24, B: 36, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 2)

	entries := l.Recent()
	maxVisible := (panelH - 24) / logLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 22
	for i, e := range entries {
		if i >= len(entries)-3 {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 30, G: 30, B: 46, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+5), 3, 6, levelColor(e.Level), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %-6s %s", e.Tick, e.Source, e.Message), panelX+12, y)
		y += logLineHeight
	}
}
