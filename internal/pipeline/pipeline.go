// Package pipeline carries progress events from the checking driver to
// whoever renders them (the TUI, timing aggregation). Producers must treat
// sinks as slow: a sink that blocks stalls the worker that called it.
package pipeline

import "time"

// Stage describes a per-file phase of the check pipeline.
type Stage string

const (
	// StageLex is tokenization.
	StageLex Stage = "lex"
	// StageParse is declaration parsing.
	StageParse Stage = "parse"
	// StageCheck is semantic checking.
	StageCheck Stage = "check"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the file finished without error diagnostics.
	StatusDone Status = "done"
	// StatusError indicates the file produced error diagnostics or an I/O
	// failure.
	StatusError Status = "error"
	// StatusCached indicates the file was served from the disk cache.
	StatusCached Status = "cached"
)

// Event reports progress for one file (or for the whole run when File is
// empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// Sink consumes progress events. Implementations must be safe for
// concurrent use: the driver emits from its worker pool.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// NopSink drops every event.
type NopSink struct{}

func (NopSink) OnEvent(Event) {}
