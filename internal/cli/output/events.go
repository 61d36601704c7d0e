package output

import (
	"encoding/json"
	"io"

	"github.com/leapstack-labs/mcpi/pkg/estimator"
)

// Event types written by EventWriter.
const (
	EventRunStart    = "run_start"
	EventPoint       = "point"
	EventRunComplete = "run_complete"
)

// Event is one JSON line of a streamed run.
type Event struct {
	Type      string            `json:"type"`
	RunID     string            `json:"run_id"`
	NumPoints int               `json:"num_points,omitempty"`
	Seq       int               `json:"seq,omitempty"`
	Point     *estimator.Point  `json:"point,omitempty"`
	Result    *estimator.Result `json:"result,omitempty"`
}

// EventWriter streams run events as JSON lines.
type EventWriter struct {
	enc   *json.Encoder
	runID string
	seq   int
}

// NewEventWriter creates an event writer for one run.
func NewEventWriter(w io.Writer, runID string) *EventWriter {
	return &EventWriter{enc: json.NewEncoder(w), runID: runID}
}

// Start writes the run_start event.
func (e *EventWriter) Start(numPoints int) error {
	e.seq = 0
	return e.enc.Encode(Event{Type: EventRunStart, RunID: e.runID, NumPoints: numPoints})
}

// Point writes a point event. Sequence numbers start at 1.
func (e *EventWriter) Point(p estimator.Point) error {
	e.seq++
	return e.enc.Encode(Event{Type: EventPoint, RunID: e.runID, Seq: e.seq, Point: &p})
}

// Complete writes the run_complete event.
func (e *EventWriter) Complete(res estimator.Result) error {
	return e.enc.Encode(Event{Type: EventRunComplete, RunID: e.runID, NumPoints: res.NumPoints, Result: &res})
}
