package bootstrap

import (
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"
)

// Observer is the structured event sink for a bootstrap run.
type Observer interface {
	// Printf emits a free-form progress line.
	Printf(format string, v ...interface{})

	// Event emits a structured event.
	Event(event Event)

	// WithFields returns an Observer that attaches the fields to every event.
	WithFields(fields map[string]string) Observer
}

// Event represents a structured bootstrap event.
type Event struct {
	Type      EventType
	Task      string
	Message   string
	Timestamp time.Time
	Fields    map[string]string
}

// EventType classifies bootstrap events.
type EventType string

const (
	// EventTaskStarted indicates a task has started.
	EventTaskStarted EventType = "task.started"
	// EventTaskCompleted indicates a task completed successfully.
	EventTaskCompleted EventType = "task.completed"
	// EventTaskFailed indicates a task failed, aborting the run.
	EventTaskFailed EventType = "task.failed"
)

// ZapObserver implements Observer on a zap logger.
type ZapObserver struct {
	logger *zap.Logger
	fields map[string]string
}

// NewZapObserver creates an Observer backed by the given logger.
func NewZapObserver(logger *zap.Logger) *ZapObserver {
	return &ZapObserver{logger: logger, fields: map[string]string{}}
}

// NewDefaultObserver builds an Observer on a production zap logger,
// falling back to a no-op logger if construction fails.
func NewDefaultObserver() Observer {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	return NewZapObserver(logger)
}

// Printf implements the Observer interface.
func (o *ZapObserver) Printf(format string, v ...interface{}) {
	o.logger.Sugar().Infof(format, v...)
}

// Event implements the Observer interface.
func (o *ZapObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	zfields := []zap.Field{
		zap.String("type", string(event.Type)),
		zap.String("task", event.Task),
	}
	for k, v := range o.fields {
		zfields = append(zfields, zap.String(k, v))
	}
	for k, v := range event.Fields {
		zfields = append(zfields, zap.String(k, v))
	}

	switch event.Type {
	case EventTaskFailed:
		o.logger.Error(event.Message, zfields...)
	default:
		o.logger.Info(event.Message, zfields...)
	}
}

// WithFields implements the Observer interface.
func (o *ZapObserver) WithFields(fields map[string]string) Observer {
	merged := make(map[string]string, len(o.fields)+len(fields))
	for k, v := range o.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &ZapObserver{logger: o.logger, fields: merged}
}

// ConsoleObserver implements Observer on the standard log package.
// Used by tests and when a plain stream is preferable to structured output.
type ConsoleObserver struct {
	fields map[string]string
}

// NewConsoleObserver creates a console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{fields: map[string]string{}}
}

// Printf implements the Observer interface.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Event implements the Observer interface.
func (o *ConsoleObserver) Event(event Event) {
	log.Printf("%s [%s] %s", event.Type, event.Task, event.Message)
}

// WithFields implements the Observer interface.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	merged := make(map[string]string, len(o.fields)+len(fields))
	for k, v := range o.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &ConsoleObserver{fields: merged}
}

// LogTaskStart logs a task start event.
func LogTaskStart(observer Observer, task string) {
	observer.Event(Event{
		Type:    EventTaskStarted,
		Task:    task,
		Message: "starting",
	})
}

// LogTaskComplete logs a task completion event.
func LogTaskComplete(observer Observer, task string, duration time.Duration) {
	observer.Event(Event{
		Type:    EventTaskCompleted,
		Task:    task,
		Message: fmt.Sprintf("completed in %v", duration.Round(time.Millisecond)),
	})
}

// LogTaskFailed logs a task failure event.
func LogTaskFailed(observer Observer, task string, err error) {
	observer.Event(Event{
		Type:    EventTaskFailed,
		Task:    task,
		Message: fmt.Sprintf("failed: %v", err),
	})
}
