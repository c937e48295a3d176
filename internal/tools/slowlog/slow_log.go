package slowlog

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Logger interface {
	Start(name string)
	Stop(name string) time.Duration
	Timings() map[string]time.Duration
}

type slowLogger struct {
	log           *zerolog.Logger
	ongoingTimers map[string]time.Time
	timings       map[string]time.Duration
	sync.Mutex
}

// Start (re)starts the named timer.
func (s *slowLogger) Start(name string) {
	s.Lock()
	s.ongoingTimers[name] = time.Now()
	s.Unlock()
}

// Stop logs and returns the time since Start. Stopping a timer that was never
// started returns zero and logs nothing.
func (s *slowLogger) Stop(name string) time.Duration {
	s.Lock()
	defer s.Unlock()

	start, ok := s.ongoingTimers[name]
	if !ok {
		return 0
	}
	delete(s.ongoingTimers, name)

	duration := time.Since(start)
	s.timings[name] += duration

	s.log.Debug().
		Float64("duration", duration.Seconds()).
		Str("breakpoint_name", name).
		Msg("")

	return duration
}

// Timings returns the accumulated duration of every stopped timer.
func (s *slowLogger) Timings() map[string]time.Duration {
	s.Lock()
	defer s.Unlock()

	timings := make(map[string]time.Duration, len(s.timings))
	for name, duration := range s.timings {
		timings[name] = duration
	}

	return timings
}

func CreateLogger(log *zerolog.Logger, operation string) *slowLogger {
	logger := log.With().
		Str("label", "slowlog").
		Str("operation", operation).
		Logger()

	return &slowLogger{
		log:           &logger,
		ongoingTimers: make(map[string]time.Time),
		timings:       make(map[string]time.Duration),
	}
}
