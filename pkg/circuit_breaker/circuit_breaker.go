package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

func (s Status) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	}
	return "unknown"
}

type Config struct {
	// RecordLength is how many of the latest calls are tracked.
	RecordLength int `envconfig:"CB_RECORD_LENGTH" default:"20"`
	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration `envconfig:"CB_TIMEOUT" default:"30s"`
	// Percentile of failed tracked calls that opens the breaker.
	Percentile float64 `envconfig:"CB_PERCENTILE" default:"0.5"`
	// RecoveryRequests is the number of consecutive half-open successes needed to close.
	RecoveryRequests int `envconfig:"CB_RECOVERY_REQUESTS" default:"3"`
}

type circuitBreaker struct {
	mu sync.Mutex
	// CLOSED - work!, OPEN - fail!, HALFOPEN - work until fail!
	state        Status
	recordLength int
	timeout      time.Duration

	lastAttemptedAt time.Time
	percentile      float64
	// buffer is a ring of call outcomes, true means failed
	buffer []bool
	pos    int

	recoveryRequests int
	successCount     int
	now              func() time.Time
}

type CircuitBreaker interface {
	Call(service func() error) error
	State() Status
	Reset()
}

func New(recordLength int, timeout time.Duration, percentile float64, recoveryRequests int) CircuitBreaker {
	return newCircuitBreaker(recordLength, timeout, percentile, recoveryRequests, time.Now)
}

func NewFromConfig(cfg Config) CircuitBreaker {
	return New(cfg.RecordLength, cfg.Timeout, cfg.Percentile, cfg.RecoveryRequests)
}

func newCircuitBreaker(recordLength int, timeout time.Duration, percentile float64, recoveryRequests int, now func() time.Time) *circuitBreaker {
	if recordLength <= 0 {
		recordLength = 1
	}
	return &circuitBreaker{
		state:            Closed,
		recordLength:     recordLength,
		timeout:          timeout,
		percentile:       percentile,
		buffer:           make([]bool, recordLength),
		recoveryRequests: recoveryRequests,
		now:              now,
	}
}

var (
	ErrOpenCB = errors.New("circuit breaker is open")
)

func (cb *circuitBreaker) Call(service func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if elapsed := cb.now().Sub(cb.lastAttemptedAt); elapsed > cb.timeout {
			cb.state = HalfOpen
			cb.successCount = 0
		} else {
			cb.mu.Unlock()
			return ErrOpenCB
		}
	}
	cb.mu.Unlock()

	err := service()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.buffer[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % cb.recordLength

	if cb.state == HalfOpen {
		if err != nil {
			cb.successCount = 0
			cb.state = Open
			cb.lastAttemptedAt = cb.now()
		} else {
			cb.successCount++
			if cb.successCount >= cb.recoveryRequests {
				cb.reset()
			}
		}
		return err
	}

	// only CLOSED
	fails := 0
	for _, failed := range cb.buffer {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(cb.recordLength) >= cb.percentile {
		cb.state = Open
		cb.successCount = 0
		cb.lastAttemptedAt = cb.now()
	}

	return err
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.buffer {
		cb.buffer[i] = false
	}
	cb.successCount = 0
	cb.pos = 0
	cb.state = Closed
}
