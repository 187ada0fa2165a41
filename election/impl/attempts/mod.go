package attempts

import (
	"sync"
	"time"
)

// Limiter counts consecutive failed authentications per voter.
type Limiter interface {
	// Locked tells whether the key has used up its attempts
	Locked(key string) bool

	// Fail records a failed attempt and returns the attempts left, -1 if
	// unlimited
	Fail(key string) int

	// Reset forgets about the key, after a success or a removal
	Reset(key string)

	Clear()
}

type attemptData struct {
	failures int
	lockedAt time.Time
}

type limiter struct {
	sync.Mutex
	max      int
	lockout  time.Duration
	now      func() time.Time
	attempts map[string]*attemptData
}

// New returns a limiter allowing max consecutive failures. max <= 0 means
// unlimited. A lockout of 0 keeps the key locked until Reset.
func New(max int, lockout time.Duration, now func() time.Time) Limiter {
	if now == nil {
		now = time.Now
	}

	return &limiter{
		max:      max,
		lockout:  lockout,
		now:      now,
		attempts: make(map[string]*attemptData),
	}
}

// Locked implements Limiter
func (l *limiter) Locked(key string) bool {
	if l.max <= 0 {
		return false
	}

	l.Lock()
	defer l.Unlock()

	data, ok := l.attempts[key]
	if !ok || data.failures < l.max {
		return false
	}

	// lock expired
	if l.lockout > 0 && !l.now().Before(data.lockedAt.Add(l.lockout)) {
		delete(l.attempts, key)
		return false
	}

	return true
}

// Fail implements Limiter
func (l *limiter) Fail(key string) int {
	if l.max <= 0 {
		return -1
	}

	l.Lock()
	defer l.Unlock()

	data, ok := l.attempts[key]
	if !ok {
		data = &attemptData{}
		l.attempts[key] = data
	}

	if data.failures < l.max {
		data.failures++
	}
	if data.failures == l.max && data.lockedAt.IsZero() {
		data.lockedAt = l.now()
	}

	return l.max - data.failures
}

// Reset implements Limiter
func (l *limiter) Reset(key string) {
	l.Lock()
	defer l.Unlock()

	delete(l.attempts, key)
}

// Clear implements Limiter
func (l *limiter) Clear() {
	l.Lock()
	defer l.Unlock()

	l.attempts = make(map[string]*attemptData)
}
