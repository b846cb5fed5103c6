package service

import (
	"sync"
	"time"

	"github.com/minesite/dispatch-form/internal/core/ports"
)

// DefaultNoticeTTL is how long a submit notice stays visible.
const DefaultNoticeTTL = 3 * time.Second

// noticeBoard holds at most one notice and clears it after ttl. Posting a new
// notice cancels the pending clear; Close cancels it for good.
type noticeBoard struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	notice *ports.Notice
	timer  *time.Timer
	closed bool
}

func newNoticeBoard(ttl time.Duration, now func() time.Time) *noticeBoard {
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}
	return &noticeBoard{ttl: ttl, now: now}
}

func (b *noticeBoard) Post(kind ports.NoticeKind, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.stopLocked()

	n := &ports.Notice{Kind: kind, Message: message, ExpiresAt: b.now().Add(b.ttl)}
	b.notice = n
	b.timer = time.AfterFunc(b.ttl, func() { b.expire(n) })
}

// expire clears n unless a newer notice replaced it in the meantime.
func (b *noticeBoard) expire(n *ports.Notice) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.notice == n {
		b.notice = nil
		b.timer = nil
	}
}

func (b *noticeBoard) Current() *ports.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.notice == nil {
		return nil
	}
	n := *b.notice
	return &n
}

func (b *noticeBoard) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked()
	b.closed = true
}

func (b *noticeBoard) stopLocked() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
