// Package notify fans out values to any number of subscribers.
package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

const sendTimeout = 200 * time.Millisecond

type subscriber[E any] struct {
	ch      chan E
	comment string
}

// Multiplexer delivers every sent value to all current subscribers.
// Subscribers that do not drain their channel within sendTimeout miss
// the value; a slow UI must never stall the animation tick.
type Multiplexer[E any] struct {
	comment string
	mu      sync.Mutex
	subs    []subscriber[E]
}

// MultiplexerSender is the sending half; only the owner of the state
// being published should hold it.
type MultiplexerSender[E any] struct {
	m *Multiplexer[E]
}

func NewMultiplexerSender[E any](comment string) (*MultiplexerSender[E], *Multiplexer[E]) {
	m := &Multiplexer[E]{comment: comment}
	return &MultiplexerSender[E]{m: m}, m
}

func (ms *MultiplexerSender[E]) Send(e E) {
	go ms.m.send(e)
}

func (m *Multiplexer[E]) Subscribe(comment string, c chan E) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, subscriber[E]{ch: c, comment: comment})
}

func (m *Multiplexer[E]) Unsubscribe(c chan E) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := slices.IndexFunc(m.subs, func(s subscriber[E]) bool { return s.ch == c })
	if i == -1 {
		panic("already unsubscribed")
	}
	m.subs = slices.Delete(m.subs, i, i+1)
}

func (m *Multiplexer[E]) send(e E) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, sub := range m.subs {
		select {
		case sub.ch <- e:
		case <-time.After(sendTimeout):
			zap.S().Warnf("multiplexer %s: subscriber %s timed out", m.comment, sub.comment)
		}
	}
}
