// Package lifecycle delivers render-lifecycle signals to registered handlers
// synchronously and in registration order.
package lifecycle

import (
	"errors"
	"fmt"
	"sync"
)

type subscriber struct {
	id      string
	handler Handler
	stats   HandlerStats
}

type dispatcher struct {
	mu     sync.Mutex
	subs   []*subscriber
	closed bool
}

// New creates an empty dispatcher.
func New() Dispatcher {
	return &dispatcher{}
}

// Subscribe registers a handler under id.
func (d *dispatcher) Subscribe(id string, h Handler) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrDispatcherClosed
	}
	for _, sub := range d.subs {
		if sub.id == id {
			return ErrHandlerExists
		}
	}

	d.subs = append(d.subs, &subscriber{id: id, handler: h})
	return nil
}

// Unsubscribe removes the handler registered under id.
func (d *dispatcher) Unsubscribe(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, sub := range d.subs {
		if sub.id == id {
			d.subs = append(d.subs[:i], d.subs[i+1:]...)
			return nil
		}
	}
	return ErrHandlerNotFound
}

// Publish delivers sig to every handler, in registration order, on the
// calling goroutine. Handler errors are collected and joined; a failing
// handler does not block delivery to the rest.
func (d *dispatcher) Publish(sig Signal) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrDispatcherClosed
	}

	var errs []error
	for _, sub := range d.subs {
		if err := sub.handler(sig); err != nil {
			sub.stats.Failed++
			errs = append(errs, fmt.Errorf("%s: %s: %w", sub.id, sig, err))
			continue
		}
		sub.stats.Delivered++
	}
	return errors.Join(errs...)
}

// Stats returns delivery counters for one handler.
func (d *dispatcher) Stats(id string) (HandlerStats, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, sub := range d.subs {
		if sub.id == id {
			return sub.stats, nil
		}
	}
	return HandlerStats{}, ErrHandlerNotFound
}

// Close shuts down the dispatcher. Further Subscribe/Publish calls fail
// with ErrDispatcherClosed.
func (d *dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true
	d.subs = nil
}
