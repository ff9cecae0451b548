package observer

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Concert is the state published by a Planner.
type Concert struct {
	Group    string
	Date     time.Time
	Location string
}

// FormattedDate returns the concert date as dd/mm/yyyy.
func (c Concert) FormattedDate() string {
	return c.Date.Format("02/01/2006")
}

// Observer is notified every time a Planner publishes a concert.
type Observer interface {
	Update(c Concert)
}

type subscription struct {
	id       uuid.UUID
	observer Observer
}

// Planner schedules concerts and notifies its observers about each one.
type Planner struct {
	mu            sync.RWMutex
	subscriptions []subscription
	state         Concert
	planned       bool
}

// NewPlanner creates a Planner with no observers.
func NewPlanner() *Planner {
	return &Planner{}
}

// Attach subscribes o and returns the id needed to Detach it. Observers are
// notified in attach order.
func (p *Planner) Attach(o Observer) uuid.UUID {
	id := uuid.New()
	p.mu.Lock()
	p.subscriptions = append(p.subscriptions, subscription{id: id, observer: o})
	p.mu.Unlock()
	slog.Debug("observer attached", "id", id)
	return id
}

// Detach removes the subscription with the given id. It reports whether the
// subscription existed.
func (p *Planner) Detach(id uuid.UUID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, s := range p.subscriptions {
		if s.id == id {
			p.subscriptions = append(p.subscriptions[:i:i], p.subscriptions[i+1:]...)
			slog.Debug("observer detached", "id", id)
			return true
		}
	}
	return false
}

// Len returns the number of attached observers.
func (p *Planner) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.subscriptions)
}

// State returns the last planned concert, if any.
func (p *Planner) State() (Concert, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state, p.planned
}

// Plan records a concert and notifies every observer.
func (p *Planner) Plan(group string, date time.Time, location string) Concert {
	c := Concert{Group: group, Date: date, Location: location}

	p.mu.Lock()
	p.state = c
	p.planned = true
	p.mu.Unlock()

	slog.Info("concert planned",
		"group", c.Group,
		"date", c.FormattedDate(),
		"location", c.Location,
	)

	p.Notify()
	return c
}

// Notify sends the current state to every observer. Nothing is sent before
// the first Plan.
func (p *Planner) Notify() {
	p.mu.RLock()
	if !p.planned {
		p.mu.RUnlock()
		return
	}
	state := p.state
	subs := make([]subscription, len(p.subscriptions))
	copy(subs, p.subscriptions)
	p.mu.RUnlock()

	for _, s := range subs {
		s.observer.Update(state)
	}
}
