package decorator

import "log/slog"

// Notifier is implemented by the base notifier and by every decorator, so
// decorators can wrap each other without limit.
type Notifier interface {
	Notify() string
}

// Base is the undecorated notifier.
type Base struct{}

func (Base) Notify() string {
	return "default notifier: nothing done"
}

// Decorator delegates to the notifier it wraps.
type Decorator struct {
	wrapped Notifier
}

func (d Decorator) Notify() string {
	return d.wrapped.Notify()
}

// SMS adds a text message to the wrapped notification.
type SMS struct {
	Decorator
}

func NewSMS(n Notifier) *SMS {
	return &SMS{Decorator{wrapped: n}}
}

func (s *SMS) Notify() string {
	return s.Decorator.Notify() + " - " + s.send()
}

func (s *SMS) send() string {
	slog.Debug("sending sms")
	return "SMS sent!"
}

// Email adds an email to the wrapped notification.
type Email struct {
	Decorator
}

func NewEmail(n Notifier) *Email {
	return &Email{Decorator{wrapped: n}}
}

func (e *Email) Notify() string {
	return e.Decorator.Notify() + " - " + e.send()
}

func (e *Email) send() string {
	slog.Debug("sending email")
	return "Email sent!"
}

// Client only knows about the Notifier interface.
type Client struct {
	notifier Notifier
}

func NewClient(n Notifier) *Client {
	return &Client{notifier: n}
}

func (c *Client) Notify() string {
	return c.notifier.Notify()
}
