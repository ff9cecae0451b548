package observer

import (
	"fmt"
	"io"
	"slices"
	"sync"
)

// Fan wants to know when one of the groups they follow plays in their town.
// Update may be called from several goroutines.
type Fan struct {
	Name     string
	Location string
	Groups   []string

	mu       sync.Mutex
	out      io.Writer
	notified int
}

// NewFan creates a Fan writing its notifications to out.
func NewFan(name, location string, groups []string, out io.Writer) *Fan {
	return &Fan{
		Name:     name,
		Location: location,
		Groups:   groups,
		out:      out,
	}
}

func (f *Fan) Update(c Concert) {
	if !slices.Contains(f.Groups, c.Group) || c.Location != f.Location {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified++
	fmt.Fprintf(f.out, "fan %s notified: %s plays in %s on %s\n", f.Name, c.Group, c.Location, c.FormattedDate())
}

// Notified returns how many concerts reached the fan.
func (f *Fan) Notified() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notified
}

// Police watches blacklisted groups wherever they play.
type Police struct {
	Blacklist []string

	mu       sync.Mutex
	out      io.Writer
	notified int
}

// NewPolice creates a Police observer writing its notifications to out.
func NewPolice(blacklist []string, out io.Writer) *Police {
	return &Police{
		Blacklist: blacklist,
		out:       out,
	}
}

func (p *Police) Update(c Concert) {
	if !slices.Contains(p.Blacklist, c.Group) {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notified++
	fmt.Fprintf(p.out, "police notified: %s plays in %s on %s\n", c.Group, c.Location, c.FormattedDate())
}

// Notified returns how many concerts reached the police.
func (p *Police) Notified() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.notified
}
