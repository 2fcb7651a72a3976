package disposable

import "sync"

// Composite owns a mutable set of disposables and disposes all of them
// exactly once, in insertion order. Members added after the composite is
// disposed are disposed immediately and not retained. Ownership is
// exclusive: a member is not meant to be shared across two composites.
type Composite struct {
	mu       sync.Mutex
	disposed bool
	members  []Disposable
}

// NewComposite creates a composite owning the given members.
func NewComposite(members ...Disposable) *Composite {
	c := &Composite{}
	for _, d := range members {
		c.Add(d)
	}
	return c
}

// Add transfers ownership of d to the composite. If the composite is
// already disposed, d is disposed synchronously and not retained.
func (c *Composite) Add(d Disposable) {
	if d == nil {
		return
	}
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		d.Dispose()
		return
	}
	c.members = append(c.members, d)
	c.mu.Unlock()
}

// AddAction wraps a plain cleanup function in a Disposable, adds it to the
// composite and returns it. If the composite is already disposed the action
// runs synchronously.
func (c *Composite) AddAction(fn func()) Disposable {
	d := New(fn)
	c.Add(d)
	return d
}

// Dispose disposes every retained member in insertion order. Subsequent
// calls are no-ops. Members are disposed outside the composite's lock so a
// member's cleanup may safely interact with the composite.
func (c *Composite) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	members := c.members
	c.members = nil
	c.mu.Unlock()

	for _, d := range members {
		d.Dispose()
	}
}

// IsDisposed reports whether the composite has been disposed.
func (c *Composite) IsDisposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}
