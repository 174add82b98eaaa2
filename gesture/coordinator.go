package gesture

// Coordinator owns the single "exclusive interaction" flag
// A component that must suppress competing gestures (e.g. a drag-to-drop interaction) acquires it
type Coordinator struct {
	owner string
}

// NewCoordinator returns a free coordinator
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Acquire claims exclusivity for owner; re-acquiring by the same owner succeeds
func (c *Coordinator) Acquire(owner string) bool {
	if c.owner != "" && c.owner != owner {
		return false
	}
	c.owner = owner
	return true
}

// Release frees exclusivity if held by owner
func (c *Coordinator) Release(owner string) {
	if c.owner == owner {
		c.owner = ""
	}
}

// Owner returns the current holder, empty when free
func (c *Coordinator) Owner() string { return c.owner }

// Exclusive reports whether anyone holds the flag
func (c *Coordinator) Exclusive() bool { return c.owner != "" }

// BlockedFor reports whether someone other than owner holds the flag
func (c *Coordinator) BlockedFor(owner string) bool {
	return c.owner != "" && c.owner != owner
}
