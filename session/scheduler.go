package session

// System is one step of a session update.
type System interface {
	Update(s *Session) error
}

// SystemFunc adapts a function to System.
type SystemFunc func(s *Session) error

func (f SystemFunc) Update(s *Session) error {
	return f(s)
}

// Scheduler runs systems in the order they were added and stops at the first
// error.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (sc *Scheduler) Update(s *Session) error {
	for _, system := range sc.systems {
		if err := system.Update(s); err != nil {
			return err
		}
	}
	return nil
}
