package core

// Task is a one-shot callback scheduled on a Scheduler.
// A nil *Task is valid and behaves like an already finished task.
type Task struct {
	remaining int
	fn        func()
	canceled  bool
	fired     bool
}

// Cancel prevents the task from firing. Canceling a fired or nil task is a no-op.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.canceled = true
}

// Pending reports whether the task is still waiting to fire.
func (t *Task) Pending() bool {
	return t != nil && !t.canceled && !t.fired
}

// Scheduler runs callbacks after a number of simulation ticks.
// It is driven by the game loop and is not safe for concurrent use.
type Scheduler struct {
	tasks []*Task
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run on the ticks-th call to Advance.
// Values below 1 fire on the next Advance.
func (s *Scheduler) After(ticks int, fn func()) *Task {
	t := &Task{remaining: Max(ticks, 1), fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves time forward by one tick and fires due tasks in the
// order they were scheduled. Callbacks may schedule or cancel tasks.
func (s *Scheduler) Advance() {
	due := append([]*Task(nil), s.tasks...)
	for _, t := range due {
		if t.canceled {
			continue
		}
		t.remaining--
		if t.remaining > 0 {
			continue
		}
		t.fired = true
		if t.fn != nil {
			t.fn()
		}
	}
	s.compact()
}

func (s *Scheduler) compact() {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Pending() {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}

// CancelAll cancels every pending task.
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.canceled = true
	}
	s.compact()
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}
