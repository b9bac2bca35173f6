package panel

// LoadState is the outcome of the one-shot catalog fetch.
type LoadState int

const (
	LoadIdle LoadState = iota
	LoadLoading
	LoadReady
	LoadEmpty
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadIdle:
		return "idle"
	case LoadLoading:
		return "loading"
	case LoadReady:
		return "ready"
	case LoadEmpty:
		return "empty"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Loadable tracks a resource that is fetched at most once.
type Loadable struct {
	state LoadState
}

// Begin moves Idle to Loading. It returns false if a fetch already started.
func (l *Loadable) Begin() bool {
	if l.state != LoadIdle {
		return false
	}
	l.state = LoadLoading
	return true
}

// Finish settles a running fetch. Calls outside Loading are ignored.
func (l *Loadable) Finish(count int, err error) {
	if l.state != LoadLoading {
		return
	}
	switch {
	case err != nil:
		l.state = LoadFailed
	case count == 0:
		l.state = LoadEmpty
	default:
		l.state = LoadReady
	}
}

func (l Loadable) State() LoadState {
	return l.state
}

func (l Loadable) Loading() bool {
	return l.state == LoadLoading
}
