package panel

import (
	"sync"

	"github.com/iyhunko/treko-inventory/internal/store"
)

// TokenSetter receives the session token after login, and "" on logout.
type TokenSetter interface {
	SetToken(token string)
}

// Gate decides whether the login form or the product manager is shown.
// Nothing is persisted.
type Gate struct {
	mu       sync.RWMutex
	loggedIn bool
	token    string
	employee store.Employee
	sink     TokenSetter
}

// NewGate returns a logged-out gate. sink may be nil.
func NewGate(sink TokenSetter) *Gate {
	return &Gate{sink: sink}
}

// Login flips the gate to logged-in on success. A failed login leaves it as is.
func (g *Gate) Login(success bool) {
	if !success {
		return
	}
	g.mu.Lock()
	g.loggedIn = true
	g.mu.Unlock()
}

// Establish records the session returned by a successful login and opens the gate.
func (g *Gate) Establish(result *store.LoginResult) {
	g.mu.Lock()
	g.token = result.Token
	g.employee = result.Employee
	g.mu.Unlock()

	if g.sink != nil {
		g.sink.SetToken(result.Token)
	}
	g.Login(true)
}

// Logout closes the gate and forgets the session.
func (g *Gate) Logout() {
	g.mu.Lock()
	g.loggedIn = false
	g.token = ""
	g.employee = store.Employee{}
	g.mu.Unlock()

	if g.sink != nil {
		g.sink.SetToken("")
	}
}

func (g *Gate) LoggedIn() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.loggedIn
}

func (g *Gate) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

func (g *Gate) Employee() store.Employee {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.employee
}
