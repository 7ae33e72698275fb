package srv

import (
	"github.com/vagledaren/vagledaren/pkg/ai"
	"github.com/vagledaren/vagledaren/pkg/coach"
	"github.com/vagledaren/vagledaren/pkg/usage"
)

type Srv struct {
	ai     ai.ChatAI
	coach  *coach.Manager
	ledger *usage.Ledger
}

type ApplyFunc func(*Srv)

func SetupSrvs(opts ...ApplyFunc) *Srv {
	a := &Srv{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (s *Srv) AI() ai.ChatAI {
	return s.ai
}

func (s *Srv) Coach() *coach.Manager {
	return s.coach
}

func (s *Srv) Ledger() *usage.Ledger {
	return s.ledger
}

func ApplyLedger(path string) ApplyFunc {
	return func(s *Srv) {
		l, err := usage.NewLedger(path)
		if err != nil {
			panic(err)
		}
		s.ledger = l
	}
}

// ApplyCoach wires the session manager. It runs after ApplyAI so the
// setup func can read the chat driver off the srv.
func ApplyCoach(setup func(driver ai.ChatAI, ledger *usage.Ledger) *coach.Manager) ApplyFunc {
	return func(s *Srv) {
		s.coach = setup(s.ai, s.ledger)
	}
}
