package game

// Observer is told about everything that happens in a game, for display or
// logging. It never feeds back into the game.
type Observer interface {
	TurnStarted(g *Game, name string, sv StateView)
	GuessRejected(name string, err error)
	GuessApplied(name string, res GuessResult)
	GameEnded(outcome Outcome, winner, secret string)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) TurnStarted(*Game, string, StateView) {}
func (NopObserver) GuessRejected(string, error) {}
func (NopObserver) GuessApplied(string, GuessResult) {}
func (NopObserver) GameEnded(Outcome, string, string) {}
