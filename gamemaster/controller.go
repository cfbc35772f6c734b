package gamemaster

import "othello/searcher"

// Controller decides who moves for one side: a person supplying coordinates, or a strategy.
type Controller struct {
	strategy searcher.Strategy
}

// Human returns a controller that waits for moves passed to Session.Play.
func Human() Controller {
	return Controller{}
}

// Computed returns a controller that asks strategy for every move.
func Computed(strategy searcher.Strategy) Controller {
	if strategy == nil {
		panic("computed controller needs a strategy")
	}
	return Controller{strategy: strategy}
}

func (c Controller) IsHuman() bool {
	return c.strategy == nil
}

func (c Controller) Strategy() searcher.Strategy {
	return c.strategy
}
