// meta/meta.go
package meta

// MAX_DEPTH is the deepest ply index explored by minimax (plies 0 through MAX_DEPTH).
const MAX_DEPTH = 4

// GO_ROUTINES defines the default number of goroutines for root-parallel search.
const GO_ROUTINES = 8

// MAX_MOVES bounds a game: each placement fills one of the 60 initially empty cells.
const MAX_MOVES = 60

// NUM_GAMES is the default number of games per experiment matchup.
const NUM_GAMES = 10
