// meta/meta.go
package meta

import "runtime"

// DEPTH defines the expectimax search depth, counting the move itself.
const DEPTH = 3

// GAMES defines the number of game pairs in a showdown.
const GAMES = 500

// ALPHA defines the learning rate of the linear evaluator.
const ALPHA = 1e-4

// TRAIN_GAMES defines the number of self-play games for training.
const TRAIN_GAMES = 10000

// REPORT_EVERY defines how many training games pass between progress reports.
const REPORT_EVERY = 1000

// MAX_TURNS defines the number of turns after which a game is abandoned.
const MAX_TURNS = 10000

// GO_ROUTINES defines the number of games played concurrently.
var GO_ROUTINES = runtime.GOMAXPROCS(0)
