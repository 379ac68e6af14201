package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/hashicorp/go-multierror"
)

// StateHash identifies a position.
type StateHash uint64

// Board is the complete state of a game. It is a plain value: assigning it
// copies every field, so search code clones a position with `next := *b`.
type Board struct {
	// Pieces not yet entered, per player
	Ready [2]int

	// Cells[p][i] is set when player p has a piece at path index i
	Cells [2][PathLength]bool

	// Pieces borne off, per player
	Out [2]int

	// The player about to move
	Turn Player
}

// NewBoard returns the starting position.
func NewBoard() Board {
	return Board{
		Ready: [2]int{NumPieces, NumPieces},
		Turn:  Light,
	}
}

// LegalMoves lists the moves available to the current player for a dice
// roll: Enter first when allowed, then the movable pieces by ascending
// path index. A roll of zero, or a fully blocked roll, yields no moves.
func (b *Board) LegalMoves(dice int) []Move {
	if dice == 0 {
		return nil
	}

	me := b.Turn
	opp := me.Opponent()
	moves := make([]Move, 0, NumPieces+1)
	if b.Ready[me] > 0 && !b.Cells[me][dice-1] {
		moves = append(moves, Enter)
	}
	for i := 0; i < PathLength; i++ {
		if !b.Cells[me][i] {
			continue
		}
		dest := i + dice
		if dest == PathLength { // Bearing off is always allowed
			moves = append(moves, Move(i))
			continue
		}
		if dest > PathLength {
			continue
		}
		if b.Cells[me][dest] {
			continue
		}
		// The central rosetta protects whoever stands on it
		if dest == CentralRosetta && b.Cells[opp][CentralRosetta] {
			continue
		}
		moves = append(moves, Move(i))
	}
	return moves
}

// Play applies a move taken from LegalMoves(dice) and reports whether it won
// the game. Panics on a move LegalMoves would not offer.
func (b *Board) Play(dice int, m Move) bool {
	if dice < 1 || dice > 4 {
		panic(fmt.Sprintf("cannot play: dice %d out of range", dice))
	}
	if b.Out[Light] == NumPieces || b.Out[Dark] == NumPieces {
		panic("cannot play: game is already over")
	}

	me := b.Turn
	opp := me.Opponent()

	if m == Enter {
		if b.Ready[me] == 0 {
			panic("cannot enter: no piece ready")
		}
		dest := dice - 1
		if b.Cells[me][dest] {
			panic(fmt.Sprintf("cannot enter: player %s already at %d", me, dest))
		}
		b.Cells[me][dest] = true
		b.Ready[me]--
		b.passUnlessRosetta(dest)
		return false
	}

	src := int(m)
	if src < 0 || src >= PathLength || !b.Cells[me][src] {
		panic(fmt.Sprintf("cannot move: no piece of player %s at %d", me, src))
	}

	dest := src + dice
	if dest > PathLength {
		panic(fmt.Sprintf("cannot move from %d with dice %d: past the end", src, dice))
	}
	if dest == PathLength {
		b.Cells[me][src] = false
		b.Out[me]++
		b.Turn = opp
		return b.Out[me] == NumPieces
	}

	if b.Cells[me][dest] {
		panic(fmt.Sprintf("cannot move from %d to %d: player %s already there", src, dest, me))
	}
	if dest == CentralRosetta && b.Cells[opp][dest] {
		panic("cannot move: central rosetta is taken")
	}

	b.Cells[me][src] = false
	b.Cells[me][dest] = true
	if IsCentral(dest) && b.Cells[opp][dest] { // Capture
		b.Cells[opp][dest] = false
		b.Ready[opp]++
	}
	b.passUnlessRosetta(dest)
	return false
}

func (b *Board) passUnlessRosetta(dest int) {
	if !IsRosetta(dest) {
		b.Turn = b.Turn.Opponent()
	}
}

// SwapTurn passes the turn, used when a roll leaves no legal move.
func (b *Board) SwapTurn() {
	b.Turn = b.Turn.Opponent()
}

// Finished reports whether the player who just moved has borne off every
// piece.
func (b *Board) Finished() bool {
	return b.Out[b.Turn.Opponent()] == NumPieces
}

// Winner returns the player with every piece borne off, if any.
func (b *Board) Winner() (Player, bool) {
	for _, p := range []Player{Light, Dark} {
		if b.Out[p] == NumPieces {
			return p, true
		}
	}
	return Light, false
}

// Mirror returns the position with the pieces of both players exchanged and
// the same player to move, who now stands where the opponent stood.
func (b *Board) Mirror() Board {
	return Board{
		Ready: [2]int{b.Ready[Dark], b.Ready[Light]},
		Cells: [2][PathLength]bool{b.Cells[Dark], b.Cells[Light]},
		Out:   [2]int{b.Out[Dark], b.Out[Light]},
		Turn:  b.Turn,
	}
}

// Validate checks piece conservation and that no shared cell holds two
// pieces. All violations are reported.
func (b *Board) Validate() error {
	var errs error
	if b.Turn != Light && b.Turn != Dark {
		errs = multierror.Append(errs, fmt.Errorf("invalid turn %d", b.Turn))
	}
	for _, p := range []Player{Light, Dark} {
		onBoard := 0
		for _, occupied := range b.Cells[p] {
			if occupied {
				onBoard++
			}
		}
		if total := b.Ready[p] + b.Out[p] + onBoard; total != NumPieces {
			errs = multierror.Append(errs, fmt.Errorf("player %d has %d pieces, want %d", p, total, NumPieces))
		}
	}
	for i := 4; i < 12; i++ {
		if b.Cells[Light][i] && b.Cells[Dark][i] {
			errs = multierror.Append(errs, fmt.Errorf("shared cell %d holds two pieces", i))
		}
	}
	return errs
}

// Hash digests every field of the board with FNV-1a.
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.Turn))
	for _, p := range []Player{Light, Dark} {
		binary.Write(hasher, binary.LittleEndian, int64(b.Ready[p]))
		binary.Write(hasher, binary.LittleEndian, int64(b.Out[p]))
		binary.Write(hasher, binary.LittleEndian, b.Cells[p])
	}

	return StateHash(hasher.Sum64())
}
