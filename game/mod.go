package game

import "fmt"

// Cells are indexed by their place in a player's path. Each player walks
// fourteen cells; the central row [4, 12) is shared by both paths:
//
//	3  2  1  0        13 12
//	4  5  6  7  8  9  10 11
//	3  2  1  0        13 12
const (
	NumPieces      = 7
	PathLength     = 14
	CentralRosetta = 7
)

// Player identifies a side. Light always moves first.
type Player int

const (
	Light Player = iota
	Dark
)

// Opponent returns the other side. Panics on an invalid id.
func (p Player) Opponent() Player {
	if p != Light && p != Dark {
		panic(fmt.Sprintf("invalid player %d", p))
	}
	return 1 - p
}

func (p Player) String() string {
	switch p {
	case Light:
		return "O"
	case Dark:
		return "X"
	default:
		panic(fmt.Sprintf("invalid player %d", p))
	}
}

// Move is the path index of the piece to move, or Enter to bring a new
// piece onto the board.
type Move int

// Enter is the move that puts a ready piece on the board.
const Enter Move = PathLength

func (m Move) String() string {
	if m == Enter {
		return "enter"
	}
	return fmt.Sprintf("%d", int(m))
}

// IsCentral reports whether the path index lies on the shared row.
func IsCentral(idx int) bool {
	return 4 <= idx && idx < 12
}

// IsRosetta reports whether landing on idx grants another turn.
func IsRosetta(idx int) bool {
	switch idx {
	case 3, CentralRosetta, 13:
		return true
	}
	return false
}
