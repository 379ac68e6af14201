package game

import (
	"fmt"
	"strings"
)

// String draws the board with Light's private lane on top, the shared row
// in the middle and Dark's private lane at the bottom. Empty rosettas are
// shown as '#'.
func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Turn: %s\n", b.Turn)

	b.writeLane(&sb, Light)

	for i := 4; i < 12; i++ {
		sb.WriteByte(b.symbol(i, b.Cells[Light][i], b.Cells[Dark][i]))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	b.writeLane(&sb, Dark)
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "Player O: %d ready / %d out\n", b.Ready[Light], b.Out[Light])
	fmt.Fprintf(&sb, "Player X: %d ready / %d out\n", b.Ready[Dark], b.Out[Dark])
	return sb.String()
}

func (b *Board) writeLane(sb *strings.Builder, p Player) {
	light, dark := p == Light, p == Dark
	for i := 3; i >= 0; i-- {
		sb.WriteByte(b.symbol(i, light && b.Cells[p][i], dark && b.Cells[p][i]))
		sb.WriteByte(' ')
	}
	sb.WriteString("    ")
	for i := 13; i >= 12; i-- {
		sb.WriteByte(b.symbol(i, light && b.Cells[p][i], dark && b.Cells[p][i]))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
}

func (b *Board) symbol(idx int, light, dark bool) byte {
	switch {
	case light:
		return 'O'
	case dark:
		return 'X'
	case IsRosetta(idx):
		return '#'
	default:
		return '.'
	}
}
