package caro

import "github.com/rocketscienceinc/caro-engine/internal/entity"

// determineOutcome - looks for a run of winningCondition marks on rows, then
// columns, then diagonals. A draw is only reported when no line has won.
func determineOutcome(board *entity.Board, winningCondition int) entity.Outcome {
	for _, lines := range [][][]entity.Symbol{
		board.LinesByRow(),
		board.LinesByColumn(),
		board.LinesByDiagonal(),
	} {
		if winner := checkConsecutive(lines, winningCondition); winner != entity.Empty {
			return entity.OutcomeFor(winner)
		}
	}

	if board.IsFull() {
		return entity.Draw
	}

	return entity.InProgress
}

// checkConsecutive - returns the first symbol found with a run of n cells, or Empty.
func checkConsecutive(lines [][]entity.Symbol, n int) entity.Symbol {
	for _, line := range lines {
		countX, countO := 0, 0
		for _, cell := range line {
			switch cell {
			case entity.PlayerX:
				countX++
				countO = 0
			case entity.PlayerO:
				countO++
				countX = 0
			default:
				countX, countO = 0, 0
			}

			if countX == n {
				return entity.PlayerX
			}

			if countO == n {
				return entity.PlayerO
			}
		}
	}

	return entity.Empty
}
