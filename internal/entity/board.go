package entity

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

// Lines - the eight winning triples, checked in this order: rows, columns, diagonals.
// The order matters: both clients must attribute the same line when more than one
// is complete at once.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board - nine cells, row-major. A cell holds PlayerX, PlayerO or EmptyCell.
type Board [9]string

// EmptyBoard - returns a board with all cells empty.
func EmptyBoard() Board {
	return Board{}
}

// IsEmpty - reports whether no cell carries a mark.
func (that Board) IsEmpty() bool {
	for _, cell := range that {
		if cell != EmptyCell {
			return false
		}
	}

	return true
}

// IsFull - reports whether every cell carries a mark.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Result - the outcome of evaluating a board.
type Result struct {
	Winner string
	Line   [3]int
	HasWin bool
	Draw   bool
}

// Evaluate - checks the fixed triples and reports the first completed line,
// or a draw when the board is full with no line. Pure function; both clients
// must get identical results from identical boards.
func Evaluate(board Board) Result {
	for _, line := range Lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != EmptyCell && a == b && b == c {
			return Result{Winner: a, Line: line, HasWin: true}
		}
	}

	if board.IsFull() {
		return Result{Draw: true}
	}

	return Result{}
}

// ToggleMark - X becomes O and O becomes X.
func ToggleMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}

	return PlayerX
}

// GameState - the snapshot a session caches and reports to the presentation layer.
type GameState struct {
	Board    Board  `json:"board"`
	Turn     string `json:"turn"`
	GameOver bool   `json:"game_over"`
}

// NewGameState - empty board, X to move, not over.
func NewGameState() GameState {
	return GameState{
		Board: EmptyBoard(),
		Turn:  PlayerX,
	}
}
