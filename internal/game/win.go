package game

// Line is an index triple that wins when all three cells share a mark.
type Line [3]int

// Lines lists every winning line in scan order: three index runs, three
// strides of three, then the two diagonals.
var Lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Result is the outcome of a won board.
type Result struct {
	Mark Mark
	Line Line
}

// Contains reports whether cell i is part of the winning line.
func (r Result) Contains(i int) bool {
	for _, idx := range r.Line {
		if idx == i {
			return true
		}
	}
	return false
}

// Evaluate scans Lines in order and returns the first line fully held by one
// mark. The second return value is false for in-progress and drawn boards.
func Evaluate(b Board) (Result, bool) {
	for _, l := range Lines {
		a := b[l[0]].Mark
		if a != Empty && a == b[l[1]].Mark && a == b[l[2]].Mark {
			return Result{Mark: a, Line: l}, true
		}
	}
	return Result{}, false
}
