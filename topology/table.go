package topology

// standardIncidence lists the six boundary vertices of every tile, clockwise
// starting at the upper-left corner. Vertex ids run row by row over the
// 7/9/11/11/9/7 vertex rows; tile ids run over the 3/4/5/4/3 tile rows.
var standardIncidence = [TileCount][TileSides]int{
	{0, 1, 2, 10, 9, 8},
	{2, 3, 4, 12, 11, 10},
	{4, 5, 6, 14, 13, 12},
	{7, 8, 9, 19, 18, 17},
	{9, 10, 11, 21, 20, 19},
	{11, 12, 13, 23, 22, 21},
	{13, 14, 15, 25, 24, 23},
	{16, 17, 18, 29, 28, 27},
	{18, 19, 20, 31, 30, 29},
	{20, 21, 22, 33, 32, 31},
	{22, 23, 24, 35, 34, 33},
	{24, 25, 26, 37, 36, 35},
	{28, 29, 30, 40, 39, 38},
	{30, 31, 32, 42, 41, 40},
	{32, 33, 34, 44, 43, 42},
	{34, 35, 36, 46, 45, 44},
	{39, 40, 41, 49, 48, 47},
	{41, 42, 43, 51, 50, 49},
	{43, 44, 45, 53, 52, 51},
}

// StandardIncidence returns a fresh copy of the standard incidence table.
// Callers may mutate the result freely.
func StandardIncidence() [][]int {
	out := make([][]int, TileCount)
	for t := range standardIncidence {
		row := make([]int, TileSides)
		copy(row, standardIncidence[t][:])
		out[t] = row
	}
	return out
}
