package intgemm

// TileInfo locates one accumulator tile in the product.
type TileInfo struct {
	// RowIdx is the row of A (and of the output).
	RowIdx int
	// ColIdx is the first of the TileCol output columns.
	ColIdx int
	// Rows, Width and Cols are the aRows, width and bCols of the multiply.
	Rows  int
	Width int
	Cols  int
}

// Callback consumes raw accumulators. Run is called once per row of A and
// tile of TileCol columns; sums[j] is the integer dot product for column
// ColIdx+j. The sums slice is reused between calls and must not be retained.
//
// Callbacks passed to ParallelMultiply are called concurrently for
// disjoint tiles.
type Callback interface {
	Run(sums []int32, info TileInfo)
}

// CallbackFunc adapts a function to a Callback.
type CallbackFunc func(sums []int32, info TileInfo)

// Run calls f(sums, info).
func (f CallbackFunc) Run(sums []int32, info TileInfo) {
	f(sums, info)
}
