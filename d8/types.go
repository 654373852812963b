package d8

// Code is a single D8 flow-direction value as stored in a raster.
type Code uint8

// Flow codes, one per neighbour, in the order used by Codes.
const (
	East      Code = 1   // ( 0, +1)
	SouthEast Code = 2   // (+1, +1)
	South     Code = 4   // (+1,  0)
	SouthWest Code = 8   // (+1, -1)
	West      Code = 16  // ( 0, -1)
	NorthWest Code = 32  // (-1, -1)
	North     Code = 64  // (-1,  0)
	NorthEast Code = 128 // (-1, +1)
)

// Terminal codes. Both end a flow path; the raster does not say which of the
// two hydrological meanings applies, so they are reported but not told apart.
const (
	Sink   Code = 0
	NoData Code = 255
)

// Offset is the (row, column) displacement a flow code points to.
type Offset struct {
	DRow, DCol int
}
