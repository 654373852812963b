package d8

import "strconv"

// entry is one slot of the lookup table.
type entry struct {
	off   Offset
	name  string
	flow  bool // one of the eight directional codes
	valid bool // flow code or terminal code
}

// mapping lists the eight flow codes with their offsets. It is the single
// source the lookup table is built from.
var mapping = [8]struct {
	code Code
	off  Offset
	name string
}{
	{East, Offset{0, 1}, "east"},
	{SouthEast, Offset{1, 1}, "south-east"},
	{South, Offset{1, 0}, "south"},
	{SouthWest, Offset{1, -1}, "south-west"},
	{West, Offset{0, -1}, "west"},
	{NorthWest, Offset{-1, -1}, "north-west"},
	{North, Offset{-1, 0}, "north"},
	{NorthEast, Offset{-1, 1}, "north-east"},
}

var table [256]entry

func init() {
	for _, m := range mapping {
		table[m.code] = entry{off: m.off, name: m.name, flow: true, valid: true}
	}
	table[Sink] = entry{name: "sink", valid: true}
	table[NoData] = entry{name: "no-data", valid: true}
}

// Decode returns the offset for one of the eight flow codes.
// ok is false for terminal and invalid codes; the returned Offset is then zero.
func Decode(c Code) (off Offset, ok bool) {
	e := &table[c]
	return e.off, e.flow
}

// Codes returns the eight flow codes in mapping order (east, clockwise).
// The slice is freshly allocated.
func Codes() []Code {
	out := make([]Code, len(mapping))
	for i, m := range mapping {
		out[i] = m.code
	}
	return out
}

// IsTerminal reports whether c ends a flow path (0 or 255).
func (c Code) IsTerminal() bool {
	return c == Sink || c == NoData
}

// Valid reports whether c is one of the ten legal raster values.
func (c Code) Valid() bool {
	return table[c].valid
}

// String names the direction ("east", "north-west", ...), the terminal kind
// ("sink", "no-data"), or "invalid(N)".
func (c Code) String() string {
	if e := &table[c]; e.valid {
		return e.name
	}
	return "invalid(" + strconv.Itoa(int(c)) + ")"
}
