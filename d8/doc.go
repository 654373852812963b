// Package d8 decodes eight-neighbour (D8) flow-direction codes.
//
// What:
//
//   - Code is one byte of a flow-direction raster. The eight powers of two
//     1..128 each name the neighbour a cell drains into; 0 and 255 mark
//     terminal cells (sink / no-data); every other value is invalid.
//   - Decode maps a code to its (ΔRow, ΔCol) Offset using a static 256-entry
//     table built once at package init from the eight-entry mapping.
//
// Convention:
//
//	        col-1   col   col+1
//	row-1    32     64    128
//	row      16      ·      1
//	row+1     8      4      2
//
//	Increasing row is south (down), increasing column is east (right).
//
// Complexity:
//
//   - Decode, Valid, IsTerminal: O(1), no allocation.
//
// Errors:
//
//   - none; validity is reported through the bool result of Decode and Valid.
package d8
