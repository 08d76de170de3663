// Package layout holds the integer geometry shared by the media view engine.
//
// All coordinates are in the container's space: X grows right, Y grows down,
// and a [Rect] is anchored at its top-left corner. Types are re-exported
// through the root mediaview package for public consumption.
package layout
