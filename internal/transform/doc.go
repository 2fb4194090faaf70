// Package transform implements the point and geometric transforms of
// pnmtool: negation, greyscale conversion and horizontal mirroring.
//
// Every transform reads its input through the ir.Buffer accessors and builds
// a fresh buffer; inputs are never modified.
package transform
