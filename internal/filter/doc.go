// Package filter provides Gaussian kernel generation and 2D convolution over
// ir buffers.
//
// Convolution is direct, O(width * height * (2r+1)^2): every interior pixel
// is a weighted sum of its (2r+1)-square neighborhood in the source buffer.
// Pixels closer than r to any edge are copied unchanged.
package filter
