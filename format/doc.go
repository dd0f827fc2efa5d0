// SPDX-License-Identifier: MIT

// Package format renders vectors and matrices as aligned, fixed-precision text
// in the familiar NumPy array2string layout:
//
//	[-1.  3.]
//	[[2.  1.]
//	 [0.  3.]]
//
// Rules:
//   - Values are printed with at most Precision fractional digits; trailing
//     zeros are trimmed, then every element is padded to the widest
//     fractional part and right-aligned to the widest integer part.
//   - Without SuppressSmall, arrays whose non-zero magnitudes span more than
//     three decades or dip below 1e-4 switch to scientific notation; arrays
//     reaching 1e8 always do.
//   - Negative zero prints as zero.
//   - Complex arrays print "re+imj" and collapse to real output when every
//     imaginary part is within the configured epsilon.
package format
