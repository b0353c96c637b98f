// Package normalize converts URLs and catalog names into the canonical form
// used for comparison.
//
// URLs are percent-decoded and lowercased; catalog names are lowercased only.
// Decoding is lenient: malformed escapes are kept verbatim and invalid UTF-8
// produced by decoding is replaced with U+FFFD, so normalization never fails.
package normalize
