// Package utils holds small conversion and string helpers shared by the
// features: loose scalar conversion for query parameters and dataset values,
// and slug normalisation for record identifiers.
package utils
