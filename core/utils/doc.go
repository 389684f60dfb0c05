// Package utils provides common helpers shared across the sync pipeline.
// It holds the parse-or-default coercion policy applied to every numeric
// feed cell (FloatOrZero, IntOrZero, DecimalOrZero, FlagSet) and small
// I/O helpers that don't fit into domain-specific packages.
package utils
