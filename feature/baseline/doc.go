// Package baseline persists the set of SKUs known to exist downstream.
//
// The baseline is the only state that survives across sync runs. After each
// successful run it is unioned with every non-discontinued SKU seen in the
// feed; discontinued SKUs are never added but also never evicted. Operators
// can rebuild it from an existing import file via the baseline seed command.
package baseline
