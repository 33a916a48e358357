//go:build !gentensor_trusted

package tensor

// Checked reports whether shape and bounds checks are
// compiled into the hot paths. Build with -tags gentensor_trusted to turn
// them off.
const Checked = true
