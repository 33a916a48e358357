//go:build gentensor_trusted

package tensor

// Checked is false in trusted-input builds: shape, rank and bounds checks are
// skipped and violating them is undefined behaviour (usually a runtime panic
// or a silently wrong element) instead of a typed error.
const Checked = false
