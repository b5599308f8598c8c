//go:build !nocheck

package matrix

// checked enables shape, index and aliasing validation in element access and
// arithmetic. Build with -tags nocheck to compile the checks out.
const checked = true
