//go:build nocheck

package matrix

// checked is false in nocheck builds: element access and arithmetic skip
// validation and a violated precondition is undefined behaviour.
const checked = false
