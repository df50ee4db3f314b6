package keymap

import "math"

// maxCount caps accumulated counts.
const maxCount = math.MaxInt32

// CountState tracks count prefix accumulation.
type CountState struct {
	// Value is the accumulated count value.
	Value int

	// Active indicates if a count is being accumulated.
	Active bool
}

// Reset clears the count state.
func (c *CountState) Reset() {
	c.Value = 0
	c.Active = false
}

// AccumulateDigit adds a digit to the count and reports whether it was
// accepted. A leading '0' is not a count.
func (c *CountState) AccumulateDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	digit := int(r - '0')
	if !c.Active && digit == 0 {
		return false
	}
	c.Active = true
	if c.Value > (maxCount-digit)/10 {
		c.Value = maxCount
		return true
	}
	c.Value = c.Value*10 + digit
	return true
}

// Get returns the effective count (1 if no count was specified).
func (c *CountState) Get() int {
	if c.Value <= 0 {
		return 1
	}
	return c.Value
}
