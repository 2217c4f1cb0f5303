package devcon

import "github.com/unilibs/uniwidth"

// StringWidth returns the total display width of s (sum of each rune's
// display width), useful for sizing things like the answerback string or
// a host-supplied title against a known column budget.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
