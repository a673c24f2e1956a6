// Package script detects Sinhala text in translator output.
//
// The converged state is detected by the positive appearance of Sinhala code
// points rather than by the disappearance of romanized input: Singlish and
// Sinhala share ASCII punctuation and spacing, so "no longer looks like
// input" is not a reliable signal.
package script

// Sinhala Unicode block bounds
const (
	sinhalaLo rune = 0x0D80
	sinhalaHi rune = 0x0DFF
)

// ContainsSinhala reports whether text contains at least one code point in
// the Sinhala block (U+0D80–U+0DFF).
func ContainsSinhala(text string) bool {
	for _, r := range text {
		if r >= sinhalaLo && r <= sinhalaHi {
			return true
		}
	}
	return false
}
