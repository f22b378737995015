// Package cipher implements the Caesar shift over the ASCII alphabet.
//
// Only A-Z and a-z are rotated. Digits, punctuation, whitespace and
// non-ASCII letters pass through unchanged.
package cipher

// Shift bounds for a committed shift value. 0 and 26 are the identity.
const (
	MinShift     = 1
	MaxShift     = 25
	DefaultShift = 6

	alphabetSize = 26
)

// Shift rotates every ASCII letter in text by shift positions within its
// case alphabet. Any integer is accepted; the shift is reduced with a
// floored modulo so negative values rotate backwards.
//
// Text is walked byte by byte. Letters are single-byte ASCII, so valid
// UTF-8 stays valid and invalid bytes are copied through as they are.
func Shift(text string, shift int) string {
	k := mod(shift, alphabetSize)
	if k == 0 {
		return text
	}

	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		b := text[i]
		switch {
		case b >= 'A' && b <= 'Z':
			out[i] = 'A' + byte(mod(int(b-'A')+k, alphabetSize))
		case b >= 'a' && b <= 'z':
			out[i] = 'a' + byte(mod(int(b-'a')+k, alphabetSize))
		default:
			out[i] = b
		}
	}
	return string(out)
}

// Encrypt shifts plaintext forward.
func Encrypt(plaintext string, shift int) string {
	return Shift(plaintext, shift)
}

// Decrypt reverses Encrypt for the same shift.
func Decrypt(ciphertext string, shift int) string {
	// Reduce first: -math.MinInt overflows.
	return Shift(ciphertext, -(shift % alphabetSize))
}

// Clamp limits shift to [MinShift, MaxShift].
func Clamp(shift int) int {
	if shift < MinShift {
		return MinShift
	}
	if shift > MaxShift {
		return MaxShift
	}
	return shift
}

// mod is the floored modulo; the result is in [0, n) for n > 0.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
