package pwm2base_api

import "fmt"

// The index returned for characters that are no base
const NoBase int8 = -1

// Convert a base into its index: A=0, C=1, G=2, T=3 and U=3
func BaseToNumber(base byte) int8 {
	switch base {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T', 'U':
		return 3
	default:
		return NoBase
	}
}

// Convert an index back to its base in the given alphabet
// Indices outside of [0,3] are a programming error and panic
func NumberToBase(index int8, alphabet Alphabet) byte {
	if index < 0 || index > 3 {
		panic(fmt.Sprintf("pwm2base: base index %d out of range", index))
	}
	return alphabet.Bases()[index]
}
