// Package scanner corrects barcode input coming from a scanner wired as an
// AZERTY keyboard: the digit row produces French symbols instead of digits.
package scanner

import "strings"

var azertyDigits = map[rune]rune{
	'&':  '1',
	'é':  '2',
	'"':  '3',
	'\'': '4',
	'(':  '5',
	'-':  '6',
	'è':  '7',
	'_':  '8',
	'ç':  '9',
	'à':  '0',
}

// CorrectInput maps AZERTY digit-row characters back to digits. Characters
// outside the conversion table pass through unchanged.
func CorrectInput(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if digit, ok := azertyDigits[r]; ok {
			b.WriteRune(digit)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
