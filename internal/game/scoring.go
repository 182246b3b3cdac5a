package game

import (
	"math"
	"strings"
)

var twentyPointLetters = "BCFHKMPVWY"
var thirtyPointLetters = "JQXZ"

// LetterPoints returns the point tier for an uppercase letter.
func LetterPoints(ch byte) int {
	switch {
	case strings.IndexByte(thirtyPointLetters, ch) >= 0:
		return 30
	case strings.IndexByte(twentyPointLetters, ch) >= 0:
		return 20
	default:
		return 10
	}
}

// ScoreWord computes the points for a word at the given round
// multiplier: sum of letter points, a 20% bonus per letter, then the
// multiplier, rounded half away from zero. Case-insensitive; only A-Z
// count.
func ScoreWord(word string, multiplier float64) int {
	word = strings.ToUpper(word)
	sum := 0
	length := 0
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'A' || ch > 'Z' {
			continue
		}
		sum += LetterPoints(ch)
		length++
	}
	raw := float64(sum) * (1 + 0.20*float64(length)) * multiplier
	return int(math.Round(raw))
}
