package game

import (
	"regexp"
	"strings"
)

// WordSet is the dictionary membership predicate, read-only and shared
// process-wide after startup.
type WordSet interface {
	Contains(word string) bool
}

// Reject reasons carried on word:rejected.
const (
	RejectTooShort  = "too short"
	RejectTooLong   = "too long (max 7)"
	RejectNotAWord  = "not a word"
	RejectNotInBank = "not in bank"
)

var wordPattern = regexp.MustCompile(`^[A-Z]+$`)

// validateWord admits or rejects a submission. It returns the
// uppercased word, the bank indices that spell it, and an empty reason
// on success. When the client supplied no indices they are
// reconstructed from the bank; a failed reconstruction rejects the
// same as a bad explicit selection.
func validateWord(dict WordSet, settings Settings, bank Bank, word string, indices []int) (string, []int, string) {
	word = strings.ToUpper(word)
	if !wordPattern.MatchString(word) {
		return word, nil, RejectNotAWord
	}
	if len(word) < settings.MinLen {
		return word, nil, RejectTooShort
	}
	if len(word) > settings.MaxLen {
		return word, nil, RejectTooLong
	}
	if !dict.Contains(word) {
		return word, nil, RejectNotAWord
	}
	if indices == nil {
		rebuilt, ok := bank.Reconstruct(word)
		if !ok {
			return word, nil, RejectNotInBank
		}
		return word, rebuilt, ""
	}
	spelled, err := bank.Spell(indices)
	if err != nil || spelled != word {
		return word, nil, RejectNotInBank
	}
	return word, indices, ""
}
