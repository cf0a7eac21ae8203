// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"math"
)

// NumStates returns Π cards[i], the number of joint states of a scope.
//
// Errors:
//   - ErrEmptyScope if cards is empty.
//   - ErrBadCardinality if any entry is <= 0.
//   - ErrTooManyStates if the product does not fit in an int.
func NumStates(cards []int) (int, error) {
	if len(cards) == 0 {
		return 0, ErrEmptyScope
	}
	n := 1
	for i, c := range cards {
		if c <= 0 {
			return 0, fmt.Errorf("cards[%d]=%d: %w", i, c, ErrBadCardinality)
		}
		if n > math.MaxInt/c {
			return 0, fmt.Errorf("cards[%d]=%d: %w", i, c, ErrTooManyStates)
		}
		n *= c
	}

	return n, nil
}

// Index converts a sub-assignment into its flat table index, first variable
// fastest.
//
// Errors:
//   - ErrAssignmentLength if len(sub) != len(cards).
//   - ErrStateOutOfRange if sub[i] is outside [0, cards[i]).
//   - ErrTooManyStates if the joint state count does not fit in an int.
//
// Complexity: O(len(cards)).
func Index(cards, sub []int) (int, error) {
	if len(sub) != len(cards) {
		return 0, fmt.Errorf("Index: len(sub)=%d, scope=%d: %w", len(sub), len(cards), ErrAssignmentLength)
	}

	idx, stride := 0, 1
	for i, s := range sub {
		if s < 0 || s >= cards[i] {
			return 0, fmt.Errorf("Index: sub[%d]=%d, card=%d: %w", i, s, cards[i], ErrStateOutOfRange)
		}
		if stride > math.MaxInt/cards[i] {
			return 0, fmt.Errorf("Index: cards[%d]=%d: %w", i, cards[i], ErrTooManyStates)
		}
		idx += s * stride
		stride *= cards[i]
	}

	return idx, nil
}

// Assignment is the inverse of Index: it decodes a flat index into one state
// per variable.
//
// Errors:
//   - ErrEmptyScope / ErrBadCardinality for invalid cards.
//   - ErrIndexOutOfRange if idx is outside [0, NumStates(cards)).
func Assignment(cards []int, idx int) ([]int, error) {
	states, err := NumStates(cards)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= states {
		return nil, fmt.Errorf("Assignment: idx=%d, states=%d: %w", idx, states, ErrIndexOutOfRange)
	}

	sub := make([]int, len(cards))
	for i, c := range cards {
		sub[i] = idx % c
		idx /= c
	}

	return sub, nil
}
