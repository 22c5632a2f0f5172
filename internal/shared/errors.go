package shared

import "errors"

var (
	// ErrEmptyHand reports a play or choose operation on a player with no
	// cards. This is always an orchestration defect.
	ErrEmptyHand = errors.New("player has no cards")

	// ErrTrumpNotDrawn reports a ranking or trick operation invoked before
	// the trump has been extracted. This is always a sequencing defect.
	ErrTrumpNotDrawn = errors.New("trump has not been drawn")

	// ErrInsufficientCards reports a draw for more cards than remain in the
	// deck. The caller decides whether to proceed without the cards.
	ErrInsufficientCards = errors.New("not enough cards in deck")
)
