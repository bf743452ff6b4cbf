package betting

import (
	"errors"
	"fmt"

	"holdempro/pkg/poker/action"
)

// ErrInvalidConfiguration is the root of all rule-validation failures
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrRoundOver is an error when an action is attempted after the round ended
var ErrRoundOver = errors.New("betting round is over")

// IllegalActionError is an error when a player attempts an action out of turn,
// of an illegal type, or with an illegal size. The round state is untouched.
type IllegalActionError struct {
	PlayerID int64
	Action   action.Action
	Reason   string
}

func (e *IllegalActionError) Error() string {
	name := "act"
	if e.Action.IsValid() {
		name = e.Action.String()
	}

	return fmt.Sprintf("player %d cannot %s: %s", e.PlayerID, name, e.Reason)
}

func newIllegalAction(id int64, act action.Action, format string, a ...interface{}) *IllegalActionError {
	return &IllegalActionError{
		PlayerID: id,
		Action:   act,
		Reason:   fmt.Sprintf(format, a...),
	}
}

// IsIllegalAction returns true if the error is an IllegalActionError
func IsIllegalAction(err error) bool {
	var iae *IllegalActionError
	return errors.As(err, &iae)
}
