package threshold

import "errors"

var (
	// ErrInvalidConfig is returned by [New] when the threshold is zero or
	// exceeds the committee size.
	ErrInvalidConfig = errors.New("threshold: invalid committee configuration")
	// ErrIndexOutOfRange is returned for a party index outside 1..n.
	ErrIndexOutOfRange = errors.New("threshold: party index out of range")
	// ErrDuplicateIndex is returned when a quorum names a party twice.
	ErrDuplicateIndex = errors.New("threshold: duplicate party index")
	// ErrBelowThreshold is returned when reconstruction is attempted with
	// fewer than t distinct parties.
	ErrBelowThreshold = errors.New("threshold: quorum below threshold")

	// ErrRoundAborted wraps every refresh failure. When it is returned no
	// party's share has changed.
	ErrRoundAborted = errors.New("threshold: refresh round aborted")
	// ErrMissingContribution is returned when a party's refresh
	// contribution is absent.
	ErrMissingContribution = errors.New("threshold: missing refresh contribution")
	// ErrInvalidContribution is returned for a malformed, duplicated or
	// foreign refresh contribution.
	ErrInvalidContribution = errors.New("threshold: invalid refresh contribution")
	// ErrInvalidShare is returned when a refresh share does not match its
	// sender's commitments.
	ErrInvalidShare = errors.New("threshold: refresh share fails verification")
	// ErrStaleContribution is returned when contributions were generated
	// for an epoch other than the committee's current one.
	ErrStaleContribution = errors.New("threshold: contribution for another epoch")
)
