package seal

// Standing is a company's derived certification standing. It is computed from
// the live count of active issues on every read and never stored, so it cannot
// drift from issue state.
type Standing string

const (
	StandingNormal    Standing = "normal"
	StandingSuspended Standing = "suspended"
	StandingRevoked   Standing = "revoked"
)

const (
	suspensionThreshold = 5  // more than this many active issues suspends the seal
	revocationThreshold = 10 // more than this many revokes it
)

// StandingForActiveIssues derives the standing from the number of active issues
func StandingForActiveIssues(activeCount int) Standing {
	switch {
	case activeCount > revocationThreshold:
		return StandingRevoked
	case activeCount > suspensionThreshold:
		return StandingSuspended
	default:
		return StandingNormal
	}
}
