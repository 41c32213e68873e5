package sidedrawer

import "github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/constants"

// CommitDecision is the outcome of a drag: where the drawer comes to rest.
type CommitDecision struct {
	Open bool
}

// CommitPolicy decides at the end of a drag whether the drawer settles open
// or closed. Opening commits after a third of the panel is revealed, closing
// only once the drag crosses the midpoint. A release faster than
// FastSwipeVelocity in the drag's direction commits regardless of position.
type CommitPolicy struct {
	FastSwipeVelocity float64 // units per second
}

// NewCommitPolicy returns a policy with the given velocity threshold, or the
// default threshold when it is not positive.
func NewCommitPolicy(fastSwipeVelocity float64) CommitPolicy {
	if fastSwipeVelocity <= 0 {
		fastSwipeVelocity = constants.DefaultFastSwipeVelocityThreshold
	}
	return CommitPolicy{FastSwipeVelocity: fastSwipeVelocity}
}

// ShouldOpen reports whether an opening drag commits. Positive velocity moves
// toward open.
func (p CommitPolicy) ShouldOpen(offset, panelWidth, velocity float64) bool {
	return offset > panelWidth/3 || velocity > p.FastSwipeVelocity
}

// ShouldClose reports whether a closing drag commits. Negative velocity moves
// toward closed.
func (p CommitPolicy) ShouldClose(offset, panelWidth, velocity float64) bool {
	return p.closeByPosition(offset, panelWidth) || p.closeByVelocity(velocity)
}

func (p CommitPolicy) closeByPosition(offset, panelWidth float64) bool {
	return offset < panelWidth/2
}

func (p CommitPolicy) closeByVelocity(velocity float64) bool {
	return velocity < -p.FastSwipeVelocity
}

// Decide evaluates the policy for the given drag direction.
func (p CommitPolicy) Decide(dir Direction, offset, panelWidth, velocity float64) CommitDecision {
	if dir == Closing {
		return CommitDecision{Open: !p.ShouldClose(offset, panelWidth, velocity)}
	}
	return CommitDecision{Open: p.ShouldOpen(offset, panelWidth, velocity)}
}
