package refresh

// Feedback is implemented by indicator views that react to pull-to-refresh
// lifecycle changes.
type Feedback interface {
	// OnStateChange is called on every state transition with the new state.
	OnStateChange(state State)
	// OnAnimationStart is called when the reveal animation has finished and
	// loading begins.
	OnAnimationStart()
	// OnAnimationEnd is called when the conceal animation has finished and
	// the controller is idle again.
	OnAnimationEnd()
}

type nopFeedback struct{}

func (nopFeedback) OnStateChange(State) {}
func (nopFeedback) OnAnimationStart()   {}
func (nopFeedback) OnAnimationEnd()     {}

// FeedbackFuncs adapts plain functions to Feedback. Nil fields are skipped.
type FeedbackFuncs struct {
	StateChange    func(State)
	AnimationStart func()
	AnimationEnd   func()
}

// OnStateChange calls StateChange.
func (f FeedbackFuncs) OnStateChange(state State) {
	if f.StateChange != nil {
		f.StateChange(state)
	}
}

// OnAnimationStart calls AnimationStart.
func (f FeedbackFuncs) OnAnimationStart() {
	if f.AnimationStart != nil {
		f.AnimationStart()
	}
}

// OnAnimationEnd calls AnimationEnd.
func (f FeedbackFuncs) OnAnimationEnd() {
	if f.AnimationEnd != nil {
		f.AnimationEnd()
	}
}
