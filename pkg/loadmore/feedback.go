package loadmore

// Feedback receives load-more lifecycle notifications. Implementations
// typically show a footer spinner while refreshing.
type Feedback interface {
	OnBeginRefreshing()
	OnEndRefreshing()
	// PreferredHeight is the footer height reserved in the bottom inset
	// when the controller is configured without an explicit height.
	PreferredHeight() float64
}

// FeedbackFuncs adapts plain functions to Feedback. Nil fields are skipped.
type FeedbackFuncs struct {
	BeginRefreshing func()
	EndRefreshing   func()
	Height          float64
}

func (f FeedbackFuncs) OnBeginRefreshing() {
	if f.BeginRefreshing != nil {
		f.BeginRefreshing()
	}
}

func (f FeedbackFuncs) OnEndRefreshing() {
	if f.EndRefreshing != nil {
		f.EndRefreshing()
	}
}

func (f FeedbackFuncs) PreferredHeight() float64 {
	return f.Height
}

type nopFeedback struct{}

func (nopFeedback) OnBeginRefreshing()       {}
func (nopFeedback) OnEndRefreshing()         {}
func (nopFeedback) PreferredHeight() float64 { return 0 }
