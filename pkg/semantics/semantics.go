// Package semantics describes the accessibility surface of refresh and
// load-more decorations so hosts can expose them to assistive technology.
package semantics

// SemanticsRole identifies the accessibility role of a node.
type SemanticsRole int

const (
	// SemanticsRoleNone is the zero role.
	SemanticsRoleNone SemanticsRole = iota
	// SemanticsRoleProgressIndicator marks an activity or progress indicator.
	SemanticsRoleProgressIndicator
	// SemanticsRoleHeader marks a header decoration.
	SemanticsRoleHeader
	// SemanticsRoleFooter marks a footer decoration.
	SemanticsRoleFooter
)

func (r SemanticsRole) String() string {
	switch r {
	case SemanticsRoleProgressIndicator:
		return "progress_indicator"
	case SemanticsRoleHeader:
		return "header"
	case SemanticsRoleFooter:
		return "footer"
	default:
		return "none"
	}
}

// SemanticsFlag is a bit set of boolean semantic states.
type SemanticsFlag uint32

const (
	// SemanticsIsHidden marks a node that is present but not visible.
	SemanticsIsHidden SemanticsFlag = 1 << iota
	// SemanticsIsLiveRegion marks a node whose changes should be announced.
	SemanticsIsLiveRegion
	// SemanticsIsBusy marks a node that is currently loading.
	SemanticsIsBusy
)

// Has reports whether f contains flag.
func (f SemanticsFlag) Has(flag SemanticsFlag) bool {
	return f&flag != 0
}

// Set returns f with flag added.
func (f SemanticsFlag) Set(flag SemanticsFlag) SemanticsFlag {
	return f | flag
}

// Clear returns f with flag removed.
func (f SemanticsFlag) Clear(flag SemanticsFlag) SemanticsFlag {
	return f &^ flag
}

// SemanticsProperties holds the semantic values of a node.
type SemanticsProperties struct {
	Label string
	Hint  string
	Value string
	Role  SemanticsRole
	Flags SemanticsFlag
}

// IsEmpty reports whether no property has been set.
func (p SemanticsProperties) IsEmpty() bool {
	return p.Label == "" && p.Hint == "" && p.Value == "" && p.Role == SemanticsRoleNone && p.Flags == 0
}

// SemanticsConfiguration describes semantic properties for a decoration.
type SemanticsConfiguration struct {
	// IsSemanticBoundary indicates this node creates a separate semantic node
	// rather than merging with its ancestors.
	IsSemanticBoundary bool

	// Properties contains semantic property values.
	Properties SemanticsProperties
}

// IsEmpty reports whether the configuration contains any semantic information.
func (c SemanticsConfiguration) IsEmpty() bool {
	return !c.IsSemanticBoundary && c.Properties.IsEmpty()
}

// Merge fills empty properties of c from other. Flags are combined.
func (c *SemanticsConfiguration) Merge(other SemanticsConfiguration) {
	if c == nil {
		return
	}
	c.IsSemanticBoundary = c.IsSemanticBoundary || other.IsSemanticBoundary
	if c.Properties.Label == "" {
		c.Properties.Label = other.Properties.Label
	}
	if c.Properties.Hint == "" {
		c.Properties.Hint = other.Properties.Hint
	}
	if c.Properties.Value == "" {
		c.Properties.Value = other.Properties.Value
	}
	if c.Properties.Role == SemanticsRoleNone {
		c.Properties.Role = other.Properties.Role
	}
	c.Properties.Flags |= other.Properties.Flags
}

// SemanticsDescriber is implemented by decorations that expose accessibility
// information. It returns false when it has nothing to describe.
type SemanticsDescriber interface {
	DescribeSemanticsConfiguration(config *SemanticsConfiguration) bool
}
