package ecs

//go:generate go tool stringer -type=Kind -linecomment

// Kind identifies the variant of a component. Entities bucket their
// components by Kind, and typed queries assert the bucket contents back to the
// concrete variant registered under it.
type Kind uint8

const (
	KindInvalid      Kind = iota // invalid
	KindEntity                   // entity
	KindTransform                // transform
	KindModel                    // model
	KindLight                    // light
	KindCamera                   // camera
	KindEventHandler             // event handler
	// KindUser is the first kind available to host-defined components.
	// Use KindUser, KindUser+1, ... for custom variants.
	KindUser // user
)

// ParseKind returns the Kind whose tag name is name.
func ParseKind(name string) (Kind, bool) {
	for k := KindEntity; k <= KindUser; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return KindInvalid, false
}
