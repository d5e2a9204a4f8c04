package feed

import "fmt"

// Scope is the structural region the next title/description belongs to.
type Scope int

const (
	ScopeChannel Scope = iota
	ScopeItem
	ScopeLiveItem
)

func (s Scope) String() string {
	switch s {
	case ScopeChannel:
		return "channel"
	case ScopeItem:
		return "item"
	case ScopeLiveItem:
		return "live_item"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// enter returns the scope reached when element opens while in s, and whether
// a new record must be appended for it. A "channel" element always resets to
// ScopeChannel, including nested occurrences.
func (s Scope) enter(element string) (Scope, bool) {
	if element == elementChannel {
		return ScopeChannel, false
	}
	switch s {
	case ScopeChannel:
		switch element {
		case elementItem:
			return ScopeItem, true
		case elementLiveItem:
			return ScopeLiveItem, true
		}
		return s, false
	case ScopeItem, ScopeLiveItem:
		return s, false
	default:
		panic(fmt.Sprintf("feed: unknown scope %d", int(s)))
	}
}

// leave returns the scope reached when element closes while in s.
func (s Scope) leave(element string) Scope {
	switch s {
	case ScopeChannel:
		return s
	case ScopeItem:
		if element == elementItem {
			return ScopeChannel
		}
		return s
	case ScopeLiveItem:
		if element == elementLiveItem {
			return ScopeChannel
		}
		return s
	default:
		panic(fmt.Sprintf("feed: unknown scope %d", int(s)))
	}
}
