package callout

// Kind selects one of the singular callouts.
type Kind int

const (
	// Arrow is the pointer drawn beside an item.
	Arrow Kind = iota
	// Shortcut highlights the item's key chord.
	Shortcut
)

func (k Kind) String() string {
	switch k {
	case Arrow:
		return "arrow"
	case Shortcut:
		return "shortcut"
	default:
		return "unknown"
	}
}

// other returns the kind that is mutually exclusive with k.
func (k Kind) other() Kind {
	if k == Arrow {
		return Shortcut
	}
	return Arrow
}

// Direction hints which side the arrow points from.
type Direction int

const (
	// Right points at a leaf item.
	Right Direction = iota
	// Left points at an item that opens a submenu.
	Left
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// State is the overlay configuration of a single item.
type State struct {
	Arrow             bool
	Direction         Direction
	Shortcut          bool
	Checked           bool
	Clicked           bool
	AncestorOfClicked bool
	Persist           bool
	Emphasized        bool
	Highlighted       bool
}

// zero reports whether s carries no flags.
func (s State) zero() bool {
	return s == State{}
}
