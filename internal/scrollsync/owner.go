package scrollsync

// Owner identifies the input surface allowed to write the shared index.
type Owner uint8

const (
	OwnerList Owner = iota
	OwnerScrollbar
)

// String returns the owner name.
func (o Owner) String() string {
	switch o {
	case OwnerList:
		return "list"
	case OwnerScrollbar:
		return "scrollbar"
	default:
		return "unknown"
	}
}

// Valid reports whether o is one of the defined owners.
func (o Owner) Valid() bool {
	return o == OwnerList || o == OwnerScrollbar
}
