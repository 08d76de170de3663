package mediaview

// Child is a box the engine can size and position.
// Hosts implement it on top of their own view types.
type Child interface {
	// Measure asks the child for its desired size given an at-most bound.
	// The child may return less than the bound but should not return more.
	Measure(maxWidth, maxHeight int) Size

	// Place commits an absolute rectangle in the container's coordinate space.
	Place(r Rect)
}

// Role identifies a child by its position in the container.
type Role int

const (
	RoleAttachment Role = iota
	RoleTitle
	RoleDescription
	RoleIcon
)

// ChildCount is the exact number of children a container must hold.
const ChildCount = 4

// Roles lists every role in child order.
var Roles = [ChildCount]Role{RoleAttachment, RoleTitle, RoleDescription, RoleIcon}

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case RoleAttachment:
		return "attachment"
	case RoleTitle:
		return "title"
	case RoleDescription:
		return "description"
	case RoleIcon:
		return "icon"
	default:
		return "unknown"
	}
}

// ParseRole returns the role named s, as produced by Role.String.
func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if r.String() == s {
			return r, true
		}
	}
	return 0, false
}
