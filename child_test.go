package mediaview

import (
	"errors"
	"testing"
)

func TestRole_StringRoundTrip(t *testing.T) {
	want := []string{"attachment", "title", "description", "icon"}
	for i, role := range Roles {
		if got := role.String(); got != want[i] {
			t.Errorf("Role(%d).String() = %q, want %q", i, got, want[i])
		}
		parsed, ok := ParseRole(want[i])
		if !ok || parsed != role {
			t.Errorf("ParseRole(%q) = %v, %v, want %v, true", want[i], parsed, ok, role)
		}
	}
	if got := Role(7).String(); got != "unknown" {
		t.Errorf("Role(7).String() = %q, want unknown", got)
	}
	if _, ok := ParseRole("badge"); ok {
		t.Error("ParseRole(badge) ok = true, want false")
	}
}

func TestPreconditionError_Message(t *testing.T) {
	type tc struct {
		err  *PreconditionError
		want string
	}

	tests := map[string]tc{
		"count": {
			err:  &PreconditionError{Count: 3, NilIndex: -1},
			want: "mediaview: container holds 3 children, want 4",
		},
		"nil child": {
			err:  &PreconditionError{Count: 4, NilIndex: 2},
			want: "mediaview: description child at index 2 is nil",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, ErrPrecondition) {
				t.Error("errors.Is(err, ErrPrecondition) = false, want true")
			}
		})
	}
}

func TestContainer_Available(t *testing.T) {
	c := Container{Width: 400, Height: 600, Padding: EdgeTRBL(10, 20, 30, 40)}
	if got, want := c.Available(), (Size{Width: 340, Height: 560}); got != want {
		t.Errorf("Available() = %+v, want %+v", got, want)
	}
	if got, want := c.ContentRect(), NewRect(40, 10, 340, 560); got != want {
		t.Errorf("ContentRect() = %+v, want %+v", got, want)
	}
}
