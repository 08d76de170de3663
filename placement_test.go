package mediaview

import (
	"fmt"
	"testing"
)

func scenarioA() Placements {
	return Placements{
		Attachment:  RectLTRB(0, 0, 400, 300),
		Title:       RectLTRB(0, 300, 400, 340),
		Description: RectLTRB(0, 340, 400, 400),
		Icon:        RectLTRB(350, 325, 400, 375),
	}
}

func TestPlacements_Get(t *testing.T) {
	p := scenarioA()
	all := p.All()
	for i, role := range Roles {
		if got := p.Get(role); got != all[i] {
			t.Errorf("Get(%s) = %+v, want %+v", role, got, all[i])
		}
	}
	if got := p.Get(Role(9)); got != (Rect{}) {
		t.Errorf("Get(9) = %+v, want zero", got)
	}
}

func TestPlacements_Bounds(t *testing.T) {
	if got, want := scenarioA().Bounds(), NewRect(0, 0, 400, 400); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestPlacements_Overflow(t *testing.T) {
	type tc struct {
		placements Placements
		container  Container
		want       []Role
	}

	tall := scenarioA()
	tall.Description = NewRect(0, 340, 400, 300)

	tests := map[string]tc{
		"fits": {
			placements: scenarioA(),
			container:  Container{Width: 400, Height: 600},
			want:       nil,
		},
		"description past bottom": {
			placements: tall,
			container:  Container{Width: 400, Height: 600},
			want:       []Role{RoleDescription},
		},
		"padding pushes everything out": {
			placements: scenarioA(),
			container:  Container{Width: 400, Height: 600, Padding: EdgeTRBL(0, 10, 0, 0)},
			want:       []Role{RoleAttachment, RoleTitle, RoleDescription, RoleIcon},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.placements.Overflow(tt.container)
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("Overflow() = %v, want %v", got, tt.want)
			}
		})
	}
}
