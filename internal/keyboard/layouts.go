package keyboard

import "fmt"

// Standard key widths in layout units. Letter keys share one width so rows
// stay visually even; specials are wider so the width-budget reflow exercises
// weight-based (not count-based) redistribution.
const (
	LetterWidth    = 50
	BackspaceWidth = 80
	EnterWidth     = 60
	SpaceWidth     = 300
)

// SpecialSpec describes a non-letter key appended at the end of a row.
type SpecialSpec struct {
	Label  string
	Width  int
	Action Action
}

// RowSpec describes one row of a layout: a run of letter keys, optionally
// followed by a special key.
type RowSpec struct {
	Letters string
	Special *SpecialSpec
}

// LayoutSpec names a builtin layout and its rows, top to bottom.
type LayoutSpec struct {
	Name string
	Rows []RowSpec
}

// Full is the 4-row layout: QWERTY letters with backspace, enter and a
// space row.
func Full() LayoutSpec {
	return LayoutSpec{
		Name: "full",
		Rows: []RowSpec{
			{Letters: "qwertyuiop", Special: &SpecialSpec{Label: "⌫", Width: BackspaceWidth, Action: ActionBackspace}},
			{Letters: "asdfghjkl", Special: &SpecialSpec{Label: "⏎", Width: EnterWidth, Action: ActionEnter}},
			{Letters: "zxcvbnm"},
			{Special: &SpecialSpec{Label: "space", Width: SpaceWidth, Action: ActionSpace}},
		},
	}
}

// Compact is the 3-row letters-only layout. All keys share one width, so the
// width-budget and row-count reflow policies produce identical moves.
func Compact() LayoutSpec {
	return LayoutSpec{
		Name: "compact",
		Rows: []RowSpec{
			{Letters: "qwertyuiop"},
			{Letters: "asdfghjkl"},
			{Letters: "zxcvbnm"},
		},
	}
}

// Layouts returns all builtin layouts in display order.
func Layouts() []LayoutSpec {
	return []LayoutSpec{Full(), Compact()}
}

// LayoutByName resolves a builtin layout by its name.
func LayoutByName(name string) (LayoutSpec, error) {
	for _, l := range Layouts() {
		if l.Name == name {
			return l, nil
		}
	}
	return LayoutSpec{}, fmt.Errorf("keyboard: unknown layout %q", name)
}
