package components

import (
	"strconv"
	"strings"

	"healthlog/internal/modules/record/domain"
	"healthlog/internal/ui/theme"
)

// FilterBar is a row of mutually exclusive range buttons. Exactly one is
// active at a time.
type FilterBar struct {
	windows []domain.Window
	active  int
}

func NewFilterBar(selected domain.Window) FilterBar {
	fb := FilterBar{windows: domain.Windows}
	fb.Select(selected)
	return fb
}

// Select activates the button for w. Unknown windows leave the bar unchanged.
func (f *FilterBar) Select(w domain.Window) bool {
	for i, candidate := range f.windows {
		if candidate == w {
			f.active = i
			return true
		}
	}
	return false
}

// Key maps the number keys 1..n onto buttons.
func (f FilterBar) Key(k string) (domain.Window, bool) {
	n, err := strconv.Atoi(k)
	if err != nil || n < 1 || n > len(f.windows) {
		return domain.Window{}, false
	}
	return f.windows[n-1], true
}

func (f FilterBar) Active() domain.Window {
	return f.windows[f.active]
}

func (f FilterBar) View() string {
	parts := make([]string, len(f.windows))
	for i, w := range f.windows {
		label := strconv.Itoa(i+1) + " " + w.Label()
		if i == f.active {
			parts[i] = theme.ButtonActive.Render(label)
		} else {
			parts[i] = theme.Button.Render(label)
		}
	}
	return strings.Join(parts, " ")
}
