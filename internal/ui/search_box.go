package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-timezones/internal/catalog"
)

// searchEntry is a custom Entry that forwards list-navigation keys to the
// surrounding SearchBox instead of consuming them.
// It embeds widget.Entry to inherit all standard behavior.
type searchEntry struct {
	widget.Entry

	onMove   func(delta int)
	onCancel func()
}

func newSearchEntry() *searchEntry {
	entry := &searchEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedKey intercepts Up/Down/Escape for dropdown navigation; everything
// else keeps the default entry behavior (Return still fires OnSubmitted).
func (e *searchEntry) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyDown:
		e.onMove(1)
	case fyne.KeyUp:
		e.onMove(-1)
	case fyne.KeyEscape:
		e.onCancel()
	default:
		e.Entry.TypedKey(ev)
	}
}

// SearchBox couples the search entry with its dropdown of ranked catalog
// matches. Selecting a result clears the query and reports the city.
type SearchBox struct {
	OnChosen func(catalog.City)

	entry    *searchEntry
	dropdown *fyne.Container
	box      *fyne.Container

	results  []catalog.City
	selected int
}

// NewSearchBox builds the widget tree; the returned box is ready to place
// in a layout via Content.
func NewSearchBox(placeholder string, onChosen func(catalog.City)) *SearchBox {
	sb := &SearchBox{OnChosen: onChosen}

	sb.entry = newSearchEntry()
	sb.entry.SetPlaceHolder(placeholder)
	sb.entry.OnChanged = sb.queryChanged
	sb.entry.OnSubmitted = func(string) { sb.confirm() }
	sb.entry.onMove = sb.move
	sb.entry.onCancel = sb.clear

	sb.dropdown = container.NewVBox()
	sb.dropdown.Hide()
	sb.box = container.NewVBox(sb.entry, sb.dropdown)
	return sb
}

// Content returns the canvas object to embed in the window layout.
func (sb *SearchBox) Content() fyne.CanvasObject {
	return sb.box
}

// queryChanged recomputes the dropdown on every keystroke.
func (sb *SearchBox) queryChanged(query string) {
	sb.results = catalog.Search(query)
	sb.selected = 0
	sb.rebuild()
}

// rebuild recreates the dropdown rows and highlights the selection.
func (sb *SearchBox) rebuild() {
	sb.dropdown.Objects = nil
	if len(sb.results) == 0 {
		sb.dropdown.Hide()
		sb.dropdown.Refresh()
		return
	}

	for i, city := range sb.results {
		i := i
		btn := widget.NewButton(resultText(city), func() { sb.choose(i) })
		btn.Alignment = widget.ButtonAlignLeading
		if i == sb.selected {
			btn.Importance = widget.HighImportance
		}
		sb.dropdown.Add(btn)
	}
	sb.dropdown.Show()
	sb.dropdown.Refresh()
}

// resultText renders one dropdown row: curated entries show their country,
// synthesized ones show the raw identifier being added.
func resultText(city catalog.City) string {
	if city.Country != "" {
		return fmt.Sprintf("%s · %s", city.Name, city.Country)
	}
	return fmt.Sprintf("%s · %s", city.Name, city.Zone)
}

// move shifts the highlighted row, clamped to the result range.
func (sb *SearchBox) move(delta int) {
	if len(sb.results) == 0 {
		return
	}
	next := sb.selected + delta
	if next < 0 {
		next = 0
	}
	if next >= len(sb.results) {
		next = len(sb.results) - 1
	}
	if next != sb.selected {
		sb.selected = next
		sb.rebuild()
	}
}

// confirm picks the highlighted result, if any.
func (sb *SearchBox) confirm() {
	if len(sb.results) == 0 {
		return
	}
	sb.choose(sb.selected)
}

// choose reports a result and resets the box.
func (sb *SearchBox) choose(i int) {
	if i < 0 || i >= len(sb.results) {
		return
	}
	city := sb.results[i]
	sb.clear()
	if sb.OnChosen != nil {
		sb.OnChosen(city)
	}
}

// clear empties the query and hides the dropdown.
func (sb *SearchBox) clear() {
	sb.entry.SetText("")
	sb.results = nil
	sb.selected = 0
	sb.rebuild()
}
