package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/navstack/pkg/navtea"
)

// =============================================================================
// Demo Catalog
// =============================================================================

// The demo navigates a small library catalog: shelves hold books, books
// hold chapters. Three levels is enough to exercise push, pop, pop-to and
// pop-to-root without inventing a real application.

type book struct {
	title    string
	chapters []string
}

type shelf struct {
	name  string
	books []book
}

var catalog = []shelf{
	{
		name: "Fiction",
		books: []book{
			{title: "The Left Hand of Winter", chapters: []string{"Arrival", "The Crossing", "Thaw"}},
			{title: "A City of Stairs", chapters: []string{"The Bulikov Case", "Old Gods", "Verdict"}},
		},
	},
	{
		name: "Non-Fiction",
		books: []book{
			{title: "The Soul of a New Machine", chapters: []string{"The Kidder Brief", "Microcode", "Shipping"}},
			{title: "Working in Public", chapters: []string{"Platforms", "Maintainers"}},
		},
	},
	{
		name: "Reference",
		books: []book{
			{title: "The Go Programming Language", chapters: []string{"Tutorial", "Program Structure", "Goroutines"}},
		},
	},
}

// Record ID scheme. IDs double as session keys, so they are rebuildable
// from the catalog alone: resolveScreen parses them back into screens.
const (
	shelfIDPrefix   = "shelf/"
	bookIDPrefix    = "book/"
	chapterIDPrefix = "chapter/"
	settingsID      = "settings"
)

func shelfID(s shelf) string        { return shelfIDPrefix + s.name }
func bookID(s shelf, b book) string { return bookIDPrefix + s.name + "/" + b.title }
func chapterID(s shelf, b book, i int) string {
	return fmt.Sprintf("%s%s/%s/%d", chapterIDPrefix, s.name, b.title, i)
}

// resolveScreen rebuilds the screen a record ID refers to. It is the
// resolver handed to session.Records on restore: IDs that no longer match
// the catalog report false, which truncates the restored stack there.
func resolveScreen(id string) (navtea.Screen, bool) {
	switch {
	case id == settingsID:
		return newSettingsScreen(), true

	case strings.HasPrefix(id, shelfIDPrefix):
		s, ok := findShelf(strings.TrimPrefix(id, shelfIDPrefix))
		if !ok {
			return nil, false
		}
		return newShelfScreen(s), true

	case strings.HasPrefix(id, bookIDPrefix):
		parts := strings.SplitN(strings.TrimPrefix(id, bookIDPrefix), "/", 2)
		if len(parts) != 2 {
			return nil, false
		}
		s, b, ok := findBook(parts[0], parts[1])
		if !ok {
			return nil, false
		}
		return newBookScreen(s, b), true

	case strings.HasPrefix(id, chapterIDPrefix):
		parts := strings.SplitN(strings.TrimPrefix(id, chapterIDPrefix), "/", 3)
		if len(parts) != 3 {
			return nil, false
		}
		s, b, ok := findBook(parts[0], parts[1])
		if !ok {
			return nil, false
		}
		var i int
		if _, err := fmt.Sscanf(parts[2], "%d", &i); err != nil || i < 0 || i >= len(b.chapters) {
			return nil, false
		}
		return newChapterScreen(s, b, i), true
	}
	return nil, false
}

func findShelf(name string) (shelf, bool) {
	for _, s := range catalog {
		if s.name == name {
			return s, true
		}
	}
	return shelf{}, false
}

func findBook(shelfName, title string) (shelf, book, bool) {
	s, ok := findShelf(shelfName)
	if !ok {
		return shelf{}, book{}, false
	}
	for _, b := range s.books {
		if b.title == title {
			return s, b, true
		}
	}
	return shelf{}, book{}, false
}

// =============================================================================
// List Screen
// =============================================================================

// listItem is one selectable row. push builds the destination for enter;
// nil means the row is not navigable.
type listItem struct {
	label string
	push  func() (string, navtea.Screen)
}

// listScreen is the shared shape of the shelves, shelf, and book screens:
// a titled cursor list where enter pushes the selected destination.
type listScreen struct {
	title  string
	items  []listItem
	cursor int
	width  int
}

func (s listScreen) Init() tea.Cmd { return nil }

func (s listScreen) Update(msg tea.Msg) (navtea.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.items)-1 {
				s.cursor++
			}
		case "enter":
			item := s.items[s.cursor]
			if item.push == nil {
				return s, nil
			}
			id, screen := item.push()
			return s, navtea.PushWithID(id, screen)
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
	}
	return s, nil
}

func (s listScreen) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(s.title))
	b.WriteString("\n\n")
	for i, item := range s.items {
		cursor := "  "
		style := StyleValue
		if i == s.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(item.label) + "\n")
	}
	return b.String()
}

var listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

// =============================================================================
// Demo Screens
// =============================================================================

// newShelvesScreen builds the root screen listing all shelves.
func newShelvesScreen() navtea.Screen {
	items := make([]listItem, len(catalog))
	for i, s := range catalog {
		items[i] = listItem{
			label: fmt.Sprintf("%s (%d books)", s.name, len(s.books)),
			push:  func() (string, navtea.Screen) { return shelfID(s), newShelfScreen(s) },
		}
	}
	return listScreen{title: "Library", items: items}
}

func newShelfScreen(s shelf) navtea.Screen {
	items := make([]listItem, len(s.books))
	for i, b := range s.books {
		items[i] = listItem{
			label: b.title,
			push:  func() (string, navtea.Screen) { return bookID(s, b), newBookScreen(s, b) },
		}
	}
	return listScreen{title: s.name, items: items}
}

func newBookScreen(s shelf, b book) navtea.Screen {
	items := make([]listItem, len(b.chapters))
	for i, title := range b.chapters {
		items[i] = listItem{
			label: fmt.Sprintf("%d. %s", i+1, title),
			push:  func() (string, navtea.Screen) { return chapterID(s, b, i), newChapterScreen(s, b, i) },
		}
	}
	return listScreen{title: b.title, items: items}
}

// textScreen shows a title and a body, nothing interactive.
type textScreen struct {
	title string
	body  string
}

func (s textScreen) Init() tea.Cmd { return nil }
func (s textScreen) Update(msg tea.Msg) (navtea.Screen, tea.Cmd) { return s, nil }
func (s textScreen) View() string {
	return StyleTitle.Render(s.title) + "\n\n" + StyleValue.Render(s.body) + "\n"
}

func newChapterScreen(s shelf, b book, i int) navtea.Screen {
	return textScreen{
		title: fmt.Sprintf("%s — %d. %s", b.title, i+1, b.chapters[i]),
		body:  "You are three levels deep. Press l to pop back to the shelf\nin one step, or esc to go back one screen at a time.",
	}
}

func newSettingsScreen() navtea.Screen {
	return textScreen{
		title: "Settings",
		body: "This screen lives under the fixed ID \"settings\".\n" +
			"Pressing s while it is already on the stack is a duplicate\n" +
			"push: watch the log report a rejected operation while the\n" +
			"stack stays exactly as it is.",
	}
}
