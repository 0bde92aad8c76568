package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type pickItem struct {
	label   string
	checked bool
	multi   bool
}

func (i pickItem) Title() string {
	if !i.multi {
		return i.label
	}
	box := "[ ]"
	if i.checked {
		box = "[x]"
	}
	return box + " " + i.label
}

func (i pickItem) Description() string { return "" }
func (i pickItem) FilterValue() string { return i.label }

type pickerModel struct {
	list     list.Model
	multi    bool
	canceled bool
}

// RunSelect asks the user to pick one of items. A single candidate resolves
// immediately without starting a program, so callers can run the post-pick
// logic synchronously in that case.
func RunSelect(title string, items []string) (string, error) {
	switch len(items) {
	case 0:
		return "", errors.New("nothing to select")
	case 1:
		return items[0], nil
	}
	m, err := runPicker(title, items, false, nil)
	if err != nil {
		return "", err
	}
	sel, ok := m.list.SelectedItem().(pickItem)
	if !ok {
		return "", ErrCanceled
	}
	return sel.label, nil
}

// RunMultiSelect asks for any subset of items; space toggles, enter accepts.
// Preselected labels start checked. An empty accepted subset falls back to
// the highlighted item.
func RunMultiSelect(title string, items []string, preselected []string) ([]string, error) {
	if len(items) == 0 {
		return nil, errors.New("nothing to select")
	}
	pre := map[string]bool{}
	for _, p := range preselected {
		pre[p] = true
	}
	m, err := runPicker(title, items, true, pre)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, it := range m.list.Items() {
		if p, ok := it.(pickItem); ok && p.checked {
			out = append(out, p.label)
		}
	}
	if len(out) == 0 {
		if sel, ok := m.list.SelectedItem().(pickItem); ok {
			out = append(out, sel.label)
		}
	}
	return out, nil
}

func runPicker(title string, items []string, multi bool, pre map[string]bool) (pickerModel, error) {
	applyThemePreference()

	xs := make([]list.Item, 0, len(items))
	for _, it := range items {
		xs = append(xs, pickItem{label: it, checked: pre[it], multi: multi})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(xs, delegate, 40, pickerHeight(len(items)))
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.Styles.Title = titleStyle

	out, err := tea.NewProgram(pickerModel{list: l, multi: multi}).Run()
	if err != nil {
		return pickerModel{}, err
	}
	m := out.(pickerModel)
	if m.canceled {
		return pickerModel{}, ErrCanceled
	}
	return m, nil
}

func pickerHeight(n int) int {
	h := n + 6
	if h > 20 {
		h = 20
	}
	if h < 10 {
		h = 10
	}
	return h
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width-2, msg.Height-2
		if h > pickerHeight(len(m.list.Items())) {
			h = pickerHeight(len(m.list.Items()))
		}
		m.list.SetSize(w, h)
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		case msg.Type == tea.KeyEnter:
			return m, tea.Quit
		case m.multi && msg.String() == " ":
			if it, ok := m.list.SelectedItem().(pickItem); ok {
				it.checked = !it.checked
				return m, m.list.SetItem(m.list.Index(), it)
			}
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return lipgloss.NewStyle().Padding(1, 2).Render(m.list.View())
}
