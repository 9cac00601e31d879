package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/svlint/internal/model"
)

// resultsDelegate renders one file per line: failure count, then path.
type resultsDelegate struct {
	offset int
}

func (d resultsDelegate) Height() int  { return 1 }
func (d resultsDelegate) Spacing() int { return 0 }
func (d resultsDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultsDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	isSelected := index == l.Index()
	width := l.Width() - 8 // count column (6) + spacing (2)

	countColor := lipgloss.Color("10")
	if len(file.failures) > 0 {
		countColor = lipgloss.Color("9")
	}

	var (
		pathStyle, countStyle lipgloss.Style
		displayPath           string
	)

	if isSelected {
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)

		displayPath = animateScroll(file.path, width, d.offset)
	} else {
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(countColor).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)

		displayPath = truncateToWidth(file.path, width)
	}

	line := fmt.Sprintf("%s  %s",
		countStyle.Render(fmt.Sprintf("%d", len(file.failures))),
		pathStyle.Render(displayPath),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	// ticks before scrolling starts
	const pause = 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + "   ")
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// resultsModel lists the linted files and, on demand, the failures of the
// selected one.
type resultsModel struct {
	width        int
	height       int
	fileList     list.Model
	delegate     resultsDelegate
	sum          summary
	rendered     bool
	showDetails  bool
	animOffset   int
	lastSelected int
}

func newResultsModel() resultsModel {
	delegate := resultsDelegate{}
	fileList := list.New([]list.Item{}, delegate, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return resultsModel{
		fileList:     fileList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (rm resultsModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (rm resultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.fileList.SetWidth(rm.width)

	case tickMsg:
		if rm.fileList.FilterState() != list.Filtering && rm.rendered {
			rm.animOffset++
			rm.delegate.offset = rm.animOffset
			rm.fileList.SetDelegate(rm.delegate)

			return rm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return rm, nil

	case tea.KeyMsg:
		return rm.handleKeyMsg(msg)

	case resultsMsg:
		rm = rm.handleResultsMsg(msg)
	}

	return rm, cmd
}

func (rm resultsModel) handleKeyMsg(msg tea.KeyMsg) (resultsModel, tea.Cmd) {
	if rm.fileList.FilterState() != list.Filtering {
		switch msg.String() {
		case "q", "ctrl+c":
			return rm, tea.Quit
		case "enter":
			rm.showDetails = !rm.showDetails
			return rm, nil
		}
	}

	var cmd tea.Cmd

	rm.fileList, cmd = rm.fileList.Update(msg)

	if rm.fileList.Index() != rm.lastSelected {
		rm.lastSelected = rm.fileList.Index()
		rm.animOffset = 0
		rm.delegate.offset = 0
		rm.fileList.SetDelegate(rm.delegate)
	}

	return rm, cmd
}

func (rm resultsModel) handleResultsMsg(msg resultsMsg) resultsModel {
	results := sortedResults(msg.results)
	rm.sum = summarize(results)

	items := make([]list.Item, 0, len(results))
	for _, r := range results {
		items = append(items, fileItem{
			path:       string(r.Source.Origin),
			failures:   r.Failures,
			suppressed: r.Suppressed,
		})
	}

	rm.fileList.SetItems(items)
	rm.rendered = true

	if len(items) > 0 && rm.lastSelected == -1 {
		rm.lastSelected = 0
	}

	return rm
}

// needsPagination reports whether the static rendering would overflow the
// terminal. An unknown height never paginates.
func (rm resultsModel) needsPagination() bool {
	if rm.height <= 0 {
		return false
	}

	return len(rm.fileList.Items())+9 > rm.height
}

func (rm resultsModel) View() string {
	if !rm.rendered {
		return "Loading lint results…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("svlint results")

	summaryLine := summaryStyle.Render(fmt.Sprintf(
		"Failures: %s   Files: %s   Failed: %s   Suppressed: %s",
		accentStyle.Render(fmt.Sprintf("%d", rm.sum.failures)),
		accentStyle.Render(fmt.Sprintf("%d", rm.sum.files)),
		accentStyle.Render(fmt.Sprintf("%d", rm.sum.failed)),
		accentStyle.Render(fmt.Sprintf("%d", rm.sum.suppressed)),
	))

	sections := []string{title, summaryLine, rm.renderTable()}

	if rm.showDetails {
		sections = append(sections, rm.renderDetails())
	}

	if rm.needsPagination() {
		footerStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Align(lipgloss.Center).
			Width(rm.width)

		sections = append(sections, footerStyle.Render("↑/k up • ↓/j down • enter details • / filter • q quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (rm resultsModel) renderTable() string {
	// title (2) + summary (2) + footer (1) + border (2) + headers (2)
	listHeight := max(rm.height-9, 5)
	if !rm.needsPagination() {
		// the filter bar takes two lines
		listHeight = max(len(rm.fileList.Items()), 1) + 2
	}

	listWidth := 74
	if rm.width > 0 {
		listWidth = rm.width - 6
	}

	rm.fileList.SetHeight(listHeight)
	rm.fileList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %s", "Fails", "File Path"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			rm.fileList.View(),
		),
	)
}

func (rm resultsModel) renderDetails() string {
	item, ok := rm.fileList.SelectedItem().(fileItem)
	if !ok {
		return ""
	}

	ruleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	posStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var b strings.Builder

	if len(item.failures) == 0 {
		b.WriteString(hintStyle.Render("No failures."))
	}

	for i, f := range item.failures {
		if i > 0 {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "%s %s\n  %s",
			posStyle.Render(fmt.Sprintf("%d:%d", f.Line, f.Column)),
			ruleStyle.Render(f.Rule),
			hintStyle.Render(f.Hint))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("9")).
		Margin(0, 1).
		Padding(0, 1).
		Render(b.String())
}

// failureLines renders the failures of results in the compact form printed
// when no pagination is needed.
func failureLines(results []m.FileResult) string {
	ruleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	posStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	var b strings.Builder

	for _, r := range sortedResults(results) {
		for _, f := range r.Failures {
			fmt.Fprintf(&b, "%s %s %s\n",
				posStyle.Render(fmt.Sprintf("%s:%d:%d", f.Path, f.Line, f.Column)),
				ruleStyle.Render(f.Rule),
				f.Hint)
		}
	}

	return b.String()
}
