package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"pdfsummarizer/config"
	"pdfsummarizer/render"
	"pdfsummarizer/types"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("📄 " + TextTitle))
	b.WriteString("\n")

	if m.alert != nil {
		style := AlertStyle
		if m.alert.isError {
			style = ErrorAlertStyle
		}
		b.WriteString(style.Render(m.alert.text))
		b.WriteString(InfoStyle.Render("  esc to dismiss"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.box(PaneForm, m.formView()))
	b.WriteString("\n")

	if m.state.HasResult() {
		b.WriteString(m.box(PaneResult, m.resultView()))
		b.WriteString("\n")
	}

	b.WriteString(m.box(PaneList, m.listView()))
	b.WriteString("\n")

	if m.confirm != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("%s %q %s", TextConfirmDelete, m.confirm.Title, TextConfirmDeleteYN)))
		b.WriteString("\n")
	}

	b.WriteString(InfoStyle.Render(m.footer()))
	return b.String()
}

func (m Model) box(p Pane, content string) string {
	style := BoxStyle
	if m.focus == p {
		style = FocusedBoxStyle
	}
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(content)
}

func (m Model) footer() string {
	switch m.focus {
	case PaneResult:
		return TextFooterResult
	case PaneList:
		return TextFooterList
	default:
		return TextFooterForm
	}
}

func (m Model) formView() string {
	var b strings.Builder
	b.WriteString(HeadingStyle.Render(TextUploadHeading))
	b.WriteString("\n")

	b.WriteString(m.fieldLine(FieldFile, TextFileLabel, m.fileInput.View()))

	lengths := make([]string, 0, len(config.Lengths))
	for _, l := range config.Lengths {
		mark := "( )"
		if l == m.length {
			mark = "(•)"
		}
		lengths = append(lengths, mark+" "+l)
	}
	b.WriteString(m.fieldLine(FieldLength, TextLengthLabel, strings.Join(lengths, "  ")))

	lang := m.langInput.View()
	if m.langInput.Value() == "" && !m.langInput.Focused() {
		lang = InfoStyle.Render(TextLanguageAuto)
	}
	b.WriteString(m.fieldLine(FieldLanguage, TextLanguageLabel, lang))

	b.WriteString("\n")
	if m.Busy() {
		b.WriteString(m.spinner.View() + " " + StatusStyle.Render(TextBusy))
	} else {
		b.WriteString(InfoStyle.Render("[ " + TextGenerate + " ]"))
	}
	return b.String()
}

func (m Model) fieldLine(f Field, label, value string) string {
	cursor := "  "
	if m.focus == PaneForm && m.field == f {
		cursor = "> "
	}
	return fmt.Sprintf("%s%-16s %s\n", cursor, label+":", value)
}

func (m Model) resultView() string {
	var b strings.Builder
	b.WriteString(HeadingStyle.Render(TextResultHeading))
	b.WriteString("  ")
	control := m.state.SaveControl()
	if control.Enabled {
		b.WriteString(HighlightStyle.Render(control.Label))
	} else {
		b.WriteString(DisabledButtonStyle.Render(control.Label))
	}
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	if !m.viewport.AtBottom() {
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render(fmt.Sprintf("… %d%%", int(m.viewport.ScrollPercent()*100))))
	}
	return b.String()
}

// resultLines renders the summary text and every panel, wrapping prose to width
func resultLines(r *types.SummaryResult, opts render.Options, width int) string {
	var b strings.Builder

	b.WriteString(InfoStyle.Render(render.ReadingTimeLine(r.ReadingTime)))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(render.LanguageLine(r)))
	b.WriteString("\n\n")
	b.WriteString(wordwrap.String(r.Summary, width))
	b.WriteString("\n\n")

	b.WriteString(HeadingStyle.Render(TextTopicsHeading))
	b.WriteString("\n")
	if topics := render.Topics(r.Topics, opts); topics == nil {
		b.WriteString(InfoStyle.Render(render.NoTopics))
		b.WriteString("\n")
	} else {
		for _, t := range topics {
			line := "• " + StatusStyle.Render(t.Title)
			if len(t.Terms) > 0 {
				line += ": " + strings.Join(t.Terms, ", ")
			}
			b.WriteString(wordwrap.String(line, width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(HeadingStyle.Render(TextKeywordsHead))
	b.WriteString("\n")
	if keywords := render.Keywords(r.Keywords, opts); keywords == nil {
		b.WriteString(InfoStyle.Render(render.NoKeywords))
		b.WriteString("\n")
	} else if len(keywords) > 0 {
		b.WriteString(wordwrap.String(strings.Join(keywords, " · "), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HeadingStyle.Render(TextMetricsHeading))
	b.WriteString("\n")
	if rows := render.Metrics(r.QualityMetrics); rows == nil {
		b.WriteString(InfoStyle.Render(render.NoMetrics))
	} else {
		for i, row := range rows {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(row.String())
		}
	}

	return b.String()
}

func (m Model) listView() string {
	var b strings.Builder
	b.WriteString(HeadingStyle.Render(TextSavedHeading))
	b.WriteString("\n")

	switch {
	case m.listErr:
		b.WriteString(ErrorStyle.Render(TextListError))
	case len(m.summaries) == 0:
		b.WriteString(InfoStyle.Render(TextNoSaved))
	default:
		for i, s := range m.summaries {
			if i > 0 {
				b.WriteString("\n")
			}
			line := fmt.Sprintf("%s (%d min)", s.Title, s.ReadingTime)
			if i == m.selected && m.focus == PaneList {
				b.WriteString(HighlightStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
		}
	}
	return b.String()
}
