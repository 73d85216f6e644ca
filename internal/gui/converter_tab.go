package gui

import (
	"decimal-converter/internal/reference"
	"decimal-converter/internal/service"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
)

const (
	columnWidth = 130
	// shown in result fields until there is a value to show
	placeholder = "—"
)

// converter returns one value per output label
type converter func(input string) ([]string, error)

type tabLayout struct {
	title          string
	heading        string
	inputLabel     string
	hint           string
	outputLabels   []string
	referenceTitle string
	context        reference.Context
	convert        converter
}

type converterTab struct {
	layout  tabLayout
	logger  zerolog.Logger
	view    *reference.View
	entry   *widget.Entry
	outputs []*widget.Label
	message *widget.Label
	table   *widget.Table
	// wraps table so minimal mode can hide the whole card
	reference *widget.Card
}

func newConverterTab(layout tabLayout, view *reference.View, logger zerolog.Logger) *converterTab {
	t := &converterTab{
		layout:  layout,
		logger:  logger,
		view:    view,
		entry:   widget.NewEntry(),
		message: widget.NewLabel(""),
	}
	t.entry.SetPlaceHolder(layout.hint)
	t.entry.OnSubmitted = func(string) { t.convert() }
	t.message.Importance = widget.DangerImportance
	t.message.Wrapping = fyne.TextWrapWord
	for range layout.outputLabels {
		l := widget.NewLabel(placeholder)
		l.TextStyle = fyne.TextStyle{Bold: true}
		t.outputs = append(t.outputs, l)
	}

	t.table = widget.NewTable(
		func() (int, int) { return len(t.view.Rows), len(t.view.Headers) },
		func() fyne.CanvasObject { return widget.NewLabel("0000.0000") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(t.view.Rows[id.Row].Cells[id.Col])
		},
	)
	t.table.ShowHeaderRow = true
	t.table.CreateHeader = func() fyne.CanvasObject {
		l := widget.NewLabel("")
		l.TextStyle = fyne.TextStyle{Bold: true}
		return l
	}
	t.table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(t.view.Headers) {
			o.(*widget.Label).SetText(t.view.Headers[id.Col])
		}
	}
	for i := range t.view.Headers {
		t.table.SetColumnWidth(i, columnWidth)
	}
	t.table.OnSelected = func(id widget.TableCellID) {
		t.selectRow(id.Row)
		t.table.UnselectAll()
	}
	t.reference = widget.NewCard("", layout.referenceTitle, t.table)

	return t
}

func (t *converterTab) content() fyne.CanvasObject {
	form := container.NewGridWithColumns(2,
		widget.NewLabel(t.layout.inputLabel), t.entry,
	)
	for i, l := range t.outputs {
		form.Add(widget.NewLabel(t.layout.outputLabels[i]))
		form.Add(l)
	}
	calc := widget.NewCard("", t.layout.heading, container.NewVBox(
		form,
		widget.NewButton("Convert", t.convert),
		t.message,
	))
	return container.NewBorder(calc, nil, nil, nil, t.reference)
}

// convert runs the tab's conversion on whatever is in the entry. on a
// user error the outputs go back to the placeholder and the message
// is shown instead
func (t *converterTab) convert() {
	values, err := t.layout.convert(t.entry.Text)
	if err != nil {
		t.clearOutputs()
		if userErr, ok := service.AsUserError(err); ok {
			t.message.SetText(userErr.Message)
			return
		}
		t.logger.Error().Err(err).Str("tab", t.layout.title).Msg("conversion failed")
		t.message.SetText(err.Error())
		return
	}
	t.message.SetText("")
	for i, l := range t.outputs {
		l.SetText(values[i])
	}
}

func (t *converterTab) selectRow(row int) {
	if row < 0 || row >= len(t.view.Rows) {
		return
	}
	t.entry.SetText(t.view.Rows[row].Selection)
	t.convert()
}

func (t *converterTab) clearOutputs() {
	for _, l := range t.outputs {
		l.SetText(placeholder)
	}
}

func (t *converterTab) setMinimal(minimal bool) {
	if minimal {
		t.reference.Hide()
		return
	}
	t.reference.Show()
}
