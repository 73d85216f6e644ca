package gui

import (
	"fmt"

	"decimal-converter/internal/reference"
	"decimal-converter/internal/service"
	"decimal-converter/internal/settings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"
)

const (
	AppID   = "com.codingattempts.decimal-converter"
	AppName = "Decimal Equivalent Calculator"
)

var (
	fullSize    = fyne.NewSize(460, 620)
	minimalSize = fyne.NewSize(460, 240)
)

// Window is the desktop front end: one tab per conversion, a Settings
// menu for the two preferences and an optional tray icon
type Window struct {
	app         fyne.App
	window      fyne.Window
	version     string
	conversions service.ConversionService
	preferences service.PreferencesService
	logger      zerolog.Logger

	tabs         []*converterTab
	minimizeItem *fyne.MenuItem
	minimalItem  *fyne.MenuItem
	// false when the driver has no system tray
	trayEnabled bool
}

func NewWindow(
	a fyne.App,
	version string,
	conversions service.ConversionService,
	preferences service.PreferencesService,
	logger zerolog.Logger,
) (*Window, error) {
	w := &Window{
		app:         a,
		window:      a.NewWindow(fmt.Sprintf("%s v%s", AppName, version)),
		version:     version,
		conversions: conversions,
		preferences: preferences,
		logger:      logger,
	}

	tabs, err := w.buildTabs()
	if err != nil {
		return nil, err
	}
	items := make([]*container.TabItem, 0, len(tabs))
	for _, t := range tabs {
		items = append(items, container.NewTabItem(t.layout.title, t.content()))
	}
	w.tabs = tabs
	w.window.SetContent(container.NewAppTabs(items...))

	w.buildMenu()
	w.setupTray()
	w.window.SetCloseIntercept(w.onClose)
	w.applySettings(preferences.Get())

	return w, nil
}

func (w *Window) ShowAndRun() {
	w.window.CenterOnScreen()
	w.window.ShowAndRun()
}

func (w *Window) buildTabs() ([]*converterTab, error) {
	layouts := []tabLayout{
		{
			title:          "Fraction → Decimal",
			heading:        "Convert a Fraction",
			inputLabel:     "Fraction:",
			hint:           "e.g.  3/8  or  7/16",
			outputLabels:   []string{"Decimal (in):"},
			referenceTitle: "Common Fractions Reference",
			context:        reference.FractionContext,
			convert: func(input string) ([]string, error) {
				out, err := w.conversions.FractionToDecimal(input)
				if err != nil {
					return nil, err
				}
				return []string{out.DecimalInches}, nil
			},
		},
		{
			title:          "Inches → Millimeters",
			heading:        "Convert Inches to Millimeters",
			inputLabel:     "Inches:",
			hint:           "e.g.  3/8  or  1 3/8  or  0.375",
			outputLabels:   []string{"Millimeters:"},
			referenceTitle: "Common Conversions Reference",
			context:        reference.InchesContext,
			convert: func(input string) ([]string, error) {
				out, err := w.conversions.InchesToMillimeters(input)
				if err != nil {
					return nil, err
				}
				return []string{out.Millimeters}, nil
			},
		},
		{
			title:          "Millimeters → Inches",
			heading:        "Convert Millimeters to Inches",
			inputLabel:     "Millimeters:",
			hint:           "e.g.  25.4  or  9.525",
			outputLabels:   []string{"Decimal (in):", "Nearest fraction:"},
			referenceTitle: "Common Conversions Reference",
			context:        reference.MillimetersContext,
			convert: func(input string) ([]string, error) {
				out, err := w.conversions.MillimetersToInches(input)
				if err != nil {
					return nil, err
				}
				return []string{out.DecimalInches, out.NearestFraction}, nil
			},
		},
	}

	tabs := make([]*converterTab, 0, len(layouts))
	for _, l := range layouts {
		view, err := w.conversions.ReferenceView(string(l.context))
		if err != nil {
			return nil, fmt.Errorf("failed to build %s tab: %w", l.context, err)
		}
		tabs = append(tabs, newConverterTab(l, view, w.logger))
	}
	return tabs, nil
}

func (w *Window) buildMenu() {
	w.minimizeItem = fyne.NewMenuItem("Minimize to system tray", w.toggleMinimizeToTray)
	w.minimalItem = fyne.NewMenuItem("Minimal UI", w.toggleMinimalUI)

	settingsMenu := fyne.NewMenu("Settings", w.minimizeItem, w.minimalItem)
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", w.showAbout),
	)
	w.window.SetMainMenu(fyne.NewMainMenu(settingsMenu, helpMenu))
}

func (w *Window) setupTray() {
	desk, ok := w.app.(desktop.App)
	if !ok {
		w.logger.Debug().Msg("no system tray available")
		return
	}
	quit := fyne.NewMenuItem("Quit", w.app.Quit)
	quit.IsQuit = true
	desk.SetSystemTrayMenu(fyne.NewMenu("Decimal Converter",
		fyne.NewMenuItem("Restore", w.restore),
		quit,
	))
	w.trayEnabled = true
}

func (w *Window) toggleMinimizeToTray() {
	s, err := w.preferences.SetMinimizeToTray(!w.minimizeItem.Checked)
	if err != nil {
		dialog.ShowError(fmt.Errorf("could not save settings: %w", err), w.window)
	}
	w.applySettings(s)
}

func (w *Window) toggleMinimalUI() {
	s, err := w.preferences.SetMinimalUI(!w.minimalItem.Checked)
	if err != nil {
		dialog.ShowError(fmt.Errorf("could not save settings: %w", err), w.window)
	}
	w.applySettings(s)
}

// applySettings pushes preferences into the menu check marks and
// the layout
func (w *Window) applySettings(s settings.Settings) {
	w.minimizeItem.Checked = s.MinimizeToTray
	w.minimalItem.Checked = s.MinimalUI
	if menu := w.window.MainMenu(); menu != nil {
		menu.Refresh()
	}

	for _, t := range w.tabs {
		t.setMinimal(s.MinimalUI)
	}
	if s.MinimalUI {
		w.window.Resize(minimalSize)
	} else {
		w.window.Resize(fullSize)
	}
}

// onClose hides to the tray when that is switched on and there is a
// tray to go to, otherwise it quits
func (w *Window) onClose() {
	if w.trayEnabled && w.preferences.Get().MinimizeToTray {
		w.logger.Debug().Msg("hiding to system tray")
		w.window.Hide()
		return
	}
	w.app.Quit()
}

func (w *Window) restore() {
	w.window.Show()
	w.window.RequestFocus()
}

func (w *Window) showAbout() {
	dialog.ShowInformation(
		"About",
		fmt.Sprintf("%s\nVersion %s\n\nSimple tool by CodingAttempts", AppName, w.version),
		w.window,
	)
}
