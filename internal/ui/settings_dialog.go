package ui

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/movie-explorer/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	apiKeyEntry    *widget.Entry
	timeoutEntry   *widget.Entry
	catalogEntry   *widget.Entry
	languageSelect *widget.Select

	// language display name -> code
	languageCodes map[string]string
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs
// after the values were written.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.apiKeyEntry = widget.NewPasswordEntry()
	if sd.settings.APIKeyFromEnv() {
		sd.apiKeyEntry.SetPlaceHolder(text(KeyAPIKeyFromEnv))
		sd.apiKeyEntry.Disable()
	}

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinRequestTimeout) + "-" + strconv.Itoa(config.MaxRequestTimeout))

	sd.catalogEntry = widget.NewEntry()
	sd.catalogEntry.SetPlaceHolder(config.DefaultCatalogPath)
	browseBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseCatalog)
	catalogRow := container.NewBorder(nil, nil, nil, browseBtn, sd.catalogEntry)

	// Language selection, shown by display name
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyAPIKey)+":"),
		sd.apiKeyEntry,

		widget.NewLabel(text(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(text(KeyCatalogPath)+":"),
		catalogRow,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(480, 380))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	if !sd.settings.APIKeyFromEnv() {
		sd.apiKeyEntry.SetText(sd.settings.GetAPIKey())
	}
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout() / time.Second)))
	sd.catalogEntry.SetText(sd.settings.GetCatalogPath())

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
			break
		}
	}
}

// onBrowseCatalog lets the user pick the seed list file
func (sd *SettingsDialog) onBrowseCatalog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.catalogEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if !sd.settings.APIKeyFromEnv() {
		sd.settings.SetAPIKey(sd.apiKeyEntry.Text)
	}

	if timeoutStr := strings.TrimSpace(sd.timeoutEntry.Text); timeoutStr != "" {
		if seconds, err := strconv.Atoi(timeoutStr); err == nil {
			sd.settings.SetRequestTimeout(seconds)
		}
	}

	if path := strings.TrimSpace(sd.catalogEntry.Text); path != "" {
		sd.settings.SetCatalogPath(path)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
