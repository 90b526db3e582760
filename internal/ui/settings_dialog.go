package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/wavedial/wavedial/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// onSaved is invoked after a confirmed save so the caller can re-apply
	// the connection and language settings
	onSaved func()

	// UI components
	backendURLEntry *widget.Entry
	userIDEntry     *widget.Entry
	pageSizeEntry   *widget.Entry
	languageSelect  *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
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
	// Backend base URL
	sd.backendURLEntry = widget.NewEntry()
	sd.backendURLEntry.SetPlaceHolder(config.DefaultBackendURL)

	// User identity for the favorites list
	sd.userIDEntry = widget.NewEntry()
	sd.userIDEntry.SetPlaceHolder(config.DefaultUserID)

	// Station page size
	sd.pageSizeEntry = widget.NewEntry()
	sd.pageSizeEntry.SetPlaceHolder("1-100")

	// Language selection
	languageOptions := []string{}
	languageLabels := sd.localization.GetAvailableLanguages()
	for code := range languageLabels {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeySettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyBackendURL)+":"),
		sd.backendURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyUserID)+":"),
		sd.userIDEntry,

		widget.NewLabel(sd.localization.GetText(KeyPageSize)+":"),
		sd.pageSizeEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 400))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.backendURLEntry.SetText(sd.settings.GetBackendURL())
	sd.userIDEntry.SetText(sd.settings.GetUserID())
	sd.pageSizeEntry.SetText(strconv.Itoa(sd.settings.GetStationPageSize()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Validate and save the backend URL
	backendURL := sd.backendURLEntry.Text
	if backendURL != "" {
		sd.settings.SetBackendURL(backendURL)
	}

	// Validate and save the user id
	userID := sd.userIDEntry.Text
	if userID != "" {
		sd.settings.SetUserID(userID)
	}

	// Validate and save the page size; the setter clamps the range
	pageSizeStr := sd.pageSizeEntry.Text
	if pageSizeStr != "" {
		if pageSize, err := strconv.Atoi(pageSizeStr); err == nil {
			sd.settings.SetStationPageSize(pageSize)
		}
	}

	// Save language
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	// Show confirmation and let the caller re-apply the settings
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
