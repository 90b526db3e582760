package ui

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/wavedial/wavedial/internal/api"
	"github.com/wavedial/wavedial/internal/config"
	"github.com/wavedial/wavedial/internal/model"
	"github.com/wavedial/wavedial/internal/player"
)

// Search request sizing
const (
	SearchResultLimit = 20
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window

	// Top panel
	searchEntry   *widget.Entry
	searchBtn     *widget.Button
	regionSelect  *widget.Select
	favoritesOnly *widget.Check
	refreshBtn    *widget.Button
	stationList   *widget.List

	// Now-playing bar
	statusIcon      *widget.Label
	nowPlayingLabel *widget.Label
	playPauseBtn    *widget.Button
	volumeSlider    *widget.Slider
	volumeLabel     *widget.Label

	apiClient    api.StationService
	controller   *player.Controller
	settings     *config.Settings
	localization *Localization

	// Directory state: stations holds the last fetched list, displayed the
	// favorites-only derivation of it, favorites the membership set keyed by
	// station id. All three are owned by the Fyne event loop.
	region        model.Region
	regionOptions []model.Region
	stations      []model.Station
	displayed     []model.Station
	favorites     map[string]bool
	loading       bool

	volumeSaveTimer *time.Timer

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, apiClient api.StationService, controller *player.Controller) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		apiClient:    apiClient,
		controller:   controller,
		settings:     settings,
		localization: localization,
		region:       settings.GetRegion(),
		favorites:    make(map[string]bool),
	}

	log.Printf("RootUI initialized with station service: %v", ui.apiClient != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Route playback state changes and stream failures into the UI
	controller.SetUpdateCallback(ui.onPlayerUpdate)
	controller.SetStreamErrorCallback(ui.onStreamError)

	ui.setupUI()

	// Apply the persisted volume before the first stream starts
	if err := controller.SetVolume(settings.GetVolume()); err != nil {
		log.Printf("Failed to apply saved volume: %v", err)
	}

	return ui
}

// Start kicks off the initial favorites and station fetches
func (ui *RootUI) Start() {
	ui.fetchFavorites(ui.apiClient)
	ui.fetchStations()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create search entry
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchStations))
	// Trigger the search when user presses Enter in the search field
	ui.searchEntry.OnSubmitted = func(string) {
		ui.onSearchClick()
	}

	// Create search button
	ui.searchBtn = widget.NewButton(ui.localization.GetText(KeySearch), ui.onSearchClick)

	// Create region selector
	ui.regionOptions = ui.settings.GetRegionOptions()
	ui.regionSelect = widget.NewSelect(ui.regionLabels(), nil)
	ui.regionSelect.SetSelectedIndex(ui.regionIndex(ui.region))
	ui.regionSelect.OnChanged = func(string) {
		ui.onRegionChanged()
	}

	// Create favorites-only toggle
	ui.favoritesOnly = widget.NewCheck(ui.localization.GetText(KeyFavoritesOnly), func(bool) {
		ui.onFavoritesOnlyChanged()
	})

	// Create refresh button
	ui.refreshBtn = widget.NewButton(ui.localization.GetText(KeyRefresh), ui.onRefreshClick)

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create logo
	logo, err := LoadLogoResource()
	var logoImage *canvas.Image
	if err == nil {
		logoImage = canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
	} else {
		// Fallback to text if logo loading fails
		logoImage = nil
	}

	// Create top panel (search row) with logo
	filterCluster := container.NewHBox(ui.searchBtn, ui.regionSelect, ui.favoritesOnly, ui.refreshBtn)
	var topPanel *fyne.Container
	if logoImage != nil {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(logoImage, settingsBtn), filterCluster, ui.searchEntry)
	} else {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(settingsBtn), filterCluster, ui.searchEntry)
	}

	// Create notification panel under the search row (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Combine search row and notification panel at the top
	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	// Create station list
	ui.stationList = widget.NewList(
		func() int {
			return len(ui.displayed)
		},
		func() fyne.CanvasObject { return ui.createStationItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateStationItem(id, obj) },
	)

	// Create now-playing bar
	bottomPanel := ui.createNowPlayingBar()

	// Create main layout
	content := container.NewBorder(
		topCombined, // top
		bottomPanel, // bottom
		nil,         // left
		nil,         // right
		ui.stationList,
	)

	ui.window.SetContent(content)
	ui.updateNowPlaying()

	// UI setup completed
	log.Printf("UI setup completed successfully")
}

// createNowPlayingBar creates the bottom playback bar
func (ui *RootUI) createNowPlayingBar() *fyne.Container {
	ui.statusIcon = widget.NewLabel(IconRadio)

	ui.nowPlayingLabel = widget.NewLabel(ui.localization.GetText(KeyNothingPlaying))
	ui.nowPlayingLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.nowPlayingLabel.Truncation = fyne.TextTruncateEllipsis

	ui.playPauseBtn = widget.NewButton(ui.localization.GetText(KeyPlay), ui.onNowPlayingToggle)
	ui.playPauseBtn.Importance = widget.HighImportance

	ui.volumeSlider = widget.NewSlider(0, 100)
	ui.volumeSlider.Step = 1
	ui.volumeSlider.Value = float64(ui.settings.GetVolume())
	ui.volumeSlider.OnChanged = ui.onVolumeChanged

	ui.volumeLabel = widget.NewLabel(fmt.Sprintf(VolumeLabelFormat, ui.settings.GetVolume()))
	ui.volumeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	// Fix the slider width with a transparent rectangle underneath
	sliderSpacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	sliderSpacer.SetMinSize(fyne.NewSize(VolumeSliderWidth, ui.volumeSlider.MinSize().Height))
	sliderBox := container.NewStack(sliderSpacer, ui.volumeSlider)

	playbackCluster := container.NewHBox(ui.playPauseBtn, sliderBox, ui.volumeLabel)
	bar := container.NewBorder(nil, nil, ui.statusIcon, playbackCluster, ui.nowPlayingLabel)

	return container.NewVBox(widget.NewSeparator(), bar)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	// Update window title
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	// Update top panel texts
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchStations))
	ui.searchBtn.SetText(ui.localization.GetText(KeySearch))
	ui.refreshBtn.SetText(ui.localization.GetText(KeyRefresh))
	ui.favoritesOnly.Text = ui.localization.GetText(KeyFavoritesOnly)
	ui.favoritesOnly.Refresh()

	// Swap region labels without retriggering the change handler
	idx := ui.regionSelect.SelectedIndex()
	ui.regionSelect.Options = ui.regionLabels()
	if idx >= 0 && idx < len(ui.regionSelect.Options) {
		ui.regionSelect.Selected = ui.regionSelect.Options[idx]
	}
	ui.regionSelect.Refresh()

	// Update the playback bar and refresh rows to pick up button texts
	ui.updateNowPlaying()
	ui.stationList.Refresh()
}

// regionLabel returns the localized display name for a region option
func (ui *RootUI) regionLabel(region model.Region) string {
	switch region {
	case model.RegionAmerican:
		return ui.localization.GetText(KeyAmericas)
	case model.RegionAfrican:
		return ui.localization.GetText(KeyAfrica)
	default:
		return ui.localization.GetText(KeyAllRegions)
	}
}

// regionLabels returns the localized labels for all region options
func (ui *RootUI) regionLabels() []string {
	labels := make([]string, 0, len(ui.regionOptions))
	for _, region := range ui.regionOptions {
		labels = append(labels, ui.regionLabel(region))
	}
	return labels
}

// regionIndex returns the option index of the given region
func (ui *RootUI) regionIndex(region model.Region) int {
	for i, option := range ui.regionOptions {
		if option == region {
			return i
		}
	}
	return 0
}

// onRegionChanged handles region selector changes
func (ui *RootUI) onRegionChanged() {
	idx := ui.regionSelect.SelectedIndex()
	if idx < 0 || idx >= len(ui.regionOptions) {
		return
	}

	region := ui.regionOptions[idx]
	if region == ui.region {
		return
	}

	ui.region = region
	ui.settings.SetRegion(region)
	ui.fetchStations()
}

// onSearchClick handles the search button click and entry submit
func (ui *RootUI) onSearchClick() {
	ui.fetchStations()
}

// onRefreshClick re-runs the current directory query
func (ui *RootUI) onRefreshClick() {
	ui.fetchStations()
}

// onFavoritesOnlyChanged re-derives the visible list; no network involved
func (ui *RootUI) onFavoritesOnlyChanged() {
	ui.applyStations()
}

// loadStations performs the directory request for the given query and region.
// An explicit search goes to the search endpoint with its own result limit,
// everything else to the plain station listing.
func loadStations(client api.StationService, query string, region model.Region, limit int) ([]model.Station, error) {
	if query != "" {
		return client.SearchStations(query, region, SearchResultLimit)
	}
	return client.GetStations(region, limit)
}

// filterStations derives the visible list from the fetched one. With
// favoritesOnly set the list narrows to stations whose id is in the favorite
// set; otherwise it is returned as is.
func filterStations(stations []model.Station, favorites map[string]bool, favoritesOnly bool) []model.Station {
	if !favoritesOnly {
		return stations
	}

	filtered := make([]model.Station, 0, len(stations))
	for _, station := range stations {
		if favorites[station.StationUUID] {
			filtered = append(filtered, station)
		}
	}
	return filtered
}

// fetchStations fetches the station list for the current query, region, and
// page size in the background and replaces the displayed list wholesale
func (ui *RootUI) fetchStations() {
	client := ui.apiClient
	query := strings.TrimSpace(ui.searchEntry.Text)
	region := ui.region
	limit := ui.settings.GetStationPageSize()

	ui.loading = true
	ui.showNotification(ui.localization.GetText(KeyLoadingStations), true)

	go func() {
		stations, err := loadStations(client, query, region, limit)
		fyne.Do(func() {
			ui.finishStations(stations, err)
		})
	}()
}

// finishStations commits a completed station fetch. A failed fetch empties
// the list; there is no separate error state.
func (ui *RootUI) finishStations(stations []model.Station, err error) {
	ui.loading = false
	if err != nil {
		log.Printf("Failed to fetch stations: %v", err)
		ui.stations = nil
	} else {
		ui.stations = stations
	}
	ui.applyStations()
}

// applyStations re-derives the displayed list and updates the station count
// notice
func (ui *RootUI) applyStations() {
	ui.displayed = filterStations(ui.stations, ui.favorites, ui.favoritesOnly.Checked)
	ui.stationList.Refresh()

	// A fetch in flight keeps its loading notice until completion
	if ui.loading {
		return
	}

	if len(ui.displayed) == 0 {
		ui.showNotification(ui.localization.GetText(KeyNoStationsFound), false)
	} else {
		ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyStationsFound), len(ui.displayed)), false)
	}
}

// fetchFavorites refreshes the favorites cache in the background. The client
// comes in as an argument so background callers use the one they captured on
// the UI thread. On failure the previous cache is kept.
func (ui *RootUI) fetchFavorites(client api.StationService) {
	go func() {
		favorites, err := client.GetFavorites()
		fyne.Do(func() {
			if err != nil {
				log.Printf("Failed to fetch favorites: %v", err)
				return
			}
			ui.applyFavorites(favorites)
		})
	}()
}

// applyFavorites replaces the favorites membership set and re-derives the
// visible list
func (ui *RootUI) applyFavorites(favorites []model.Favorite) {
	ui.favorites = make(map[string]bool, len(favorites))
	for _, favorite := range favorites {
		ui.favorites[favorite.StationUUID] = true
	}
	ui.applyStations()
}

// showNotification displays a message in the notification panel under the
// search row. When spinning is true, a spinner indicates background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		// Reconnect with the saved backend URL and user id, re-apply the
		// language, and reload both lists
		ui.apiClient = api.NewClient(ui.settings.GetBackendURL(), ui.settings.GetUserID())
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		ui.fetchFavorites(ui.apiClient)
		ui.fetchStations()
	}).Show()
}

// createStationItem creates a new station list item widget
func (ui *RootUI) createStationItem() fyne.CanvasObject {
	// Placeholder station; real data arrives in updateStationItem
	placeholder := &model.Station{
		StationUUID: "placeholder",
		Name:        "Loading...",
	}

	row := NewStationRow(placeholder, ui.localization)
	row.SetCallbacks(ui.onStationPlayToggle, ui.onStationFavoriteToggle)
	return row
}

// updateStationItem updates a station list item with current data
func (ui *RootUI) updateStationItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.displayed) {
		return
	}

	station := ui.displayed[id]
	row, ok := item.(*StationRow)
	if !ok {
		return
	}

	// Re-set callbacks every update so recycled rows stay connected
	row.SetCallbacks(ui.onStationPlayToggle, ui.onStationFavoriteToggle)

	playStatus := model.PlayerStatusStopped
	if ui.controller.IsCurrent(station.StationUUID) {
		playStatus = ui.controller.Status()
	}

	row.UpdateStation(&station, playStatus, ui.favorites[station.StationUUID])
}

// findStation looks a station up in the last fetched list by id
func (ui *RootUI) findStation(stationUUID string) *model.Station {
	for i := range ui.stations {
		if ui.stations[i].StationUUID == stationUUID {
			return &ui.stations[i]
		}
	}
	return nil
}

// onStationPlayToggle handles the play/pause button on a station row
func (ui *RootUI) onStationPlayToggle(stationUUID string) {
	station := ui.findStation(stationUUID)
	if station == nil {
		log.Printf("Station %s not found", stationUUID)
		return
	}

	if err := ui.controller.Toggle(station); err != nil {
		log.Printf("Failed to toggle playback for %s: %v", station.GetDisplayName(), err)
		ui.showPlaybackError(station, err)
	}
}

// onNowPlayingToggle handles the play/pause button on the now-playing bar
func (ui *RootUI) onNowPlayingToggle() {
	station := ui.controller.Current()
	if station == nil {
		return
	}

	if err := ui.controller.Toggle(station); err != nil {
		log.Printf("Failed to toggle playback for %s: %v", station.GetDisplayName(), err)
		ui.showPlaybackError(station, err)
	}
}

// onStationFavoriteToggle adds or removes a favorite. Either way the
// favorites cache is re-fetched afterwards rather than reconciled locally.
func (ui *RootUI) onStationFavoriteToggle(stationUUID string) {
	station := ui.findStation(stationUUID)
	if station == nil {
		log.Printf("Station %s not found", stationUUID)
		return
	}

	client := ui.apiClient
	name := station.GetDisplayName()

	if ui.favorites[stationUUID] {
		go func() {
			if err := client.RemoveFavorite(stationUUID); err != nil {
				log.Printf("Failed to remove favorite %s: %v", name, err)
			} else {
				ui.showToast(ui.localization.GetText(KeyFavoriteRemoved), name)
			}
			ui.fetchFavorites(client)
		}()
		return
	}

	stationCopy := *station
	go func() {
		alreadyExists, err := client.AddFavorite(&stationCopy)
		switch {
		case err != nil:
			log.Printf("Failed to add favorite %s: %v", name, err)
		case alreadyExists:
			ui.showToast(ui.localization.GetText(KeyFavoriteExists), name)
		default:
			ui.showToast(ui.localization.GetText(KeyFavoriteAdded), name)
		}
		ui.fetchFavorites(client)
	}()
}

// onVolumeChanged applies a slider change to the player immediately and
// persists the preference once the slider settles
func (ui *RootUI) onVolumeChanged(value float64) {
	volume := int(value)
	if err := ui.controller.SetVolume(volume); err != nil {
		log.Printf("Failed to set volume: %v", err)
	}

	ui.volumeLabel.SetText(fmt.Sprintf(VolumeLabelFormat, volume))
	ui.scheduleVolumeSave(volume)
}

// scheduleVolumeSave persists the volume preference after the slider settles
func (ui *RootUI) scheduleVolumeSave(volume int) {
	if ui.volumeSaveTimer != nil {
		ui.volumeSaveTimer.Stop()
	}
	ui.volumeSaveTimer = time.AfterFunc(VolumeSaveDebounce, func() {
		ui.settings.SetVolume(volume)
	})
}

// onPlayerUpdate handles playback state changes from the controller
func (ui *RootUI) onPlayerUpdate() {
	fyne.Do(func() {
		ui.updateNowPlaying()
		ui.stationList.Refresh()
	})
}

// updateNowPlaying renders the playback bar from the controller state
func (ui *RootUI) updateNowPlaying() {
	station := ui.controller.Current()
	status := ui.controller.Status()

	switch status {
	case model.PlayerStatusPlaying:
		ui.statusIcon.SetText(IconPlay)
	case model.PlayerStatusPaused:
		ui.statusIcon.SetText(IconPause)
	case model.PlayerStatusLoading:
		ui.statusIcon.SetText(IconLoading)
	default:
		ui.statusIcon.SetText(IconRadio)
	}

	if station == nil {
		ui.nowPlayingLabel.SetText(ui.localization.GetText(KeyNothingPlaying))
		ui.playPauseBtn.SetText(ui.localization.GetText(KeyPlay))
		ui.playPauseBtn.Disable()
		return
	}

	if status == model.PlayerStatusStopped {
		// Keep the last station on the bar so playback can be restarted
		ui.nowPlayingLabel.SetText(station.GetDisplayName())
		ui.playPauseBtn.SetText(ui.localization.GetText(KeyPlay))
		ui.playPauseBtn.Enable()
		return
	}

	ui.nowPlayingLabel.SetText(station.GetDisplayName())
	if status == model.PlayerStatusPlaying {
		ui.playPauseBtn.SetText(ui.localization.GetText(KeyPause))
	} else {
		ui.playPauseBtn.SetText(ui.localization.GetText(KeyPlay))
	}
	if status == model.PlayerStatusLoading {
		ui.playPauseBtn.Disable()
	} else {
		ui.playPauseBtn.Enable()
	}
}

// onStreamError surfaces a playback failure as a blocking error dialog
func (ui *RootUI) onStreamError(station *model.Station, err error) {
	fyne.Do(func() {
		ui.showPlaybackError(station, err)
	})
}

// showPlaybackError shows the blocking playback failure dialog
func (ui *RootUI) showPlaybackError(station *model.Station, err error) {
	label := ui.localization.GetText(KeyPlaybackError)
	if station != nil {
		label += ": " + station.GetDisplayName()
	}
	dialog.ShowError(fmt.Errorf("%s: %v", label, err), ui.window)
}

// showToast shows an auto-hiding notice in the top-right corner
func (ui *RootUI) showToast(title, message string) {
	fyne.Do(func() {
		titleLabel := widget.NewLabel(title)
		titleLabel.TextStyle = fyne.TextStyle{Bold: true}

		messageLabel := widget.NewLabel(message)
		messageLabel.Truncation = fyne.TextTruncateEllipsis

		var toastPopup *widget.PopUp
		closeBtn := widget.NewButton(IconClose, func() {
			if toastPopup != nil {
				toastPopup.Hide()
			}
		})
		closeBtn.Importance = widget.LowImportance

		header := container.NewBorder(nil, nil, titleLabel, closeBtn)
		content := container.NewVBox(header, messageLabel)

		// Create and position the popup in the top-right corner
		toastPopup = widget.NewPopUp(content, ui.window.Canvas())

		canvasSize := ui.window.Canvas().Size()
		toastSize := fyne.NewSize(ToastWidth, ToastHeight)
		toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

		toastPopup.Resize(toastSize)
		toastPopup.Move(toastPos)
		toastPopup.Show()

		// Auto-hide after configured time
		go func() {
			time.Sleep(ToastAutoHide)
			fyne.Do(func() {
				toastPopup.Hide()
			})
		}()
	})
}
