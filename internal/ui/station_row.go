package ui

import (
	"image/color"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/wavedial/wavedial/internal/model"
)

// Row subtitle sizing
const (
	MaxRowTags = 3
)

// tagLine joins up to MaxRowTags station tags for the row subtitle
func tagLine(station *model.Station) string {
	tags := station.GetTagList()
	if len(tags) > MaxRowTags {
		tags = tags[:MaxRowTags]
	}
	return strings.Join(tags, ", ")
}

// metaLine formats the bitrate/codec summary for a station row
func metaLine(station *model.Station) string {
	var parts []string
	if station.Bitrate > 0 {
		parts = append(parts, station.GetBitrateString())
	}
	if station.Codec != "" {
		parts = append(parts, station.Codec)
	}
	if len(parts) == 0 {
		return DashPlaceholder
	}
	return strings.Join(parts, MiddleDotSeparator)
}

// StationRow represents a compact station row widget
type StationRow struct {
	widget.BaseWidget

	station      *model.Station
	localization *Localization

	// playStatus is the player state for this station; Stopped when the
	// player is tuned to another station
	playStatus model.PlayerStatus
	favorite   bool

	// UI components
	nameLabel    *widget.Label
	tagsLabel    *widget.Label
	countryLabel *widget.Label
	metaLabel    *widget.Label

	// Action buttons
	playBtn     *widget.Button
	favoriteBtn *widget.Button

	// Callbacks
	onPlayToggle     func(stationUUID string)
	onFavoriteToggle func(stationUUID string)
}

// NewStationRow creates a new station row widget
func NewStationRow(station *model.Station, localization *Localization) *StationRow {
	if station == nil {
		log.Printf("Warning: NewStationRow called with nil station")
		// Create a dummy station to prevent crashes
		station = &model.Station{
			StationUUID: "dummy",
			Name:        "Dummy Station",
		}
	}

	sr := &StationRow{
		station:      station,
		localization: localization,
		playStatus:   model.PlayerStatusStopped,
	}
	sr.ExtendBaseWidget(sr)
	sr.createUI()
	sr.updateFromStation()
	return sr
}

// SetCallbacks sets the action callbacks
func (sr *StationRow) SetCallbacks(
	onPlayToggle func(stationUUID string),
	onFavoriteToggle func(stationUUID string),
) {
	if onPlayToggle == nil {
		log.Printf("Warning: onPlayToggle callback is nil for station %s", sr.station.StationUUID)
	}
	if onFavoriteToggle == nil {
		log.Printf("Warning: onFavoriteToggle callback is nil for station %s", sr.station.StationUUID)
	}

	sr.onPlayToggle = onPlayToggle
	sr.onFavoriteToggle = onFavoriteToggle
}

// UpdateStation updates the row with new station data and play state
func (sr *StationRow) UpdateStation(station *model.Station, playStatus model.PlayerStatus, favorite bool) {
	if station == nil {
		log.Printf("Warning: UpdateStation called with nil station for %s", sr.station.StationUUID)
		return
	}

	sr.station = station
	sr.playStatus = playStatus
	sr.favorite = favorite
	sr.updateFromStation()
	sr.Refresh()
}

// createUI creates the UI components
func (sr *StationRow) createUI() {
	sr.nameLabel = widget.NewLabel("")
	sr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	sr.nameLabel.Truncation = fyne.TextTruncateEllipsis
	sr.nameLabel.Alignment = fyne.TextAlignLeading

	sr.tagsLabel = widget.NewLabel("")
	sr.tagsLabel.Truncation = fyne.TextTruncateEllipsis
	sr.tagsLabel.Alignment = fyne.TextAlignLeading

	sr.countryLabel = widget.NewLabel("")
	sr.countryLabel.Alignment = fyne.TextAlignTrailing
	sr.countryLabel.Truncation = fyne.TextTruncateEllipsis

	sr.metaLabel = widget.NewLabel("")
	sr.metaLabel.Alignment = fyne.TextAlignTrailing
	sr.metaLabel.TextStyle = fyne.TextStyle{Monospace: true}

	sr.playBtn = widget.NewButton(sr.localization.GetText(KeyPlay), func() {
		// Get current station state dynamically - not from closure
		currentStation := sr.station
		if sr.onPlayToggle != nil {
			sr.onPlayToggle(currentStation.StationUUID)
		} else {
			log.Printf("onPlayToggle callback is nil for station %s", currentStation.StationUUID)
		}
	})
	sr.playBtn.Importance = widget.MediumImportance

	sr.favoriteBtn = widget.NewButton(IconStarEmpty, func() {
		currentStation := sr.station
		if sr.onFavoriteToggle != nil {
			sr.onFavoriteToggle(currentStation.StationUUID)
		} else {
			log.Printf("onFavoriteToggle callback is nil for station %s", currentStation.StationUUID)
		}
	})
	sr.favoriteBtn.Importance = widget.LowImportance
}

// updateFromStation updates UI components based on station state
func (sr *StationRow) updateFromStation() {
	if sr.station == nil {
		log.Printf("Warning: updateFromStation called with nil station")
		return
	}

	// The row the player is tuned to carries a status glyph and highlight
	switch sr.playStatus {
	case model.PlayerStatusPlaying:
		sr.nameLabel.Importance = widget.SuccessImportance
		sr.nameLabel.SetText(IconPlay + " " + sr.station.GetDisplayName())
	case model.PlayerStatusPaused:
		sr.nameLabel.Importance = widget.HighImportance
		sr.nameLabel.SetText(IconPause + " " + sr.station.GetDisplayName())
	case model.PlayerStatusLoading:
		sr.nameLabel.Importance = widget.HighImportance
		sr.nameLabel.SetText(IconLoading + " " + sr.station.GetDisplayName())
	default:
		sr.nameLabel.Importance = widget.MediumImportance
		sr.nameLabel.SetText(sr.station.GetDisplayName())
	}

	sr.tagsLabel.SetText(tagLine(sr.station))
	sr.countryLabel.SetText(sr.station.Country)
	sr.metaLabel.SetText(metaLine(sr.station))

	sr.updateButtons()
}

// updateButtons updates button states based on play state and favorite membership
func (sr *StationRow) updateButtons() {
	switch sr.playStatus {
	case model.PlayerStatusPlaying:
		sr.playBtn.Enable()
		sr.playBtn.SetText(sr.localization.GetText(KeyPause))
	case model.PlayerStatusLoading:
		// Toggling is a no-op while the stream is opening
		sr.playBtn.Disable()
		sr.playBtn.SetText(sr.localization.GetText(KeyPlay))
	default:
		sr.playBtn.SetText(sr.localization.GetText(KeyPlay))
		if sr.station.HasStream() {
			sr.playBtn.Enable()
		} else {
			sr.playBtn.Disable()
		}
	}

	if sr.favorite {
		sr.favoriteBtn.SetText(IconStarFilled)
		sr.favoriteBtn.Importance = widget.HighImportance
	} else {
		sr.favoriteBtn.SetText(IconStarEmpty)
		sr.favoriteBtn.Importance = widget.LowImportance
	}
	sr.favoriteBtn.Refresh()
}

// CreateRenderer creates the widget renderer
func (sr *StationRow) CreateRenderer() fyne.WidgetRenderer {
	return &stationRowRenderer{stationRow: sr}
}

// stationRowRenderer renders the station row widget
type stationRowRenderer struct {
	stationRow *StationRow
	layout     *fyne.Container
}

// Layout arranges the components
func (r *stationRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		if size.Width < RowMinWidth {
			size.Width = RowMinWidth
		}
		if size.Height < RowMinHeight {
			size.Height = RowMinHeight
		}
		r.layout.Resize(size)
	}
}

// MinSize returns the minimum size
func (r *stationRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *stationRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		r.layout.Refresh()
	}
}

// Objects returns the container objects
func (r *stationRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *stationRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *stationRowRenderer) createLayout() {
	sr := r.stationRow

	// Left side: station name over the tag line
	leftSide := container.NewVBox(sr.nameLabel, sr.tagsLabel)

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	// Right side: country over bitrate/codec, with fixed widths
	rightSide := container.NewVBox(
		fixedWidth(CountryLabelWidth, sr.countryLabel),
		fixedWidth(MetaLabelWidth, sr.metaLabel),
	)

	// Action buttons pinned to the right edge
	actionRow := container.NewHBox(
		sr.playBtn,
		sr.favoriteBtn,
	)

	separator := widget.NewSeparator()

	// Border layout keeps the buttons flush to the row's right edge while the
	// name occupies the remaining space on the left.
	rightCluster := container.NewBorder(nil, nil, nil, actionRow, rightSide)
	mainContent := container.NewBorder(nil, nil, nil, rightCluster, leftSide)

	r.layout = container.NewVBox(
		mainContent,
		separator,
	)

	r.layout.Resize(fyne.NewSize(RowMinWidth, RowDefaultH))
	r.layout.Refresh()
}
