package ui

// Package ui provides user interface components

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeySearch          = "search"
	KeySearchStations  = "search_stations"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyRefresh         = "refresh"
	KeyFavoritesOnly   = "favorites_only"
	KeyAllRegions      = "all_regions"
	KeyAmericas        = "americas"
	KeyAfrica          = "africa"
	KeyPlay            = "play"
	KeyPause           = "pause"
	KeyLoadingStations = "loading_stations"
	KeyStationsFound   = "stations_found"
	KeyNoStationsFound = "no_stations_found"
	KeyNothingPlaying  = "nothing_playing"
	KeyBackendURL      = "backend_url"
	KeyUserID          = "user_id"
	KeyPageSize        = "page_size"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyFavoriteAdded   = "favorite_added"
	KeyFavoriteExists  = "favorite_exists"
	KeyFavoriteRemoved = "favorite_removed"
	KeyPlaybackError   = "playback_error"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "WaveDial",
		KeySearch:          "Search",
		KeySearchStations:  "Search stations (e.g. jazz, news, afrobeat)",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyRefresh:         "Refresh",
		KeyFavoritesOnly:   "Favorites only",
		KeyAllRegions:      "All regions",
		KeyAmericas:        "Americas",
		KeyAfrica:          "Africa",
		KeyPlay:            "Play",
		KeyPause:           "Pause",
		KeyLoadingStations: "Loading stations...",
		KeyStationsFound:   "%d stations found",
		KeyNoStationsFound: "0 stations found",
		KeyNothingPlaying:  "Nothing playing",
		KeyBackendURL:      "Backend URL",
		KeyUserID:          "User ID",
		KeyPageSize:        "Stations per page",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyFavoriteAdded:   "Added to favorites",
		KeyFavoriteExists:  "Already in favorites",
		KeyFavoriteRemoved: "Removed from favorites",
		KeyPlaybackError:   "Playback failed",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "WaveDial",
		KeySearch:          "Поиск",
		KeySearchStations:  "Поиск станций (например jazz, news, afrobeat)",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyRefresh:         "Обновить",
		KeyFavoritesOnly:   "Только избранное",
		KeyAllRegions:      "Все регионы",
		KeyAmericas:        "Америка",
		KeyAfrica:          "Африка",
		KeyPlay:            "Играть",
		KeyPause:           "Пауза",
		KeyLoadingStations: "Загрузка станций...",
		KeyStationsFound:   "Найдено станций: %d",
		KeyNoStationsFound: "Станции не найдены",
		KeyNothingPlaying:  "Ничего не играет",
		KeyBackendURL:      "Адрес сервера",
		KeyUserID:          "ID пользователя",
		KeyPageSize:        "Станций на странице",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyFavoriteAdded:   "Добавлено в избранное",
		KeyFavoriteExists:  "Уже в избранном",
		KeyFavoriteRemoved: "Удалено из избранного",
		KeyPlaybackError:   "Ошибка воспроизведения",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "WaveDial",
		KeySearch:          "Buscar",
		KeySearchStations:  "Buscar estações (ex. jazz, news, afrobeat)",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeyRefresh:         "Atualizar",
		KeyFavoritesOnly:   "Somente favoritas",
		KeyAllRegions:      "Todas as regiões",
		KeyAmericas:        "Américas",
		KeyAfrica:          "África",
		KeyPlay:            "Tocar",
		KeyPause:           "Pausar",
		KeyLoadingStations: "Carregando estações...",
		KeyStationsFound:   "%d estações encontradas",
		KeyNoStationsFound: "Nenhuma estação encontrada",
		KeyNothingPlaying:  "Nada tocando",
		KeyBackendURL:      "URL do servidor",
		KeyUserID:          "ID do usuário",
		KeyPageSize:        "Estações por página",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyFavoriteAdded:   "Adicionada aos favoritos",
		KeyFavoriteExists:  "Já está nos favoritos",
		KeyFavoriteRemoved: "Removida dos favoritos",
		KeyPlaybackError:   "Falha na reprodução",
	}
}
