package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySearch            = "search"
	KeyCancel            = "cancel"
	KeySave              = "save"
	KeyBrowse            = "browse"
	KeySearchByTitle     = "search_by_title"
	KeySearchByGenre     = "search_by_genre"
	KeyEnterTitle        = "enter_title"
	KeySelectGenre       = "select_genre"
	KeyMoviePoster       = "movie_poster"
	KeyMovieDetails      = "movie_details"
	KeySearching         = "searching"
	KeyLoadingDetails    = "loading_details"
	KeyResultsCount      = "results_count"
	KeyWarning           = "warning"
	KeyFetchDataFailed   = "fetch_data_failed"
	KeyFetchDetailFailed = "fetch_detail_failed"
	KeyNoDetailsFound    = "no_details_found"
	KeyRequestTimedOut   = "request_timed_out"
	KeyMissingAPIKey     = "missing_api_key"
	KeyPleaseEnterTitle  = "please_enter_title"
	KeyAPIKey            = "api_key"
	KeyAPIKeyFromEnv     = "api_key_from_env"
	KeyRequestTimeout    = "request_timeout"
	KeyCatalogPath       = "catalog_path"
	KeySettingsSaved     = "settings_saved"
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
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Movie Explorer",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySearch:            "Search",
		KeyCancel:            "Cancel",
		KeySave:              "Save",
		KeyBrowse:            "Browse",
		KeySearchByTitle:     "Search by Title:",
		KeySearchByGenre:     "Search by Genre:",
		KeyEnterTitle:        "Movie title",
		KeySelectGenre:       "Select genre",
		KeyMoviePoster:       "Movie Poster:",
		KeyMovieDetails:      "Movie Details:",
		KeySearching:         "Searching",
		KeyLoadingDetails:    "Loading details",
		KeyResultsCount:      "%d results",
		KeyWarning:           "Warning",
		KeyFetchDataFailed:   "Failed to fetch data from the API.",
		KeyFetchDetailFailed: "Failed to fetch details from the API.",
		KeyNoDetailsFound:    "No details found for the selected movie.",
		KeyRequestTimedOut:   "The request timed out.",
		KeyMissingAPIKey:     "TMDB API key is not set. Add it in Settings or set TMDB_API_KEY.",
		KeyPleaseEnterTitle:  "Please enter a title",
		KeyAPIKey:            "TMDB API Key",
		KeyAPIKeyFromEnv:     "Provided by TMDB_API_KEY",
		KeyRequestTimeout:    "Request Timeout (seconds)",
		KeyCatalogPath:       "Seed List File",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Фильмотека",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySearch:            "Найти",
		KeyCancel:            "Отмена",
		KeySave:              "Сохранить",
		KeyBrowse:            "Обзор",
		KeySearchByTitle:     "Поиск по названию:",
		KeySearchByGenre:     "Поиск по жанру:",
		KeyEnterTitle:        "Название фильма",
		KeySelectGenre:       "Выберите жанр",
		KeyMoviePoster:       "Постер:",
		KeyMovieDetails:      "Описание:",
		KeySearching:         "Поиск",
		KeyLoadingDetails:    "Загрузка описания",
		KeyResultsCount:      "Найдено: %d",
		KeyWarning:           "Внимание",
		KeyFetchDataFailed:   "Не удалось получить данные из API.",
		KeyFetchDetailFailed: "Не удалось получить описание из API.",
		KeyNoDetailsFound:    "Для выбранного фильма ничего не найдено.",
		KeyRequestTimedOut:   "Превышено время ожидания запроса.",
		KeyMissingAPIKey:     "Не задан ключ TMDB API. Укажите его в настройках или в TMDB_API_KEY.",
		KeyPleaseEnterTitle:  "Пожалуйста, введите название",
		KeyAPIKey:            "Ключ TMDB API",
		KeyAPIKeyFromEnv:     "Задан через TMDB_API_KEY",
		KeyRequestTimeout:    "Таймаут запроса (сек.)",
		KeyCatalogPath:       "Файл списка фильмов",
		KeySettingsSaved:     "Настройки успешно сохранены!",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Explorador de Filmes",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySearch:            "Buscar",
		KeyCancel:            "Cancelar",
		KeySave:              "Salvar",
		KeyBrowse:            "Navegar",
		KeySearchByTitle:     "Buscar por Título:",
		KeySearchByGenre:     "Buscar por Gênero:",
		KeyEnterTitle:        "Título do filme",
		KeySelectGenre:       "Selecione o gênero",
		KeyMoviePoster:       "Pôster:",
		KeyMovieDetails:      "Detalhes:",
		KeySearching:         "Buscando",
		KeyLoadingDetails:    "Carregando detalhes",
		KeyResultsCount:      "%d resultados",
		KeyWarning:           "Aviso",
		KeyFetchDataFailed:   "Falha ao obter dados da API.",
		KeyFetchDetailFailed: "Falha ao obter detalhes da API.",
		KeyNoDetailsFound:    "Nenhum detalhe encontrado para o filme selecionado.",
		KeyRequestTimedOut:   "A requisição excedeu o tempo limite.",
		KeyMissingAPIKey:     "Chave da API TMDB não definida. Adicione em Configurações ou defina TMDB_API_KEY.",
		KeyPleaseEnterTitle:  "Por favor, digite um título",
		KeyAPIKey:            "Chave da API TMDB",
		KeyAPIKeyFromEnv:     "Definida por TMDB_API_KEY",
		KeyRequestTimeout:    "Tempo Limite (segundos)",
		KeyCatalogPath:       "Arquivo da Lista",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
	}
}
