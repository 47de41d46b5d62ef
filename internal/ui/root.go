package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/movie-explorer/internal/config"
	"github.com/ytget/movie-explorer/internal/model"
	"github.com/ytget/movie-explorer/internal/tmdb"
)

// CatalogTaskID identifies the result set built from the seed list
const CatalogTaskID = "catalog"

// apiKeySetter is implemented by clients whose key can change at runtime
type apiKeySetter interface {
	SetAPIKey(key string)
}

// timeoutSetter is implemented by clients whose HTTP timeout can change at
// runtime
type timeoutSetter interface {
	SetTimeout(timeout time.Duration)
}

// RootUI represents the main window: search controls, the result list and
// the detail pane. Each user action runs as a cancellable LookupTask; a new
// action supersedes the one in flight and stale results are dropped.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	searcher     tmdb.Searcher
	details      tmdb.DetailFetcher
	notifier     Notifier
	logger       *logrus.Logger

	settingsBtn  *widget.Button
	titleLabel   *widget.Label
	titleEntry   *widget.Entry
	titleBtn     *widget.Button
	genreLabel   *widget.Label
	genreSelect  *widget.Select
	genreBtn     *widget.Button
	resultList   *widget.List
	items        binding.StringList
	posterLabel  *widget.Label
	poster       *canvas.Image
	detailsLabel *widget.Label
	detailsText  *widget.Label

	// Status panel under the search rows
	statusContainer *fyne.Container
	statusLabel     *widget.Label
	statusSpinner   *widget.ProgressBarInfinite
	cancelBtn       *widget.Button

	// current is the most recently started task; cancel is non-nil while it
	// is in flight
	mu      sync.Mutex
	results *model.ResultSet
	current *model.LookupTask
	cancel  context.CancelFunc

	// async runs task bodies off the UI thread; do hops back onto it
	async func(func())
	do    func(func())
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, searcher tmdb.Searcher, details tmdb.DetailFetcher, logger *logrus.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		searcher:     searcher,
		details:      details,
		notifier:     newDialogNotifier(window, localization),
		logger:       logger,
		items:        binding.NewStringList(),
		async:        func(f func()) { go f() },
		do:           fyne.Do,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	// Title search row
	ui.titleLabel = widget.NewLabel(ui.text(KeySearchByTitle))
	ui.titleEntry = widget.NewEntry()
	ui.titleEntry.SetPlaceHolder(ui.text(KeyEnterTitle))
	ui.titleEntry.OnSubmitted = func(string) {
		ui.onSearchTitle()
	}
	ui.titleBtn = widget.NewButton(ui.text(KeySearch), ui.onSearchTitle)
	ui.titleBtn.Importance = widget.HighImportance

	// Genre search row
	ui.genreLabel = widget.NewLabel(ui.text(KeySearchByGenre))
	ui.genreSelect = widget.NewSelect(model.GenreNames(), nil)
	ui.genreSelect.PlaceHolder = ui.text(KeySelectGenre)
	ui.genreBtn = widget.NewButton(ui.text(KeySearch), ui.onSearchGenre)

	titleRow := container.NewBorder(nil, nil, container.NewHBox(ui.settingsBtn, ui.titleLabel), ui.titleBtn, ui.titleEntry)
	genreRow := container.NewBorder(nil, nil, ui.genreLabel, ui.genreBtn, ui.genreSelect)

	// Status panel (hidden by default)
	ui.statusLabel = widget.NewLabel("")
	ui.statusSpinner = widget.NewProgressBarInfinite()
	ui.statusSpinner.Hide()
	ui.cancelBtn = widget.NewButton(IconCancel+" "+ui.text(KeyCancel), ui.CancelCurrent)
	ui.cancelBtn.Importance = widget.LowImportance
	ui.cancelBtn.Hide()
	ui.statusContainer = container.NewBorder(nil, nil, nil, ui.cancelBtn,
		container.NewHBox(ui.statusSpinner, container.NewPadded(ui.statusLabel)))
	ui.statusContainer.Hide()

	top := container.NewVBox(titleRow, genreRow, ui.statusContainer)

	// Result list
	ui.resultList = widget.NewListWithData(ui.items,
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(item binding.DataItem, obj fyne.CanvasObject) {
			if label, ok := obj.(*widget.Label); ok {
				label.Bind(item.(binding.String))
			}
		},
	)
	ui.resultList.OnSelected = ui.onResultSelected

	// Poster canvas on a white background, fixed size
	ui.posterLabel = widget.NewLabel(ui.text(KeyMoviePoster))
	ui.poster = canvas.NewImageFromImage(nil)
	ui.poster.FillMode = canvas.ImageFillStretch
	ui.poster.SetMinSize(fyne.NewSize(PosterWidth, PosterHeight))
	posterBg := canvas.NewRectangle(color.White)
	posterBg.SetMinSize(fyne.NewSize(PosterWidth, PosterHeight))
	posterColumn := container.NewVBox(ui.posterLabel, container.NewStack(posterBg, ui.poster))

	ui.detailsLabel = widget.NewLabel(ui.text(KeyMovieDetails))
	ui.detailsText = widget.NewLabel("")
	ui.detailsText.Wrapping = fyne.TextWrapWord
	detailsScroll := container.NewVScroll(ui.detailsText)
	detailsScroll.SetMinSize(fyne.NewSize(DetailsMinWidth, PosterHeight))
	detailsColumn := container.NewBorder(ui.detailsLabel, nil, nil, nil, detailsScroll)

	detailPane := container.NewBorder(nil, nil, posterColumn, nil, detailsColumn)

	content := container.NewBorder(
		top,           // top
		detailPane,    // bottom
		nil,           // left
		nil,           // right
		ui.resultList, // center
	)

	ui.window.SetContent(content)
	ui.logger.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.text(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.text(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.text(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.text(KeyAppTitle))
	ui.titleLabel.SetText(ui.text(KeySearchByTitle))
	ui.titleEntry.SetPlaceHolder(ui.text(KeyEnterTitle))
	ui.titleBtn.SetText(ui.text(KeySearch))
	ui.genreLabel.SetText(ui.text(KeySearchByGenre))
	ui.genreSelect.PlaceHolder = ui.text(KeySelectGenre)
	ui.genreSelect.Refresh()
	ui.genreBtn.SetText(ui.text(KeySearch))
	ui.cancelBtn.SetText(IconCancel + " " + ui.text(KeyCancel))
	ui.posterLabel.SetText(ui.text(KeyMoviePoster))
	ui.detailsLabel.SetText(ui.text(KeyMovieDetails))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies settings that take effect immediately
func (ui *RootUI) onSettingsSaved() {
	ui.applyClientSettings()
	if ui.localization.GetCurrentLanguage() != ui.settings.GetLanguage() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}
}

// applyClientSettings pushes the configured API key and request timeout
// into the clients
func (ui *RootUI) applyClientSettings() {
	key := ui.settings.GetAPIKey()
	timeout := ui.settings.GetRequestTimeout()

	clients := []any{ui.searcher}
	if any(ui.details) != any(ui.searcher) {
		clients = append(clients, ui.details)
	}
	for _, client := range clients {
		if setter, ok := client.(apiKeySetter); ok {
			setter.SetAPIKey(key)
		}
		if setter, ok := client.(timeoutSetter); ok {
			setter.SetTimeout(timeout)
		}
	}
}

// ShowCatalog fills the result list with the seed list read at startup
func (ui *RootUI) ShowCatalog(movies []model.Movie) {
	ui.showResults(model.NewResultSet(CatalogTaskID, "", movies))
}

// onSearchTitle handles the title search button
func (ui *RootUI) onSearchTitle() {
	query := strings.TrimSpace(ui.titleEntry.Text)
	if query == "" {
		ui.notifier.Info(ui.text(KeyPleaseEnterTitle))
		return
	}
	ui.search(model.LookupTitleSearch, tmdb.Query{Text: query})
}

// onSearchGenre handles the genre search button
func (ui *RootUI) onSearchGenre() {
	ui.search(model.LookupGenreSearch, tmdb.Query{Text: ui.genreSelect.Selected, Genre: true})
}

// search starts a search task and renders its results
func (ui *RootUI) search(kind model.LookupKind, q tmdb.Query) *model.LookupTask {
	message := ui.text(KeySearching) + MiddleDotSeparator + q.Text
	return ui.runTask(kind, q.Text, message, func(ctx context.Context, task *model.LookupTask) error {
		movies, err := ui.searcher.Search(ctx, q)
		if err != nil {
			return err
		}
		rs := model.NewResultSet(task.ID, q.Text, movies)
		ui.do(func() {
			if ui.isCurrent(task) {
				ui.showResults(rs)
			}
		})
		return nil
	})
}

// onResultSelected handles selection of a result list entry
func (ui *RootUI) onResultSelected(id widget.ListItemID) {
	movie, ok := ui.resultAt(id)
	if !ok {
		return
	}
	ui.showDetails(movie)
}

// showDetails resolves the detail record and poster for a list entry.
// Entries with a TMDB id are fetched by id; id-less entries are re-resolved
// by title.
func (ui *RootUI) showDetails(movie model.Movie) *model.LookupTask {
	display := movie.DisplayString()
	message := ui.text(KeyLoadingDetails) + MiddleDotSeparator + display

	return ui.runTask(model.LookupDetails, display, message, func(ctx context.Context, task *model.LookupTask) error {
		var record model.Movie
		var summary string
		if movie.ID > 0 {
			detail, err := ui.details.Movie(ctx, movie.ID)
			if err != nil {
				return err
			}
			record, summary = detail.Movie, detail.Summary()
		} else {
			resolved, err := ui.details.ResolveTitle(ctx, display)
			if err != nil {
				return err
			}
			record, summary = *resolved, resolved.Summary()
		}

		var poster image.Image
		if record.HasPoster() {
			img, err := ui.details.Poster(ctx, record.PosterPath)
			if err != nil {
				if ctx.Err() != nil {
					return err
				}
				// Keep the text; the previous poster stays on screen
				ui.logger.WithError(err).WithField("poster_path", record.PosterPath).Warn("Poster unavailable")
			} else {
				poster = img
			}
		}

		ui.do(func() {
			if ui.isCurrent(task) {
				ui.renderDetails(summary, poster)
			}
		})
		return nil
	})
}

// runTask starts work as the current task. A task already in flight is
// cancelled and its results are discarded.
func (ui *RootUI) runTask(kind model.LookupKind, query, message string, work func(ctx context.Context, task *model.LookupTask) error) *model.LookupTask {
	task := model.NewLookupTask(kind, query)
	ctx, cancel := context.WithTimeout(context.Background(), ui.settings.GetRequestTimeout())

	ui.mu.Lock()
	if ui.cancel != nil {
		ui.cancel()
	}
	ui.current = task
	ui.cancel = cancel
	ui.mu.Unlock()

	ui.logger.WithFields(logrus.Fields{
		"task":  task.ID,
		"kind":  task.Kind,
		"query": task.Query,
	}).Info("Task started")

	task.Start()
	ui.setBusy(message)

	ui.async(func() {
		defer cancel()
		err := work(ctx, task)
		ui.finishTask(task, err)
	})
	return task
}

// finishTask records the outcome of a task and, if it is still current,
// restores the idle state and reports failures
func (ui *RootUI) finishTask(task *model.LookupTask, err error) {
	status := model.TaskStatusCompleted
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		status = model.TaskStatusCancelled
	default:
		status = model.TaskStatusError
	}
	task.Finish(status, err)

	ui.mu.Lock()
	current := ui.current == task
	if current {
		ui.cancel = nil
	}
	ui.mu.Unlock()

	entry := ui.logger.WithFields(logrus.Fields{
		"task":    task.ID,
		"kind":    task.Kind,
		"status":  task.Status,
		"elapsed": task.Elapsed().String(),
	})
	if err != nil {
		entry = entry.WithError(err)
	}
	if !current {
		entry.Debug("Discarding superseded task")
		return
	}
	entry.Info("Task finished")

	ui.do(func() {
		// A newer task may have started since the check above
		if !ui.isCurrent(task) {
			return
		}
		ui.setIdle(ui.idleMessage(task))
		if task.Kind == model.LookupDetails && status != model.TaskStatusCompleted {
			// Selecting the same row again must retry the lookup
			ui.resultList.UnselectAll()
		}
		if status == model.TaskStatusError {
			ui.reportError(task.Kind, err)
		}
	})
}

// CancelCurrent cancels the task in flight, if any
func (ui *RootUI) CancelCurrent() {
	ui.mu.Lock()
	cancel := ui.cancel
	ui.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// reportError maps a task error to a user-facing notification
func (ui *RootUI) reportError(kind model.LookupKind, err error) {
	if errors.Is(err, tmdb.ErrNoResults) {
		ui.notifier.Warning(ui.text(KeyNoDetailsFound))
		return
	}

	message := ui.text(KeyFetchDataFailed)
	if kind == model.LookupDetails {
		message = ui.text(KeyFetchDetailFailed)
	}

	var statusErr *tmdb.StatusError
	switch {
	case errors.Is(err, tmdb.ErrMissingAPIKey):
		message = ui.text(KeyMissingAPIKey)
	case errors.Is(err, context.DeadlineExceeded):
		message = ui.text(KeyRequestTimedOut)
	case errors.As(err, &statusErr):
		message = fmt.Sprintf("%s (HTTP %d)", message, statusErr.StatusCode)
	}
	ui.notifier.Error(message)
}

// idleMessage returns the status text shown after a task finishes
func (ui *RootUI) idleMessage(task *model.LookupTask) string {
	if task.Status != model.TaskStatusCompleted || task.Kind == model.LookupDetails {
		return ""
	}
	ui.mu.Lock()
	n := ui.results.Len()
	ui.mu.Unlock()
	return fmt.Sprintf(ui.text(KeyResultsCount), n)
}

// setBusy shows the spinner and disables the search buttons
func (ui *RootUI) setBusy(message string) {
	ui.titleBtn.Disable()
	ui.genreBtn.Disable()
	ui.statusLabel.SetText(message)
	ui.statusSpinner.Show()
	ui.cancelBtn.Show()
	ui.statusContainer.Show()
}

// setIdle hides the spinner and re-enables the search buttons
func (ui *RootUI) setIdle(message string) {
	ui.titleBtn.Enable()
	ui.genreBtn.Enable()
	ui.statusSpinner.Hide()
	ui.cancelBtn.Hide()
	ui.statusLabel.SetText(message)
	if message == "" {
		ui.statusContainer.Hide()
	}
}

// showResults replaces the result list contents
func (ui *RootUI) showResults(rs *model.ResultSet) {
	ui.mu.Lock()
	ui.results = rs
	ui.mu.Unlock()

	ui.resultList.UnselectAll()
	if err := ui.items.Set(rs.DisplayStrings()); err != nil {
		ui.logger.WithError(err).Error("Failed to update result list")
		return
	}
	ui.logger.WithFields(logrus.Fields{
		"task":    rs.TaskID,
		"query":   rs.Query,
		"results": rs.Len(),
	}).Debug("Result list updated")
}

// renderDetails writes the detail text and, when present, the poster
func (ui *RootUI) renderDetails(summary string, poster image.Image) {
	ui.detailsText.SetText(summary)
	if poster != nil {
		ui.poster.Image = poster
		ui.poster.Refresh()
	}
}

// resultAt returns the movie behind a list row
func (ui *RootUI) resultAt(id widget.ListItemID) (model.Movie, bool) {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	return ui.results.At(id)
}

// isCurrent reports whether task is the most recently started task
func (ui *RootUI) isCurrent(task *model.LookupTask) bool {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	return ui.current == task
}

func (ui *RootUI) text(key string) string {
	return ui.localization.GetText(key)
}
