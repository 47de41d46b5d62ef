package ui

import (
	"context"
	"errors"
	"image"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/sirupsen/logrus"

	"github.com/ytget/movie-explorer/internal/config"
	"github.com/ytget/movie-explorer/internal/model"
	"github.com/ytget/movie-explorer/internal/tmdb"
)

type fakeSearcher struct {
	mu      sync.Mutex
	results map[string][]model.Movie
	err     error
	queries []tmdb.Query
	apiKey  string
	timeout time.Duration
}

func (f *fakeSearcher) Search(ctx context.Context, q tmdb.Query) ([]model.Movie, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.results[q.Text], nil
}

func (f *fakeSearcher) SetAPIKey(key string) {
	f.apiKey = key
}

func (f *fakeSearcher) SetTimeout(timeout time.Duration) {
	f.timeout = timeout
}

type fakeDetails struct {
	detail     *model.MovieDetail
	movieErr   error
	resolved   *model.Movie
	resolveErr error
	poster     image.Image
	posterErr  error

	movieIDs     []int
	resolveCalls []string
	posterCalls  []string
}

func (f *fakeDetails) Movie(ctx context.Context, id int) (*model.MovieDetail, error) {
	f.movieIDs = append(f.movieIDs, id)
	if f.movieErr != nil {
		return nil, f.movieErr
	}
	return f.detail, nil
}

func (f *fakeDetails) ResolveTitle(ctx context.Context, display string) (*model.Movie, error) {
	f.resolveCalls = append(f.resolveCalls, display)
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.resolved, nil
}

func (f *fakeDetails) Poster(ctx context.Context, posterPath string) (image.Image, error) {
	f.posterCalls = append(f.posterCalls, posterPath)
	if f.posterErr != nil {
		return nil, f.posterErr
	}
	return f.poster, nil
}

type recordingNotifier struct {
	errors   []string
	warnings []string
	infos    []string
}

func (n *recordingNotifier) Error(message string)   { n.errors = append(n.errors, message) }
func (n *recordingNotifier) Warning(message string) { n.warnings = append(n.warnings, message) }
func (n *recordingNotifier) Info(message string)    { n.infos = append(n.infos, message) }

func newTestUI(t *testing.T, searcher *fakeSearcher, details *fakeDetails) (*RootUI, *recordingNotifier) {
	t.Helper()
	t.Setenv(config.EnvAPIKey, "")

	app := test.NewApp()
	window := app.NewWindow("test")
	settings := config.NewSettings(app)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	ui := NewRootUI(window, settings, searcher, details, logger)
	notifier := &recordingNotifier{}
	ui.notifier = notifier
	ui.async = func(f func()) { f() }
	return ui, notifier
}

func listItems(t *testing.T, ui *RootUI) []string {
	t.Helper()
	items, err := ui.items.Get()
	if err != nil {
		t.Fatalf("Failed to read result list: %v", err)
	}
	return items
}

func TestSearchTitle_RendersResults(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]model.Movie{
		"Interstellar": {
			{ID: 157336, Title: "Interstellar", ReleaseDate: "2014-11-05"},
			{ID: 2, Title: "Ariel", ReleaseDate: "1988-10-21"},
			{ID: 3, Title: "Shadows", ReleaseDate: ""},
		},
	}}
	ui, notifier := newTestUI(t, searcher, &fakeDetails{})

	ui.titleEntry.SetText("  Interstellar ")
	ui.onSearchTitle()

	expected := []string{"Interstellar (2014)", "Ariel (1988)", "Shadows ()"}
	items := listItems(t, ui)
	if len(items) != len(expected) {
		t.Fatalf("Expected %d list entries, got %d", len(expected), len(items))
	}
	for i := range expected {
		if items[i] != expected[i] {
			t.Errorf("Entry %d: expected '%s', got '%s'", i, expected[i], items[i])
		}
	}

	if len(searcher.queries) != 1 || searcher.queries[0] != (tmdb.Query{Text: "Interstellar"}) {
		t.Errorf("Unexpected queries: %+v", searcher.queries)
	}
	if len(notifier.errors) != 0 {
		t.Errorf("Expected no errors, got %v", notifier.errors)
	}
	if ui.titleBtn.Disabled() || ui.genreBtn.Disabled() {
		t.Error("Search buttons should be enabled after the task finished")
	}
	if ui.current == nil || ui.current.Status != model.TaskStatusCompleted {
		t.Errorf("Expected completed task, got %+v", ui.current)
	}
}

func TestSearchGenre_SendsGenreQuery(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]model.Movie{
		"Drama": {{ID: 1, Title: "Drama One", ReleaseDate: "2001-01-01"}},
	}}
	ui, _ := newTestUI(t, searcher, &fakeDetails{})

	ui.genreSelect.SetSelected(model.GenreDrama)
	ui.onSearchGenre()

	if len(searcher.queries) != 1 {
		t.Fatalf("Expected 1 query, got %d", len(searcher.queries))
	}
	if q := searcher.queries[0]; q.Text != "Drama" || !q.Genre {
		t.Errorf("Expected genre query for Drama, got %+v", q)
	}
	if items := listItems(t, ui); len(items) != 1 || items[0] != "Drama One (2001)" {
		t.Errorf("Unexpected list entries: %v", items)
	}
}

func TestSearch_ErrorKeepsList(t *testing.T) {
	searcher := &fakeSearcher{err: &tmdb.StatusError{URL: "http://x", StatusCode: 500}}
	ui, notifier := newTestUI(t, searcher, &fakeDetails{})

	ui.ShowCatalog([]model.Movie{{Title: "Seed", ReleaseDate: "1999-01-01"}})
	ui.titleEntry.SetText("Alien")
	ui.onSearchTitle()

	items := listItems(t, ui)
	if len(items) != 1 || items[0] != "Seed (1999)" {
		t.Errorf("Expected list to be unchanged, got %v", items)
	}
	if len(notifier.errors) != 1 {
		t.Fatalf("Expected 1 error notification, got %d", len(notifier.errors))
	}
	if !strings.Contains(notifier.errors[0], "Failed to fetch data from the API.") {
		t.Errorf("Unexpected error message: %s", notifier.errors[0])
	}
	if !strings.Contains(notifier.errors[0], "HTTP 500") {
		t.Errorf("Expected status code in message, got: %s", notifier.errors[0])
	}
	if ui.current.Status != model.TaskStatusError {
		t.Errorf("Expected task status Error, got %s", ui.current.Status)
	}
}

func TestSearch_EmptyTitle(t *testing.T) {
	searcher := &fakeSearcher{}
	ui, notifier := newTestUI(t, searcher, &fakeDetails{})

	ui.titleEntry.SetText("   ")
	ui.onSearchTitle()

	if len(searcher.queries) != 0 {
		t.Errorf("Expected no search for empty title, got %d", len(searcher.queries))
	}
	if len(notifier.infos) != 1 {
		t.Errorf("Expected 1 info notification, got %d", len(notifier.infos))
	}
}

func TestShowDetails_ByID(t *testing.T) {
	poster := image.NewRGBA(image.Rect(0, 0, 150, 220))
	details := &fakeDetails{
		detail: &model.MovieDetail{Movie: model.Movie{
			ID: 157336, Title: "Interstellar", ReleaseDate: "2014-11-05",
			Overview: "Space.", PosterPath: "/abc.jpg",
		}},
		poster: poster,
	}
	ui, notifier := newTestUI(t, &fakeSearcher{}, details)
	ui.ShowCatalog([]model.Movie{{ID: 157336, Title: "Interstellar", ReleaseDate: "2014-11-05"}})

	ui.onResultSelected(0)

	if len(details.movieIDs) != 1 || details.movieIDs[0] != 157336 {
		t.Errorf("Expected lookup by id 157336, got %v", details.movieIDs)
	}
	if len(details.resolveCalls) != 0 {
		t.Errorf("Expected no title re-resolution, got %v", details.resolveCalls)
	}
	if len(details.posterCalls) != 1 || details.posterCalls[0] != "/abc.jpg" {
		t.Errorf("Expected poster fetch for /abc.jpg, got %v", details.posterCalls)
	}

	expected := "Title: Interstellar\nRelease Date: 2014-11-05\nOverview: Space."
	if ui.detailsText.Text != expected {
		t.Errorf("Expected details %q, got %q", expected, ui.detailsText.Text)
	}
	if ui.poster.Image != image.Image(poster) {
		t.Error("Expected poster to be rendered")
	}
	if b := ui.poster.Image.Bounds(); b.Dx() != 150 || b.Dy() != 220 {
		t.Errorf("Expected 150x220 poster, got %dx%d", b.Dx(), b.Dy())
	}
	if len(notifier.errors)+len(notifier.warnings) != 0 {
		t.Errorf("Expected no notifications, got %v %v", notifier.errors, notifier.warnings)
	}
}

func TestShowDetails_ResolveTitleNoResults(t *testing.T) {
	details := &fakeDetails{resolveErr: tmdb.ErrNoResults}
	ui, notifier := newTestUI(t, &fakeSearcher{}, details)
	ui.ShowCatalog([]model.Movie{{Title: "Interstellar", ReleaseDate: "2014-11-05"}})
	ui.detailsText.SetText("previous")

	ui.onResultSelected(0)

	if len(details.resolveCalls) != 1 {
		t.Fatalf("Expected 1 title re-resolution, got %d", len(details.resolveCalls))
	}
	if got := model.LookupTitle(details.resolveCalls[0]); got != "Interstellar" {
		t.Errorf("Expected lookup title 'Interstellar', got '%s'", got)
	}
	if len(notifier.warnings) != 1 || notifier.warnings[0] != "No details found for the selected movie." {
		t.Errorf("Expected no-details warning, got %v", notifier.warnings)
	}
	if len(notifier.errors) != 0 {
		t.Errorf("Expected no error notification, got %v", notifier.errors)
	}
	if ui.detailsText.Text != "previous" {
		t.Errorf("Expected detail pane to be unchanged, got %q", ui.detailsText.Text)
	}
	if len(details.posterCalls) != 0 {
		t.Errorf("Expected no poster fetch, got %v", details.posterCalls)
	}
}

func TestShowDetails_NoPosterKeepsPrevious(t *testing.T) {
	previous := image.NewRGBA(image.Rect(0, 0, 150, 220))
	details := &fakeDetails{
		resolved: &model.Movie{Title: "Ariel", ReleaseDate: "1988-10-21", Overview: "Finnish."},
	}
	ui, _ := newTestUI(t, &fakeSearcher{}, details)
	ui.poster.Image = previous
	ui.ShowCatalog([]model.Movie{{Title: "Ariel", ReleaseDate: "1988-10-21"}})

	ui.onResultSelected(0)

	if len(details.posterCalls) != 0 {
		t.Errorf("Expected no poster fetch, got %v", details.posterCalls)
	}
	if ui.poster.Image != image.Image(previous) {
		t.Error("Expected previous poster to stay on screen")
	}
	if !strings.HasPrefix(ui.detailsText.Text, "Title: Ariel") {
		t.Errorf("Unexpected details text: %q", ui.detailsText.Text)
	}
}

func TestShowDetails_PosterFailureKeepsText(t *testing.T) {
	details := &fakeDetails{
		detail:    &model.MovieDetail{Movie: model.Movie{ID: 7, Title: "Heat", PosterPath: "/heat.jpg"}},
		posterErr: &tmdb.StatusError{URL: "http://cdn", StatusCode: 404},
	}
	ui, notifier := newTestUI(t, &fakeSearcher{}, details)
	ui.ShowCatalog([]model.Movie{{ID: 7, Title: "Heat"}})

	ui.onResultSelected(0)

	if !strings.HasPrefix(ui.detailsText.Text, "Title: Heat") {
		t.Errorf("Expected details text to be rendered, got %q", ui.detailsText.Text)
	}
	if ui.poster.Image != nil {
		t.Error("Expected no poster")
	}
	if len(notifier.errors) != 0 {
		t.Errorf("Expected no error notification, got %v", notifier.errors)
	}
}

func TestShowDetails_ErrorNotifies(t *testing.T) {
	details := &fakeDetails{movieErr: errors.New("connection refused")}
	ui, notifier := newTestUI(t, &fakeSearcher{}, details)
	ui.ShowCatalog([]model.Movie{{ID: 7, Title: "Heat"}})

	ui.onResultSelected(0)

	if len(notifier.errors) != 1 || notifier.errors[0] != "Failed to fetch details from the API." {
		t.Errorf("Expected detail fetch error, got %v", notifier.errors)
	}
}

func TestOnResultSelected_OutOfRange(t *testing.T) {
	details := &fakeDetails{}
	ui, _ := newTestUI(t, &fakeSearcher{}, details)

	ui.onResultSelected(3)

	if len(details.movieIDs)+len(details.resolveCalls) != 0 {
		t.Error("Expected no lookup for an out of range row")
	}
}

func TestSupersededTaskIsDiscarded(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]model.Movie{
		"first":  {{ID: 1, Title: "First", ReleaseDate: "2001-01-01"}},
		"second": {{ID: 2, Title: "Second", ReleaseDate: "2002-01-01"}},
	}}
	ui, notifier := newTestUI(t, searcher, &fakeDetails{})

	var pending []func()
	ui.async = func(f func()) { pending = append(pending, f) }

	first := ui.search(model.LookupTitleSearch, tmdb.Query{Text: "first"})
	second := ui.search(model.LookupTitleSearch, tmdb.Query{Text: "second"})

	if len(pending) != 2 {
		t.Fatalf("Expected 2 pending tasks, got %d", len(pending))
	}

	// Newer task completes first; the older one finishes late
	pending[1]()
	pending[0]()

	items := listItems(t, ui)
	if len(items) != 1 || items[0] != "Second (2002)" {
		t.Errorf("Expected results of the newer search, got %v", items)
	}
	if first.Status != model.TaskStatusCancelled {
		t.Errorf("Expected superseded task to be cancelled, got %s", first.Status)
	}
	if second.Status != model.TaskStatusCompleted {
		t.Errorf("Expected newer task to complete, got %s", second.Status)
	}
	if len(notifier.errors) != 0 {
		t.Errorf("Cancellation should not be reported, got %v", notifier.errors)
	}
	if ui.titleBtn.Disabled() {
		t.Error("Search buttons should be enabled")
	}
}

func TestFinishedTaskDoesNotResetNewerTask(t *testing.T) {
	searcher := &fakeSearcher{err: &tmdb.StatusError{URL: "http://x", StatusCode: 500}}
	ui, notifier := newTestUI(t, searcher, &fakeDetails{})

	var pendingWork, pendingUI []func()
	ui.async = func(f func()) { pendingWork = append(pendingWork, f) }
	ui.do = func(f func()) { pendingUI = append(pendingUI, f) }

	first := ui.search(model.LookupTitleSearch, tmdb.Query{Text: "first"})
	pendingWork[0]()
	if len(pendingUI) != 1 {
		t.Fatalf("Expected 1 queued UI update, got %d", len(pendingUI))
	}

	// The user starts another search before the queued update runs
	second := ui.search(model.LookupTitleSearch, tmdb.Query{Text: "second"})
	for _, f := range pendingUI {
		f()
	}

	if first.Status != model.TaskStatusError {
		t.Errorf("Expected first task to fail, got %s", first.Status)
	}
	if second.Status != model.TaskStatusRunning {
		t.Errorf("Expected second task to be running, got %s", second.Status)
	}
	if !ui.titleBtn.Disabled() || !ui.genreBtn.Disabled() {
		t.Error("Search buttons should stay disabled while the newer task runs")
	}
	if ui.statusSpinner.Hidden || ui.cancelBtn.Hidden {
		t.Error("Spinner and cancel button should stay visible while the newer task runs")
	}
	if len(notifier.errors) != 0 {
		t.Errorf("Failure of a replaced task should not be reported, got %v", notifier.errors)
	}
}

func TestShowDetails_RetrySameRowAfterFailure(t *testing.T) {
	details := &fakeDetails{movieErr: errors.New("connection reset")}
	ui, notifier := newTestUI(t, &fakeSearcher{}, details)
	ui.ShowCatalog([]model.Movie{{ID: 7, Title: "Heat", ReleaseDate: "1995-12-15"}})

	ui.resultList.Select(0)
	if len(notifier.errors) != 1 {
		t.Fatalf("Expected 1 error notification, got %d", len(notifier.errors))
	}

	details.movieErr = nil
	details.detail = &model.MovieDetail{Movie: model.Movie{ID: 7, Title: "Heat", ReleaseDate: "1995-12-15", Overview: "LA."}}
	ui.resultList.Select(0)

	if len(details.movieIDs) != 2 {
		t.Fatalf("Expected the lookup to be retried, got %d lookups", len(details.movieIDs))
	}
	if !strings.HasPrefix(ui.detailsText.Text, "Title: Heat") {
		t.Errorf("Expected details after retry, got %q", ui.detailsText.Text)
	}
}

func TestShowDetails_DetailFields(t *testing.T) {
	details := &fakeDetails{detail: &model.MovieDetail{
		Movie:   model.Movie{ID: 7, Title: "Heat", ReleaseDate: "1995-12-15", Overview: "LA."},
		Runtime: 170,
	}}
	ui, _ := newTestUI(t, &fakeSearcher{}, details)
	ui.ShowCatalog([]model.Movie{{ID: 7, Title: "Heat", ReleaseDate: "1995-12-15"}})

	ui.onResultSelected(0)

	if !strings.HasSuffix(ui.detailsText.Text, "\nRuntime: 170 min") {
		t.Errorf("Expected runtime in details, got %q", ui.detailsText.Text)
	}
}

func TestCancelCurrent(t *testing.T) {
	searcher := &fakeSearcher{}
	ui, notifier := newTestUI(t, searcher, &fakeDetails{})

	var pending []func()
	ui.async = func(f func()) { pending = append(pending, f) }

	task := ui.search(model.LookupTitleSearch, tmdb.Query{Text: "slow"})
	if !ui.titleBtn.Disabled() || !ui.genreBtn.Disabled() {
		t.Error("Search buttons should be disabled while a task is in flight")
	}
	if ui.statusSpinner.Hidden {
		t.Error("Spinner should be visible while a task is in flight")
	}

	ui.CancelCurrent()
	pending[0]()

	if task.Status != model.TaskStatusCancelled {
		t.Errorf("Expected task to be cancelled, got %s", task.Status)
	}
	if len(notifier.errors) != 0 {
		t.Errorf("Cancellation should not be reported, got %v", notifier.errors)
	}
	if ui.titleBtn.Disabled() || ui.genreBtn.Disabled() {
		t.Error("Search buttons should be enabled after cancellation")
	}
	if !ui.statusSpinner.Hidden {
		t.Error("Spinner should be hidden after cancellation")
	}
}

func TestReportError(t *testing.T) {
	ui, notifier := newTestUI(t, &fakeSearcher{}, &fakeDetails{})

	tests := []struct {
		kind     model.LookupKind
		err      error
		expected string
	}{
		{model.LookupTitleSearch, tmdb.ErrMissingAPIKey, ui.text(KeyMissingAPIKey)},
		{model.LookupGenreSearch, context.DeadlineExceeded, ui.text(KeyRequestTimedOut)},
		{model.LookupTitleSearch, &tmdb.StatusError{StatusCode: 401}, "Failed to fetch data from the API. (HTTP 401)"},
		{model.LookupDetails, errors.New("boom"), "Failed to fetch details from the API."},
	}

	for _, tc := range tests {
		notifier.errors = nil
		ui.reportError(tc.kind, tc.err)
		if len(notifier.errors) != 1 || notifier.errors[0] != tc.expected {
			t.Errorf("reportError(%s, %v) = %v, expected %q", tc.kind, tc.err, notifier.errors, tc.expected)
		}
	}
}

func TestOnSettingsSaved_AppliesClientSettings(t *testing.T) {
	searcher := &fakeSearcher{}
	ui, _ := newTestUI(t, searcher, &fakeDetails{})

	ui.settings.SetAPIKey("new-key")
	ui.settings.SetRequestTimeout(60)
	ui.settings.SetLanguage("pt")
	ui.onSettingsSaved()

	if searcher.apiKey != "new-key" {
		t.Errorf("Expected API key to be applied, got '%s'", searcher.apiKey)
	}
	if searcher.timeout != 60*time.Second {
		t.Errorf("Expected timeout 60s to be applied, got %v", searcher.timeout)
	}
	if ui.localization.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected language pt, got %s", ui.localization.GetCurrentLanguage())
	}
	if ui.titleBtn.Text != "Buscar" {
		t.Errorf("Expected translated button text, got %s", ui.titleBtn.Text)
	}
}

func TestShowCatalog(t *testing.T) {
	ui, _ := newTestUI(t, &fakeSearcher{}, &fakeDetails{})

	ui.ShowCatalog([]model.Movie{
		{Title: "Alien", ReleaseDate: "1979-05-25"},
		{Title: "Aliens", ReleaseDate: "1986-07-18"},
	})

	items := listItems(t, ui)
	if len(items) != 2 || items[0] != "Alien (1979)" || items[1] != "Aliens (1986)" {
		t.Errorf("Unexpected catalog entries: %v", items)
	}
	if ui.results.TaskID != CatalogTaskID {
		t.Errorf("Expected catalog result set, got %s", ui.results.TaskID)
	}
}
