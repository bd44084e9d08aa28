package ui

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/linkvault/internal/client"
	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
)

//go:generate mockgen -source=app.go -destination=mock_app.go -package=ui

// DataStore is the part of the client data layer the app uses.
type DataStore interface {
	Categories(ctx context.Context) ([]models.CategoryDB, error)
	Links(ctx context.Context, filter models.LinkFilter) ([]models.LinkDB, error)
	Link(ctx context.Context, id uuid.UUID) (*models.LinkDB, error)
	CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.CategoryDB, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req models.CategoryRequest) (*models.CategoryDB, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CreateLink(ctx context.Context, req models.LinkRequest) (*models.LinkDB, error)
	UpdateLink(ctx context.Context, id uuid.UUID, req models.LinkRequest) (*models.LinkDB, error)
	DeleteLink(ctx context.Context, id uuid.UUID) error
	Logout() error
	Reset()
}

// SessionState exposes the signed-in user and session expiry.
type SessionState interface {
	User() (models.PublicUser, bool)
	Unauthorized() <-chan struct{}
}

// ErrNoForm is returned when a form is submitted while a different one is open.
var ErrNoForm = errors.New("no matching form is open")

// App is the dashboard controller: which form is open, what is selected,
// and the actions that change server state.
type App struct {
	mu        sync.Mutex
	store     DataStore
	session   SessionState
	confirm   Confirmer
	modal     Modal
	selection Selection
}

// NewApp creates an app with no form open and everything selected.
func NewApp(store DataStore, session SessionState, confirm Confirmer) *App {
	return &App{
		store:     store,
		session:   session,
		confirm:   confirm,
		modal:     Closed{},
		selection: SelectAll(),
	}
}

// Modal returns the open form.
func (a *App) Modal() Modal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.modal
}

// Selection returns the current selection.
func (a *App) Selection() Selection {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selection
}

// Select changes what the main panel shows.
func (a *App) Select(sel Selection) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selection = sel
}

func (a *App) open(m Modal) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.modal = m
}

// OpenCreateLink opens the new-link form.
func (a *App) OpenCreateLink() { a.open(CreatingLink{}) }

// OpenEditLink opens the edit form of a link.
func (a *App) OpenEditLink(id uuid.UUID) { a.open(EditingLink{ID: id}) }

// OpenCreateCategory opens the new-category form.
func (a *App) OpenCreateCategory() { a.open(CreatingCategory{}) }

// OpenEditCategory opens the edit form of a category.
func (a *App) OpenEditCategory(id uuid.UUID) { a.open(EditingCategory{ID: id}) }

// CloseModal closes whatever form is open.
func (a *App) CloseModal() { a.open(Closed{}) }

// Dashboard loads categories and links and builds the view for the current
// selection.
func (a *App) Dashboard(ctx context.Context) (Dashboard, error) {
	categories, err := a.store.Categories(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	links, err := a.store.Links(ctx, models.LinkFilter{})
	if err != nil {
		return Dashboard{}, err
	}

	user, _ := a.session.User()
	return BuildDashboard(user, categories, links, a.Selection()), nil
}

// SubmitLink saves the open link form. The form stays open on failure.
func (a *App) SubmitLink(ctx context.Context, form LinkForm) (*models.LinkDB, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	var (
		link *models.LinkDB
		err  error
	)
	switch m := a.Modal().(type) {
	case CreatingLink:
		link, err = a.store.CreateLink(ctx, form.Request())
	case EditingLink:
		link, err = a.store.UpdateLink(ctx, m.ID, form.Request())
	default:
		return nil, ErrNoForm
	}
	if err != nil {
		return nil, err
	}

	a.CloseModal()
	return link, nil
}

// SubmitCategory saves the open category form. The form stays open on failure.
func (a *App) SubmitCategory(ctx context.Context, form CategoryForm) (*models.CategoryDB, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	var (
		category *models.CategoryDB
		err      error
	)
	switch m := a.Modal().(type) {
	case CreatingCategory:
		category, err = a.store.CreateCategory(ctx, form.Request())
	case EditingCategory:
		category, err = a.store.UpdateCategory(ctx, m.ID, form.Request())
	default:
		return nil, ErrNoForm
	}
	if err != nil {
		return nil, err
	}

	a.CloseModal()
	return category, nil
}

// DeleteLink deletes a link once the user confirms. It reports whether the
// link was deleted.
func (a *App) DeleteLink(ctx context.Context, id uuid.UUID) (bool, error) {
	if !a.confirm.Confirm(ConfirmDeleteLink) {
		return false, nil
	}
	if err := a.store.DeleteLink(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteCategory deletes a category once the user confirms. Deleting the
// selected category selects everything.
func (a *App) DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error) {
	if !a.confirm.Confirm(ConfirmDeleteCategory) {
		return false, nil
	}
	if err := a.store.DeleteCategory(ctx, id); err != nil {
		return false, err
	}

	a.mu.Lock()
	if selected, ok := a.selection.CategoryID(); ok && selected == id {
		a.selection = SelectAll()
	}
	a.mu.Unlock()
	return true, nil
}

// Logout ends the session and resets the view.
func (a *App) Logout() error {
	a.reset()
	return a.store.Logout()
}

// HandleUnauthorized resets the app after the server rejected the session.
func (a *App) HandleUnauthorized() {
	logger.Log.Info("session expired, resetting")
	a.store.Reset()
	a.reset()
}

// Watch calls HandleUnauthorized for every session expiry until ctx is done.
func (a *App) Watch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-a.session.Unauthorized():
			a.HandleUnauthorized()
		}
	}
}

func (a *App) reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.modal = Closed{}
	a.selection = SelectAll()
}

// ErrorMessage is what the user sees for err: the server's message for
// client errors, a generic retry hint otherwise.
func ErrorMessage(err error) string {
	var formErr *FormError
	if errors.As(err, &formErr) {
		return formErr.Message
	}

	if status := client.StatusOf(err); status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return err.Error()
	}
	return "Something went wrong. Please try again."
}
