package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"katalog/internal/catalog"
	"katalog/internal/confirm"
	"katalog/internal/forms"
	"katalog/internal/models"
	"katalog/internal/notify"
	"katalog/pkg/schedule"

	"github.com/rs/zerolog"
)

var (
	ErrPageOutOfRange  = errors.New("page out of range")
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrNothingPending  = errors.New("no delete awaiting confirmation")
)

// Toast messages shown after a successful transition.
const (
	MsgProductAdded   = "Product added"
	MsgProductUpdated = "Product updated"
	MsgProductDeleted = "Product deleted"
)

// DefaultSearchDebounce is the quiescence interval before a typed search applies.
const DefaultSearchDebounce = 500 * time.Millisecond

// SessionConfig tunes a CatalogSession.
type SessionConfig struct {
	PageSize       int
	SearchDebounce time.Duration
	ToastDuration  time.Duration
}

// CatalogView is everything the presentation layer needs to draw the catalog.
type CatalogView struct {
	Products      []models.Product      `json:"products"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"pageSize"`
	PageSizes     []int                 `json:"pageSizes"`
	TotalItems    int                   `json:"totalItems"`
	TotalPages    int                   `json:"totalPages"`
	View          models.ViewMode       `json:"view"`
	Activity      models.ActivityFilter `json:"activity"`
	Search        string                `json:"search"`
	SearchInput   string                `json:"searchInput"`
	FormOpen      bool                  `json:"formOpen"`
	EditingID     string                `json:"editingId,omitempty"`
	DeleteState   confirm.State         `json:"deleteState"`
	PendingDelete *models.Product       `json:"pendingDelete,omitempty"`
	Toast         notify.State          `json:"toast"`
}

// CatalogSession owns the view state of one catalog screen: search,
// activity filter, pagination, view mode, the edit target, the delete
// confirmation and the toast. Store mutations go through the ProductService.
type CatalogSession struct {
	products *ProductService
	toast    *notify.Toast
	search   *schedule.Debouncer[string]
	logger   zerolog.Logger

	mu          sync.Mutex
	deletes     confirm.Flow
	searchInput string
	criteria    catalog.Criteria
	page        int
	pageSize    int
	view        models.ViewMode
	formOpen    bool
	editingID   string
}

// NewCatalogSession creates a session on page 1 showing all products as a list.
func NewCatalogSession(products *ProductService, cfg SessionConfig, logger zerolog.Logger) *CatalogSession {
	pageSize := cfg.PageSize
	if !catalog.ValidPageSize(pageSize) {
		pageSize = catalog.DefaultPageSize
	}
	debounce := cfg.SearchDebounce
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}

	s := &CatalogSession{
		products: products,
		toast:    notify.NewToast(cfg.ToastDuration),
		logger:   logger.With().Str("component", "CatalogSession").Logger(),
		criteria: catalog.Criteria{Activity: models.FilterAll},
		page:     1,
		pageSize: pageSize,
		view:     models.ViewList,
	}
	s.search = schedule.NewDebouncer(debounce, s.applySearch)
	return s
}

// View recomputes the visible listing from the current store contents.
func (s *CatalogSession) View() (CatalogView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, err := s.products.ListProducts(s.criteria, s.page, s.pageSize)
	if err != nil {
		return CatalogView{}, err
	}

	v := CatalogView{
		Products:    page.Items,
		Page:        page.Page,
		PageSize:    page.PageSize,
		PageSizes:   catalog.PageSizes,
		TotalItems:  page.TotalItems,
		TotalPages:  page.TotalPages,
		View:        s.view,
		Activity:    s.criteria.Activity,
		Search:      s.criteria.Search,
		SearchInput: s.searchInput,
		FormOpen:    s.formOpen,
		EditingID:   s.editingID,
		DeleteState: s.deletes.State(),
		Toast:       s.toast.State(),
	}
	if pending, ok := s.deletes.Pending(); ok {
		v.PendingDelete = &pending
	}
	return v, nil
}

// TypeSearch records raw search input. It takes effect once typing settles.
func (s *CatalogSession) TypeSearch(text string) {
	s.mu.Lock()
	s.searchInput = text
	s.mu.Unlock()

	s.search.Push(text)
}

// SettleSearch applies pending search input immediately.
func (s *CatalogSession) SettleSearch() {
	s.search.Flush()
}

// applySearch is the debouncer's sink. A changed term returns to page 1.
func (s *CatalogSession) applySearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if term == s.criteria.Search {
		return
	}
	s.criteria.Search = term
	s.page = 1
	s.logger.Debug().Str("search", term).Msg("search settled")
}

// SetActivityFilter changes the activity filter and returns to page 1.
func (s *CatalogSession) SetActivityFilter(f models.ActivityFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setActivity(f)
}

// CycleActivityFilter moves to the next activity filter.
func (s *CatalogSession) CycleActivityFilter() models.ActivityFilter {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setActivity(s.criteria.Activity.Next())
	return s.criteria.Activity
}

func (s *CatalogSession) setActivity(f models.ActivityFilter) {
	if f == s.criteria.Activity {
		return
	}
	s.criteria.Activity = f
	s.page = 1
}

// GoToPage moves to page p. Pages outside [1, totalPages] are rejected and
// leave the current page unchanged.
func (s *CatalogSession) GoToPage(p int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	total, err := s.totalPages()
	if err != nil {
		return err
	}
	if p < 1 || p > total {
		return fmt.Errorf("page %d of %d: %w", p, total, ErrPageOutOfRange)
	}
	s.page = p
	return nil
}

// NextPage advances one page if there is one.
func (s *CatalogSession) NextPage() error {
	s.mu.Lock()
	p := s.page + 1
	s.mu.Unlock()
	return s.GoToPage(p)
}

// PrevPage goes back one page if there is one.
func (s *CatalogSession) PrevPage() error {
	s.mu.Lock()
	p := s.page - 1
	s.mu.Unlock()
	return s.GoToPage(p)
}

// SetPageSize switches to page size k and returns to page 1. Sizes outside
// catalog.PageSizes are rejected and the previous size is kept.
func (s *CatalogSession) SetPageSize(k int) error {
	if !catalog.ValidPageSize(k) {
		return fmt.Errorf("page size %d: %w", k, ErrInvalidPageSize)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pageSize = k
	s.page = 1
	return nil
}

// ToggleView flips between list and card presentation.
func (s *CatalogSession) ToggleView() models.ViewMode {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = s.view.Toggle()
	return s.view
}

// OpenCreate opens an empty form; saving it adds a product.
func (s *CatalogSession) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.formOpen = true
	s.editingID = ""
}

// OpenEdit makes product id the edit target and returns the seeded form.
func (s *CatalogSession) OpenEdit(id string) (forms.ProductForm, error) {
	product, err := s.products.GetProductByID(id)
	if err != nil {
		return forms.ProductForm{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.formOpen = true
	s.editingID = product.ID
	return forms.FromProduct(*product), nil
}

// CloseForm discards the open form and the edit target.
func (s *CatalogSession) CloseForm() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.formOpen = false
	s.editingID = ""
}

// Save submits the open form: it updates the edit target if there is one and
// creates a product otherwise.
func (s *CatalogSession) Save(form forms.ProductForm) (*models.Product, error) {
	s.mu.Lock()
	id := s.editingID
	s.mu.Unlock()

	return s.SaveProduct(id, form)
}

// SaveProduct updates product id from form, or creates a product when id is
// empty. A form that fails validation leaves the store untouched.
func (s *CatalogSession) SaveProduct(id string, form forms.ProductForm) (*models.Product, error) {
	var (
		product *models.Product
		msg     string
	)
	if id == "" {
		input, err := form.ToInput()
		if err != nil {
			return nil, err
		}
		if product, err = s.products.CreateProduct(input); err != nil {
			return nil, err
		}
		msg = MsgProductAdded
	} else {
		patch, err := form.ToPatch()
		if err != nil {
			return nil, err
		}
		if product, err = s.products.UpdateProduct(id, patch); err != nil {
			return nil, err
		}
		msg = MsgProductUpdated
	}

	s.mu.Lock()
	if id == "" || id == s.editingID {
		s.formOpen = false
		s.editingID = ""
	}
	s.clampPage()
	s.mu.Unlock()

	s.toast.Show(msg)
	return product, nil
}

// RequestDelete asks for confirmation before product id is removed.
func (s *CatalogSession) RequestDelete(id string) error {
	product, err := s.products.GetProductByID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.deletes.Request(*product)
	s.logger.Debug().Str("productId", id).Msg("delete awaiting confirmation")
	return nil
}

// ConfirmDelete removes the pending product and shows a toast. If that
// empties the current page, the last remaining page is shown instead.
func (s *CatalogSession) ConfirmDelete() (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.deletes.Pending()
	if !ok {
		return models.Product{}, ErrNothingPending
	}
	if err := s.products.DeleteProduct(product.ID); err != nil {
		return models.Product{}, err
	}
	s.deletes.Confirm()
	if s.editingID == product.ID {
		s.formOpen = false
		s.editingID = ""
	}
	s.clampPage()

	s.toast.Show(MsgProductDeleted)
	return product, nil
}

// CancelDelete abandons the pending delete.
func (s *CatalogSession) CancelDelete() error {
	if !s.deletes.Cancel() {
		return ErrNothingPending
	}
	return nil
}

// DismissToast hides the toast before it expires.
func (s *CatalogSession) DismissToast() {
	s.toast.Hide()
}

// Close stops pending timers.
func (s *CatalogSession) Close() {
	s.search.Stop()
	s.toast.Stop()
}

// totalPages must be called with s.mu held.
// clampPage moves past-the-end pages back to the last page. Callers hold s.mu.
func (s *CatalogSession) clampPage() {
	if total, err := s.totalPages(); err == nil && s.page > total {
		s.page = total
	}
}

func (s *CatalogSession) totalPages() (int, error) {
	page, err := s.products.ListProducts(s.criteria, 1, s.pageSize)
	if err != nil {
		return 0, err
	}
	return page.TotalPages, nil
}
