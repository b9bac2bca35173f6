package panel

import (
	"context"
	"log/slog"
	"sync"

	"github.com/iyhunko/treko-inventory/internal/store"
)

// ProductStore is the remote catalog.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]store.Product, error)
	CreateProduct(ctx context.Context, in store.ProductInput) (store.Product, error)
	UpdateProduct(ctx context.Context, id int64, in store.ProductInput) (store.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// Manager composes the Catalog and the Editor so they share the product
// list and a single error message.
//
// The mutex guards local state only and is never held across a store
// call, so overlapping calls race and the last response to land wins.
type Manager struct {
	store ProductStore

	mu      sync.Mutex
	catalog Catalog
	editor  Editor
	err     string
}

func NewManager(s ProductStore) *Manager {
	return &Manager{store: s}
}

// View is a consistent snapshot for rendering.
type View struct {
	Products      []store.Product
	Total         int
	SearchTerm    string
	LoadState     LoadState
	Err           string
	Heading       string
	EmptyText     string
	Mode          Mode
	Draft         Draft
	FormTitle     string
	SubmitLabel   string
	CanCancel     bool
	ScrollSignal  uint64
	PendingDelete int64
	ConfirmDelete bool
}

func (m *Manager) Snapshot() View {
	m.mu.Lock()
	defer m.mu.Unlock()

	pending, confirm := m.catalog.PendingDelete()
	return View{
		Products:      m.catalog.Filtered(),
		Total:         len(m.catalog.products),
		SearchTerm:    m.catalog.SearchTerm(),
		LoadState:     m.catalog.load.State(),
		Err:           m.err,
		Heading:       m.catalog.Heading(),
		EmptyText:     m.catalog.EmptyText(),
		Mode:          m.editor.Mode(),
		Draft:         m.editor.Draft(),
		FormTitle:     m.editor.Title(),
		SubmitLabel:   m.editor.SubmitLabel(),
		CanCancel:     m.editor.CanCancel(),
		ScrollSignal:  m.editor.ScrollSignal(),
		PendingDelete: pending,
		ConfirmDelete: confirm,
	}
}

// Load fetches the catalog once. Later calls do nothing. A failure is
// final for the life of the Manager.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	if !m.catalog.load.Begin() {
		m.mu.Unlock()
		return nil
	}
	m.err = ""
	m.mu.Unlock()

	products, err := m.store.ListProducts(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		slog.Error("failed to load products", slog.Any("err", err))
		m.catalog.load.Finish(0, err)
		m.err = MsgLoadFailed
		return err
	}
	m.catalog.replaceAll(products)
	m.catalog.load.Finish(len(products), nil)
	slog.Debug("products loaded", slog.Int("count", len(products)))
	return nil
}

// Submit validates the draft and creates or updates depending on the mode
// at the time of the call.
func (m *Manager) Submit(ctx context.Context) error {
	m.mu.Lock()
	input, err := m.editor.Draft().Input()
	if err != nil {
		m.err = MsgInvalidProduct
		m.mu.Unlock()
		return err
	}
	m.err = ""
	mode := m.editor.Mode()
	m.mu.Unlock()

	switch mode := mode.(type) {
	case Editing:
		updated, err := m.store.UpdateProduct(ctx, mode.TargetID, input)

		m.mu.Lock()
		defer m.mu.Unlock()
		if err != nil {
			slog.Error("failed to update product", slog.Int64("product_id", mode.TargetID), slog.Any("err", err))
			m.err = store.Describe(err, MsgSaveFailed)
			return err
		}
		m.catalog.replace(mode.TargetID, updated)
		m.editor.clearIfEditing(mode.TargetID)
		return nil

	default:
		created, err := m.store.CreateProduct(ctx, input)

		m.mu.Lock()
		defer m.mu.Unlock()
		if err != nil {
			slog.Error("failed to create product", slog.Any("err", err))
			m.err = store.Describe(err, MsgSaveFailed)
			return err
		}
		m.catalog.prepend(created)
		if _, editing := m.editor.Target(); !editing {
			m.editor.CancelEdit()
		}
		return nil
	}
}

// RequestDelete starts the confirmation step for id.
func (m *Manager) RequestDelete(id int64) {
	m.mu.Lock()
	m.catalog.RequestDelete(id)
	m.mu.Unlock()
}

// CancelDelete declines the pending confirmation. No request is made.
func (m *Manager) CancelDelete() {
	m.mu.Lock()
	m.catalog.CancelDelete()
	m.mu.Unlock()
}

// ConfirmDelete deletes the product awaiting confirmation. On success the
// entry is removed and, if it was being edited, the edit session ends.
func (m *Manager) ConfirmDelete(ctx context.Context) error {
	m.mu.Lock()
	id, ok := m.catalog.takePendingDelete()
	m.mu.Unlock()
	if !ok {
		return ErrNoPendingDelete
	}

	err := m.store.DeleteProduct(ctx, id)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		slog.Error("failed to delete product", slog.Int64("product_id", id), slog.Any("err", err))
		m.err = store.Describe(err, MsgDeleteFailed)
		return err
	}
	m.catalog.remove(id)
	m.editor.clearIfEditing(id)
	return nil
}

func (m *Manager) StartEdit(p store.Product) {
	m.mu.Lock()
	m.editor.StartEdit(p)
	m.mu.Unlock()
}

func (m *Manager) CancelEdit() {
	m.mu.Lock()
	m.editor.CancelEdit()
	m.mu.Unlock()
}

func (m *Manager) SetName(v string) {
	m.mu.Lock()
	m.editor.SetName(v)
	m.mu.Unlock()
}

func (m *Manager) SetDescription(v string) {
	m.mu.Lock()
	m.editor.SetDescription(v)
	m.mu.Unlock()
}

func (m *Manager) SetPriceText(v string) {
	m.mu.Lock()
	m.editor.SetPriceText(v)
	m.mu.Unlock()
}

func (m *Manager) SetSearchTerm(term string) {
	m.mu.Lock()
	m.catalog.SetSearchTerm(term)
	m.mu.Unlock()
}

// Products returns the full local list.
func (m *Manager) Products() []store.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.catalog.Products()
}

// Filtered returns the list narrowed by the search term.
func (m *Manager) Filtered() []store.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.catalog.Filtered()
}

// Err is the message currently shown, or "".
func (m *Manager) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

func (m *Manager) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.editor.Mode()
}

func (m *Manager) Draft() Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.editor.Draft()
}

func (m *Manager) LoadState() LoadState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.catalog.load.State()
}
