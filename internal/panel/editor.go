package panel

import (
	"math"
	"strconv"
	"strings"

	"github.com/iyhunko/treko-inventory/internal/store"
)

// Mode is either Creating or Editing.
type Mode interface {
	isMode()
}

// Creating means a submit creates a new product.
type Creating struct{}

// Editing means a submit updates the product with TargetID.
type Editing struct {
	TargetID int64
}

func (Creating) isMode() {}
func (Editing) isMode()  {}

// Draft holds the uncommitted form fields.
type Draft struct {
	Name        string
	Description string
	PriceText   string
}

// Price parses PriceText. Anything that is not a finite number is 0.
// A decimal comma is accepted.
func (d Draft) Price() float64 {
	text := strings.ReplaceAll(strings.TrimSpace(d.PriceText), ",", ".")
	price, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0
	}
	return price
}

// Input validates the draft and returns the request body to send.
func (d Draft) Input() (store.ProductInput, error) {
	name := strings.TrimSpace(d.Name)
	price := d.Price()
	if name == "" || price <= 0 {
		return store.ProductInput{}, validationError(MsgInvalidProduct)
	}
	return store.ProductInput{Name: name, Description: d.Description, Price: price}, nil
}

func draftOf(p store.Product) Draft {
	return Draft{
		Name:        p.Name,
		Description: p.Description,
		PriceText:   strconv.FormatFloat(p.Price, 'f', -1, 64),
	}
}

// Editor is the form state machine. The zero value is in Creating mode
// with an empty draft.
type Editor struct {
	mode   Mode
	draft  Draft
	scroll uint64
}

func (e *Editor) Mode() Mode {
	if e.mode == nil {
		return Creating{}
	}
	return e.mode
}

func (e *Editor) Draft() Draft {
	return e.draft
}

// Target returns the id being edited.
func (e *Editor) Target() (int64, bool) {
	editing, ok := e.Mode().(Editing)
	return editing.TargetID, ok
}

// ScrollSignal increases every time an edit starts so the view can jump
// back to the form.
func (e *Editor) ScrollSignal() uint64 {
	return e.scroll
}

// StartEdit loads p into the draft and switches to Editing.
func (e *Editor) StartEdit(p store.Product) {
	e.mode = Editing{TargetID: p.ID}
	e.draft = draftOf(p)
	e.scroll++
}

// CancelEdit returns to Creating with an empty draft.
func (e *Editor) CancelEdit() {
	e.mode = Creating{}
	e.draft = Draft{}
}

// clearIfEditing cancels the edit session when it targets id.
func (e *Editor) clearIfEditing(id int64) bool {
	if target, ok := e.Target(); ok && target == id {
		e.CancelEdit()
		return true
	}
	return false
}

func (e *Editor) SetName(v string)        { e.draft.Name = v }
func (e *Editor) SetDescription(v string) { e.draft.Description = v }
func (e *Editor) SetPriceText(v string)   { e.draft.PriceText = v }

func (e *Editor) Title() string {
	if _, ok := e.Target(); ok {
		return "Editar Produto"
	}
	return "Cadastrar Produto"
}

func (e *Editor) SubmitLabel() string {
	if _, ok := e.Target(); ok {
		return "Atualizar"
	}
	return "Cadastrar"
}

// CanCancel reports whether a cancel control should be offered.
func (e *Editor) CanCancel() bool {
	_, ok := e.Target()
	return ok
}
