package product

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidProductCode = errors.New("invalid product code format")
	ErrEmptyName          = errors.New("product name cannot be empty")
	ErrEmptyDescription   = errors.New("product description cannot be empty")
	ErrNonPositivePrice   = errors.New("product price must be greater than zero")
	ErrNegativeStock      = errors.New("product stock quantity cannot be negative")
	ErrNegativeQuantity   = errors.New("quantity must be greater than zero")
	ErrOutOfStock         = errors.New("product is out of stock")
	ErrInsufficientStock  = errors.New("insufficient stock for requested quantity")
)

var productCodeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{2,32}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(code)
	if !productCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidProductCode
	}
	return Code(strings.ToUpper(code)), nil
}

func (c Code) String() string {
	return string(c)
}

type Product struct {
	id          uuid.UUID
	code        Code
	name        string
	description string
	priceCents  int64
	imageURL    string
	stockQty    int32
	soldQty     int32
	categoryID  uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(code Code, name, description string, priceCents int64, imageURL string, stockQty int32, categoryID uuid.UUID) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}
	if priceCents <= 0 {
		return nil, ErrNonPositivePrice
	}
	if stockQty < 0 {
		return nil, ErrNegativeStock
	}

	return &Product{
		id:          uuid.New(),
		code:        code,
		name:        name,
		description: strings.TrimSpace(description),
		priceCents:  priceCents,
		imageURL:    imageURL,
		stockQty:    stockQty,
		categoryID:  categoryID,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	code Code,
	name, description string,
	priceCents int64,
	imageURL string,
	stockQty, soldQty int32,
	categoryID uuid.UUID,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:          id,
		code:        code,
		name:        name,
		description: description,
		priceCents:  priceCents,
		imageURL:    imageURL,
		stockQty:    stockQty,
		soldQty:     soldQty,
		categoryID:  categoryID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Product) ID() uuid.UUID         { return p.id }
func (p *Product) Code() Code            { return p.code }
func (p *Product) Name() string          { return p.name }
func (p *Product) Description() string   { return p.description }
func (p *Product) PriceCents() int64     { return p.priceCents }
func (p *Product) ImageURL() string      { return p.imageURL }
func (p *Product) StockQty() int32       { return p.stockQty }
func (p *Product) SoldQty() int32        { return p.soldQty }
func (p *Product) CategoryID() uuid.UUID { return p.categoryID }
func (p *Product) CreatedAt() time.Time  { return p.createdAt }
func (p *Product) UpdatedAt() time.Time  { return p.updatedAt }

// UpdateDetails replaces every editable field at once, running the same
// validation as NewProduct. Sold counters are untouched.
func (p *Product) UpdateDetails(code Code, name, description string, priceCents int64, imageURL string, stockQty int32, categoryID uuid.UUID) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	if priceCents <= 0 {
		return ErrNonPositivePrice
	}
	if stockQty < 0 {
		return ErrNegativeStock
	}

	p.code = code
	p.name = name
	p.description = description
	p.priceCents = priceCents
	p.imageURL = imageURL
	p.stockQty = stockQty
	p.categoryID = categoryID
	return nil
}

// Sell moves qty units from stock to sold. Stock never goes below zero.
func (p *Product) Sell(qty int32) error {
	if qty <= 0 {
		return ErrNegativeQuantity
	}
	if p.stockQty <= 0 {
		return ErrOutOfStock
	}
	if qty > p.stockQty {
		return ErrInsufficientStock
	}
	p.stockQty -= qty
	p.soldQty += qty
	return nil
}

// Restock is the inverse of Sell, used when an order is cancelled.
func (p *Product) Restock(qty int32) error {
	if qty <= 0 {
		return ErrNegativeQuantity
	}
	p.stockQty += qty
	p.soldQty -= qty
	return nil
}
