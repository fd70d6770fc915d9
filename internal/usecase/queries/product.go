package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/pkg/config"
	"ecommerce-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProductNotFound = errs.New("product not found")

type ProductView struct {
	ID           uuid.UUID
	ProductCode  string
	Name         string
	Description  string
	PriceCents   int64
	ImageURL     string
	StockQty     int32
	SoldQty      int32
	CategoryID   uuid.UUID
	CategoryName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ProductFilter struct {
	SearchTerm    *string
	CategoryID    *uuid.UUID
	MinPriceCents *int64
	MaxPriceCents *int64
	SortBy        string
	SortDir       string
	Page          int
	PageSize      int
}

type ProductQueries interface {
	List(ctx context.Context, filter ProductFilter) (*Paginated[ProductView], error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type productQueriesImpl struct {
	pool *pgxpool.Pool
	cfg  config.CatalogConfig
}

func NewProductQueries(pool *pgxpool.Pool, cfg config.Config) ProductQueries {
	return &productQueriesImpl{pool: pool, cfg: cfg.Catalog}
}

var productSortColumns = map[string]string{
	"name":  "p.name",
	"price": "p.price_cents",
	"sold":  "p.sold_qty",
}

const productViewSelect = `
	SELECT p.id, p.product_code, p.name, p.description, p.price_cents, p.image_url,
	       p.stock_qty, p.sold_qty, p.category_id, c.name, p.created_at, p.updated_at
	FROM products p
	JOIN categories c ON c.id = p.category_id
	WHERE NOT p.is_deleted`

func (q *productQueriesImpl) List(ctx context.Context, filter ProductFilter) (*Paginated[ProductView], error) {
	where := strings.Builder{}
	args := []any{}

	appendCond := func(cond string, arg any) {
		args = append(args, arg)
		where.WriteString(fmt.Sprintf(" AND "+cond, len(args)))
	}

	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		appendCond("p.name ILIKE '%%' || $%d || '%%'", strings.TrimSpace(*filter.SearchTerm))
	}
	if filter.CategoryID != nil {
		appendCond("p.category_id = $%d", *filter.CategoryID)
	}
	if filter.MinPriceCents != nil {
		appendCond("p.price_cents >= $%d", *filter.MinPriceCents)
	}
	if filter.MaxPriceCents != nil {
		appendCond("p.price_cents <= $%d", *filter.MaxPriceCents)
	}

	var total int64
	countSQL := `SELECT count(*) FROM products p WHERE NOT p.is_deleted` + where.String()
	if err := q.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, infra.WrapRepoErr("failed to count products", err)
	}

	orderBy := " ORDER BY p.created_at DESC"
	if col, ok := productSortColumns[strings.ToLower(filter.SortBy)]; ok {
		dir := "ASC"
		if strings.EqualFold(filter.SortDir, "desc") {
			dir = "DESC"
		}
		orderBy = " ORDER BY " + col + " " + dir
	}

	page, pageSize := q.normalizePage(filter.Page, filter.PageSize)
	args = append(args, pageSize, (page-1)*pageSize)
	listSQL := fmt.Sprintf("%s%s%s LIMIT $%d OFFSET $%d",
		productViewSelect, where.String(), orderBy, len(args)-1, len(args))

	rows, err := q.pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	items := []ProductView{}
	for rows.Next() {
		var v ProductView
		if err := rows.Scan(
			&v.ID, &v.ProductCode, &v.Name, &v.Description, &v.PriceCents, &v.ImageURL,
			&v.StockQty, &v.SoldQty, &v.CategoryID, &v.CategoryName, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product view", err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product views", err)
	}

	return &Paginated[ProductView]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	}, nil
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	var v ProductView
	err := q.pool.QueryRow(ctx, productViewSelect+` AND p.id = $1`, id).Scan(
		&v.ID, &v.ProductCode, &v.Name, &v.Description, &v.PriceCents, &v.ImageURL,
		&v.StockQty, &v.SoldQty, &v.CategoryID, &v.CategoryName, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrProductNotFound
		}
		return nil, infra.WrapRepoErr("failed to get product view", err)
	}
	return &v, nil
}

func (q *productQueriesImpl) normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = q.cfg.DefaultPageSize
	}
	if pageSize > q.cfg.MaxPageSize {
		pageSize = q.cfg.MaxPageSize
	}
	return page, pageSize
}
