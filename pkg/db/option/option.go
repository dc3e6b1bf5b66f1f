package option

import (
	"github.com/tallertech/tallertech/pkg/db/pagination"
	"gorm.io/gorm"
)

// Option mutates a gorm statement before execution.
type Option interface {
	Apply(*gorm.DB) *gorm.DB
}

type paginationOption struct {
	page pagination.Pagination
}

// ApplyPagination applies keyset pagination to a list query. One extra row is
// fetched so callers can derive has_more.
func ApplyPagination(page pagination.Pagination) Option {
	return paginationOption{page: page}
}

func (o paginationOption) Apply(stmt *gorm.DB) *gorm.DB {
	limit := o.page.PageSize
	if limit <= 0 {
		limit = 50
	}
	stmt = stmt.Limit(limit + 1)

	if o.page.PageToken == "" {
		return stmt
	}
	cursor, err := pagination.DecodeCursor(o.page.PageToken)
	if err != nil || cursor == nil {
		return stmt
	}
	if cursor.CreatedAt != "" && cursor.ID != "" {
		stmt = stmt.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}
	return stmt
}
