package repository

import "gorm.io/gorm"

// applyPagination applies page parameters, normalizing invalid page
// numbers and offsets. A zero page size disables pagination.
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return query.Limit(pageSize).Offset(offset)
}
