package utils

import "strconv"

// ParsePageParams разбирает параметры page и limit с дефолтами и ограничениями
func ParsePageParams(pageStr, limitStr string) (page, limit, offset int) {
	page, _ = strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.Atoi(limitStr)
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	offset = (page - 1) * limit
	return page, limit, offset
}

// ParseLimitOffset разбирает параметры limit и offset для списков без страниц
func ParseLimitOffset(limitStr, offsetStr string) (limit, offset int) {
	limit, _ = strconv.Atoi(limitStr)
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	offset, _ = strconv.Atoi(offsetStr)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// TotalPages считает количество страниц для пагинации
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
