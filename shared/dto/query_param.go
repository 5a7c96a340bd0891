package dto

import (
	"net/http"
	"organise/shared/constant"
	"organise/shared/failure"
	"slices"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request.
// With `defaultRequest` set to true, Page and Limit fall back to their defaults when absent.
// List endpoints call it with false so that, without page or limit, every record is returned.
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, false)
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := queryParams.Get(constant.RequestParamSortDir); strings.ToUpper(sortDir) == SortDirAsc || strings.ToUpper(sortDir) == SortDirDesc {
		q.SortDir = strings.ToUpper(sortDir)
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// AllowSort rejects a sort_by outside fields. An empty sort_by is always allowed.
func (q *QueryParams) AllowSort(fields ...string) error {
	if q.SortBy == "" || slices.Contains(fields, q.SortBy) {
		return nil
	}

	msg := "sort_by must be one of " + strings.Join(fields, " ")

	return failure.Validation(msg, map[string]string{constant.RequestParamSortBy: msg}) //nolint:wrapcheck
}

// Skip returns the number of documents before the requested page.
func (q *QueryParams) Skip() int64 {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	return int64((q.Page - 1) * q.Limit)
}

// SortOrder returns 1 for ascending and -1 for descending.
func (q *QueryParams) SortOrder() int {
	if q.SortDir == SortDirDesc {
		return -1
	}

	return 1
}

// CacheKey is a stable representation used as part of list cache keys.
func (q *QueryParams) CacheKey() string {
	return strings.Join([]string{
		strconv.Itoa(q.Page), strconv.Itoa(q.Limit), q.SortBy, q.SortDir,
	}, ":")
}
