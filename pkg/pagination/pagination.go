// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// Requests carry a 1-indexed page number and a page size; responses carry the
// page slice together with the total of the filtered set as [Page].
package pagination

import (
	"net/http"

	"github.com/taibuivan/inkwell/pkg/convert"
)

const (
	// DefaultPageSize is the number of items per page if not specified.
	DefaultPageSize = 10
	// MaxPageSize is the upper bound for items per page.
	MaxPageSize = 100
	// DefaultPageNum is the starting page (1-indexed).
	DefaultPageNum = 1
)

// Params holds a parsed page request.
type Params struct {
	PageNum  int `json:"pageNum"`
	PageSize int `json:"pageSize"`
}

// New returns clamped params: non-positive values fall back to the defaults
// and sizes above [MaxPageSize] are capped.
func New(pageNum, pageSize int) Params {
	if pageNum < 1 {
		pageNum = DefaultPageNum
	}

	switch {
	case pageSize < 1:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}

	return Params{PageNum: pageNum, PageSize: pageSize}
}

// Offset returns the SQL OFFSET value derived from PageNum and PageSize.
func (p Params) Offset() int {
	if p.PageNum <= 1 {
		return 0
	}
	return (p.PageNum - 1) * p.PageSize
}

// Limit returns the SQL LIMIT value.
func (p Params) Limit() int {
	return p.PageSize
}

// Page is the list envelope returned by every paginated endpoint.
type Page[T any] struct {
	List     []T   `json:"list"`
	Total    int64 `json:"total"`
	PageNum  int   `json:"pageNum"`
	PageSize int   `json:"pageSize"`
}

// NewPage builds the envelope. A nil list is sent as [] rather than null.
func NewPage[T any](list []T, total int64, params Params) Page[T] {
	if list == nil {
		list = []T{}
	}

	return Page[T]{
		List:     list,
		Total:    total,
		PageNum:  params.PageNum,
		PageSize: params.PageSize,
	}
}

// FromRequest parses "page" (or "pageNum") and "pageSize" from the query string.
//
// # Clamping
//
// Invalid, negative or excessive values are clamped the same way as [New].
func FromRequest(r *http.Request) Params {
	query := r.URL.Query()

	rawPage := query.Get("page")
	if rawPage == "" {
		rawPage = query.Get("pageNum")
	}

	return New(convert.ToIntD(rawPage, 0), convert.ToIntD(query.Get("pageSize"), 0))
}
