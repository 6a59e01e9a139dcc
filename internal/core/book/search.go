// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"fmt"
	"strings"

	"github.com/taibuivan/inkwell/internal/platform/database/schema"
	"github.com/taibuivan/inkwell/pkg/pagination"
	"github.com/taibuivan/inkwell/pkg/textutil"
)

// SearchQuery is a parameterized catalogue search: one statement for the page
// and one for the size of the whole filtered set.
type SearchQuery struct {
	ListSQL   string
	ListArgs  []any
	CountSQL  string
	CountArgs []any

	// Predicates is the number of filter predicates in the shared WHERE clause.
	Predicates int
}

var sortColumns = map[string]string{
	SortCreateTime: schema.BookInfo.CreateTime,
	SortVisitCount: schema.BookInfo.VisitCount,
	SortUpdateTime: schema.BookInfo.UpdateTime,
	SortWordCount:  schema.BookInfo.WordCount,
}

/*
BuildSearch turns a filter and a page into SQL.

Description: Every present filter field contributes exactly one predicate with
one placeholder; absent fields contribute nothing. The count statement reuses
the very same WHERE clause and arguments, so both statements always agree on
the matched set. Rows are ordered by the sort key descending and then by id
descending, which makes consecutive pages disjoint and gap-free.

Parameters:
  - filter: Filter (already validated)
  - page: pagination.Params

Returns:
  - SearchQuery: SQL text and arguments for both statements
*/
func BuildSearch(filter Filter, page pagination.Params) SearchQuery {
	table := schema.BookInfo

	var predicates []string
	var args []any
	argID := 1

	add := func(format string, value any) {
		predicates = append(predicates, fmt.Sprintf(format, argID))
		args = append(args, value)
		argID++
	}

	if filter.WorkDirection != nil {
		add(table.WorkDirection+" = $%d", *filter.WorkDirection)
	}
	if filter.CategoryID != nil {
		add(table.CategoryID+" = $%d", *filter.CategoryID)
	}
	if filter.BookStatus != nil {
		add(table.BookStatus+" = $%d", *filter.BookStatus)
	}
	if filter.WordCountMin != nil {
		add(table.WordCount+" >= $%d", *filter.WordCountMin)
	}
	if filter.WordCountMax != nil {
		add(table.WordCount+" <= $%d", *filter.WordCountMax)
	}
	if filter.UpdatedSince != nil {
		add(table.UpdateTime+" >= $%d", *filter.UpdatedSince)
	}
	if keyword := textutil.NormalizeKeyword(filter.Keyword); keyword != "" {
		// One predicate, one placeholder referenced twice.
		add("("+table.BookName+` ILIKE $%[1]d ESCAPE '\' OR `+table.AuthorName+` ILIKE $%[1]d ESCAPE '\')`,
			"%"+textutil.EscapeLike(keyword)+"%")
	}

	var where strings.Builder
	for i, predicate := range predicates {
		if i == 0 {
			where.WriteString(" WHERE ")
		} else {
			where.WriteString(" AND ")
		}
		where.WriteString(predicate)
	}

	sortColumn, ok := sortColumns[filter.Sort]
	if !ok {
		sortColumn = table.CreateTime
	}

	var list strings.Builder
	list.WriteString("SELECT ")
	list.WriteString(bookColumns(""))
	list.WriteString(" FROM ")
	list.WriteString(table.Table)
	list.WriteString(where.String())
	list.WriteString(fmt.Sprintf(" ORDER BY %s DESC, %s DESC", sortColumn, table.ID))
	list.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))

	listArgs := make([]any, 0, len(args)+2)
	listArgs = append(listArgs, args...)
	listArgs = append(listArgs, page.Limit(), page.Offset())

	return SearchQuery{
		ListSQL:    list.String(),
		ListArgs:   listArgs,
		CountSQL:   "SELECT COUNT(*) FROM " + table.Table + where.String(),
		CountArgs:  args,
		Predicates: len(predicates),
	}
}

// bookColumns lists every selected book column, optionally qualified by alias.
// The order matches [scanBook].
func bookColumns(alias string) string {
	table := schema.BookInfo
	columns := []string{
		table.ID, table.WorkDirection, table.CategoryID, table.CategoryName, table.PicURL,
		table.BookName, table.AuthorID, table.AuthorName, table.BookDesc, table.Score,
		table.BookStatus, table.VisitCount, table.WordCount, table.CommentCount,
		table.LastChapterID, table.LastChapterName, table.LastChapterUpdateTime,
		table.IsVip, table.CreateTime, table.UpdateTime,
	}

	if alias != "" {
		for i, column := range columns {
			columns[i] = alias + "." + column
		}
	}
	return strings.Join(columns, ", ")
}
