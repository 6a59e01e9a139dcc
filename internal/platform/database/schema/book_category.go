// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// BookCategoryTable represents the 'book_category' table
type BookCategoryTable struct {
	Table         string
	ID            string
	WorkDirection string
	Name          string
	Sort          string
	CreateTime    string
	UpdateTime    string
}

// BookCategory is the schema definition for book_category
var BookCategory = BookCategoryTable{
	Table:         "book_category",
	ID:            "id",
	WorkDirection: "work_direction",
	Name:          "name",
	Sort:          "sort",
	CreateTime:    "create_time",
	UpdateTime:    "update_time",
}

// Columns lists every column in table order.
func (t BookCategoryTable) Columns() []string {
	return []string{
		t.ID, t.WorkDirection, t.Name, t.Sort, t.CreateTime, t.UpdateTime,
	}
}
