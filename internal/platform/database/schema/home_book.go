// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// HomeBookTable represents the 'home_book' table
type HomeBookTable struct {
	Table      string
	ID         string
	Type       string
	Sort       string
	BookID     string
	CreateTime string
	UpdateTime string
}

// HomeBook is the schema definition for home_book
var HomeBook = HomeBookTable{
	Table:      "home_book",
	ID:         "id",
	Type:       "type",
	Sort:       "sort",
	BookID:     "book_id",
	CreateTime: "create_time",
	UpdateTime: "update_time",
}

// Columns lists every column in table order.
func (t HomeBookTable) Columns() []string {
	return []string{
		t.ID, t.Type, t.Sort, t.BookID, t.CreateTime, t.UpdateTime,
	}
}
