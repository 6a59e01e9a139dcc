// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// BookContentTable represents the 'book_content' table
type BookContentTable struct {
	Table      string
	ID         string
	ChapterID  string
	Content    string
	CreateTime string
	UpdateTime string
}

// BookContent is the schema definition for book_content
var BookContent = BookContentTable{
	Table:      "book_content",
	ID:         "id",
	ChapterID:  "chapter_id",
	Content:    "content",
	CreateTime: "create_time",
	UpdateTime: "update_time",
}

// Columns lists every column in table order.
func (t BookContentTable) Columns() []string {
	return []string{
		t.ID, t.ChapterID, t.Content, t.CreateTime, t.UpdateTime,
	}
}
