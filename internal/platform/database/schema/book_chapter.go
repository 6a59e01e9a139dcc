// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// BookChapterTable represents the 'book_chapter' table
type BookChapterTable struct {
	Table       string
	ID          string
	BookID      string
	ChapterNum  string
	ChapterName string
	WordCount   string
	IsVip       string
	CreateTime  string
	UpdateTime  string
}

// BookChapter is the schema definition for book_chapter
var BookChapter = BookChapterTable{
	Table:       "book_chapter",
	ID:          "id",
	BookID:      "book_id",
	ChapterNum:  "chapter_num",
	ChapterName: "chapter_name",
	WordCount:   "word_count",
	IsVip:       "is_vip",
	CreateTime:  "create_time",
	UpdateTime:  "update_time",
}

// Columns lists every column in table order.
func (t BookChapterTable) Columns() []string {
	return []string{
		t.ID, t.BookID, t.ChapterNum, t.ChapterName, t.WordCount, t.IsVip, t.CreateTime,
		t.UpdateTime,
	}
}
