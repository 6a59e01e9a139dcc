// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// BookInfoTable represents the 'book_info' table
type BookInfoTable struct {
	Table                 string
	ID                    string
	WorkDirection         string
	CategoryID            string
	CategoryName          string
	PicURL                string
	BookName              string
	AuthorID              string
	AuthorName            string
	BookDesc              string
	Score                 string
	BookStatus            string
	VisitCount            string
	WordCount             string
	CommentCount          string
	LastChapterID         string
	LastChapterName       string
	LastChapterUpdateTime string
	IsVip                 string
	CreateTime            string
	UpdateTime            string
}

// BookInfo is the schema definition for book_info
var BookInfo = BookInfoTable{
	Table:                 "book_info",
	ID:                    "id",
	WorkDirection:         "work_direction",
	CategoryID:            "category_id",
	CategoryName:          "category_name",
	PicURL:                "pic_url",
	BookName:              "book_name",
	AuthorID:              "author_id",
	AuthorName:            "author_name",
	BookDesc:              "book_desc",
	Score:                 "score",
	BookStatus:            "book_status",
	VisitCount:            "visit_count",
	WordCount:             "word_count",
	CommentCount:          "comment_count",
	LastChapterID:         "last_chapter_id",
	LastChapterName:       "last_chapter_name",
	LastChapterUpdateTime: "last_chapter_update_time",
	IsVip:                 "is_vip",
	CreateTime:            "create_time",
	UpdateTime:            "update_time",
}

// Columns lists every column in table order.
func (t BookInfoTable) Columns() []string {
	return []string{
		t.ID, t.WorkDirection, t.CategoryID, t.CategoryName, t.PicURL, t.BookName, t.AuthorID,
		t.AuthorName, t.BookDesc, t.Score, t.BookStatus, t.VisitCount, t.WordCount,
		t.CommentCount, t.LastChapterID, t.LastChapterName, t.LastChapterUpdateTime, t.IsVip,
		t.CreateTime, t.UpdateTime,
	}
}
