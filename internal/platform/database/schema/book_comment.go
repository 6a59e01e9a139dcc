// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// BookCommentTable represents the 'book_comment' table
type BookCommentTable struct {
	Table          string
	ID             string
	BookID         string
	UserID         string
	CommentContent string
	ReplyCount     string
	AuditStatus    string
	CreateTime     string
	UpdateTime     string
}

// BookComment is the schema definition for book_comment
var BookComment = BookCommentTable{
	Table:          "book_comment",
	ID:             "id",
	BookID:         "book_id",
	UserID:         "user_id",
	CommentContent: "comment_content",
	ReplyCount:     "reply_count",
	AuditStatus:    "audit_status",
	CreateTime:     "create_time",
	UpdateTime:     "update_time",
}

// Columns lists every column in table order.
func (t BookCommentTable) Columns() []string {
	return []string{
		t.ID, t.BookID, t.UserID, t.CommentContent, t.ReplyCount, t.AuditStatus, t.CreateTime,
		t.UpdateTime,
	}
}
