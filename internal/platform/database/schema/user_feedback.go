// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// UserFeedbackTable represents the 'user_feedback' table
type UserFeedbackTable struct {
	Table      string
	ID         string
	UserID     string
	Content    string
	CreateTime string
	UpdateTime string
}

// UserFeedback is the schema definition for user_feedback
var UserFeedback = UserFeedbackTable{
	Table:      "user_feedback",
	ID:         "id",
	UserID:     "user_id",
	Content:    "content",
	CreateTime: "create_time",
	UpdateTime: "update_time",
}

// Columns lists every column in table order.
func (t UserFeedbackTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.Content, t.CreateTime, t.UpdateTime,
	}
}
