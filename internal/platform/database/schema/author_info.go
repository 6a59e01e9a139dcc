// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// AuthorInfoTable represents the 'author_info' table
type AuthorInfoTable struct {
	Table         string
	ID            string
	UserID        string
	PenName       string
	TelPhone      string
	ChatAccount   string
	Email         string
	WorkDirection string
	Status        string
	CreateTime    string
	UpdateTime    string
}

// AuthorInfo is the schema definition for author_info
var AuthorInfo = AuthorInfoTable{
	Table:         "author_info",
	ID:            "id",
	UserID:        "user_id",
	PenName:       "pen_name",
	TelPhone:      "tel_phone",
	ChatAccount:   "chat_account",
	Email:         "email",
	WorkDirection: "work_direction",
	Status:        "status",
	CreateTime:    "create_time",
	UpdateTime:    "update_time",
}

// Columns lists every column in table order.
func (t AuthorInfoTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.PenName, t.TelPhone, t.ChatAccount, t.Email, t.WorkDirection, t.Status,
		t.CreateTime, t.UpdateTime,
	}
}
