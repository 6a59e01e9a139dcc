// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// UserInfoTable represents the 'user_info' table
type UserInfoTable struct {
	Table      string
	ID         string
	NickName   string
	UserPhoto  string
	CreateTime string
	UpdateTime string
}

// UserInfo is the schema definition for user_info
var UserInfo = UserInfoTable{
	Table:      "user_info",
	ID:         "id",
	NickName:   "nick_name",
	UserPhoto:  "user_photo",
	CreateTime: "create_time",
	UpdateTime: "update_time",
}

// Columns lists every column in table order.
func (t UserInfoTable) Columns() []string {
	return []string{
		t.ID, t.NickName, t.UserPhoto, t.CreateTime, t.UpdateTime,
	}
}
