package users

// AdminUserList is a filtered page of users with the unfiltered total
type AdminUserList struct {
	Users []User `json:"users"`
	Shown int    `json:"shown"`
	Total int64  `json:"total"`
}
