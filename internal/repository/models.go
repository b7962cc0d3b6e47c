package repository

import "time"

// User is the persisted shape of a row in the users table.
type User struct {
	ID        int64  `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username  string `gorm:"column:username;type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
