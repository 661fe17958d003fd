package domain

import "time"

// User is the minimal identity row checkout needs: listings reference their
// seller through UserID. Registration and profiles live in the auth service.
type User struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null;type:varchar(100)"`
	Email     string    `json:"email" gorm:"not null;type:varchar(100);unique"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
