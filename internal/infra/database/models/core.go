package models

import (
	"time"
)

type Identity struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"type:text;uniqueIndex;not null"`
	Name     string `json:"name" gorm:"type:text;not null"`
	Surname  string `json:"surname" gorm:"type:text;not null"`
	Password string `json:"-" gorm:"type:text;not null"`
	Position string `json:"position" gorm:"type:text;not null"`
}

type MaterialOperation struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	IdentityID uint      `json:"identityID" gorm:"index;not null"`
	Identity   Identity  `json:"-" gorm:"constraint:OnDelete:RESTRICT;"`
	Username   string    `json:"username" gorm:"type:text;not null"`
	Position   string    `json:"position" gorm:"type:text;not null"`
	Subject    string    `json:"subject" gorm:"type:text;not null"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	Sender     string    `json:"sender" gorm:"type:text;not null"`
	Receiver   string    `json:"receiver" gorm:"type:text;not null"`
	Action     string    `json:"action" gorm:"type:text;not null"`
	Timestamp  time.Time `json:"timestamp" gorm:"->;<-:create;type:timestamp with time zone;not null"`
}
