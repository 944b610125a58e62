package model

import "time"

// Task is a single logged unit of work.
// DateWorked is an ISO calendar date ("2006-01-02").
type Task struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"size:200;not null" json:"name"`
	TimeSpent  float64    `gorm:"not null;default:0" json:"time_spent"`
	FocusLevel FocusLevel `gorm:"size:10;not null;default:medium" json:"focus_level"`
	DateWorked string     `gorm:"size:10;not null;index" json:"date_worked"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TableName pins the gorm table name.
func (Task) TableName() string { return "tasks" }
