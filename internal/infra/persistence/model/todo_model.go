package model

import "time"

// TodoModel mirrors the 'todo' table. Status values are stored upper-cased;
// a database check constraint keeps them inside the enumeration.
type TodoModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:varchar(255)"`
	Status      string `gorm:"type:varchar(20);not null;index;check:status IN ('NOTSTARTED','ONGOING','COMPLETED')"`
	UserID      int64  `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TodoModel) TableName() string {
	return "todo"
}
