package models

type TicketModel struct {
	ID              uint   `gorm:"primaryKey"`
	SID             string `gorm:"uniqueIndex;size:50;not null"`
	Title           string `gorm:"size:200;not null"`
	Description     string `gorm:"type:text;not null"`
	Type            string `gorm:"size:50;not null;index"`
	Priority        string `gorm:"size:20;not null;index"`
	Status          string `gorm:"size:20;not null;index"`
	ReportedAt      int64  `gorm:"not null;index"`
	CreatorSID      string `gorm:"size:50;not null;index"`
	CreatorUsername string `gorm:"size:64;not null"`
	CreatorRole     string `gorm:"size:20;not null"`
	ImageData       string `gorm:"type:mediumtext"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type HistoryEntryModel struct {
	ID             uint   `gorm:"primaryKey"`
	SID            string `gorm:"uniqueIndex;size:50;not null"`
	TicketID       uint   `gorm:"not null;index"`
	OccurredAt     int64  `gorm:"not null;index"`
	Description    string `gorm:"type:text;not null"`
	AuthorSID      string `gorm:"size:50;not null;index"`
	AuthorUsername string `gorm:"size:64;not null"`
	AuthorRole     string `gorm:"size:20;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (HistoryEntryModel) TableName() string {
	return "ticket_history"
}
