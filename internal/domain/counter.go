package domain

// Counter is a named monotonic sequence. Rows are created on first increment
// and are never decremented or reset.
type Counter struct {
	Name  string `gorm:"primaryKey;size:64"`
	Value int64  `gorm:"not null"`
}
