package entity

// OrderSequence holds the last issued daily sequence number, one row per
// calendar day (yyyymmdd).
type OrderSequence struct {
	Day     string `gorm:"primaryKey"`
	LastSeq int
}
