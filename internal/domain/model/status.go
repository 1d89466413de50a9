package model

// OrderStatus is a mutable reference-data row describing one order state.
// Orders point at a status by id; any status may follow any other, the
// Position field is UI sort order only.
type OrderStatus struct {
	ID           int64
	Code         string
	Name         string
	Color        string
	Position     int
	IsInitial    bool
	IsFinal      bool
	NotifyClient bool
	IsActive     bool
}
