package model

import "time"

// Category is an entry in the category catalog that resolved mappings are
// labeled with.
type Category struct {
	CreatedAt time.Time
	Name      string
	ID        int64
}
