package specification

import "gorm.io/gorm"

// Specification describes a composable query filter. The GORM repositories
// apply it directly; the in-memory repositories interpret the concrete types.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
