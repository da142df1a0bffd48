package core

// IDGenerator produces unique identifiers for users and statements
type IDGenerator interface {
	NewID() string
}
