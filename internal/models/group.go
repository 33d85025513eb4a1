package models

// Group represents a set of people who share expenses.
// Membership is a many-to-many relation kept in the store; only the current
// state is tracked, there is no historical versioning.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Ski Trip").
	Name string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// Member represents a person who can belong to any number of groups.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string

	// Name is the display name of the member.
	Name string

	// CreatedAt is the Unix timestamp when the member was created.
	CreatedAt int64
}
