package models

// Admin is a reviewer account for the /admin surface. Credentials are
// stored hashed; there are no roles beyond "is an admin".
type Admin struct {
	ID       int
	Username string
}
