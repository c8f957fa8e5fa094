package domain

// Department represents an organizational unit sellers belong to.
type Department struct {
	ID   int
	Name string
}
