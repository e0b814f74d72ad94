package ports

// Confirmer asks the operator a yes/no question
type Confirmer interface {
	Confirm(title, description string) (bool, error)
}
