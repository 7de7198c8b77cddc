package runtime

import "fmt"

// MethodNotFoundError is returned when a class has no method under Name.
type MethodNotFoundError struct {
	Name  string
	Class string
}

func (e MethodNotFoundError) Error() string {
	return fmt.Sprintf("method not found: %s for %s", e.Name, e.Class)
}
