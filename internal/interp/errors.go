package interp

import "fmt"

// InputError reports a read statement that found no integer-shaped
// token left in the input-data stream for the named identifier.
type InputError struct {
	Name string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input data has no value to read for identifier %s", e.Name)
}
