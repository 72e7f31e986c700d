package transaction

import (
	"fmt"
)

// HandleError wraps a failure from inside a transaction with the transaction
// name and the step that failed, keeping the original error in the chain for
// errors.Is dispatch at the boundary.
func HandleError(operation, step string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("transaction %s: %s: %w", operation, step, err)
}
