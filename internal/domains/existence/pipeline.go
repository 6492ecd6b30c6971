package existence

import "context"

// Check is one precondition of a mutation
type Check func(ctx context.Context) error

// Run evaluates checks in order and returns the first failure.
// Later checks are not evaluated once one fails.
func Run(ctx context.Context, checks ...Check) error {
	for _, check := range checks {
		if check == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := check(ctx); err != nil {
			return err
		}
	}
	return nil
}
