package catalog

import "fmt"

func expect[T comparable](expr string, got, want T) error {
	if got != want {
		return fmt.Errorf("%s = %v, want %v", expr, got, want)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
