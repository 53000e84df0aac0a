package errs

import "errors"

// Translate maps a structured failure to the exact user-visible strings
// enumerated in spec.md §6. Unsupported and UnexpectedDependency append
// the captured stack trace, matching spec.md §7's "additionally surface a
// stack trace to aid debugging."
func Translate(err error) string {
	if err == nil {
		return ""
	}

	var notFound *NotFound
	if errors.As(err, &notFound) {
		return "Not found!"
	}

	var invalidInput *InvalidInput
	if errors.As(err, &invalidInput) {
		return "Unrecognized input. Expected: fully qualified function name or [fully qualified class name]::[method_name]"
	}

	var depNotFound *DependencyNotFound
	if errors.As(err, &depNotFound) {
		return "Dependency not found: " + depNotFound.Description
	}

	var unsupported *Unsupported
	if errors.As(err, &unsupported) {
		return unsupported.Error() + "\n" + unsupported.Stack
	}

	var unexpected *UnexpectedDependency
	if errors.As(err, &unexpected) {
		return unexpected.Error() + "\n" + unexpected.Stack
	}

	return err.Error()
}
