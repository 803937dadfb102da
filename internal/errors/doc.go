// Package errors provides structured, actionable error messages for routewalk.
//
// The errors package implements the error system behind route resolution:
//   - Names the offending route file for every fatal error
//   - Explains what went wrong in plain language
//   - Suggests how to fix issues with code examples
//   - Links to documentation for deeper understanding
//
// # Error Categories
//
// Errors are organized into categories:
//   - scan: the route directory could not be read
//   - route: a route file is malformed (bad exports, bad parameter names)
//   - registry: the route table is ambiguous or misused
//   - config: the routewalk.yaml file is invalid
//
// # Error Codes
//
// Each error has a unique code (e.g., "R001") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A fix suggestion, often with a code example
//   - A documentation URL
//
// # Usage
//
//	err := errors.New(errors.CodeDuplicateRoute).
//	    WithFile("app/routes/users/[id].go").
//	    WithDetailf("pattern %q is already registered by %s", "/users/:id", other)
//
//	fmt.Println(err.Format())
//
// All fatal errors abort application boot: the engine offers no
// partial-success mode. Either the full route table is valid or startup
// fails with an error that pinpoints the offending file.
package errors
