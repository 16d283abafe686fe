// Package validator provides the client-side precondition checks that run
// before any request is sent to the backend: email format validation, a
// password strength scorer for live feedback in sign-up forms, and a small
// composable Rule engine for validating whole forms at once.
//
// Rules are pure closures evaluated by Apply, which collects every failure
// into a ValidationErrors value. ValidationErrors implements error, so a
// failed validation can flow through normal error paths while remaining
// distinguishable from API or transport failures:
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.ValidEmail("email", email),
//	    validator.StrongPassword("password", password),
//	)
//	if validator.IsValidationError(err) {
//	    for _, msg := range validator.Extract(err).Get("password") {
//	        fmt.Println(msg)
//	    }
//	}
//
// The scorer and email checker are also exposed directly (CheckPassword,
// CheckEmail) for interactive feedback where a boolean verdict is not enough.
package validator
