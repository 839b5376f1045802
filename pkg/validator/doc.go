// Package validator provides rule-based input validation with per-field
// error reporting.
//
// Validation is expressed as a flat list of rules applied together, so a
// caller receives every failing field at once rather than the first failure:
//
//	err := validator.Apply(
//		validator.RequiredString("title", in.Title),
//		validator.MaxLenString("title", in.Title, 100),
//		validator.InList("type", in.Type, []string{"info", "error"}),
//	)
//	if err != nil {
//		for _, ve := range validator.ExtractValidationErrors(err) {
//			fmt.Println(ve.Field, ve.Message)
//		}
//	}
//
// ValidationErrors implements the error interface and is detectable through
// an error chain with IsValidationError / ExtractValidationErrors.
package validator
