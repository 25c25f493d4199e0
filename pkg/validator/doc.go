// Package validator implements a date range validation rule for form and data
// validation frameworks.
//
// The rule accepts heterogeneous input (date strings, Unix timestamps,
// time.Time values and structured parts records), reduces it to an absolute
// instant and checks it against a configured [min, max] range. Bounds may be
// absolute ("2012-09-01") or relative ("-1 year", "+1 year") and are resolved
// on every call against the validator's clock.
//
// # Architecture
//
// Two pieces collaborate:
//
//   - DateRange – the immutable constraint: bound expressions, messages,
//     output format or locale styles, timezone and default parts.
//   - DateRangeValidator – a stateless engine holding only the clock, the
//     default location and a logger. Validate classifies the value, resolves
//     the bounds and reports at most one Violation to a Reporter.
//
// Violations carry the untranslated message template and the formatted
// {{ value }}, {{ min }} and {{ max }} placeholders; interpolation and
// translation are left to the host.
//
// # Usage
//
//	rng, err := validator.NewDateRange(
//	    validator.WithMin("-1 year"),
//	    validator.WithMax("+1 year"),
//	    validator.WithTimezone("Europe/London"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	err = validator.Apply(
//	    validator.DateInRange("starts_at", form.StartsAt, rng),
//	    validator.DateInRange("ends_at", form.EndsAt, rng),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // field-level messages with translation keys and values
//	}
//
// Hosts with their own violation sink call Validate directly with a Reporter.
//
// # Error Handling
//
// Three outcomes stay distinct:
//
//   - a failed check is reported as a Violation (ValidationErrors via Apply);
//   - an unsupported value shape returns *UnexpectedTypeError (ErrUnexpectedType);
//   - an unresolvable min or max expression returns ErrInvalidBound.
//
// A date string that cannot be parsed is a regular violation using the
// invalid message, not an error.
//
// Resolved bounds at or before the Unix epoch are treated as absent. The
// default minimum therefore never rejects a value on its own.
package validator
