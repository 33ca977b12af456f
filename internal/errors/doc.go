// Package errors provides the structured error type used across charmaker.
//
// Every failure is reported with a Code so callers can tell a rejected input apart
// from a missing record or a refused ledger operation:
//   - CodeInvalidArgument: input outside a documented domain (ability score outside
//     [1,30], level outside [1,20], negative amounts, malformed numbers)
//   - CodeNotFound: unknown class, character, spell slot level or item
//   - CodeAlreadyExists: a second character with a name already in the store
//   - CodeStateConflict: a ledger invariant refuses the operation (no slots remaining,
//     nothing to recover, current hit points outside [0,max])
//   - CodePersistence: the backing store is unreadable, unwritable or malformed
//   - CodeUnavailable: the SRD reference API could not be reached
//
// None of these are fatal; an operation either completes or leaves state unchanged.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFoundf("character %q not found", name)
//	err := errors.StateConflictf("no %s level slots remaining", level)
//
// Adding metadata:
//
//	err := errors.NotFound("item not found").
//	    WithMeta("character", name).
//	    WithMeta("item", item)
//
// Wrapping errors:
//
//	if err := os.WriteFile(path, data, 0o600); err != nil {
//	    return errors.WrapWithCode(err, errors.CodePersistence, "failed to write characters")
//	}
//
// # Error Checking
//
//	if errors.IsStateConflict(err) {
//	    // report the refusal, state is unchanged
//	}
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	os.Exit(code.ExitCode())
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", input.Level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
