// Package errors provides structured error handling for oc-api.
//
// Errors carry a Code, a user-facing message, optional metadata, and an
// optional wrapped cause. Codes map to HTTP statuses via Code.HTTPStatus,
// which the handler layer uses to build responses.
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.InvalidArgumentf("invalid stat value: %d", v)
//
// Adding metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("player_id", playerID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// Validation:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("strength", input.Stats.Strength, 1, 150, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Layer guidelines: repositories return NotFound/AlreadyExists/Internal with
// IDs in metadata; orchestrators return InvalidArgument for bad input and
// FailedPrecondition for unmet game-state requirements; handlers translate
// codes to HTTP statuses and surface the message.
package errors
