package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when registration hits the unique
	// constraint on username or email.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no user matches the lookup or the
	// user row disappeared before an update.
	ErrUserNotFound = errors.New("user was not found")

	// ErrIngredientNotFound is returned when no catalog ingredient matches
	// a name.
	ErrIngredientNotFound = errors.New("ingredient was not found")

	// ErrIngredientIsAmbiguous is returned when a name matches several
	// catalog ingredients and none of them exactly.
	ErrIngredientIsAmbiguous = errors.New("ingredient name is ambiguous")

	// ErrFridgeEntryNotFound is returned when a delete targets an
	// ingredient the user has not saved.
	ErrFridgeEntryNotFound = errors.New("fridge entry was not found")

	// ErrHealthLabelNotFound is returned when a restriction references an
	// unknown health label.
	ErrHealthLabelNotFound = errors.New("health label was not found")

	// ErrRecipeNotFound is returned when a favorite references an unknown
	// recipe.
	ErrRecipeNotFound = errors.New("recipe was not found")

	ErrPictureNotSaved = errors.New("profile picture was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
