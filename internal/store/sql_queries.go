package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, username, email, password_hash, profile_picture, created_at;`

	findUserByUsername = `SELECT id, username, email, password_hash, profile_picture, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, username, email, password_hash, profile_picture, created_at
    FROM users
    WHERE id = $1;`

	updateProfilePicture = `UPDATE users
    SET profile_picture = $2
    WHERE id = $1;`

	searchIngredients = `SELECT name
    FROM ingredients
    WHERE name ILIKE $1 ESCAPE '\'
    ORDER BY name;`

	// exact case-insensitive matches sort first; two rows are enough to
	// tell a unique match from an ambiguous one
	resolveIngredient = `SELECT id, name, lower(name) = lower($2) AS exact
    FROM ingredients
    WHERE name ILIKE $1 ESCAPE '\'
    ORDER BY exact DESC, id
    LIMIT 2;`

	upsertFridgeItem = `INSERT INTO fridge_ingredients (user_id, ingredient_id, quantity)
    VALUES ($1, $2, $3)
    ON CONFLICT (user_id, ingredient_id)
    DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now();`

	listFridgeItems = `SELECT i.name, f.quantity
    FROM fridge_ingredients f
    JOIN ingredients i ON i.id = f.ingredient_id
    WHERE f.user_id = $1
    ORDER BY i.name;`

	deleteFridgeItem = `DELETE FROM fridge_ingredients
    WHERE user_id = $1 AND ingredient_id = $2;`

	deleteUserRestrictions = `DELETE FROM dietary_restrictions
    WHERE user_id = $1;`

	listUserLabels = `SELECT h.label
    FROM dietary_restrictions d
    JOIN health_labels h ON h.id = d.health_label_id
    WHERE d.user_id = $1
    ORDER BY h.label;`

	listAllLabels = `SELECT label
    FROM health_labels
    ORDER BY id;`

	addFavorite = `INSERT INTO favorite_recipes (user_id, recipe_id)
    VALUES ($1, $2)
    ON CONFLICT (user_id, recipe_id) DO NOTHING;`

	removeFavorite = `DELETE FROM favorite_recipes
    WHERE user_id = $1 AND recipe_id = $2;`

	isFavorited = `SELECT EXISTS (
        SELECT 1 FROM favorite_recipes WHERE user_id = $1 AND recipe_id = $2
    );`

	setRecipeImageByTitle = `UPDATE recipes
    SET image = $2
    WHERE title = $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildInsertRestrictionsQuery builds one multi-row INSERT for all labelIDs.
func buildInsertRestrictionsQuery(userID int64, labelIDs []int64) (string, []any, error) {
	insert := psql.Insert("dietary_restrictions").Columns("user_id", "health_label_id")
	for _, id := range labelIDs {
		insert = insert.Values(userID, id)
	}

	return insert.ToSql()
}

// buildFindLabelIDsQuery builds SELECT id ... WHERE label IN (...).
func buildFindLabelIDsQuery(labels []string) (string, []any, error) {
	return psql.Select("id").
		From("health_labels").
		Where(sq.Eq{"label": labels}).
		OrderBy("id").
		ToSql()
}

func buildListFavoritesQuery(userID int64) (string, []any, error) {
	return psql.Select("r.id", "r.title", "r.image").
		From("favorite_recipes f").
		Join("recipes r ON r.id = f.recipe_id").
		Where(sq.Eq{"f.user_id": userID}).
		OrderBy("f.created_at DESC", "r.id").
		ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns s into an ILIKE pattern matching any name that
// contains s literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
