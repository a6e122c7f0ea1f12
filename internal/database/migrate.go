package database

import "context"

// schema defines the catalog tables. The unique index on user.username is
// the constraint that surfaces duplicate usernames as ErrDuplicate; author
// names are unique by convention only and carry no index.
const schema = `
DEFINE TABLE IF NOT EXISTS author SCHEMAFULL;
DEFINE FIELD IF NOT EXISTS name ON author TYPE string;
DEFINE FIELD IF NOT EXISTS born ON author TYPE option<int>;

DEFINE TABLE IF NOT EXISTS book SCHEMAFULL;
DEFINE FIELD IF NOT EXISTS title ON book TYPE string;
DEFINE FIELD IF NOT EXISTS published ON book TYPE int;
DEFINE FIELD IF NOT EXISTS author ON book TYPE record<author>;
DEFINE FIELD IF NOT EXISTS genres ON book TYPE array<string>;

DEFINE TABLE IF NOT EXISTS user SCHEMAFULL;
DEFINE FIELD IF NOT EXISTS username ON user TYPE string ASSERT string::len($value) >= 5;
DEFINE FIELD IF NOT EXISTS favoriteGenre ON user TYPE string ASSERT string::len($value) >= 3;
DEFINE INDEX IF NOT EXISTS user_username ON user FIELDS username UNIQUE;
`

// Migrate applies the table and index definitions. All statements are
// idempotent, so this runs unconditionally at startup.
func Migrate(ctx context.Context, db Database) error {
	return db.Execute(ctx, schema, nil)
}
