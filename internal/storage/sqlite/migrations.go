package sqlite

import "database/sql"

// schema sets up the database tables.
// It runs on startup to ensure tables exist.
// Insertion order is recovered through the implicit rowid, which only grows
// because rows are never deleted.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    name TEXT PRIMARY KEY,
    age INTEGER NOT NULL,
    weight REAL NOT NULL,
    height REAL NOT NULL,
    gender TEXT NOT NULL,
    goal TEXT,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS meals (
    id TEXT PRIMARY KEY,
    user_name TEXT NOT NULL,
    meal_type TEXT NOT NULL,
    logged_at INTEGER NOT NULL,
    source TEXT NOT NULL,
    FOREIGN KEY (user_name) REFERENCES users(name)
);

CREATE TABLE IF NOT EXISTS meal_items (
    meal_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    food_name TEXT NOT NULL,
    PRIMARY KEY (meal_id, position),
    FOREIGN KEY (meal_id) REFERENCES meals(id)
);

CREATE INDEX IF NOT EXISTS idx_meals_user_name ON meals(user_name);
CREATE INDEX IF NOT EXISTS idx_meal_items_meal_id ON meal_items(meal_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
