// Package testdb provides helpers for tests that need a real PostgreSQL
// database.
//
// Tests are skipped unless DATABASE_URL (or TODO_TEST_DB_URL) is set.
// The schema is applied with goose from a migrations fs.FS passed in by
// the caller, and each test body runs in a transaction that is rolled
// back afterwards:
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.SetupTestDatabaseSchema(t, db, postgres.Migrations, postgres.MigrationsDir)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sqlx.Tx) {
//	        tasks := postgres.NewPostgresTaskStore(tx, nil)
//	        // ...
//	    })
//	}
package testdb
