package database_admin //nolint:revive,stylecheck

import (
	"app/base/utils"
	"database/sql"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // migrations are loaded from a local folder
	"github.com/lib/pq"
)

var (
	// Schema to migrate to (-1 means latest)
	schemaMigration = utils.PodConfig.GetInt("schema_migration", -1)
	// Put this version into schema_migrations table and clear the dirty flag
	forceMigrationVersion = utils.PodConfig.GetInt("force_migration_version", -1)
)

// NewConn opens a raw database/sql connection with server notices logged.
func NewConn(databaseURL string) (database.Driver, *sql.DB, error) {
	baseConn, err := pq.NewConnector(databaseURL)
	if err != nil {
		return nil, nil, err
	}

	loggingConn := pq.ConnectorWithNoticeHandler(baseConn, func(e *pq.Error) {
		utils.LogInfo("Notice: " + e.Error())
	})

	db := sql.OpenDB(loggingConn)
	if _, err = db.Exec("SET client_min_messages TO NOTICE"); err != nil {
		return nil, nil, err
	}
	var driver database.Driver
	if driver, err = postgres.WithInstance(db, &postgres.Config{}); err != nil {
		return nil, nil, err
	}
	return driver, db, nil
}

// MigrateUp brings the schema to the configured version, latest by default.
func MigrateUp(databaseURL, sourceURL string) {
	conn, db, err := NewConn(databaseURL)
	if err != nil {
		utils.LogError("err", err.Error(), "could not connect for migration")
		panic(err)
	}
	defer db.Close()

	m := createMigrate(conn, sourceURL)
	if forceMigrationVersion > 0 {
		// reset dirty flag and force set the current schema version
		err = m.Force(forceMigrationVersion)
	}

	if err == nil {
		if schemaMigration < 0 {
			err = m.Up()
		} else {
			err = m.Migrate(uint(schemaMigration)) //nolint:gosec
		}
	}

	if err == migrate.ErrNoChange {
		utils.LogInfo("no change")
		return
	}

	if err != nil {
		utils.LogError("err", err.Error(), "error upgrading the database")
		panic(err)
	}
	utils.LogInfo("database migrated")
}

type migrateLogger struct{}

func (t migrateLogger) Printf(format string, v ...interface{}) {
	utils.Log().Infof(format, v...)
}

func (t migrateLogger) Verbose() bool {
	return true
}

func createMigrate(conn database.Driver, sourceURL string) *migrate.Migrate {
	m, err := migrate.NewWithDatabaseInstance(sourceURL, utils.GetenvOrFail("DB_NAME"), conn)
	if err != nil {
		panic(err)
	}

	m.Log = migrateLogger{}
	return m
}
