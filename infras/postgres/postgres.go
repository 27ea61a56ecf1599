package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"time"
	"todoapi/config"
	"todoapi/shared/constant"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection splits reads and writes so a replica can serve queries.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}
}

// Close releases both pools.
func (c *Connection) Close() {
	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connection")
		}
	}
}

// DriverName maps the configured driver onto a registered database/sql driver, defaulting to lib/pq.
func DriverName(config config.Config) string {
	if config.DB.Postgres.Driver == constant.DBDriverPgx {
		return constant.DBDriverPgx
	}

	return constant.DBDriverPostgres
}

func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	write := config.DB.Postgres.Write

	return createPostgresConnection(config, endpoint{
		name:     "write",
		username: write.Username,
		password: write.Password,
		host:     write.Host,
		port:     write.Port,
		dbName:   getDBName(config, write.Name),
		sslMode:  write.SSLMode,
	})
}

// CreatePostgresReadConn falls back to the write endpoint when no read host is configured.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	read := config.DB.Postgres.Read
	if read.Host == "" {
		read = config.DB.Postgres.Write
	}

	return createPostgresConnection(config, endpoint{
		name:     "read",
		username: read.Username,
		password: read.Password,
		host:     read.Host,
		port:     read.Port,
		dbName:   getDBName(config, read.Name),
		sslMode:  read.SSLMode,
	})
}

// DSN renders a postgres URL understood by both lib/pq and pgx.
func DSN(username, password, host, port, dbName, sslMode string) string {
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

func createPostgresConnection(config config.Config, target endpoint) *sqlx.DB {
	driver := DriverName(config)
	descriptor := DSN(target.username, target.password, target.host, target.port, target.dbName, target.sslMode)
	maxRetry := max(config.DB.Postgres.MaxRetry, 1)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect(driver, descriptor)
		if err == nil {
			log.
				Info().
				Str("name", target.name).
				Str("driver", driver).
				Str("host", target.host).
				Str("port", target.port).
				Str("dbName", target.dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", target.name).
			Str("host", target.host).
			Str("port", target.port).
			Str("dbName", target.dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second)
	}

	log.Fatal().Str("name", target.name).Msg("Could not connect to database")

	return nil
}
