package kvmongo

import "time"

// Config represents the configuration for the MongoDB backend.
type Config struct {
	ConnectionURL   string        `env:"PREFS_MONGODB_URL,required"`                         // ConnectionURL is the URL of the database.
	Database        string        `env:"PREFS_MONGODB_DATABASE" envDefault:"prefs"`          // Database is the database holding the preferences collection.
	Collection      string        `env:"PREFS_MONGODB_COLLECTION" envDefault:"preferences"`  // Collection is the preferences collection name.
	ConnectTimeout  time.Duration `env:"PREFS_MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`     // ConnectTimeout is the timeout for connecting to the database.
	MaxPoolSize     uint64        `env:"PREFS_MONGODB_MAX_POOL_SIZE" envDefault:"100"`       // MaxPoolSize is the maximum number of pooled connections.
	MinPoolSize     uint64        `env:"PREFS_MONGODB_MIN_POOL_SIZE" envDefault:"1"`         // MinPoolSize is the minimum number of pooled connections.
	MaxConnIdleTime time.Duration `env:"PREFS_MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"` // MaxConnIdleTime is how long a pooled connection may remain idle.
	RetryWrites     bool          `env:"PREFS_MONGODB_RETRY_WRITES" envDefault:"true"`       // RetryWrites specifies whether to retry write operations.
	RetryReads      bool          `env:"PREFS_MONGODB_RETRY_READS" envDefault:"true"`        // RetryReads specifies whether to retry read operations.
	RetryAttempts   int           `env:"PREFS_MONGODB_RETRY_ATTEMPTS" envDefault:"3"`        // RetryAttempts is the number of retry attempts to connect to the database.
	RetryInterval   time.Duration `env:"PREFS_MONGODB_RETRY_INTERVAL" envDefault:"5s"`       // RetryInterval is the interval between retry attempts.
}
