package kvredis

import "time"

type Config struct {
	ConnectionURL  string        `env:"PREFS_REDIS_URL,required" envDefault:"redis://localhost:6379/0"` // ConnectionURL should be in the format "redis://:password@localhost:6379/0"
	RetryAttempts  int           `env:"PREFS_REDIS_RETRY_ATTEMPTS" envDefault:"3"`                      // RetryAttempts is the number of retry attempts to connect to the server.
	RetryInterval  time.Duration `env:"PREFS_REDIS_RETRY_INTERVAL" envDefault:"5s"`                     // RetryInterval is the interval between retry attempts.
	ConnectTimeout time.Duration `env:"PREFS_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`                   // ConnectTimeout is the timeout for connecting to the server.
	KeyPrefix      string        `env:"PREFS_REDIS_KEY_PREFIX" envDefault:"prefs:"`                     // KeyPrefix namespaces every stored key.
	ScanBatchSize  int           `env:"PREFS_REDIS_SCAN_BATCH_SIZE" envDefault:"1000"`                  // ScanBatchSize is the SCAN page size used by Keys.
}
