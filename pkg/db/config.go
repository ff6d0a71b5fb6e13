package db

// DefaultPort is the standard MySQL port, used when Config.Port is empty.
const DefaultPort = "3306"

type Config struct {
	Type            string
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxIdleConn     int
	MaxOpenConn     int
	ConnMaxLifetime int
	ConnMaxIdleTime int

	// Echo logs every statement at info level.
	Echo bool
	// KeepalivePing verifies the pooled connection before handing out a
	// session. Needed for long-lived processes where idle connections may
	// be silently dropped by the network.
	KeepalivePing bool

	// Metrics registers the GORM prometheus plugin on newly opened pools.
	Metrics bool
}

func (c Config) port() string {
	if c.Port == "" {
		return DefaultPort
	}
	return c.Port
}
