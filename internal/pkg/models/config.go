package models

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	NSQ          NSQConfig
	JWT          JWTConfig
	APIKey       APIKeyConfig
	Services     ServicesConfig
	Geocoder     GeocoderConfig
	Dispatch     DispatchConfig
	Notification NotificationConfig
	Logger       LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address        string
	LookupdAddress string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
	// InternalServiceToken bypasses JWT verification for service-to-service
	// calls and is treated as role=internal_service.
	InternalServiceToken string
}

// APIKeyConfig contains API keys for service-to-service authentication
type APIKeyConfig struct {
	DeliveryService     string
	LocationService     string
	NotificationService string
	GatewayService      string
}

// ServicesConfig contains base URLs for sibling services
type ServicesConfig struct {
	DeliveryServiceURL string
	LocationServiceURL string
	OrderServiceURL    string
	AuthServiceURL     string
}

// GeocoderConfig contains external geocoding provider configuration
type GeocoderConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
	PageSize       int
}

// DispatchConfig contains delivery dispatch configuration
type DispatchConfig struct {
	// SearchRadiusMeters bounds candidate lookups for auto-assignment.
	SearchRadiusMeters float64
	// MaxCandidates caps how many drivers are considered per assignment.
	MaxCandidates int
}

// NotificationConfig contains notification channel provider configuration
type NotificationConfig struct {
	EmailProviderURL string
	EmailAPIKey      string
	SMSProviderURL   string
	SMSAPIKey        string
	ChatWebhookURL   string
	TimeoutSeconds   int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
