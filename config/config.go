package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	DefaultTimeZone     = "Asia/Colombo"
	DefaultBody         = "Prepare for Sunnah Salah"
	DefaultWorkers      = 1
	DefaultSendTimeout  = 10 * time.Second
	DefaultStoreTimeout = 5 * time.Second
	DefaultTickTimeout  = 50 * time.Second
	DefaultCronSpec     = "0 * * * * *"
	DefaultLockKey      = "athan:dispatch:tick-lock"
	DefaultLockTTL      = 55 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Dispatch configuration for the reminder tick pipeline
	Dispatch DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Scheduler configuration for the tick triggers
	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// Redis configuration for the cross-process tick lock (optional)
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for tick report publishing (optional)
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// DispatchConfig defines how each tick resolves time and delivers reminders
type DispatchConfig struct {
	// IANA zone of the congregation, never the host zone
	TimeZone string `json:"timeZone" yaml:"timeZone" validate:"required,timezone"`

	// Concurrent deliveries per tick; 1 keeps delivery sequential
	Workers int `json:"workers" yaml:"workers" validate:"min=1,max=64"`

	// Fixed notification body
	Body string `json:"body" yaml:"body" validate:"required"`

	SendTimeout  time.Duration `json:"sendTimeout" yaml:"sendTimeout" validate:"gt=0"`
	StoreTimeout time.Duration `json:"storeTimeout" yaml:"storeTimeout" validate:"gt=0"`
	TickTimeout  time.Duration `json:"tickTimeout" yaml:"tickTimeout" validate:"gt=0"`
}

// SchedulerConfig defines the external and in-process tick triggers
type SchedulerConfig struct {
	// Verify the OIDC token sent by Cloud Scheduler on POST /tick
	VerifyAuth bool `json:"verifyAuth" yaml:"verifyAuth"`

	// Expected token audience; defaults to the request URL when empty
	Audience string `json:"audience" yaml:"audience"`

	Cron struct {
		Enabled bool   `json:"enabled" yaml:"enabled"`
		Spec    string `json:"spec" yaml:"spec"`
	} `json:"cron" yaml:"cron"`
}

// RedisConfig defines the Redis connection used for the tick lock
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Username string        `json:"username" yaml:"username"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	LockKey  string        `json:"lockKey" yaml:"lockKey"`
	LockTTL  time.Duration `json:"lockTTL" yaml:"lockTTL"`
}

// PubSubConfig defines Pub/Sub configuration for tick report publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: DISPATCH_TIMEZONE -> dispatch.timeZone (not dispatch.timezone)
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills zero values the dispatch pipeline cannot run without.
func (cfg *Config) ApplyDefaults() {
	d := &cfg.Dispatch
	if strings.TrimSpace(d.TimeZone) == "" {
		d.TimeZone = DefaultTimeZone
	}
	if d.Workers == 0 {
		d.Workers = DefaultWorkers
	}
	if strings.TrimSpace(d.Body) == "" {
		d.Body = DefaultBody
	}
	if d.SendTimeout == 0 {
		d.SendTimeout = DefaultSendTimeout
	}
	if d.StoreTimeout == 0 {
		d.StoreTimeout = DefaultStoreTimeout
	}
	if d.TickTimeout == 0 {
		d.TickTimeout = DefaultTickTimeout
	}

	if strings.TrimSpace(cfg.Scheduler.Cron.Spec) == "" {
		cfg.Scheduler.Cron.Spec = DefaultCronSpec
	}

	if cfg.Redis != nil {
		if cfg.Redis.LockKey == "" {
			cfg.Redis.LockKey = DefaultLockKey
		}
		if cfg.Redis.LockTTL == 0 {
			cfg.Redis.LockTTL = DefaultLockTTL
		}
	}
}

// Validate checks the dispatch section against its struct tags.
func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg.Dispatch); err != nil {
		return errors.Wrap(err, "invalid dispatch config")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from POSTGRES_REPLICAS_{index}_{field}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
