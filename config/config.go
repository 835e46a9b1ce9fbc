package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

// Reminder defaults are tuned for a half-hourly scheduler cadence.
const (
	defaultMaxConcurrency     = 16
	defaultSendTimeout        = 10 * time.Second
	defaultDedupWindow        = 24 * time.Hour
	defaultReminderTolerance  = 30 * time.Minute
	defaultEventLookaheadFrom = 30 * time.Minute
	defaultEventLookaheadTo   = 35 * time.Minute
	defaultTimezone           = "UTC"
	defaultReminderClaimTTL   = 10 * time.Minute
	defaultWebPushTTL         = 24 * 60 * 60
)

//nolint:gochecknoglobals
var defaultCleaningTargetTimes = []string{"12:00", "23:30"}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Persistence tunes the gorm layer on top of the postgres connection
	Persistence *PersistenceConfig `json:"persistence" yaml:"persistence"`

	// SecretKey.Access verifies access tokens minted by the external auth service
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Firebase configuration for the native push channel
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// WebPush configuration for the browser push channel
	WebPush *WebPushConfig `json:"webPush" yaml:"webPush"`

	// Dispatch tunes the delivery dispatcher
	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Scheduler configuration for reminder jobs
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// PubSub configuration for in-app notification fan-out
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// RabbitMQ configuration, used when pubsub.provider is rabbitmq
	RabbitMQ *RabbitMQConfig `json:"rabbitmq" yaml:"rabbitmq"`

	// Redis configuration for dedup-window claims (optional)
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// WebPushConfig defines the VAPID credentials for browser push
type WebPushConfig struct {
	VAPIDPublicKey  string `json:"vapidPublicKey" yaml:"vapidPublicKey"`
	VAPIDPrivateKey string `json:"vapidPrivateKey" yaml:"vapidPrivateKey"`
	// Subscriber is the contact (email or URL) announced to push services
	Subscriber string `json:"subscriber" yaml:"subscriber"`
	// TTL in seconds the push service keeps an undelivered message
	TTL int `json:"ttl" yaml:"ttl"`
}

// DispatchConfig defines delivery dispatcher limits
type DispatchConfig struct {
	// Maximum number of concurrent per-registration sends within one dispatch
	MaxConcurrency int `json:"maxConcurrency" yaml:"maxConcurrency"`

	// Upper bound for a single channel send
	SendTimeout time.Duration `json:"sendTimeout" yaml:"sendTimeout"`

	// Window in which a successful send with the same dedup key suppresses another one
	DedupWindow time.Duration `json:"dedupWindow" yaml:"dedupWindow"`
}

// SchedulerConfig defines reminder scheduling parameters
type SchedulerConfig struct {
	// Local wall-clock times (HH:MM) at which cleaning reminders fire
	CleaningTargetTimes []string `json:"cleaningTargetTimes" yaml:"cleaningTargetTimes"`

	// Tolerance around each target time absorbing scheduler jitter
	Tolerance time.Duration `json:"tolerance" yaml:"tolerance"`

	// Events starting in [now+EventLookaheadFrom, now+EventLookaheadTo) get a reminder
	EventLookaheadFrom time.Duration `json:"eventLookaheadFrom" yaml:"eventLookaheadFrom"`
	EventLookaheadTo   time.Duration `json:"eventLookaheadTo" yaml:"eventLookaheadTo"`

	// Timezone applied to users without one
	DefaultTimezone string `json:"defaultTimezone" yaml:"defaultTimezone"`

	// Bearer token the external cron invoker presents to the trigger endpoint
	TriggerToken string `json:"triggerToken" yaml:"triggerToken"`

	// How long a reminder claim blocks overlapping runs. Keep it below the tick interval
	// so the next tick can redeliver a reminder whose push failed.
	ClaimTTL time.Duration `json:"claimTTL" yaml:"claimTTL"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "rabbitmq"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Verify Google-signed id tokens on the push endpoint
	VerifyPushAuth bool `json:"verifyPushAuth" yaml:"verifyPushAuth"`
}

// RabbitMQConfig defines the AMQP broker used for fan-out
type RabbitMQConfig struct {
	URL        string `json:"url" yaml:"url"`
	Exchange   string `json:"exchange" yaml:"exchange"`
	Queue      string `json:"queue" yaml:"queue"`
	RoutingKey string `json:"routingKey" yaml:"routingKey"`
	Prefetch   int    `json:"prefetch" yaml:"prefetch"`
}

// PersistenceConfig defines gorm behaviour
type PersistenceConfig struct {
	// Create or update the notification tables on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Queries slower than this are logged at warn level
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// RedisConfig defines the redis connection for dedup claims
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML keys, e.g. SCHEDULER_TRIGGERTOKEN -> scheduler.triggerToken
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
				mapstructure.StringToSliceHookFunc(","),
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

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills unset dispatch, scheduler and web push values.
func (c *Config) ApplyDefaults() {
	if c.Dispatch == nil {
		c.Dispatch = &DispatchConfig{}
	}
	if c.Dispatch.MaxConcurrency <= 0 {
		c.Dispatch.MaxConcurrency = defaultMaxConcurrency
	}
	if c.Dispatch.SendTimeout <= 0 {
		c.Dispatch.SendTimeout = defaultSendTimeout
	}
	if c.Dispatch.DedupWindow <= 0 {
		c.Dispatch.DedupWindow = defaultDedupWindow
	}

	if c.Scheduler == nil {
		c.Scheduler = &SchedulerConfig{}
	}
	if len(c.Scheduler.CleaningTargetTimes) == 0 {
		c.Scheduler.CleaningTargetTimes = append([]string(nil), defaultCleaningTargetTimes...)
	}
	if c.Scheduler.Tolerance <= 0 {
		c.Scheduler.Tolerance = defaultReminderTolerance
	}
	if c.Scheduler.EventLookaheadFrom <= 0 {
		c.Scheduler.EventLookaheadFrom = defaultEventLookaheadFrom
	}
	if c.Scheduler.EventLookaheadTo <= c.Scheduler.EventLookaheadFrom {
		c.Scheduler.EventLookaheadTo = c.Scheduler.EventLookaheadFrom + (defaultEventLookaheadTo - defaultEventLookaheadFrom)
	}
	if strings.TrimSpace(c.Scheduler.DefaultTimezone) == "" {
		c.Scheduler.DefaultTimezone = defaultTimezone
	}
	if c.Scheduler.ClaimTTL <= 0 {
		c.Scheduler.ClaimTTL = defaultReminderClaimTTL
	}

	if c.WebPush != nil && c.WebPush.TTL <= 0 {
		c.WebPush.TTL = defaultWebPushTTL
	}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
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
