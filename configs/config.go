package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	SERVER_PORT                   string
	WORKER_POOL                   string
	DB_URI                        string
	DB_NAME                       string
	DB_MAXPOOLSIZE                uint64
	DB_MINPOOLSIZE                uint64
	DB_MAXIDLETIME_INMINUTES      int
	KAFKA_SERVER                  string
	KAFKA_SECURITY_PROTOCOL       string
	KAFKA_SASL_MECHANISM          string
	KAFKA_SASL_USERNAME           string
	KAFKA_SASL_PASSWORD           string
	KAFKA_SESSION_TIMEOUT_MS      int
	KAFKA_CLIENT_ID               string
	KAFKA_DECISION_TOPIC          string
	KAFKA_RETRY_COUNT             int
	REDIS_ADDR                    string
	REDIS_PASSWORD                string
	REDIS_DB                      int
	REDIS_ENABLE_TLS              bool
	REDIS_CONNECT_TIMEOUT_SECONDS int
	REDIS_CERT_CONTENT            string
	PROJECT_ID                    string
	PUBSUB_NOTIFICATION_TOPIC     string
	PUBSUB_ENABLED                bool
	SERVICE_NAME                  string
	OTEL_URL                      string
	LOG_LEVEL                     string
	SCORE_VALIDITY_DAYS           int
	LENDING_POLICY_FILE           string
	TIMEOUT_IN_SECONDS            int
)

type RedisConfig struct {
	Addr           string        `yaml:"addr"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	EnableTLS      bool          `yaml:"enable_tls"`
	ConnectTimeout time.Duration `yaml:"connect_timeout_seconds"`
	CertContent    string        `yaml:"cert_content"`
}

// LendingPolicy holds the auto-approval thresholds. Defaults match the
// program rules; a YAML policy file can override them per deployment.
type LendingPolicy struct {
	MinScoreForAutoApproval int      `yaml:"min_score_for_auto_approval"`
	MaxAutoApprovalAmount   float64  `yaml:"max_auto_approval_amount"`
	AllowedPurposes         []string `yaml:"allowed_purposes"`
	AmountPerScorePoint     float64  `yaml:"amount_per_score_point"`
	IncomeVerificationBelow int      `yaml:"income_verification_below"`
}

// DefaultLendingPolicy returns the built-in approval thresholds.
func DefaultLendingPolicy() LendingPolicy {
	return LendingPolicy{
		MinScoreForAutoApproval: 70,
		MaxAutoApprovalAmount:   200000,
		AllowedPurposes:         []string{"business", "education", "skill_development", "equipment"},
		AmountPerScorePoint:     2500,
		IncomeVerificationBelow: 80,
	}
}

// LoadLendingPolicy loads the policy file named by LENDING_POLICY_FILE,
// falling back to the defaults when the file is absent or unreadable.
func LoadLendingPolicy() LendingPolicy {
	policy := DefaultLendingPolicy()
	if LENDING_POLICY_FILE == "" {
		return policy
	}

	raw, err := os.ReadFile(LENDING_POLICY_FILE)
	if err != nil {
		log.Printf("Error reading lending policy file %s: %v", LENDING_POLICY_FILE, err)
		return policy
	}
	if err := yaml.Unmarshal(raw, &policy); err != nil {
		log.Printf("Error parsing lending policy file %s: %v", LENDING_POLICY_FILE, err)
		return DefaultLendingPolicy()
	}
	if len(policy.AllowedPurposes) == 0 {
		policy.AllowedPurposes = DefaultLendingPolicy().AllowedPurposes
	}
	return policy
}

// LoadEnv loads the environment variables from a .env file
func LoadEnv() error {
	err := godotenv.Load("./../.env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	LoadEnvValues()

	return nil
}

func LoadEnvValues() {
	SERVER_PORT = GetEnv("SERVER_PORT", "8080")
	WORKER_POOL = GetEnv("WORKER_POOL", "5")
	DB_URI = GetEnv("DB_URI", "mongodb://localhost:27017")
	DB_NAME = GetEnv("DB_NAME", "GramSetuLending")
	DB_MAXPOOLSIZE_Str := GetEnv("DB_MAXPOOLSIZE", "100")
	DB_MINPOOLSIZE_Str := GetEnv("DB_MINPOOLSIZE", "10")
	DB_MAXIDLETIME_INMINUTES_Str := GetEnv("DB_MAXIDLETIME_INMINUTES", "5")
	DB_MAXPOOLSIZE, _ = strconv.ParseUint(DB_MAXPOOLSIZE_Str, 10, 64)
	DB_MINPOOLSIZE, _ = strconv.ParseUint(DB_MINPOOLSIZE_Str, 10, 64)
	DB_MAXIDLETIME_INMINUTES, _ = strconv.Atoi(DB_MAXIDLETIME_INMINUTES_Str)
	KAFKA_SERVER = GetEnv("KAFKA_SERVER", "")
	KAFKA_SECURITY_PROTOCOL = GetEnv("KAFKA_SECURITY_PROTOCOL", "")
	KAFKA_SASL_MECHANISM = GetEnv("KAFKA_SASL_MECHANISM", "")
	KAFKA_SASL_USERNAME = GetEnv("KAFKA_SASL_USERNAME", "")
	KAFKA_SASL_PASSWORD = GetEnv("KAFKA_SASL_PASSWORD", "")
	KAFKA_SESSION_TIMEOUT_MS, _ = strconv.Atoi(GetEnv("KAFKA_SESSION_TIMEOUT_MS", "45000"))
	KAFKA_CLIENT_ID = GetEnv("KAFKA_CLIENT_ID", "creditlending")
	KAFKA_DECISION_TOPIC = GetEnv("KAFKA_DECISION_TOPIC", "lending.decisions")
	KAFKA_RETRY_COUNT_Str := GetEnv("KAFKA_RETRY_COUNT", "3")
	KAFKA_RETRY_COUNT, _ = strconv.Atoi(KAFKA_RETRY_COUNT_Str)
	REDIS_ADDR = GetEnv("REDIS_ADDR", "localhost:6379")
	REDIS_PASSWORD = GetEnv("REDIS_PASSWORD", "")
	REDIS_DB_Str := GetEnv("REDIS_DB", "0")
	REDIS_DB, _ = strconv.Atoi(REDIS_DB_Str)
	REDIS_ENABLE_TLS, _ = strconv.ParseBool(GetEnv("REDIS_ENABLE_TLS", "false"))
	REDIS_CONNECT_TIMEOUT_SECONDS_Str := GetEnv("REDIS_CONNECT_TIMEOUT_SECONDS", "5")
	REDIS_CONNECT_TIMEOUT_SECONDS, _ = strconv.Atoi(REDIS_CONNECT_TIMEOUT_SECONDS_Str)
	REDIS_CERT_CONTENT = GetEnv("REDIS_CERT_CONTENT", "")
	PROJECT_ID = GetEnv("PROJECT_ID", "")
	PUBSUB_NOTIFICATION_TOPIC = GetEnv("PUBSUB_NOTIFICATION_TOPIC", "gramsetu-lending-notification-topic")
	PUBSUB_ENABLED, _ = strconv.ParseBool(GetEnv("PUBSUB_ENABLED", "false"))
	SERVICE_NAME = GetEnv("SERVICE_NAME", "creditlending")
	OTEL_URL = GetEnv("OTEL_URL", "")
	LOG_LEVEL = GetEnv("LOG_LEVEL", "INFO")
	SCORE_VALIDITY_DAYS_Str := GetEnv("SCORE_VALIDITY_DAYS", "30")
	SCORE_VALIDITY_DAYS, _ = strconv.Atoi(SCORE_VALIDITY_DAYS_Str)
	LENDING_POLICY_FILE = GetEnv("LENDING_POLICY_FILE", "")
	TIMEOUT_IN_SECONDS_str := GetEnv("TIMEOUT_IN_SECONDS", "20")
	TIMEOUT_IN_SECONDS, _ = strconv.Atoi(TIMEOUT_IN_SECONDS_str)
}

// GetRedisConfig returns a RedisConfig struct populated from environment variables
func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:           REDIS_ADDR,
		Password:       REDIS_PASSWORD,
		DB:             REDIS_DB,
		EnableTLS:      REDIS_ENABLE_TLS,
		ConnectTimeout: time.Duration(REDIS_CONNECT_TIMEOUT_SECONDS) * time.Second,
		CertContent:    REDIS_CERT_CONTENT,
	}
}

// GetEnv fetches the value of an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

// MaskSensitive replaces values of sensitive header keys before logging.
func MaskSensitive(headers map[string]string, sensitiveKeys []string) map[string]string {
	masked := make(map[string]string, len(headers))
	for k, v := range headers {
		masked[k] = v
		for _, s := range sensitiveKeys {
			if strings.EqualFold(k, s) {
				masked[k] = "********"
				break
			}
		}
	}
	return masked
}
