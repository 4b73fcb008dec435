package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCSV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "single", in: "kafka:9092", want: []string{"kafka:9092"}},
		{name: "trims and skips blanks", in: " a:1 , ,b:2,", want: []string{"a:1", "b:2"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CSV(tt.in))
		})
	}
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv("ORDERING_TEST_STR", "value")
	t.Setenv("ORDERING_TEST_INT", "42")
	t.Setenv("ORDERING_TEST_BAD_INT", "forty-two")
	t.Setenv("ORDERING_TEST_DUR", "90s")
	t.Setenv("ORDERING_TEST_NEG_DUR", "-5s")
	t.Setenv("ORDERING_TEST_BOOL", "false")

	assert.Equal(t, "value", EnvDefault("ORDERING_TEST_STR", "def"))
	assert.Equal(t, "def", EnvDefault("ORDERING_TEST_UNSET", "def"))

	assert.Equal(t, 42, EnvIntDefault("ORDERING_TEST_INT", 1))
	assert.Equal(t, 1, EnvIntDefault("ORDERING_TEST_BAD_INT", 1))
	assert.Equal(t, 1, EnvIntDefault("ORDERING_TEST_UNSET", 1))

	assert.Equal(t, 90*time.Second, EnvDurationDefault("ORDERING_TEST_DUR", time.Minute))
	assert.Equal(t, time.Minute, EnvDurationDefault("ORDERING_TEST_NEG_DUR", time.Minute))

	assert.False(t, EnvBoolDefault("ORDERING_TEST_BOOL", true))
	assert.True(t, EnvBoolDefault("ORDERING_TEST_UNSET", true))
}

func TestLoad(t *testing.T) {
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("CSRF_ENABLED", "")

	cfg := Load()

	assert.Equal(t, "ordering", cfg.ServiceName)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, []byte("s3cret"), cfg.SessionSecret)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.CSRFEnabled)
}
