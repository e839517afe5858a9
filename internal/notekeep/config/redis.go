package config

import (
	"strconv"
	"time"
)

// RedisConfig представляет конфигурацию раздела хранилища в Redis.
type RedisConfig struct {
	Host            string        `yaml:"host" env:"NOTEKEEP_REDIS_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"NOTEKEEP_REDIS_PORT" env-default:"6379"`
	Password        string        `yaml:"password" env:"NOTEKEEP_REDIS_PASSWORD" env-default:""`
	DB              int           `yaml:"db" env:"NOTEKEEP_REDIS_DB" env-default:"0"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"NOTEKEEP_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"NOTEKEEP_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"NOTEKEEP_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize        int           `yaml:"pool_size" env:"NOTEKEEP_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle         int           `yaml:"min_idle" env:"NOTEKEEP_REDIS_MIN_IDLE" env-default:"2"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"NOTEKEEP_REDIS_IDLE_TIMEOUT" env-default:"5m"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"NOTEKEEP_REDIS_MAX_CONN_LIFETIME" env-default:"1h"`
}

// GetAddressString возвращает адрес Redis строкой.
func (c *RedisConfig) GetAddressString() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
