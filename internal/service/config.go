package service

import "github.com/maxbolgarin/errm"

const defaultPoolSize = 100

// Config represents summary service configuration.
type Config struct {
	PoolSize int `yaml:"pool_size" env:"SERVICE_POOL_SIZE"`
}

func (c *Config) PrepareAndValidate() error {
	if c.PoolSize == 0 {
		c.PoolSize = defaultPoolSize
	}
	if c.PoolSize < 0 {
		return errm.New("pool_size must be positive")
	}
	return nil
}
