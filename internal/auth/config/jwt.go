package config

import "time"

// JWTConfig содержит настройки для JWT токенов.
// Секреты access и refresh токенов различаются намеренно: компрометация
// одного секрета не позволяет подделать токены другого типа.
type JWTConfig struct {
	AccessSecret    string `yaml:"access_secret" env:"JWT_ACCESS_TOKEN_SECRET" env-required:"true"`
	RefreshSecret   string `yaml:"refresh_secret" env:"JWT_REFRESH_TOKEN_SECRET" env-required:"true"`
	AccessTokenTTL  string `yaml:"access_token_ttl" env:"JWT_ACCESS_TOKEN_TTL" env-default:"3600s"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl" env:"JWT_REFRESH_TOKEN_TTL" env-default:"43200s"`
	BCryptCost      int    `yaml:"bcrypt_cost" env:"JWT_BCRYPT_COST" env-default:"10"`
}

// GetAccessTokenTTL возвращает продолжительность времени жизни access токена.
func (c *JWTConfig) GetAccessTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.AccessTokenTTL)
	if err != nil {
		return 3600 * time.Second
	}
	return duration
}

// GetRefreshTokenTTL возвращает продолжительность времени жизни refresh токена.
func (c *JWTConfig) GetRefreshTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.RefreshTokenTTL)
	if err != nil {
		return 43200 * time.Second
	}
	return duration
}
