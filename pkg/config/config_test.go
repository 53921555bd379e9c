package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "menuiserie-crm", cfg.App.Name)
	assert.Equal(t, int32(25), cfg.DB.MaxConns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "fr", cfg.CRM.DefaultLocale)
	assert.Equal(t, 30, cfg.CRM.PaymentTermsDays)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("CRM_DEFAULT_LOCALE", "EN")
	v.Set("CRM_PAYMENT_TERMS_DAYS", "45")
	v.Set("DB_MAX_CONNS", 10)

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.CRM.DefaultLocale)
	assert.Equal(t, 45, cfg.CRM.PaymentTermsDays)
	assert.Equal(t, int32(10), cfg.DB.MaxConns)
}

func TestFromViper_LocaleNoSoportado(t *testing.T) {
	v := viper.New()
	v.Set("CRM_DEFAULT_LOCALE", "de")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_ProduccionSinSecret(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	_, err := fromViper(v)
	assert.Error(t, err)

	v.Set("JWT_SECRET", "s3cret")
	_, err = fromViper(v)
	assert.NoError(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "crm", Password: "p@ss", DBName: "menuiserie_crm", SSLMode: "disable"}
	assert.Equal(t, "postgres://crm:p%40ss@db:5432/menuiserie_crm?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
