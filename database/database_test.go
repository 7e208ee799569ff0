package database

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	v := viper.New()
	v.Set("database.host", "db")
	v.Set("database.username", "app")
	v.Set("database.password", "pw")
	v.Set("database.dbname", "pathfinder")
	v.Set("database.port", 5433)

	assert.Equal(t,
		"host=db user=app password=pw dbname=pathfinder port=5433 sslmode=disable TimeZone=UTC",
		DSN(v))

	v.Set("database.sslmode", "require")
	v.Set("database.timezone", "Asia/Kolkata")
	assert.Contains(t, DSN(v), "sslmode=require TimeZone=Asia/Kolkata")
}
