package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zangjing/ztq-pricing-service/config"
)

func TestInitializeDatabaseDisabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false})
	assert.Nil(t, components)
}
