package connection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDialector(t *testing.T) {
	t.Run("mysql", func(t *testing.T) {
		d, err := Dialector(DBConfig{Driver: "mysql", Host: "db", Port: "3306", User: "u", Password: "p", Name: "hr"})
		assert.NoError(t, err)
		assert.Equal(t, "mysql", d.Name())
	})

	t.Run("postgres", func(t *testing.T) {
		d, err := Dialector(DBConfig{Driver: "postgres", Host: "db", Port: "5432", User: "u", Password: "p", Name: "hr", SSLMode: "disable"})
		assert.NoError(t, err)
		assert.Equal(t, "postgres", d.Name())
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := Dialector(DBConfig{Driver: "sqlite"})
		assert.EqualError(t, err, "unsupported db driver: sqlite")
	})
}
