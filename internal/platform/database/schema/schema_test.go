package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/fyyur/internal/platform/database/schema"
)

func TestQualify(t *testing.T) {
	assert.Equal(t, "v.id, v.name", schema.Qualify("v", schema.Venue.ID, schema.Venue.Name))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$2, $3, $4", schema.Placeholders(2, 3))
	assert.Equal(t, "", schema.Placeholders(1, 0))
}

func TestAssignments(t *testing.T) {
	assert.Equal(t, "name = $2, city = $3", schema.Assignments(2, schema.Artist.Name, schema.Artist.City))
}

func TestMutableColumnsMatchInsertOrder(t *testing.T) {
	assert.Len(t, schema.Venue.Mutable(), 11)
	assert.Len(t, schema.Artist.Mutable(), 10)
	assert.Equal(t, schema.Venue.Columns()[1:12], schema.Venue.Mutable())
	assert.Equal(t, schema.Artist.Columns()[1:11], schema.Artist.Mutable())
}
