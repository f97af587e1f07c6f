package dataobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStopDistanceTo(t *testing.T) {
	a := &Stop{Latitude: 51.0, Longitude: 17.0}
	b := &Stop{Latitude: 51.3, Longitude: 17.4}

	// 3-4-5 triangle scaled down
	assert.InDelta(t, 0.5, a.DistanceTo(b), 1e-9)
	assert.InDelta(t, 0.5, b.DistanceTo(a), 1e-9)
	assert.Zero(t, a.DistanceTo(a))
}

func TestSchemaTableNamesCoverEveryEntity(t *testing.T) {
	names := TableNames()
	assert.Len(t, names, 18)

	// referenced tables come before their dependents
	position := make(map[string]int)
	for i, name := range names {
		position[name] = i
	}
	assert.Less(t, position["app_users"], position["drivers"])
	assert.Less(t, position["drivers_licenses"], position["drivers"])
	assert.Less(t, position["paths"], position["lines"])
	assert.Less(t, position["stops"], position["path_stops"])
	assert.Less(t, position["vehicles"], position["rides"])
	assert.Less(t, position["purchases"], position["tickets"])
	assert.Less(t, position["ticket_inspectors"], position["fines"])
}
