package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citytransit/transitseed/dataobjects"
	"github.com/citytransit/transitseed/generator"
	"github.com/citytransit/transitseed/storage"
)

// the memory store must satisfy the generator's repository surface
var _ generator.Repository = (*storage.Memory)(nil)

func TestMemory_InsertAssignsSequentialIDs(t *testing.T) {
	store := storage.NewMemory()

	first := &dataobjects.AppUser{Login: "first", Email: "first@example.com"}
	second := &dataobjects.AppUser{Login: "second", Email: "second@example.com"}
	require.NoError(t, store.InsertUser(first))
	require.NoError(t, store.InsertUser(second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	// ids are per kind, not global
	stop := &dataobjects.Stop{Name: "Main Street"}
	require.NoError(t, store.InsertStop(stop))
	assert.Equal(t, 1, stop.ID)
}

func TestMemory_InsertKeepsExistingID(t *testing.T) {
	store := storage.NewMemory()

	user := &dataobjects.AppUser{ID: 42, Login: "answer", Email: "answer@example.com"}
	require.NoError(t, store.InsertUser(user))
	assert.Equal(t, 42, user.ID)
}

func TestMemory_ListReturnsInsertedEntities(t *testing.T) {
	store := storage.NewMemory()

	vehicle := &dataobjects.Vehicle{
		VehicleNumber:           7,
		Type:                    dataobjects.VehicleTypeTram,
		Status:                  dataobjects.VehicleStatusActive,
		Capacity:                70,
		ProductionDate:          time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC),
		LastTechnicalInspection: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.InsertVehicle(vehicle))

	vehicles, err := store.Vehicles()
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, vehicle, vehicles[0])
}

func TestMemory_ClearAllResetsEverything(t *testing.T) {
	store := storage.NewMemory()

	require.NoError(t, store.InsertUser(&dataobjects.AppUser{Login: "a", Email: "a@example.com"}))
	require.NoError(t, store.InsertStop(&dataobjects.Stop{Name: "Somewhere"}))
	require.NoError(t, store.InsertTicketType(&dataobjects.TicketType{Name: "t", Price: 1}))

	require.NoError(t, store.ClearAll())

	users, err := store.Users()
	require.NoError(t, err)
	assert.Empty(t, users)
	stops, err := store.Stops()
	require.NoError(t, err)
	assert.Empty(t, stops)
	ticketTypes, err := store.TicketTypes()
	require.NoError(t, err)
	assert.Empty(t, ticketTypes)

	// id sequences restart too
	user := &dataobjects.AppUser{Login: "b", Email: "b@example.com"}
	require.NoError(t, store.InsertUser(user))
	assert.Equal(t, 1, user.ID)
}

func TestMemory_ClearTicketTypesLeavesTheRest(t *testing.T) {
	store := storage.NewMemory()

	require.NoError(t, store.InsertUser(&dataobjects.AppUser{Login: "a", Email: "a@example.com"}))
	require.NoError(t, store.InsertTicketType(&dataobjects.TicketType{Name: "t", Price: 1}))

	require.NoError(t, store.ClearTicketTypes())

	ticketTypes, err := store.TicketTypes()
	require.NoError(t, err)
	assert.Empty(t, ticketTypes)
	users, err := store.Users()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestMemory_PathStopsHaveNoID(t *testing.T) {
	store := storage.NewMemory()

	path := &dataobjects.Path{Distance: 5, NumberOfStops: 3, EstimatedTravelTime: 12}
	stop := &dataobjects.Stop{Name: "Corner"}
	require.NoError(t, store.InsertPath(path))
	require.NoError(t, store.InsertStop(stop))

	require.NoError(t, store.InsertPathStop(&dataobjects.PathStop{Path: path, Stop: stop, PathMinute: 4}))

	pathStops, err := store.PathStops()
	require.NoError(t, err)
	require.Len(t, pathStops, 1)
	assert.Equal(t, path, pathStops[0].Path)
	assert.Equal(t, stop, pathStops[0].Stop)
	assert.Equal(t, 4, pathStops[0].PathMinute)
}
