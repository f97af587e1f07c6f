package cmd

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citytransit/transitseed/storage"
)

func runSeedScript(t *testing.T, store storage.Store, answers ...string) {
	t.Helper()
	input := strings.NewReader(strings.Join(answers, "\n") + "\n")
	require.NoError(t, runSeed(store, bufio.NewReader(input), io.Discard))
}

func TestRunSeed_FullPass(t *testing.T) {
	store := storage.NewMemory()

	runSeedScript(t, store,
		"n",  // clear first?
		"5",  // users
		"2",  // passengers
		"1",  // ticket inspectors
		"1",  // drivers
		"1",  // editors
		"2",  // vehicles
		"35", // stops
		"1",  // paths
		"1",  // lines
		"2",  // rides
		"y",  // regenerate ticket types
		"2",  // tickets
		"1",  // fines
		"1",  // inspections
		"1",  // technical issues
	)

	users, err := store.Users()
	require.NoError(t, err)
	assert.Len(t, users, 5)

	stops, err := store.Stops()
	require.NoError(t, err)
	assert.Len(t, stops, 35)

	paths, err := store.Paths()
	require.NoError(t, err)
	require.Len(t, paths, 1)

	pathStops, err := store.PathStops()
	require.NoError(t, err)
	assert.Len(t, pathStops, paths[0].NumberOfStops)

	ticketTypes, err := store.TicketTypes()
	require.NoError(t, err)
	assert.Len(t, ticketTypes, 26)

	tickets, err := store.Tickets()
	require.NoError(t, err)
	assert.Len(t, tickets, 2)

	issues, err := store.TechnicalIssues()
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}

func TestRunSeed_InvalidInputSkipsKind(t *testing.T) {
	store := storage.NewMemory()

	runSeedScript(t, store,
		"n",
		"many", // users: not a number, skipped
		"",     // passengers: empty, skipped
		"0",    // ticket inspectors
		"",     // drivers
		"",     // editors
		"",     // vehicles
		"",     // stops
		"",     // paths
		"",     // lines
		"",     // rides
		"n",    // keep ticket types
		"",     // tickets
		"",     // fines
		"",     // inspections
		"",     // technical issues
	)

	users, err := store.Users()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestRunSeed_MissingPrerequisitesAreReportedNotFatal(t *testing.T) {
	store := storage.NewMemory()

	// rides before any line, vehicle or driver exists
	runSeedScript(t, store,
		"n",
		"", "", "", "", "", "", "", "",
		"", // lines: no paths yet
		"3", // rides: prerequisites missing
		"n",
		"", "", "", "",
	)

	rides, err := store.Rides()
	require.NoError(t, err)
	assert.Empty(t, rides)
}

func TestRunSeed_ClearFirst(t *testing.T) {
	store := storage.NewMemory()
	runSeedScript(t, store, "n", "3", "", "", "", "", "", "", "", "", "", "n", "", "", "", "")

	runSeedScript(t, store, "y", "", "", "", "", "", "", "", "", "", "", "n", "", "", "", "")

	users, err := store.Users()
	require.NoError(t, err)
	assert.Empty(t, users)
}
