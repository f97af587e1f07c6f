package generator_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citytransit/transitseed/dataobjects"
	"github.com/citytransit/transitseed/generator"
	"github.com/citytransit/transitseed/storage"
)

func newTestGenerator(seed int64) (*generator.Generator, *storage.Memory) {
	store := storage.NewMemory()
	return generator.New(store, seed), store
}

func seedUsers(t *testing.T, g *generator.Generator, store *storage.Memory, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		user, err := g.GenerateUser()
		require.NoError(t, err)
		require.NoError(t, store.InsertUser(user))
	}
}

func seedStops(t *testing.T, g *generator.Generator, store *storage.Memory, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		stop, err := g.GenerateStop(nil)
		require.NoError(t, err)
		require.NoError(t, store.InsertStop(stop))
	}
}

func TestGenerateUser_UniqueLoginsAndEmails(t *testing.T) {
	g, store := newTestGenerator(1)

	seedUsers(t, g, store, 200)

	users, err := store.Users()
	require.NoError(t, err)
	require.Len(t, users, 200)

	logins := make(map[string]bool)
	emails := make(map[string]bool)
	for _, user := range users {
		assert.False(t, logins[user.Login], "duplicate login %s", user.Login)
		assert.False(t, emails[user.Email], "duplicate email %s", user.Email)
		logins[user.Login] = true
		emails[user.Email] = true

		assert.NotEmpty(t, user.Password)
		assert.NotEmpty(t, user.Name)
		assert.NotEmpty(t, user.Surname)
	}
}

func TestAllocateUser_CreatesUserWhenPoolIsEmpty(t *testing.T) {
	g, store := newTestGenerator(2)

	user, err := g.AllocateUser()
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	users, err := store.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)

	// the pool now has one unclaimed user, so no new one is created
	again, err := g.AllocateUser()
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)

	users, err = store.Users()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRoleGeneration_UserIDsDisjointAcrossRoles(t *testing.T) {
	g, store := newTestGenerator(3)

	seedUsers(t, g, store, 12)

	claimed := make(map[int]string)
	claim := func(id int, role string) {
		previous, taken := claimed[id]
		assert.False(t, taken, "user %d claimed by both %s and %s", id, previous, role)
		claimed[id] = role
	}

	for i := 0; i < 3; i++ {
		passenger, err := g.GeneratePassenger()
		require.NoError(t, err)
		require.NoError(t, store.InsertPassenger(passenger))
		claim(passenger.User.ID, "passenger")
	}
	for i := 0; i < 3; i++ {
		inspector, err := g.GenerateTicketInspector()
		require.NoError(t, err)
		require.NoError(t, store.InsertTicketInspector(inspector))
		claim(inspector.User.ID, "inspector")
	}
	for i := 0; i < 2; i++ {
		editor, err := g.GenerateEditor()
		require.NoError(t, err)
		require.NoError(t, store.InsertEditor(editor))
		claim(editor.User.ID, "editor")
	}
	for i := 0; i < 2; i++ {
		driver, err := g.GenerateDriver()
		require.NoError(t, err)
		require.NoError(t, store.InsertDriver(driver))
		claim(driver.User.ID, "driver")
	}

	assert.Len(t, claimed, 10)
}

func TestGenerateDriver_LicensesNeverShared(t *testing.T) {
	g, store := newTestGenerator(4)

	licenseIDs := make(map[int]bool)
	for i := 0; i < 5; i++ {
		driver, err := g.GenerateDriver()
		require.NoError(t, err)
		require.NoError(t, store.InsertDriver(driver))

		require.NotNil(t, driver.License)
		assert.False(t, licenseIDs[driver.License.ID], "license %d assigned twice", driver.License.ID)
		licenseIDs[driver.License.ID] = true
	}

	licenses, err := store.DriversLicenses()
	require.NoError(t, err)
	assert.Len(t, licenses, 5)
}

func TestGenerateDriversLicense_Dates(t *testing.T) {
	g, _ := newTestGenerator(5)

	for i := 0; i < 50; i++ {
		license, err := g.GenerateDriversLicense()
		require.NoError(t, err)

		assert.True(t, license.ExpiresOn.After(license.IssuedOn))
		// calendar-day arithmetic, so allow a day of slack at the bounds
		validity := license.ExpiresOn.Sub(license.IssuedOn)
		assert.GreaterOrEqual(t, validity, time.Duration(6*365-1)*24*time.Hour)
		assert.LessOrEqual(t, validity, time.Duration(180*365+1)*24*time.Hour)
	}
}

func TestGenerateVehicle_UniqueNumbersAndExhaustion(t *testing.T) {
	g, store := newTestGenerator(6)

	numbers := make(map[int]bool)
	for i := 0; i < 3; i++ {
		vehicle, err := g.GenerateVehicle(4)
		require.NoError(t, err)
		require.NoError(t, store.InsertVehicle(vehicle))

		assert.GreaterOrEqual(t, vehicle.VehicleNumber, 1)
		assert.Less(t, vehicle.VehicleNumber, 4)
		assert.False(t, numbers[vehicle.VehicleNumber])
		numbers[vehicle.VehicleNumber] = true

		assert.Contains(t, []dataobjects.VehicleType{dataobjects.VehicleTypeBus, dataobjects.VehicleTypeTram}, vehicle.Type)
		assert.Contains(t, []int{30, 50, 70, 80, 90, 100}, vehicle.Capacity)
		assert.False(t, vehicle.LastTechnicalInspection.Before(vehicle.ProductionDate))
	}

	_, err := g.GenerateVehicle(4)
	assert.ErrorIs(t, err, generator.ErrNamespaceExhausted)
}

func TestGenerateStop_CoordinatesWithinBoundsAndNamesUnique(t *testing.T) {
	g, store := newTestGenerator(7)

	names := make(map[string]bool)
	for i := 0; i < 100; i++ {
		stop, err := g.GenerateStop(nil)
		require.NoError(t, err)
		require.NoError(t, store.InsertStop(stop))

		assert.GreaterOrEqual(t, stop.Latitude, generator.MinLatitude)
		assert.LessOrEqual(t, stop.Latitude, generator.MaxLatitude)
		assert.GreaterOrEqual(t, stop.Longitude, generator.MinLongitude)
		assert.LessOrEqual(t, stop.Longitude, generator.MaxLongitude)

		assert.False(t, names[stop.Name], "duplicate stop name %s", stop.Name)
		names[stop.Name] = true
	}
}

func TestGenerateStop_ParamsPinTypeAndOrigin(t *testing.T) {
	g, _ := newTestGenerator(8)

	stop, err := g.GenerateStop(&generator.StopParams{
		Latitude:  51.0,
		Longitude: 17.0,
		Type:      dataobjects.StopTypeTram,
	})
	require.NoError(t, err)

	assert.Equal(t, dataobjects.StopTypeTram, stop.Type)
	assert.InDelta(t, 51.0, stop.Latitude, 0.25)
	assert.InDelta(t, 17.0, stop.Longitude, 0.25)
}

func TestGeneratePathStops_CountOrderingAndMinutes(t *testing.T) {
	g, store := newTestGenerator(9)
	seedStops(t, g, store, 8)

	path := &dataobjects.Path{
		Distance:            10,
		NumberOfStops:       5,
		EstimatedTravelTime: 60,
	}
	require.NoError(t, store.InsertPath(path))

	pathStops, err := g.GeneratePathStops(path)
	require.NoError(t, err)
	require.Len(t, pathStops, 5)

	anchor := pathStops[0].Stop
	seen := make(map[int]bool)
	lastMinute := 0
	lastDistance := -1.0
	for i, pathStop := range pathStops {
		assert.Equal(t, path, pathStop.Path)
		assert.False(t, seen[pathStop.Stop.ID], "stop %d appears twice", pathStop.Stop.ID)
		seen[pathStop.Stop.ID] = true

		assert.Greater(t, pathStop.PathMinute, lastMinute)
		lastMinute = pathStop.PathMinute

		if i > 0 {
			distance := pathStop.Stop.DistanceTo(anchor)
			assert.GreaterOrEqual(t, distance, lastDistance)
			lastDistance = distance
		}
	}
	assert.Equal(t, 12, pathStops[0].PathMinute)
	assert.Equal(t, 60, pathStops[4].PathMinute)
}

func TestGeneratePathStops_InsufficientStops(t *testing.T) {
	g, store := newTestGenerator(10)
	seedStops(t, g, store, 3)

	path := &dataobjects.Path{
		Distance:            10,
		NumberOfStops:       10,
		EstimatedTravelTime: 60,
	}

	_, err := g.GeneratePathStops(path)
	assert.ErrorIs(t, err, generator.ErrInsufficientData)

	pathStops, err := store.PathStops()
	require.NoError(t, err)
	assert.Empty(t, pathStops)
}

func TestGeneratePath_TravelTimeFromDistance(t *testing.T) {
	g, _ := newTestGenerator(11)

	for i := 0; i < 20; i++ {
		path, err := g.GeneratePath()
		require.NoError(t, err)

		assert.GreaterOrEqual(t, path.Distance, 5.0)
		assert.LessOrEqual(t, path.Distance, 50.0)
		assert.GreaterOrEqual(t, path.NumberOfStops, 15)
		assert.LessOrEqual(t, path.NumberOfStops, 30)
		assert.Equal(t, int(path.Distance/35*60)+path.NumberOfStops, path.EstimatedTravelTime)
	}
}

func TestGenerateLine_NumberFormatAndUniqueness(t *testing.T) {
	g, store := newTestGenerator(12)

	path, err := g.GeneratePath()
	require.NoError(t, err)
	require.NoError(t, store.InsertPath(path))

	format := regexp.MustCompile(`^[0-9]{1,3}[A-D]?$`)
	numbers := make(map[string]bool)
	for i := 0; i < 30; i++ {
		line, err := g.GenerateLine()
		require.NoError(t, err)
		require.NoError(t, store.InsertLine(line))

		assert.Regexp(t, format, line.Number)
		assert.False(t, numbers[line.Number], "duplicate line number %s", line.Number)
		numbers[line.Number] = true
		assert.Equal(t, path, line.MainPath)
	}
}

func TestGenerateLine_RequiresPaths(t *testing.T) {
	g, _ := newTestGenerator(13)

	_, err := g.GenerateLine()
	assert.ErrorIs(t, err, generator.ErrInsufficientData)
}

func TestGenerateRide_WeekdayMatchesStartTime(t *testing.T) {
	g, store := newTestGenerator(14)

	driver, err := g.GenerateDriver()
	require.NoError(t, err)
	require.NoError(t, store.InsertDriver(driver))

	vehicle, err := g.GenerateVehicle(0)
	require.NoError(t, err)
	require.NoError(t, store.InsertVehicle(vehicle))

	path, err := g.GeneratePath()
	require.NoError(t, err)
	require.NoError(t, store.InsertPath(path))

	line, err := g.GenerateLine()
	require.NoError(t, err)
	require.NoError(t, store.InsertLine(line))

	for i := 0; i < 10; i++ {
		ride, err := g.GenerateRide()
		require.NoError(t, err)
		require.NoError(t, store.InsertRide(ride))

		assert.Equal(t, dataobjects.WeekdayFromTime(ride.StartTime), ride.Weekday)
		assert.Equal(t, ride.Line.MainPath, ride.Path)
	}
}

func TestGenerateRide_RequiresPrerequisites(t *testing.T) {
	g, _ := newTestGenerator(15)

	_, err := g.GenerateRide()
	assert.ErrorIs(t, err, generator.ErrInsufficientData)
}

func TestGenerateTicketTypes_CatalogShapeAndPricing(t *testing.T) {
	g, store := newTestGenerator(16)

	ticketTypes, err := g.GenerateTicketTypes(0, 0)
	require.NoError(t, err)
	require.Len(t, ticketTypes, 26)

	stored, err := store.TicketTypes()
	require.NoError(t, err)
	assert.Len(t, stored, 26)

	names := make(map[string]bool)
	for i := 0; i < len(ticketTypes); i += 2 {
		normal := ticketTypes[i]
		discounted := ticketTypes[i+1]

		assert.Equal(t, dataobjects.TicketDiscountTypeNormal, normal.Type)
		assert.Equal(t, dataobjects.TicketDiscountTypeDiscounted, discounted.Type)
		assert.False(t, normal.IsDiscounted)
		assert.True(t, discounted.IsDiscounted)
		assert.Equal(t, normal.ValidityDuration, discounted.ValidityDuration)

		assert.Greater(t, normal.Price, 0.0)
		assert.Greater(t, discounted.Price, 0.0)
		assert.Less(t, discounted.Price, normal.Price)

		for _, ticketType := range []*dataobjects.TicketType{normal, discounted} {
			assert.False(t, names[ticketType.Name], "duplicate ticket type name %s", ticketType.Name)
			names[ticketType.Name] = true
		}
	}
}

func TestGenerateTicket_PersistsMatchingPurchase(t *testing.T) {
	g, store := newTestGenerator(17)

	seedUsers(t, g, store, 2)
	passenger, err := g.GeneratePassenger()
	require.NoError(t, err)
	require.NoError(t, store.InsertPassenger(passenger))

	_, err = g.GenerateTicketTypes(0, 0)
	require.NoError(t, err)

	ticket, err := g.GenerateTicket()
	require.NoError(t, err)
	require.NoError(t, store.InsertTicket(ticket))

	require.NotNil(t, ticket.Purchase)
	assert.NotZero(t, ticket.Purchase.ID)
	assert.Equal(t, ticket.TicketType.Price, ticket.Purchase.Amount)

	purchases, err := store.Purchases()
	require.NoError(t, err)
	assert.Len(t, purchases, 1)
}

func TestGenerateTicket_RequiresPassengersAndTypes(t *testing.T) {
	g, store := newTestGenerator(18)

	_, err := g.GenerateTicket()
	assert.ErrorIs(t, err, generator.ErrInsufficientData)

	purchases, err := store.Purchases()
	require.NoError(t, err)
	assert.Empty(t, purchases, "a failed ticket must not persist a purchase")
}

func TestGenerateFine_DefaultsAndDeadline(t *testing.T) {
	g, store := newTestGenerator(19)

	seedUsers(t, g, store, 4)
	passenger, err := g.GeneratePassenger()
	require.NoError(t, err)
	require.NoError(t, store.InsertPassenger(passenger))
	inspector, err := g.GenerateTicketInspector()
	require.NoError(t, err)
	require.NoError(t, store.InsertTicketInspector(inspector))

	for i := 0; i < 20; i++ {
		fine, err := g.GenerateFine(0)
		require.NoError(t, err)

		assert.Equal(t, 250.0, fine.Amount)
		assert.Equal(t, fine.IssueDate.Add(90*24*time.Hour), fine.Deadline)
		assert.Contains(t, []dataobjects.FineStatus{dataobjects.FineStatusPaid, dataobjects.FineStatusUnpaid}, fine.Status)
	}

	fine, err := g.GenerateFine(120)
	require.NoError(t, err)
	assert.Equal(t, 120.0, fine.Amount)
}

func TestGenerateFine_RequiresPassengersAndInspectors(t *testing.T) {
	g, store := newTestGenerator(20)

	_, err := g.GenerateFine(0)
	assert.ErrorIs(t, err, generator.ErrInsufficientData)

	fines, err := store.Fines()
	require.NoError(t, err)
	assert.Empty(t, fines)
}

func TestGenerateInspection_RequiresInspectorsAndRides(t *testing.T) {
	g, store := newTestGenerator(21)

	_, err := g.GenerateInspection()
	assert.ErrorIs(t, err, generator.ErrInsufficientData)

	inspections, err := store.Inspections()
	require.NoError(t, err)
	assert.Empty(t, inspections)
}

func TestGenerateTechnicalIssue_ResolutionFields(t *testing.T) {
	g, store := newTestGenerator(22)

	driver, err := g.GenerateDriver()
	require.NoError(t, err)
	require.NoError(t, store.InsertDriver(driver))
	vehicle, err := g.GenerateVehicle(0)
	require.NoError(t, err)
	require.NoError(t, store.InsertVehicle(vehicle))

	resolvedSeen := false
	openSeen := false
	for i := 0; i < 50; i++ {
		issue, err := g.GenerateTechnicalIssue()
		require.NoError(t, err)

		assert.NotEmpty(t, issue.Description)
		if issue.Status == dataobjects.TechnicalIssueStatusResolved {
			resolvedSeen = true
			require.NotNil(t, issue.ResolveDate)
			assert.False(t, issue.ResolveDate.Before(issue.ReportDate))
			assert.GreaterOrEqual(t, issue.RepairCost, 50.0)
			assert.LessOrEqual(t, issue.RepairCost, 5000.0)
		} else {
			openSeen = true
			assert.Nil(t, issue.ResolveDate)
			assert.Zero(t, issue.RepairCost)
		}
	}
	assert.True(t, resolvedSeen, "no resolved issue in 50 draws")
	assert.True(t, openSeen, "no open issue in 50 draws")
}

func TestGenerateTechnicalIssue_RequiresVehiclesAndDrivers(t *testing.T) {
	g, _ := newTestGenerator(23)

	_, err := g.GenerateTechnicalIssue()
	assert.ErrorIs(t, err, generator.ErrInsufficientData)
}

func TestFixedSeedIsReproducible(t *testing.T) {
	first, firstStore := newTestGenerator(42)
	second, secondStore := newTestGenerator(42)

	seedUsers(t, first, firstStore, 10)
	seedUsers(t, second, secondStore, 10)

	firstUsers, err := firstStore.Users()
	require.NoError(t, err)
	secondUsers, err := secondStore.Users()
	require.NoError(t, err)

	require.Len(t, secondUsers, len(firstUsers))
	for i := range firstUsers {
		assert.Equal(t, firstUsers[i].Login, secondUsers[i].Login)
		assert.Equal(t, firstUsers[i].Email, secondUsers[i].Email)
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(generator.ErrInsufficientData, generator.ErrNamespaceExhausted))
	assert.False(t, errors.Is(generator.ErrNamespaceExhausted, generator.ErrInsufficientData))
}
