package generator

import (
	"fmt"
	"time"

	"github.com/citytransit/transitseed/dataobjects"
)

// DefaultMaxVehicleNumber is the exclusive upper bound for fleet numbers
// when the caller does not supply one.
const DefaultMaxVehicleNumber = 1000

var vehicleCapacities = []int{30, 50, 70, 80, 90, 100}

// GenerateVehicle produces a vehicle with a fleet number unused in
// [1, maxNumber). A maxNumber of 0 or less means DefaultMaxVehicleNumber.
// Returns ErrNamespaceExhausted once every number is taken.
func (g *Generator) GenerateVehicle(maxNumber int) (*dataobjects.Vehicle, error) {
	if maxNumber <= 0 {
		maxNumber = DefaultMaxVehicleNumber
	}
	vehicles, err := g.repo.Vehicles()
	if err != nil {
		return nil, fmt.Errorf("GenerateVehicle: %w", err)
	}
	used := make(map[int]bool)
	for _, vehicle := range vehicles {
		used[vehicle.VehicleNumber] = true
	}
	free := []int{}
	for number := 1; number < maxNumber; number++ {
		if !used[number] {
			free = append(free, number)
		}
	}
	if len(free) == 0 {
		return nil, fmt.Errorf("GenerateVehicle: vehicle numbers below %d: %w", maxNumber, ErrNamespaceExhausted)
	}

	productionDate := g.dateThisDecade()
	return &dataobjects.Vehicle{
		VehicleNumber:           free[g.fake.Number(0, len(free)-1)],
		ProductionDate:          productionDate,
		LastTechnicalInspection: g.dateBetween(productionDate, time.Now()),
		Type: dataobjects.VehicleType(g.weighted(
			[]string{string(dataobjects.VehicleTypeBus), string(dataobjects.VehicleTypeTram)},
			[]float32{0.8, 0.2})),
		Status: dataobjects.VehicleStatus(g.weighted(
			[]string{string(dataobjects.VehicleStatusInactive), string(dataobjects.VehicleStatusActive)},
			[]float32{0.1, 0.9})),
		AirConditioning: g.chance(75),
		Capacity:        g.fake.RandomInt(vehicleCapacities),
	}, nil
}

// GenerateDriversLicense produces a license issued this decade and
// expiring 6 to 180 years later, in 30-day steps
func (g *Generator) GenerateDriversLicense() (*dataobjects.DriversLicense, error) {
	issuedOn := g.dateThisDecade()
	days := 6*365 + 30*g.fake.Number(0, (180*365-6*365)/30)
	return &dataobjects.DriversLicense{
		IssuedOn:  issuedOn,
		ExpiresOn: issuedOn.AddDate(0, 0, days),
	}, nil
}

// GenerateDriver claims an unclaimed user and an unassigned license.
// When no license is free, a new one is generated and persisted.
func (g *Generator) GenerateDriver() (*dataobjects.Driver, error) {
	licenses, err := g.repo.DriversLicenses()
	if err != nil {
		return nil, fmt.Errorf("GenerateDriver: %w", err)
	}
	drivers, err := g.repo.Drivers()
	if err != nil {
		return nil, fmt.Errorf("GenerateDriver: %w", err)
	}
	assigned := make(map[int]bool)
	for _, driver := range drivers {
		assigned[driver.License.ID] = true
	}
	available := []*dataobjects.DriversLicense{}
	for _, license := range licenses {
		if !assigned[license.ID] {
			available = append(available, license)
		}
	}

	user, err := g.AllocateUser()
	if err != nil {
		return nil, err
	}

	if len(available) == 0 {
		license, err := g.GenerateDriversLicense()
		if err != nil {
			return nil, err
		}
		if err := g.repo.InsertDriversLicense(license); err != nil {
			return nil, fmt.Errorf("GenerateDriver: %w", err)
		}
		return &dataobjects.Driver{User: user, License: license}, nil
	}
	return &dataobjects.Driver{
		User:    user,
		License: available[g.fake.Number(0, len(available)-1)],
	}, nil
}

// GenerateTechnicalIssue produces an issue on a random vehicle reported
// by a random driver. Resolve date and repair cost are only set for
// resolved issues.
func (g *Generator) GenerateTechnicalIssue() (*dataobjects.TechnicalIssue, error) {
	vehicles, err := g.repo.Vehicles()
	if err != nil {
		return nil, fmt.Errorf("GenerateTechnicalIssue: %w", err)
	}
	drivers, err := g.repo.Drivers()
	if err != nil {
		return nil, fmt.Errorf("GenerateTechnicalIssue: %w", err)
	}
	if len(vehicles) == 0 || len(drivers) == 0 {
		return nil, fmt.Errorf("GenerateTechnicalIssue: needs vehicles and drivers: %w", ErrInsufficientData)
	}

	reportDate := g.dateThisDecade()
	status := dataobjects.TechnicalIssueStatus(g.weighted(
		[]string{
			string(dataobjects.TechnicalIssueStatusReported),
			string(dataobjects.TechnicalIssueStatusInProgress),
			string(dataobjects.TechnicalIssueStatusResolved),
		},
		[]float32{0.2, 0.3, 0.5}))

	issue := &dataobjects.TechnicalIssue{
		Description: truncate(g.fake.Sentence(12), 254),
		ReportDate:  reportDate,
		Status:      status,
		Vehicle:     vehicles[g.fake.Number(0, len(vehicles)-1)],
		Driver:      drivers[g.fake.Number(0, len(drivers)-1)],
	}
	if status == dataobjects.TechnicalIssueStatusResolved {
		resolveDate := g.dateBetween(reportDate, time.Now())
		issue.ResolveDate = &resolveDate
		issue.RepairCost = float64(g.fake.Number(50, 5000))
	}
	return issue, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
