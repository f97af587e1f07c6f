package generator

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/citytransit/transitseed/dataobjects"
)

// Coordinate bounds and walk origin for stop placement. The box covers
// the city and its surroundings; each stop takes a random walk step
// from the origin (or a caller-supplied position) that stays inside.
const (
	MinLatitude  = 50.05
	MaxLatitude  = 52.15
	MinLongitude = 16.5
	MaxLongitude = 17.5

	defaultLatitude  = 51.107883
	defaultLongitude = 17.038538
)

// StopParams optionally pins down parts of a generated stop
type StopParams struct {
	// Latitude and Longitude set the random walk origin; zero values
	// mean the default city-center origin.
	Latitude  float64
	Longitude float64
	// Type forces the stop type instead of drawing it.
	Type dataobjects.StopType
}

// GenerateStop produces a stop with a unique name and coordinates
// inside the city bounding box
func (g *Generator) GenerateStop(params *StopParams) (*dataobjects.Stop, error) {
	if params == nil {
		params = &StopParams{}
	}
	latitude := params.Latitude
	if latitude == 0 {
		latitude = defaultLatitude
	}
	longitude := params.Longitude
	if longitude == 0 {
		longitude = defaultLongitude
	}

	stops, err := g.repo.Stops()
	if err != nil {
		return nil, fmt.Errorf("GenerateStop: %w", err)
	}
	usedNames := make(map[string]bool)
	for _, stop := range stops {
		usedNames[stop.Name] = true
	}
	name, err := g.sampleUnique(usedNames, g.fake.Street)
	if err != nil {
		return nil, fmt.Errorf("GenerateStop: name: %w", err)
	}

	stopType := params.Type
	if stopType == "" {
		stopType = dataobjects.StopType(g.weighted(
			[]string{
				string(dataobjects.StopTypeBus),
				string(dataobjects.StopTypeTram),
				string(dataobjects.StopTypeBusTram),
			},
			[]float32{0.6, 0.2, 0.2}))
	}

	latitude, err = g.walkCoordinate(latitude, MinLatitude, MaxLatitude)
	if err != nil {
		return nil, fmt.Errorf("GenerateStop: latitude: %w", err)
	}
	longitude, err = g.walkCoordinate(longitude, MinLongitude, MaxLongitude)
	if err != nil {
		return nil, fmt.Errorf("GenerateStop: longitude: %w", err)
	}

	return &dataobjects.Stop{
		Name:             name,
		Type:             stopType,
		Latitude:         latitude,
		Longitude:        longitude,
		SeatingAvailable: g.chance(80),
		Shelter:          g.chance(75),
	}, nil
}

// GeneratePath produces a path; travel time is derived from distance at
// 35 km/h plus one minute of dwell per stop
func (g *Generator) GeneratePath() (*dataobjects.Path, error) {
	distance := g.fake.Number(5, 50)
	numberOfStops := g.fake.Number(15, 30)
	return &dataobjects.Path{
		Distance:            float64(distance),
		NumberOfStops:       numberOfStops,
		EstimatedTravelTime: int(float64(distance)/35*60) + numberOfStops,
	}, nil
}

// GenerateLine produces a line with a unique number over an existing
// path. Numbers are up to three digits with an occasional letter
// suffix; the suffix weights are relative, not probabilities.
func (g *Generator) GenerateLine() (*dataobjects.Line, error) {
	paths, err := g.repo.Paths()
	if err != nil {
		return nil, fmt.Errorf("GenerateLine: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("GenerateLine: needs paths: %w", ErrInsufficientData)
	}

	lines, err := g.repo.Lines()
	if err != nil {
		return nil, fmt.Errorf("GenerateLine: %w", err)
	}
	usedNumbers := make(map[string]bool)
	for _, line := range lines {
		usedNumbers[line.Number] = true
	}
	number, err := g.sampleUnique(usedNumbers, func() string {
		suffix := g.weighted(
			[]string{"A", "B", "C", "D", ""},
			[]float32{0.2, 0.02, 0.02, 0.02, 0.92})
		return strconv.Itoa(g.fake.Number(0, 999)) + suffix
	})
	if err != nil {
		return nil, fmt.Errorf("GenerateLine: number: %w", err)
	}

	return &dataobjects.Line{
		Number:       number,
		MainPath:     paths[g.fake.Number(0, len(paths)-1)],
		AvgFrequency: g.fake.Number(5, 90),
	}, nil
}

// GeneratePathStops picks NumberOfStops distinct stops for the path and
// assigns each the minute it is reached. The first pick anchors the
// path; the remaining stops are visited in order of increasing distance
// from it, each minute a proportional share of the travel time.
func (g *Generator) GeneratePathStops(path *dataobjects.Path) ([]*dataobjects.PathStop, error) {
	stops, err := g.repo.Stops()
	if err != nil {
		return nil, fmt.Errorf("GeneratePathStops: %w", err)
	}
	if len(stops) < path.NumberOfStops {
		return nil, fmt.Errorf("GeneratePathStops: %d stops exist, path needs %d: %w",
			len(stops), path.NumberOfStops, ErrInsufficientData)
	}

	shuffled := make([]*dataobjects.Stop, len(stops))
	copy(shuffled, stops)
	g.fake.ShuffleAnySlice(shuffled)
	chosen := shuffled[:path.NumberOfStops]

	initial := chosen[0]
	rest := chosen[1:]
	sort.Slice(rest, func(i, j int) bool {
		return rest[i].DistanceTo(initial) < rest[j].DistanceTo(initial)
	})

	pathStops := make([]*dataobjects.PathStop, len(chosen))
	for i, stop := range chosen {
		pathStops[i] = &dataobjects.PathStop{
			Path:       path,
			Stop:       stop,
			PathMinute: int(float64(path.EstimatedTravelTime) / float64(path.NumberOfStops) * float64(i+1)),
		}
	}
	return pathStops, nil
}

// GenerateRide produces a ride of a random line with a random vehicle
// and driver. The ride's path is always the line's main path, and the
// weekday column is derived from the start time.
func (g *Generator) GenerateRide() (*dataobjects.Ride, error) {
	lines, err := g.repo.Lines()
	if err != nil {
		return nil, fmt.Errorf("GenerateRide: %w", err)
	}
	vehicles, err := g.repo.Vehicles()
	if err != nil {
		return nil, fmt.Errorf("GenerateRide: %w", err)
	}
	drivers, err := g.repo.Drivers()
	if err != nil {
		return nil, fmt.Errorf("GenerateRide: %w", err)
	}
	if len(lines) == 0 || len(vehicles) == 0 || len(drivers) == 0 {
		return nil, fmt.Errorf("GenerateRide: needs lines, vehicles and drivers: %w", ErrInsufficientData)
	}

	line := lines[g.fake.Number(0, len(lines)-1)]
	startTime := g.dateThisDecade()
	return &dataobjects.Ride{
		Line:      line,
		Path:      line.MainPath,
		Vehicle:   vehicles[g.fake.Number(0, len(vehicles)-1)],
		Driver:    drivers[g.fake.Number(0, len(drivers)-1)],
		StartTime: startTime,
		Weekday:   dataobjects.WeekdayFromTime(startTime),
	}, nil
}
