package generator

import (
	"fmt"

	"github.com/citytransit/transitseed/dataobjects"
)

// GenerateUser produces a user whose login and email collide with no
// existing user. The caller persists the result.
func (g *Generator) GenerateUser() (*dataobjects.AppUser, error) {
	users, err := g.repo.Users()
	if err != nil {
		return nil, fmt.Errorf("GenerateUser: %w", err)
	}

	usedLogins := make(map[string]bool)
	usedEmails := make(map[string]bool)
	for _, user := range users {
		usedLogins[user.Login] = true
		usedEmails[user.Email] = true
	}

	login, err := g.sampleUnique(usedLogins, g.fake.Username)
	if err != nil {
		return nil, fmt.Errorf("GenerateUser: login: %w", err)
	}
	email, err := g.sampleUnique(usedEmails, g.fake.Email)
	if err != nil {
		return nil, fmt.Errorf("GenerateUser: email: %w", err)
	}

	return &dataobjects.AppUser{
		Login:       login,
		Password:    g.fake.Password(true, true, true, false, false, 12),
		Email:       email,
		PhoneNumber: g.fake.Phone(),
		Name:        g.fake.FirstName(),
		Surname:     g.fake.LastName(),
	}, nil
}

// AllocateUser hands out a user not yet claimed by any of the four role
// tables. The roles partition the user pool: a user belongs to at most
// one of Driver, Passenger, TicketInspector, Editor. When every user is
// claimed a fresh user is generated and persisted immediately, so this
// never fails for lack of users.
func (g *Generator) AllocateUser() (*dataobjects.AppUser, error) {
	users, err := g.repo.Users()
	if err != nil {
		return nil, fmt.Errorf("AllocateUser: %w", err)
	}

	claimed := make(map[int]bool)
	drivers, err := g.repo.Drivers()
	if err != nil {
		return nil, fmt.Errorf("AllocateUser: %w", err)
	}
	for _, driver := range drivers {
		claimed[driver.User.ID] = true
	}
	passengers, err := g.repo.Passengers()
	if err != nil {
		return nil, fmt.Errorf("AllocateUser: %w", err)
	}
	for _, passenger := range passengers {
		claimed[passenger.User.ID] = true
	}
	inspectors, err := g.repo.TicketInspectors()
	if err != nil {
		return nil, fmt.Errorf("AllocateUser: %w", err)
	}
	for _, inspector := range inspectors {
		claimed[inspector.User.ID] = true
	}
	editors, err := g.repo.Editors()
	if err != nil {
		return nil, fmt.Errorf("AllocateUser: %w", err)
	}
	for _, editor := range editors {
		claimed[editor.User.ID] = true
	}

	available := []*dataobjects.AppUser{}
	for _, user := range users {
		if !claimed[user.ID] {
			available = append(available, user)
		}
	}
	if len(available) > 0 {
		return available[g.fake.Number(0, len(available)-1)], nil
	}

	user, err := g.GenerateUser()
	if err != nil {
		return nil, err
	}
	if err := g.repo.InsertUser(user); err != nil {
		return nil, fmt.Errorf("AllocateUser: %w", err)
	}
	return user, nil
}

// GeneratePassenger wraps an unclaimed user in the passenger role
func (g *Generator) GeneratePassenger() (*dataobjects.Passenger, error) {
	user, err := g.AllocateUser()
	if err != nil {
		return nil, err
	}
	return &dataobjects.Passenger{User: user}, nil
}

// GenerateTicketInspector wraps an unclaimed user in the inspector role
func (g *Generator) GenerateTicketInspector() (*dataobjects.TicketInspector, error) {
	user, err := g.AllocateUser()
	if err != nil {
		return nil, err
	}
	return &dataobjects.TicketInspector{User: user}, nil
}

// GenerateEditor wraps an unclaimed user in the editor role
func (g *Generator) GenerateEditor() (*dataobjects.Editor, error) {
	user, err := g.AllocateUser()
	if err != nil {
		return nil, err
	}
	return &dataobjects.Editor{User: user}, nil
}
