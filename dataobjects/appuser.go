package dataobjects

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// AppUser is an account in the transit system. Role tables (Driver,
// Passenger, TicketInspector, Editor) each wrap exactly one AppUser.
type AppUser struct {
	ID          int
	Login       string
	Password    string
	Email       string
	PhoneNumber string
	Name        string
	Surname     string
}

// GetAppUsers returns a slice with all registered users
func GetAppUsers(node sqalx.Node) ([]*AppUser, error) {
	return getAppUsersWithSelect(node, sdb.Select())
}

func getAppUsersWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*AppUser, error) {
	users := []*AppUser{}

	tx, err := node.Beginx()
	if err != nil {
		return users, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_user", "login", "password", "email", "phone_number", "name", "surname").
		From("app_users").
		RunWith(tx).Query()
	if err != nil {
		return users, fmt.Errorf("getAppUsersWithSelect: %s", err)
	}
	defer rows.Close()

	for rows.Next() {
		var user AppUser
		err := rows.Scan(
			&user.ID,
			&user.Login,
			&user.Password,
			&user.Email,
			&user.PhoneNumber,
			&user.Name,
			&user.Surname)
		if err != nil {
			return users, fmt.Errorf("getAppUsersWithSelect: %s", err)
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return users, fmt.Errorf("getAppUsersWithSelect: %s", err)
	}
	return users, nil
}

// GetAppUser returns the AppUser with the given ID
func GetAppUser(node sqalx.Node, id int) (*AppUser, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_user": id})
	users, err := getAppUsersWithSelect(node, s)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, errors.New("AppUser not found")
	}
	return users[0], nil
}

// Update adds or updates the user
func (user *AppUser) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if user.ID == 0 {
		err = sdb.Insert("app_users").
			Columns("login", "password", "email", "phone_number", "name", "surname").
			Values(user.Login, user.Password, user.Email, user.PhoneNumber, user.Name, user.Surname).
			Suffix("RETURNING id_user").
			RunWith(tx).QueryRow().Scan(&user.ID)
	} else {
		_, err = sdb.Update("app_users").
			Set("login", user.Login).
			Set("password", user.Password).
			Set("email", user.Email).
			Set("phone_number", user.PhoneNumber).
			Set("name", user.Name).
			Set("surname", user.Surname).
			Where(sq.Eq{"id_user": user.ID}).
			RunWith(tx).Exec()
	}
	if err != nil {
		return errors.New("AddAppUser: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the user
func (user *AppUser) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("app_users").
		Where(sq.Eq{"id_user": user.ID}).RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemoveAppUser: %s", err)
	}
	return tx.Commit()
}
