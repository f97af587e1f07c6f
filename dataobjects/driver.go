package dataobjects

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// Driver is a vehicle driver. Each driver claims one user account and
// one license, neither shared with any other driver.
type Driver struct {
	ID      int
	License *DriversLicense
	User    *AppUser
}

// GetDrivers returns a slice with all registered drivers
func GetDrivers(node sqalx.Node) ([]*Driver, error) {
	return getDriversWithSelect(node, sdb.Select())
}

func getDriversWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*Driver, error) {
	drivers := []*Driver{}

	tx, err := node.Beginx()
	if err != nil {
		return drivers, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_driver", "fk_license", "fk_user").
		From("drivers").
		RunWith(tx).Query()
	if err != nil {
		return drivers, fmt.Errorf("getDriversWithSelect: %s", err)
	}
	defer rows.Close()

	var licenseIDs, userIDs []int
	for rows.Next() {
		var driver Driver
		var licenseID, userID int
		err := rows.Scan(
			&driver.ID,
			&licenseID,
			&userID)
		if err != nil {
			return drivers, fmt.Errorf("getDriversWithSelect: %s", err)
		}
		drivers = append(drivers, &driver)
		licenseIDs = append(licenseIDs, licenseID)
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return drivers, fmt.Errorf("getDriversWithSelect: %s", err)
	}
	for i := range drivers {
		drivers[i].License, err = GetDriversLicense(tx, licenseIDs[i])
		if err != nil {
			return drivers, fmt.Errorf("getDriversWithSelect: %s", err)
		}
		drivers[i].User, err = GetAppUser(tx, userIDs[i])
		if err != nil {
			return drivers, fmt.Errorf("getDriversWithSelect: %s", err)
		}
	}
	return drivers, nil
}

// GetDriver returns the Driver with the given ID
func GetDriver(node sqalx.Node, id int) (*Driver, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_driver": id})
	drivers, err := getDriversWithSelect(node, s)
	if err != nil {
		return nil, err
	}
	if len(drivers) == 0 {
		return nil, errors.New("Driver not found")
	}
	return drivers[0], nil
}

// Update adds or updates the driver
func (driver *Driver) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if driver.ID == 0 {
		err = sdb.Insert("drivers").
			Columns("fk_license", "fk_user").
			Values(driver.License.ID, driver.User.ID).
			Suffix("RETURNING id_driver").
			RunWith(tx).QueryRow().Scan(&driver.ID)
	} else {
		_, err = sdb.Update("drivers").
			Set("fk_license", driver.License.ID).
			Set("fk_user", driver.User.ID).
			Where(sq.Eq{"id_driver": driver.ID}).
			RunWith(tx).Exec()
	}
	if err != nil {
		return errors.New("AddDriver: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the driver
func (driver *Driver) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("drivers").
		Where(sq.Eq{"id_driver": driver.ID}).RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemoveDriver: %s", err)
	}
	return tx.Commit()
}
