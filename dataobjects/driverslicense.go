package dataobjects

import (
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// DriversLicense is a driving license held by at most one Driver
type DriversLicense struct {
	ID        int
	IssuedOn  time.Time
	ExpiresOn time.Time
}

// GetDriversLicenses returns a slice with all registered licenses
func GetDriversLicenses(node sqalx.Node) ([]*DriversLicense, error) {
	return getDriversLicensesWithSelect(node, sdb.Select())
}

func getDriversLicensesWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*DriversLicense, error) {
	licenses := []*DriversLicense{}

	tx, err := node.Beginx()
	if err != nil {
		return licenses, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_license", "issued_on", "expires_on").
		From("drivers_licenses").
		RunWith(tx).Query()
	if err != nil {
		return licenses, fmt.Errorf("getDriversLicensesWithSelect: %s", err)
	}
	defer rows.Close()

	for rows.Next() {
		var license DriversLicense
		err := rows.Scan(
			&license.ID,
			&license.IssuedOn,
			&license.ExpiresOn)
		if err != nil {
			return licenses, fmt.Errorf("getDriversLicensesWithSelect: %s", err)
		}
		licenses = append(licenses, &license)
	}
	if err := rows.Err(); err != nil {
		return licenses, fmt.Errorf("getDriversLicensesWithSelect: %s", err)
	}
	return licenses, nil
}

// GetDriversLicense returns the DriversLicense with the given ID
func GetDriversLicense(node sqalx.Node, id int) (*DriversLicense, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_license": id})
	licenses, err := getDriversLicensesWithSelect(node, s)
	if err != nil {
		return nil, err
	}
	if len(licenses) == 0 {
		return nil, errors.New("DriversLicense not found")
	}
	return licenses[0], nil
}

// Update adds or updates the license
func (license *DriversLicense) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if license.ID == 0 {
		err = sdb.Insert("drivers_licenses").
			Columns("issued_on", "expires_on").
			Values(license.IssuedOn, license.ExpiresOn).
			Suffix("RETURNING id_license").
			RunWith(tx).QueryRow().Scan(&license.ID)
	} else {
		_, err = sdb.Update("drivers_licenses").
			Set("issued_on", license.IssuedOn).
			Set("expires_on", license.ExpiresOn).
			Where(sq.Eq{"id_license": license.ID}).
			RunWith(tx).Exec()
	}
	if err != nil {
		return errors.New("AddDriversLicense: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the license
func (license *DriversLicense) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("drivers_licenses").
		Where(sq.Eq{"id_license": license.ID}).RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemoveDriversLicense: %s", err)
	}
	return tx.Commit()
}
