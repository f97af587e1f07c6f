package dataobjects

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"
)

// TechnicalIssue is a reported defect on a vehicle. ResolveDate is set
// and RepairCost is nonzero only once the issue is resolved.
type TechnicalIssue struct {
	ID          int
	Description string
	ReportDate  time.Time
	ResolveDate *time.Time
	Driver      *Driver
	Vehicle     *Vehicle
	Status      TechnicalIssueStatus
	RepairCost  float64
}

// GetTechnicalIssues returns a slice with all registered technical issues
func GetTechnicalIssues(node sqalx.Node) ([]*TechnicalIssue, error) {
	return getTechnicalIssuesWithSelect(node, sdb.Select())
}

func getTechnicalIssuesWithSelect(node sqalx.Node, sbuilder sq.SelectBuilder) ([]*TechnicalIssue, error) {
	issues := []*TechnicalIssue{}

	tx, err := node.Beginx()
	if err != nil {
		return issues, err
	}
	defer tx.Commit() // read-only tx

	rows, err := sbuilder.Columns("id_technical_issue", "description", "report_date",
		"resolve_date", "fk_driver", "fk_vehicle", "status", "repair_cost").
		From("technical_issues").
		RunWith(tx).Query()
	if err != nil {
		return issues, fmt.Errorf("getTechnicalIssuesWithSelect: %s", err)
	}
	defer rows.Close()

	var driverIDs, vehicleIDs []int
	for rows.Next() {
		var issue TechnicalIssue
		var resolveDate sql.NullTime
		var driverID, vehicleID int
		err := rows.Scan(
			&issue.ID,
			&issue.Description,
			&issue.ReportDate,
			&resolveDate,
			&driverID,
			&vehicleID,
			&issue.Status,
			&issue.RepairCost)
		if err != nil {
			return issues, fmt.Errorf("getTechnicalIssuesWithSelect: %s", err)
		}
		if resolveDate.Valid {
			issue.ResolveDate = &resolveDate.Time
		}
		issues = append(issues, &issue)
		driverIDs = append(driverIDs, driverID)
		vehicleIDs = append(vehicleIDs, vehicleID)
	}
	if err := rows.Err(); err != nil {
		return issues, fmt.Errorf("getTechnicalIssuesWithSelect: %s", err)
	}
	for i := range issues {
		issues[i].Driver, err = GetDriver(tx, driverIDs[i])
		if err != nil {
			return issues, fmt.Errorf("getTechnicalIssuesWithSelect: %s", err)
		}
		issues[i].Vehicle, err = GetVehicle(tx, vehicleIDs[i])
		if err != nil {
			return issues, fmt.Errorf("getTechnicalIssuesWithSelect: %s", err)
		}
	}
	return issues, nil
}

// GetTechnicalIssue returns the TechnicalIssue with the given ID
func GetTechnicalIssue(node sqalx.Node, id int) (*TechnicalIssue, error) {
	s := sdb.Select().
		Where(sq.Eq{"id_technical_issue": id})
	issues, err := getTechnicalIssuesWithSelect(node, s)
	if err != nil {
		return nil, err
	}
	if len(issues) == 0 {
		return nil, errors.New("TechnicalIssue not found")
	}
	return issues[0], nil
}

// Update adds or updates the technical issue
func (issue *TechnicalIssue) Update(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var resolveDate sql.NullTime
	if issue.ResolveDate != nil {
		resolveDate = sql.NullTime{Time: *issue.ResolveDate, Valid: true}
	}

	if issue.ID == 0 {
		err = sdb.Insert("technical_issues").
			Columns("description", "report_date", "resolve_date",
				"fk_driver", "fk_vehicle", "status", "repair_cost").
			Values(issue.Description, issue.ReportDate, resolveDate,
				issue.Driver.ID, issue.Vehicle.ID, issue.Status, issue.RepairCost).
			Suffix("RETURNING id_technical_issue").
			RunWith(tx).QueryRow().Scan(&issue.ID)
	} else {
		_, err = sdb.Update("technical_issues").
			Set("description", issue.Description).
			Set("report_date", issue.ReportDate).
			Set("resolve_date", resolveDate).
			Set("fk_driver", issue.Driver.ID).
			Set("fk_vehicle", issue.Vehicle.ID).
			Set("status", issue.Status).
			Set("repair_cost", issue.RepairCost).
			Where(sq.Eq{"id_technical_issue": issue.ID}).
			RunWith(tx).Exec()
	}
	if err != nil {
		return errors.New("AddTechnicalIssue: " + err.Error())
	}
	return tx.Commit()
}

// Delete deletes the technical issue
func (issue *TechnicalIssue) Delete(node sqalx.Node) error {
	tx, err := node.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = sdb.Delete("technical_issues").
		Where(sq.Eq{"id_technical_issue": issue.ID}).RunWith(tx).Exec()
	if err != nil {
		return fmt.Errorf("RemoveTechnicalIssue: %s", err)
	}
	return tx.Commit()
}
