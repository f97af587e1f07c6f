// Package reports contains the fixed read-only queries offered over a
// seeded database. Each report exposes its SQL so it can be printed and
// reused outside the tool, and can also be executed in-process.
package reports

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gbl08ma/sqalx"

	"github.com/citytransit/transitseed/dataobjects"
)

var sdb sq.StatementBuilderType

func init() {
	sdb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Report is one of the fixed queries
type Report struct {
	Name    string
	Columns []string
	builder sq.SelectBuilder
}

// SQL returns the query text and its bound arguments
func (r Report) SQL() (string, []interface{}, error) {
	return r.builder.ToSql()
}

// Run executes the report against the database and returns the result
// rows with every column rendered as a string
func (r Report) Run(node sqalx.Node) ([][]string, error) {
	results := [][]string{}

	tx, err := node.Beginx()
	if err != nil {
		return results, err
	}
	defer tx.Commit() // read-only tx

	rows, err := r.builder.RunWith(tx).Query()
	if err != nil {
		return results, fmt.Errorf("Run: %s: %s", r.Name, err)
	}
	defer rows.Close()

	for rows.Next() {
		values := make([]interface{}, len(r.Columns))
		pointers := make([]interface{}, len(r.Columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return results, fmt.Errorf("Run: %s: %s", r.Name, err)
		}
		row := make([]string, len(values))
		for i, value := range values {
			row[i] = formatValue(value)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return results, fmt.Errorf("Run: %s: %s", r.Name, err)
	}
	return results, nil
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// VehiclesOverdueInspection lists vehicles whose last technical
// inspection happened over a year ago, oldest inspection first
func VehiclesOverdueInspection() Report {
	return Report{
		Name:    "vehicles-overdue-inspection",
		Columns: []string{"id_vehicle", "vehicle_number", "type", "status", "last_technical_inspection"},
		builder: sdb.Select("id_vehicle", "vehicle_number", "type", "status", "last_technical_inspection").
			From("vehicles").
			Where("last_technical_inspection < CURRENT_TIMESTAMP - INTERVAL '1 year'").
			OrderBy("last_technical_inspection ASC"),
	}
}

// UnresolvedTechnicalIssues lists technical issues still open, with the
// affected vehicle, oldest report first
func UnresolvedTechnicalIssues() Report {
	return Report{
		Name: "unresolved-technical-issues",
		Columns: []string{"id_technical_issue", "description", "report_date", "status",
			"vehicle_number", "vehicle_type"},
		builder: sdb.Select("technical_issues.id_technical_issue", "technical_issues.description",
			"technical_issues.report_date", "technical_issues.status",
			"vehicles.vehicle_number", "vehicles.type AS vehicle_type").
			From("technical_issues").
			Join("vehicles ON vehicles.id_vehicle = technical_issues.fk_vehicle").
			Where(sq.NotEq{"technical_issues.status": string(dataobjects.TechnicalIssueStatusResolved)}).
			OrderBy("technical_issues.report_date ASC"),
	}
}

// FinesPerInspector counts the fines each ticket inspector issued,
// including their user profile, most prolific first. Inspectors who
// never issued a fine appear with a count of zero.
func FinesPerInspector() Report {
	return Report{
		Name:    "fines-per-inspector",
		Columns: []string{"id_inspector", "login", "name", "surname", "fine_count"},
		builder: sdb.Select("ticket_inspectors.id_inspector", "app_users.login",
			"app_users.name", "app_users.surname",
			"COUNT(fines.id_fine) AS fine_count").
			From("ticket_inspectors").
			Join("app_users ON app_users.id_user = ticket_inspectors.fk_user").
			LeftJoin("fines ON fines.fk_inspector = ticket_inspectors.id_inspector").
			GroupBy("ticket_inspectors.id_inspector", "app_users.login",
				"app_users.name", "app_users.surname").
			OrderBy("fine_count DESC"),
	}
}

// All returns every report in presentation order
func All() []Report {
	return []Report{
		VehiclesOverdueInspection(),
		UnresolvedTechnicalIssues(),
		FinesPerInspector(),
	}
}
