package reports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehiclesOverdueInspectionSQL(t *testing.T) {
	report := VehiclesOverdueInspection()

	sqlText, args, err := report.SQL()
	require.NoError(t, err)

	assert.Contains(t, sqlText, "FROM vehicles")
	assert.Contains(t, sqlText, "last_technical_inspection < CURRENT_TIMESTAMP - INTERVAL '1 year'")
	assert.Contains(t, sqlText, "ORDER BY last_technical_inspection ASC")
	assert.Empty(t, args)
	assert.Equal(t, len(report.Columns), strings.Count(sqlText[:strings.Index(sqlText, "FROM")], ",")+1)
}

func TestUnresolvedTechnicalIssuesSQL(t *testing.T) {
	report := UnresolvedTechnicalIssues()

	sqlText, args, err := report.SQL()
	require.NoError(t, err)

	assert.Contains(t, sqlText, "FROM technical_issues")
	assert.Contains(t, sqlText, "JOIN vehicles ON vehicles.id_vehicle = technical_issues.fk_vehicle")
	assert.Contains(t, sqlText, "technical_issues.status <> $1")
	assert.Contains(t, sqlText, "ORDER BY technical_issues.report_date ASC")
	require.Len(t, args, 1)
	assert.Equal(t, "Resolved", args[0])
}

func TestFinesPerInspectorSQL(t *testing.T) {
	report := FinesPerInspector()

	sqlText, args, err := report.SQL()
	require.NoError(t, err)

	assert.Contains(t, sqlText, "COUNT(fines.id_fine) AS fine_count")
	assert.Contains(t, sqlText, "JOIN app_users ON app_users.id_user = ticket_inspectors.fk_user")
	assert.Contains(t, sqlText, "LEFT JOIN fines ON fines.fk_inspector = ticket_inspectors.id_inspector")
	assert.Contains(t, sqlText, "GROUP BY")
	assert.Contains(t, sqlText, "ORDER BY fine_count DESC")
	assert.Empty(t, args)
}

func TestAllReturnsEveryReportOnce(t *testing.T) {
	all := All()
	require.Len(t, all, 3)

	names := make(map[string]bool)
	for _, report := range all {
		assert.NotEmpty(t, report.Columns)
		assert.False(t, names[report.Name], "duplicate report %s", report.Name)
		names[report.Name] = true

		_, _, err := report.SQL()
		assert.NoError(t, err)
	}
}
