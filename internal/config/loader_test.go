package config

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techridge/demand/internal/domain"
)

func TestLoadFile_YAMLCompanies(t *testing.T) {
	loader := NewRosterLoader()

	employers, err := loader.LoadFile(filepath.Join("testdata", "valid", "alpha.yaml"))
	require.NoError(t, err)
	require.Len(t, employers, 1)

	employer := employers[0]
	assert.Equal(t, "busybusy / AlignOps", employer.Name)
	assert.Equal(t, 2025, employer.BaseYear)
	assert.True(t, employer.EmployeeCount.Equal(decimal.NewFromInt(100)))
	require.Len(t, employer.Roles, 2)
	assert.True(t, employer.ScaleFactor(2028).Equal(decimal.NewFromFloat(1.5)))

	role := employer.Roles[1]
	assert.Equal(t, "AE (Mid-Market)", role.Title)
	assert.True(t, role.OTE.Equal(decimal.NewFromInt(95000)))
	assert.True(t, role.HouseholdSplit.Single.Equal(decimal.NewFromFloat(0.6)))
	assert.Equal(t, "sales", role.SegmentType)
}

func TestLoadFile_JSONSingleEmployer(t *testing.T) {
	loader := NewRosterLoader()

	employers, err := loader.LoadFile(filepath.Join("testdata", "valid", "beta.json"))
	require.NoError(t, err)
	require.Len(t, employers, 1)
	assert.Equal(t, "Vasion", employers[0].Name)
	assert.True(t, employers[0].Roles[0].BaseSalary.Equal(decimal.NewFromInt(72000)))
}

func TestLoadFile_HJSON(t *testing.T) {
	loader := NewRosterLoader()

	employers, err := loader.LoadFile(filepath.Join("testdata", "valid", "gamma.hjson"))
	require.NoError(t, err)
	require.Len(t, employers, 1)
	assert.Equal(t, "Zonos", employers[0].Name)
	assert.True(t, employers[0].Roles[0].HouseholdSplit.Sum().Equal(decimal.NewFromInt(1)))
}

func TestLoadFile_ValidationErrorsReject(t *testing.T) {
	loader := NewRosterLoader()

	_, err := loader.LoadFile(filepath.Join("testdata", "invalid", "bad.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "household split sums to")
	assert.Contains(t, err.Error(), "duplicate role title")
}

func TestLoadFile_Missing(t *testing.T) {
	loader := NewRosterLoader()

	_, err := loader.LoadFile(filepath.Join("testdata", "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadDir_MergesAndSkipsSupply(t *testing.T) {
	loader := NewRosterLoader()

	employers, err := loader.LoadDir(filepath.Join("testdata", "valid"))
	require.NoError(t, err)

	// alpha.yaml, beta.json and gamma.hjson in sorted order; supply.yaml is
	// skipped.
	require.Len(t, employers, 3)
	assert.Equal(t, "busybusy / AlignOps", employers[0].Name)
	assert.Equal(t, "Vasion", employers[1].Name)
	assert.Equal(t, "Zonos", employers[2].Name)
}

func TestValidateDir_ReportsWithoutRejecting(t *testing.T) {
	loader := NewRosterLoader()

	report, err := loader.ValidateDir(filepath.Join("testdata", "invalid"))
	require.NoError(t, err)

	assert.Equal(t, 1, report.FilesChecked)
	assert.True(t, report.HasErrors())

	// The first SDR role has a split summing to 0.8 and the second reuses
	// the title.
	assert.Len(t, report.Errors(), 2)
	require.Len(t, report.Warnings(), 1)
	assert.Contains(t, report.Warnings()[0].Message, "less than base_salary")
}

func TestValidate_CleanReport(t *testing.T) {
	loader := NewRosterLoader()
	employers := []domain.Employer{{
		Name:          "Zonos",
		BaseYear:      2025,
		EmployeeCount: decimal.NewFromInt(30),
		Roles: []domain.Role{{
			Title:      "Solutions Engineer",
			Count:      decimal.NewFromInt(30),
			BaseSalary: decimal.NewFromInt(98000),
			OTE:        decimal.NewFromInt(110000),
			HouseholdSplit: domain.HouseholdSplit{
				Single:       decimal.NewFromFloat(0.5),
				DualModerate: decimal.NewFromFloat(0.4),
				DualPeer:     decimal.NewFromFloat(0.1),
			},
		}},
	}}

	report := loader.Validate(employers, "inline")
	assert.False(t, report.HasErrors())
	assert.Empty(t, report.Warnings())
	assert.NoError(t, report.Err())
}

func TestValidate_HeadcountDriftWarns(t *testing.T) {
	loader := NewRosterLoader()
	employers := []domain.Employer{{
		Name:          "Vasion",
		BaseYear:      2025,
		EmployeeCount: decimal.NewFromInt(100),
		Roles: []domain.Role{{
			Title:      "CSM",
			Count:      decimal.NewFromInt(50),
			BaseSalary: decimal.NewFromInt(72000),
			OTE:        decimal.NewFromInt(84000),
			HouseholdSplit: domain.HouseholdSplit{
				Single:       decimal.NewFromFloat(0.4),
				DualModerate: decimal.NewFromFloat(0.4),
				DualPeer:     decimal.NewFromFloat(0.2),
			},
		}},
	}}

	report := loader.Validate(employers, "inline")
	assert.False(t, report.HasErrors())
	require.Len(t, report.Warnings(), 1)
	assert.Contains(t, report.Warnings()[0].Message, "role counts sum to")
}

func TestLoadSupply(t *testing.T) {
	loader := NewRosterLoader()

	cfg, err := loader.LoadSupply(filepath.Join("testdata", "valid", "supply.yaml"))
	require.NoError(t, err)
	require.Len(t, cfg.Products, 4)

	apartments := cfg.Products[0]
	assert.Equal(t, domain.ProductApartments, apartments.Name)
	assert.True(t, apartments.Units.Equal(decimal.NewFromInt(264)))
	assert.True(t, apartments.UnitsInYear(2025).IsZero())
	assert.True(t, apartments.UnitsInYear(2026).Equal(decimal.NewFromInt(264)))
}
