package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	hjson "github.com/hjson/hjson-go/v4"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/techridge/demand/internal/domain"
)

// Sanity ranges for compensation data. Values outside these produce
// warnings, not errors: unusual data is worth flagging but may be real.
var (
	minBaseSalary = decimal.NewFromInt(25000)
	maxBaseSalary = decimal.NewFromInt(500000)
	minOTE        = decimal.NewFromInt(25000)
	maxOTE        = decimal.NewFromInt(1000000)

	splitTolerance = decimal.NewFromFloat(0.01)
)

// RosterLoader parses and validates employer roster files. YAML, JSON and
// HJSON files are supported; a file holds either a {"companies": [...]}
// document or a single employer object.
type RosterLoader struct{}

// NewRosterLoader creates a new roster loader.
func NewRosterLoader() *RosterLoader {
	return &RosterLoader{}
}

// LoadFile loads and validates the employers in a single roster file.
// Validation errors reject the whole file.
func (rl *RosterLoader) LoadFile(path string) ([]domain.Employer, error) {
	employers, err := rl.ParseFile(path)
	if err != nil {
		return nil, err
	}
	report := &Report{FilesChecked: 1}
	rl.validateEmployers(employers, filepath.Base(path), report)
	if err := report.Err(); err != nil {
		return nil, err
	}
	return employers, nil
}

// LoadDir loads and validates every roster file in a directory. Files named
// supply.* are skipped (different schema). Files are processed in sorted
// order so the resulting roster is deterministic.
func (rl *RosterLoader) LoadDir(dir string) ([]domain.Employer, error) {
	paths, err := rl.rosterPaths(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no roster files found in %s", dir)
	}

	var employers []domain.Employer
	report := &Report{}
	for _, path := range paths {
		report.FilesChecked++
		fileEmployers, err := rl.ParseFile(path)
		if err != nil {
			return nil, err
		}
		rl.validateEmployers(fileEmployers, filepath.Base(path), report)
		employers = append(employers, fileEmployers...)
	}
	if err := report.Err(); err != nil {
		return nil, err
	}
	return employers, nil
}

// ParseFile parses a roster file without validating it.
func (rl *RosterLoader) ParseFile(path string) ([]domain.Employer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var doc struct {
		Companies []domain.Employer `yaml:"companies" json:"companies"`
	}
	if err := rl.decode(data, path, &doc); err != nil {
		return nil, err
	}
	if len(doc.Companies) > 0 {
		return doc.Companies, nil
	}

	// Fall back to a single employer object.
	var single domain.Employer
	if err := rl.decode(data, path, &single); err != nil {
		return nil, err
	}
	if single.Name == "" {
		return nil, fmt.Errorf("%s: file must contain a companies list or a single employer with a name", path)
	}
	return []domain.Employer{single}, nil
}

// Validate checks a set of employers against the roster rules and returns
// the full report, warnings included.
func (rl *RosterLoader) Validate(employers []domain.Employer, source string) *Report {
	report := &Report{}
	rl.validateEmployers(employers, source, report)
	return report
}

// ValidateDir parses every roster file in a directory and reports all
// issues, including parse failures, without rejecting anything.
func (rl *RosterLoader) ValidateDir(dir string) (*Report, error) {
	paths, err := rl.rosterPaths(dir)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, path := range paths {
		report.FilesChecked++
		employers, err := rl.ParseFile(path)
		if err != nil {
			report.add(SeverityError, filepath.Base(path), "parse failed: %v", err)
			continue
		}
		rl.validateEmployers(employers, filepath.Base(path), report)
	}
	return report, nil
}

// LoadSupply loads the supply configuration from a YAML, JSON or HJSON file.
func (rl *RosterLoader) LoadSupply(path string) (*domain.SupplyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	var cfg domain.SupplyConfig
	if err := rl.decode(data, path, &cfg); err != nil {
		return nil, err
	}
	for i, p := range cfg.Products {
		if p.Name == "" {
			return nil, fmt.Errorf("%s: supply product %d has no name", path, i)
		}
		if p.Units.Sign() < 0 {
			return nil, fmt.Errorf("%s: supply product %s has negative units", path, p.Name)
		}
	}
	return &cfg, nil
}

func (rl *RosterLoader) rosterPaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" && ext != ".json" && ext != ".hjson" {
			continue
		}
		if strings.TrimSuffix(name, ext) == "supply" {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}

func (rl *RosterLoader) decode(data []byte, path string, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML in %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON in %s: %w", path, err)
		}
	case ".hjson":
		// HJSON is normalized to JSON first so decimal fields decode the
		// same way in both formats.
		var raw any
		if err := hjson.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse HJSON in %s: %w", path, err)
		}
		normalized, err := json.Marshal(raw)
		if err != nil {
			return fmt.Errorf("failed to normalize HJSON in %s: %w", path, err)
		}
		if err := json.Unmarshal(normalized, v); err != nil {
			return fmt.Errorf("failed to parse HJSON in %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported roster format: %s", path)
	}
	return nil
}

func (rl *RosterLoader) validateEmployers(employers []domain.Employer, source string, report *Report) {
	seen := make(map[string]bool, len(employers))
	for i := range employers {
		employer := &employers[i]
		if employer.Name == "" {
			report.add(SeverityError, source, "employer %d has no name", i)
			continue
		}
		if seen[employer.Name] {
			report.add(SeverityError, source, "duplicate employer name %q", employer.Name)
			continue
		}
		seen[employer.Name] = true
		rl.validateEmployer(employer, source, report)
	}
}

func (rl *RosterLoader) validateEmployer(employer *domain.Employer, source string, report *Report) {
	name := employer.Name

	if employer.BaseYear == 0 {
		report.add(SeverityError, source, "%s: base_year is required", name)
	} else if employer.BaseYear < 2020 || employer.BaseYear > 2035 {
		report.add(SeverityWarning, source, "%s: base_year %d seems unusual", name, employer.BaseYear)
	}

	if employer.EmployeeCount.Sign() <= 0 {
		report.add(SeverityError, source, "%s: employee_count must be positive (%s)", name, employer.EmployeeCount)
	}

	if len(employer.Roles) == 0 {
		report.add(SeverityWarning, source, "%s: no roles defined", name)
	}

	titles := make(map[string]bool, len(employer.Roles))
	for i := range employer.Roles {
		role := &employer.Roles[i]
		if role.Title == "" {
			report.add(SeverityError, source, "%s: role %d has no title", name, i)
			continue
		}
		if titles[role.Title] {
			report.add(SeverityError, source, "%s: duplicate role title %q", name, role.Title)
			continue
		}
		titles[role.Title] = true
		rl.validateRole(role, name, source, report)
	}

	// Role counts should roughly match the employer headcount.
	totalRoleCount := employer.TotalRoleCount()
	if employer.EmployeeCount.Sign() > 0 && totalRoleCount.Sign() > 0 {
		diff := totalRoleCount.Sub(employer.EmployeeCount).Abs()
		if diff.GreaterThan(employer.EmployeeCount.Mul(decimal.NewFromFloat(0.1))) {
			report.add(SeverityWarning, source,
				"%s: role counts sum to %s but employee_count is %s",
				name, totalRoleCount, employer.EmployeeCount)
		}
	}

	for i, anchor := range employer.ProjectionYears {
		if anchor.Year == 0 {
			report.add(SeverityError, source, "%s: projection_years[%d] missing year", name, i)
		}
		if anchor.EmployeeCount.Sign() <= 0 {
			report.add(SeverityError, source, "%s: projection_years[%d] employee_count must be positive", name, i)
		}
	}
}

func (rl *RosterLoader) validateRole(role *domain.Role, employer, source string, report *Report) {
	label := fmt.Sprintf("%s role %q", employer, role.Title)

	if role.Count.Sign() < 0 {
		report.add(SeverityError, source, "%s: count cannot be negative (%s)", label, role.Count)
	} else if role.Count.IsZero() {
		report.add(SeverityWarning, source, "%s: count is 0 (role may be unused)", label)
	}

	if role.BaseSalary.LessThan(minBaseSalary) || role.BaseSalary.GreaterThan(maxBaseSalary) {
		report.add(SeverityWarning, source, "%s: base_salary %s outside expected range $%s-$%s",
			label, role.BaseSalary, minBaseSalary, maxBaseSalary)
	}
	if role.OTE.LessThan(minOTE) || role.OTE.GreaterThan(maxOTE) {
		report.add(SeverityWarning, source, "%s: ote %s outside expected range $%s-$%s",
			label, role.OTE, minOTE, maxOTE)
	}
	if role.OTE.LessThan(role.BaseSalary) {
		report.add(SeverityWarning, source, "%s: ote (%s) is less than base_salary (%s)",
			label, role.OTE, role.BaseSalary)
	}

	rl.validateSplit(role.HouseholdSplit, label, source, report)
}

func (rl *RosterLoader) validateSplit(split domain.HouseholdSplit, label, source string, report *Report) {
	weights := map[string]decimal.Decimal{
		string(domain.HouseholdSingle):       split.Single,
		string(domain.HouseholdDualModerate): split.DualModerate,
		string(domain.HouseholdDualPeer):     split.DualPeer,
	}
	for field, value := range weights {
		if value.Sign() < 0 || value.GreaterThan(decimal.NewFromInt(1)) {
			report.add(SeverityError, source, "%s: household_split[%s] = %s, must be between 0 and 1",
				label, field, value)
		}
	}

	total := split.Sum()
	if total.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(splitTolerance) {
		report.add(SeverityError, source, "%s: household split sums to %s, expected 1.0", label, total)
	}
}
