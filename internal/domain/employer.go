package domain

import (
	"github.com/shopspring/decimal"
)

// Role represents one segment of an employer's workforce sharing a single
// compensation profile.
type Role struct {
	Title          string          `yaml:"title" json:"title"`
	Count          decimal.Decimal `yaml:"count" json:"count"`
	BaseSalary     decimal.Decimal `yaml:"base_salary" json:"base_salary"`
	OTE            decimal.Decimal `yaml:"ote" json:"ote"` // base + typical variable comp
	HouseholdSplit HouseholdSplit  `yaml:"household_split" json:"household_split"`

	// Optional descriptive fields carried through from source data
	// (not used in calculations).
	IsEntryLevel bool   `yaml:"is_entry_level,omitempty" json:"is_entry_level,omitempty"`
	SegmentType  string `yaml:"segment_type,omitempty" json:"segment_type,omitempty"`
}

// HouseholdSplit holds the three archetype weights for a role. The weights
// must sum to 1.0 (validated at load time, not here).
type HouseholdSplit struct {
	Single       decimal.Decimal `yaml:"H1_single" json:"H1_single"`
	DualModerate decimal.Decimal `yaml:"H2_dual_moderate" json:"H2_dual_moderate"`
	DualPeer     decimal.Decimal `yaml:"H3_dual_peer" json:"H3_dual_peer"`
}

// Sum returns the total of the three weights.
func (hs HouseholdSplit) Sum() decimal.Decimal {
	return hs.Single.Add(hs.DualModerate).Add(hs.DualPeer)
}

// Weight returns the weight for a given household archetype.
func (hs HouseholdSplit) Weight(ht HouseholdType) decimal.Decimal {
	switch ht {
	case HouseholdSingle:
		return hs.Single
	case HouseholdDualModerate:
		return hs.DualModerate
	case HouseholdDualPeer:
		return hs.DualPeer
	}
	return decimal.Zero
}

// ProjectionAnchor is a (year, headcount) anchor point used to scale an
// employer's role counts to a target year.
type ProjectionAnchor struct {
	Year          int             `yaml:"year" json:"year"`
	EmployeeCount decimal.Decimal `yaml:"employee_count" json:"employee_count"`
}

// Employer represents a company with on-site or committed headcount near the
// development. Role data is anchored to BaseYear.
type Employer struct {
	Name            string             `yaml:"name" json:"name"`
	BaseYear        int                `yaml:"base_year" json:"base_year"`
	EmployeeCount   decimal.Decimal    `yaml:"employee_count" json:"employee_count"`
	ProjectionYears []ProjectionAnchor `yaml:"projection_years,omitempty" json:"projection_years,omitempty"`
	Roles           []Role             `yaml:"roles" json:"roles"`
}

// Anchor returns the projection anchor for a given year, if one exists.
func (e *Employer) Anchor(year int) (ProjectionAnchor, bool) {
	for _, a := range e.ProjectionYears {
		if a.Year == year {
			return a, true
		}
	}
	return ProjectionAnchor{}, false
}

// ScaleFactor derives the headcount scale factor for a target year. It is the
// ratio of the target-year anchor to the base-year anchor. When either anchor
// is missing, or the base-year anchor is zero, the factor is 1.0; anchors
// for other years are not interpolated.
func (e *Employer) ScaleFactor(targetYear int) decimal.Decimal {
	base, okBase := e.Anchor(e.BaseYear)
	target, okTarget := e.Anchor(targetYear)
	if !okBase || !okTarget || base.EmployeeCount.IsZero() {
		return decimal.NewFromInt(1)
	}
	return target.EmployeeCount.Div(base.EmployeeCount)
}

// RoleTitles returns the role titles in declaration order.
func (e *Employer) RoleTitles() []string {
	titles := make([]string, 0, len(e.Roles))
	for _, r := range e.Roles {
		titles = append(titles, r.Title)
	}
	return titles
}

// TotalRoleCount sums the base-year counts of every role.
func (e *Employer) TotalRoleCount() decimal.Decimal {
	total := decimal.Zero
	for _, r := range e.Roles {
		total = total.Add(r.Count)
	}
	return total
}

// Income returns the role's income under the given reporting basis.
func (r *Role) Income(basis IncomeBasis) decimal.Decimal {
	if basis == IncomeBasisOTE {
		return r.OTE
	}
	return r.BaseSalary
}
