package models

// Enum values shared across the projects schema. Validation happens before
// any write; unknown values are rejected with a 400.

var ProjectStatuses = []string{"active", "stale", "deprecated"}

var StackComponentTypes = []string{"frontend", "backend", "database", "ci_cd", "devops", "tooling", "runtime"}

var ContributorRoles = []string{"maintainer", "core_contributor", "contributor", "founder"}

// SponsorTiers is ordered highest first; grouped displays follow this order.
var SponsorTiers = []string{"diamond", "platinum", "gold", "silver", "bronze"}

var SponsorTypes = []string{"individual", "company", "organization", "foundation"}

var CommunityPlatforms = []string{"discord", "slack", "reddit", "twitter", "linkedin", "telegram", "matrix", "forum", "mailing_list", "other"}

var DifficultyLevels = []string{"beginner", "intermediate", "advanced"}

var RoadmapStatuses = []string{"planned", "in_progress", "done"}

var RoadmapPriorities = []string{"low", "medium", "high"}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func ValidProjectStatus(s string) bool       { return contains(ProjectStatuses, s) }
func ValidStackComponentType(s string) bool  { return contains(StackComponentTypes, s) }
func ValidContributorRole(s string) bool     { return contains(ContributorRoles, s) }
func ValidSponsorTier(s string) bool         { return contains(SponsorTiers, s) }
func ValidSponsorType(s string) bool         { return contains(SponsorTypes, s) }
func ValidCommunityPlatform(s string) bool   { return contains(CommunityPlatforms, s) }
func ValidDifficultyLevel(s string) bool     { return contains(DifficultyLevels, s) }
func ValidRoadmapStatus(s string) bool       { return contains(RoadmapStatuses, s) }
func ValidRoadmapPriority(s string) bool     { return contains(RoadmapPriorities, s) }

// TierRank returns the display rank of a sponsor tier, 0 being the highest
// (diamond). Unknown tiers sort last.
func TierRank(tier string) int {
	for i, t := range SponsorTiers {
		if t == tier {
			return i
		}
	}
	return len(SponsorTiers)
}
