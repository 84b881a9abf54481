package cache

import (
	"fmt"
	"strings"
)

// Cache keys, one namespace per cached view.
const AdminDashboardKey = "admin_dashboard"

func SponsorCampaignsKey(sponsorID string) string {
	return "sponsor_campaigns:" + sponsorID
}

func InfluencerProfileKey(userID string) string {
	return "influencer_profile:" + userID
}

// InfluencerDashboardKey memoizes the public-campaign listing per
// influencer and filter arguments.
func InfluencerDashboardKey(userID, category string, minBudget, maxBudget *float64) string {
	return fmt.Sprintf("influencer_dashboard:%s:%s", userID,
		argsSuffix(category, minBudget, maxBudget))
}

// InfluencerDirectoryKey memoizes the sponsor-side influencer search per
// filter arguments.
func InfluencerDirectoryKey(category, expertise string, minReach int64) string {
	return fmt.Sprintf("influencer_directory:%s", strings.Join([]string{
		category, expertise, fmt.Sprintf("%d", minReach),
	}, ":"))
}

func argsSuffix(category string, minBudget, maxBudget *float64) string {
	minStr, maxStr := "-", "-"
	if minBudget != nil {
		minStr = fmt.Sprintf("%g", *minBudget)
	}
	if maxBudget != nil {
		maxStr = fmt.Sprintf("%g", *maxBudget)
	}
	return strings.Join([]string{category, minStr, maxStr}, ":")
}
