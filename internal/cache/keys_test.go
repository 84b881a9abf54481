package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSponsorCampaignsKey(t *testing.T) {
	assert.Equal(t, "sponsor_campaigns:abc", SponsorCampaignsKey("abc"))
}

func TestInfluencerDashboardKey_DistinguishesFilters(t *testing.T) {
	min := 100.0
	max := 500.0

	unfiltered := InfluencerDashboardKey("u1", "", nil, nil)
	filtered := InfluencerDashboardKey("u1", "Sports", &min, &max)
	otherUser := InfluencerDashboardKey("u2", "", nil, nil)

	assert.NotEqual(t, unfiltered, filtered)
	assert.NotEqual(t, unfiltered, otherUser)
	assert.Equal(t, "influencer_dashboard:u1:Sports:100:500", filtered)
	assert.Equal(t, "influencer_dashboard:u1::-:-", unfiltered)
}

func TestInfluencerDirectoryKey(t *testing.T) {
	assert.Equal(t, "influencer_directory:Sports:Football:1000",
		InfluencerDirectoryKey("Sports", "Football", 1000))
}
