package services

import (
	"sort"
	"strings"

	"sponsorhub_backend/internal/models"
	"sponsorhub_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repository fakes. They emulate the gorm implementations
// closely enough for service-level behavior, including relation loading
// on FindByID.

type fakeStore struct {
	users       map[string]*models.User
	sponsors    map[string]*models.Sponsor
	influencers map[string]*models.Influencer
	campaigns   map[string]*models.Campaign
	adRequests  map[string]*models.AdRequest
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:       make(map[string]*models.User),
		sponsors:    make(map[string]*models.Sponsor),
		influencers: make(map[string]*models.Influencer),
		campaigns:   make(map[string]*models.Campaign),
		adRequests:  make(map[string]*models.AdRequest),
	}
}

// --- Seed helpers ---

func (st *fakeStore) addUser(role models.UserRole, flag models.FlagStatus, username, email, passwordHash string) *models.User {
	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Flagged:      flag,
	}
	u.ID = uuid.NewString()
	st.users[u.ID] = u
	return u
}

func (st *fakeStore) addSponsor(u *models.User, industry, sponsorType string) *models.Sponsor {
	sp := &models.Sponsor{UserID: u.ID, Industry: industry, SponsorType: sponsorType, User: u}
	st.sponsors[u.ID] = sp
	u.Sponsor = sp
	return sp
}

func (st *fakeStore) addInfluencer(u *models.User, category, expertise string, reach int64) *models.Influencer {
	inf := &models.Influencer{UserID: u.ID, Category: category, Expertise: expertise, Reach: reach, User: u}
	st.influencers[u.ID] = inf
	u.Influencer = inf
	return inf
}

func (st *fakeStore) addCampaign(sponsorID string, c models.Campaign) *models.Campaign {
	c.SponsorID = sponsorID
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Flagged == "" {
		c.Flagged = models.FlagStatusActive
	}
	c.Sponsor = st.sponsors[sponsorID]
	stored := c
	st.campaigns[stored.ID] = &stored
	return &stored
}

func (st *fakeStore) addAdRequest(campaignID, influencerID string, r models.AdRequest) *models.AdRequest {
	r.CampaignID = campaignID
	r.InfluencerID = influencerID
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = models.AdRequestStatusPending
	}
	stored := r
	st.adRequests[stored.ID] = &stored
	return &stored
}

func (st *fakeStore) attach(r *models.AdRequest) *models.AdRequest {
	cp := *r
	if c, ok := st.campaigns[r.CampaignID]; ok {
		cc := *c
		cc.Sponsor = st.sponsors[c.SponsorID]
		cp.Campaign = &cc
	}
	cp.Influencer = st.influencers[r.InfluencerID]
	return &cp
}

// --- UserRepository ---

type fakeUserRepo struct{ st *fakeStore }

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.st.users {
		if u.Email == user.Email || u.Username == user.Username {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.st.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	u, ok := r.st.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	u.Sponsor = r.st.sponsors[id]
	u.Influencer = r.st.influencers[id]
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.st.users {
		if u.Email == email {
			u.Sponsor = r.st.sponsors[u.ID]
			u.Influencer = r.st.influencers[u.ID]
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.st.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateFlag(userID string, status models.FlagStatus) error {
	u, ok := r.st.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Flagged = status
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.st.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.st.users, id)
	return nil
}

func (r *fakeUserRepo) FindByRole(role models.UserRole) ([]models.User, error) {
	var out []models.User
	for _, u := range r.st.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	sortUsers(out)
	return out, nil
}

func (r *fakeUserRepo) FindByRoleAndFlag(role models.UserRole, flag models.FlagStatus) ([]models.User, error) {
	var out []models.User
	for _, u := range r.st.users {
		if u.Role == role && u.Flagged == flag {
			out = append(out, *u)
		}
	}
	sortUsers(out)
	return out, nil
}

func (r *fakeUserRepo) FindUnapprovedByRole(role models.UserRole) ([]models.User, error) {
	var out []models.User
	for _, u := range r.st.users {
		if u.Role == role && u.Flagged != models.FlagStatusActive {
			out = append(out, *u)
		}
	}
	sortUsers(out)
	return out, nil
}

func (r *fakeUserRepo) CountByRole(role models.UserRole) (int64, error) {
	users, _ := r.FindByRole(role)
	return int64(len(users)), nil
}

func (r *fakeUserRepo) CountByRoleAndFlag(role models.UserRole, flag models.FlagStatus) (int64, error) {
	users, _ := r.FindByRoleAndFlag(role, flag)
	return int64(len(users)), nil
}

func (r *fakeUserRepo) AdminExists() (bool, error) {
	count, _ := r.CountByRole(models.UserRoleAdmin)
	return count > 0, nil
}

func sortUsers(users []models.User) {
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
}

// --- ProfileRepository ---

type fakeProfileRepo struct{ st *fakeStore }

func (r *fakeProfileRepo) CreateSponsor(sponsor *models.Sponsor) error {
	r.st.sponsors[sponsor.UserID] = sponsor
	return nil
}

func (r *fakeProfileRepo) CreateInfluencer(influencer *models.Influencer) error {
	r.st.influencers[influencer.UserID] = influencer
	return nil
}

func (r *fakeProfileRepo) FindSponsor(userID string) (*models.Sponsor, error) {
	sp, ok := r.st.sponsors[userID]
	if !ok {
		return nil, repositories.ErrSponsorNotFound
	}
	sp.User = r.st.users[userID]
	return sp, nil
}

func (r *fakeProfileRepo) FindInfluencer(userID string) (*models.Influencer, error) {
	inf, ok := r.st.influencers[userID]
	if !ok {
		return nil, repositories.ErrInfluencerNotFound
	}
	inf.User = r.st.users[userID]
	return inf, nil
}

func (r *fakeProfileRepo) UpdateSponsor(sponsor *models.Sponsor) error {
	r.st.sponsors[sponsor.UserID] = sponsor
	return nil
}

func (r *fakeProfileRepo) UpdateInfluencer(influencer *models.Influencer) error {
	r.st.influencers[influencer.UserID] = influencer
	return nil
}

func (r *fakeProfileRepo) FindInfluencers(filter repositories.InfluencerFilter) ([]models.Influencer, error) {
	var out []models.Influencer
	for _, inf := range r.st.influencers {
		if filter.Category != "" && inf.Category != filter.Category {
			continue
		}
		if filter.Expertise != "" && !strings.Contains(strings.ToLower(inf.Expertise), strings.ToLower(filter.Expertise)) {
			continue
		}
		if filter.MinReach > 0 && inf.Reach < filter.MinReach {
			continue
		}
		inf.User = r.st.users[inf.UserID]
		out = append(out, *inf)
	}
	return out, nil
}

func (r *fakeProfileRepo) FindAllInfluencers() ([]models.Influencer, error) {
	return r.FindInfluencers(repositories.InfluencerFilter{})
}

func (r *fakeProfileRepo) FindAllSponsors() ([]models.Sponsor, error) {
	var out []models.Sponsor
	for _, sp := range r.st.sponsors {
		sp.User = r.st.users[sp.UserID]
		out = append(out, *sp)
	}
	return out, nil
}

// --- CampaignRepository ---

type fakeCampaignRepo struct{ st *fakeStore }

func (r *fakeCampaignRepo) Create(campaign *models.Campaign) error {
	if campaign.ID == "" {
		campaign.ID = uuid.NewString()
	}
	r.st.campaigns[campaign.ID] = campaign
	return nil
}

func (r *fakeCampaignRepo) FindByID(id string) (*models.Campaign, error) {
	c, ok := r.st.campaigns[id]
	if !ok {
		return nil, repositories.ErrCampaignNotFound
	}
	c.Sponsor = r.st.sponsors[c.SponsorID]
	return c, nil
}

func (r *fakeCampaignRepo) Update(campaign *models.Campaign) error {
	r.st.campaigns[campaign.ID] = campaign
	return nil
}

func (r *fakeCampaignRepo) Delete(id string) error {
	if _, ok := r.st.campaigns[id]; !ok {
		return repositories.ErrCampaignNotFound
	}
	delete(r.st.campaigns, id)
	return nil
}

func (r *fakeCampaignRepo) UpdateFlag(id string, status models.FlagStatus) error {
	c, ok := r.st.campaigns[id]
	if !ok {
		return repositories.ErrCampaignNotFound
	}
	c.Flagged = status
	return nil
}

func (r *fakeCampaignRepo) FindBySponsor(sponsorID string) ([]models.Campaign, error) {
	return r.filter(func(c *models.Campaign) bool { return c.SponsorID == sponsorID }), nil
}

func (r *fakeCampaignRepo) FindActiveBySponsor(sponsorID string) ([]models.Campaign, error) {
	return r.filter(func(c *models.Campaign) bool {
		return c.SponsorID == sponsorID && c.Flagged == models.FlagStatusActive
	}), nil
}

func (r *fakeCampaignRepo) FindPublicBySponsor(sponsorID string) ([]models.Campaign, error) {
	return r.filter(func(c *models.Campaign) bool {
		return c.SponsorID == sponsorID && c.Visibility == models.VisibilityPublic
	}), nil
}

func (r *fakeCampaignRepo) FindPublic(f repositories.CampaignFilter) ([]models.Campaign, error) {
	return r.filter(func(c *models.Campaign) bool {
		if c.Visibility != models.VisibilityPublic {
			return false
		}
		if f.Category != "" && c.Category != f.Category {
			return false
		}
		if f.MinBudget != nil && c.Budget < *f.MinBudget {
			return false
		}
		if f.MaxBudget != nil && c.Budget > *f.MaxBudget {
			return false
		}
		return true
	}), nil
}

func (r *fakeCampaignRepo) FindAll() ([]models.Campaign, error) {
	return r.filter(func(*models.Campaign) bool { return true }), nil
}

func (r *fakeCampaignRepo) CountAll() (int64, error) {
	return int64(len(r.st.campaigns)), nil
}

func (r *fakeCampaignRepo) CountByVisibility(v models.CampaignVisibility) (int64, error) {
	out := r.filter(func(c *models.Campaign) bool { return c.Visibility == v })
	return int64(len(out)), nil
}

func (r *fakeCampaignRepo) CountFlagged() (int64, error) {
	out := r.filter(func(c *models.Campaign) bool { return c.Flagged == models.FlagStatusFlagged })
	return int64(len(out)), nil
}

func (r *fakeCampaignRepo) filter(keep func(*models.Campaign) bool) []models.Campaign {
	var out []models.Campaign
	for _, c := range r.st.campaigns {
		if keep(c) {
			cp := *c
			cp.Sponsor = r.st.sponsors[c.SponsorID]
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --- AdRequestRepository ---

type fakeAdRequestRepo struct{ st *fakeStore }

func (r *fakeAdRequestRepo) Create(req *models.AdRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	r.st.adRequests[req.ID] = req
	return nil
}

func (r *fakeAdRequestRepo) FindByID(id string) (*models.AdRequest, error) {
	req, ok := r.st.adRequests[id]
	if !ok {
		return nil, repositories.ErrAdRequestNotFound
	}
	attached := r.st.attach(req)
	// Mutations through the returned value must reach the store on Update.
	*req = *attached
	return req, nil
}

func (r *fakeAdRequestRepo) Update(req *models.AdRequest) error {
	r.st.adRequests[req.ID] = req
	return nil
}

func (r *fakeAdRequestRepo) Delete(id string) error {
	if _, ok := r.st.adRequests[id]; !ok {
		return repositories.ErrAdRequestNotFound
	}
	delete(r.st.adRequests, id)
	return nil
}

func (r *fakeAdRequestRepo) FindByCampaignIDs(campaignIDs []string) ([]models.AdRequest, error) {
	set := make(map[string]bool, len(campaignIDs))
	for _, id := range campaignIDs {
		set[id] = true
	}
	return r.filter(func(req *models.AdRequest) bool { return set[req.CampaignID] }), nil
}

func (r *fakeAdRequestRepo) FindPendingByCampaignIDs(campaignIDs []string) ([]models.AdRequest, error) {
	set := make(map[string]bool, len(campaignIDs))
	for _, id := range campaignIDs {
		set[id] = true
	}
	return r.filter(func(req *models.AdRequest) bool {
		return set[req.CampaignID] && req.Status == models.AdRequestStatusPending
	}), nil
}

func (r *fakeAdRequestRepo) FindPrivateByInfluencer(influencerID string) ([]models.AdRequest, error) {
	return r.filter(func(req *models.AdRequest) bool {
		c, ok := r.st.campaigns[req.CampaignID]
		return ok && req.InfluencerID == influencerID && c.Visibility == models.VisibilityPrivate
	}), nil
}

func (r *fakeAdRequestRepo) FindByCampaignAndInfluencer(campaignID, influencerID string) (*models.AdRequest, error) {
	for _, req := range r.st.adRequests {
		if req.CampaignID == campaignID && req.InfluencerID == influencerID {
			return req, nil
		}
	}
	return nil, repositories.ErrAdRequestNotFound
}

func (r *fakeAdRequestRepo) FindRecent(limit int) ([]models.AdRequest, error) {
	out := r.filter(func(*models.AdRequest) bool { return true })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeAdRequestRepo) HasAccepted(campaignID string) (bool, error) {
	for _, req := range r.st.adRequests {
		if req.CampaignID == campaignID && req.Status == models.AdRequestStatusAccepted {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAdRequestRepo) CountByStatus(status models.AdRequestStatus) (int64, error) {
	out := r.filter(func(req *models.AdRequest) bool { return req.Status == status })
	return int64(len(out)), nil
}

func (r *fakeAdRequestRepo) CountAll() (int64, error) {
	return int64(len(r.st.adRequests)), nil
}

func (r *fakeAdRequestRepo) CountPendingByInfluencer(influencerID string) (int64, error) {
	out := r.filter(func(req *models.AdRequest) bool {
		return req.InfluencerID == influencerID && req.Status == models.AdRequestStatusPending
	})
	return int64(len(out)), nil
}

func (r *fakeAdRequestRepo) FindByCampaign(campaignID string) ([]models.AdRequest, error) {
	return r.filter(func(req *models.AdRequest) bool { return req.CampaignID == campaignID }), nil
}

func (r *fakeAdRequestRepo) filter(keep func(*models.AdRequest) bool) []models.AdRequest {
	var out []models.AdRequest
	for _, req := range r.st.adRequests {
		if keep(req) {
			out = append(out, *r.st.attach(req))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
