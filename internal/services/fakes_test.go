package services

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

var errBoom = errors.New("boom")

type fakePOIRepo struct {
	order []uuid.UUID
	pois  map[uuid.UUID]*db_models.POI
	err   error
}

func newFakePOIRepo() *fakePOIRepo {
	return &fakePOIRepo{pois: make(map[uuid.UUID]*db_models.POI)}
}

func (f *fakePOIRepo) add(p *db_models.POI) *db_models.POI {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.order = append(f.order, p.ID)
	f.pois[p.ID] = p
	return p
}

func (f *fakePOIRepo) CreatePoi(_ context.Context, poi *db_models.POI) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	return f.add(poi).ID, nil
}

func (f *fakePOIRepo) CreatePois(_ context.Context, pois []*db_models.POI) error {
	if f.err != nil {
		return f.err
	}
	for _, p := range pois {
		f.add(p)
	}
	return nil
}

func (f *fakePOIRepo) GetByID(_ context.Context, id string) (*db_models.POI, error) {
	if f.err != nil {
		return nil, f.err
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return f.pois[uid], nil
}

func (f *fakePOIRepo) ListByDestination(_ context.Context, destination string, page, pageSize int) ([]db_models.POI, error) {
	if f.err != nil {
		return nil, f.err
	}
	var all []db_models.POI
	for _, id := range f.order {
		if p := f.pois[id]; p.Destination == destination {
			all = append(all, *p)
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	from := (page - 1) * pageSize
	if from >= len(all) {
		return []db_models.POI{}, nil
	}
	to := from + pageSize
	if to > len(all) {
		to = len(all)
	}
	return all[from:to], nil
}

func (f *fakePOIRepo) FindCandidates(_ context.Context, destination string, limit int) ([]db_models.POI, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.POI
	for _, id := range f.order {
		if p := f.pois[id]; p.Destination == destination && len(out) < limit {
			out = append(out, *p)
		}
	}
	return out, nil
}

// fakeJourneyRepo keeps journeys in memory and resolves activity POIs from pois.
type fakeJourneyRepo struct {
	journeys map[string]*db_models.Journey
	pois     *fakePOIRepo
	saveErr  error
}

func newFakeJourneyRepo(pois *fakePOIRepo) *fakeJourneyRepo {
	return &fakeJourneyRepo{journeys: make(map[string]*db_models.Journey), pois: pois}
}

func (f *fakeJourneyRepo) SaveMaterializedPlan(_ context.Context, journey *db_models.Journey) (uuid.UUID, error) {
	if f.saveErr != nil {
		return uuid.Nil, f.saveErr
	}
	journey.ID = uuid.New()
	for i := range journey.Days {
		day := &journey.Days[i]
		day.ID = uuid.New()
		day.JourneyID = journey.ID
		for k := range day.Activities {
			act := &day.Activities[k]
			act.ID = uuid.New()
			act.JourneyDayID = day.ID
			if p, ok := f.pois.pois[act.SelectedPOIID]; ok {
				act.SelectedPOI = *p
			}
		}
	}
	f.journeys[journey.ID.String()] = journey
	return journey.ID, nil
}

func (f *fakeJourneyRepo) GetListOfJourneyByUserId(_ context.Context, page int, pagesize int, userId string) ([]db_models.Journey, error) {
	var out []db_models.Journey
	for _, j := range f.journeys {
		if j.UserID.String() == userId {
			out = append(out, *j)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Title < out[b].Title })
	from := (page - 1) * pagesize
	if from >= len(out) {
		return []db_models.Journey{}, nil
	}
	to := from + pagesize
	if to > len(out) {
		to = len(out)
	}
	return out[from:to], nil
}

func (f *fakeJourneyRepo) GetDetailsOfJourneyById(_ context.Context, journeyId string) (*db_models.Journey, error) {
	return f.journeys[journeyId], nil
}

func (f *fakeJourneyRepo) ReplaceDayActivities(_ context.Context, dayID uuid.UUID, poiIDs []uuid.UUID, travelMinutes, totalMinutes int) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	for _, j := range f.journeys {
		for i := range j.Days {
			day := &j.Days[i]
			if day.ID != dayID {
				continue
			}
			day.Activities = day.Activities[:0]
			for pos, id := range poiIDs {
				act := db_models.JourneyActivity{JourneyDayID: dayID, Position: pos, SelectedPOIID: id}
				act.ID = uuid.New()
				if p, ok := f.pois.pois[id]; ok {
					act.SelectedPOI = *p
				}
				day.Activities = append(day.Activities, act)
			}
			day.TravelMinutes = travelMinutes
			day.TotalMinutes = totalMinutes
			return nil
		}
	}
	return errors.New("day not found")
}

func (f *fakeJourneyRepo) DeleteJourney(_ context.Context, journeyId string) error {
	delete(f.journeys, journeyId)
	return nil
}

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
	err      error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepo) InsertTx(account *db_models.Account, _ context.Context) error {
	if f.err != nil {
		return f.err
	}
	if _, taken := f.accounts[account.Email]; taken {
		return repositories.ErrDuplicateEmail
	}
	account.ID = uuid.New()
	f.accounts[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.accounts[email], nil
}

type fakeSuggester struct {
	suggestions []utils.SuggestedPOI
	err         error
	calls       int
}

func (f *fakeSuggester) SuggestPOIs(_ context.Context, _ string, _ []string, _ int) ([]utils.SuggestedPOI, error) {
	f.calls++
	return f.suggestions, f.err
}

func catalogPOI(destination, name, category string, lat, lng float64) *db_models.POI {
	return &db_models.POI{
		Name:         name,
		Destination:  destination,
		Category:     category,
		Latitude:     lat,
		Longitude:    lng,
		VisitMinutes: 60,
		Rating:       4.5,
		Source:       db_models.SourceCatalog,
	}
}
