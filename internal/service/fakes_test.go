package service

import (
	"context"
	"time"

	"anoa.com/plusgems/internal/model"
	"anoa.com/plusgems/internal/repository"
	"anoa.com/plusgems/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeHeroRepo struct {
	heroes map[uuid.UUID]*model.Hero
}

func newFakeHeroRepo(heroes ...*model.Hero) *fakeHeroRepo {
	repo := &fakeHeroRepo{heroes: make(map[uuid.UUID]*model.Hero)}
	for _, h := range heroes {
		if h.ID == uuid.Nil {
			h.ID = uuid.New()
		}
		repo.heroes[h.ID] = h
	}
	return repo
}

func (r *fakeHeroRepo) Create(ctx context.Context, hero *model.Hero) error {
	if hero.ID == uuid.Nil {
		hero.ID = uuid.New()
	}
	r.heroes[hero.ID] = hero
	return nil
}

func (r *fakeHeroRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Hero, error) {
	if hero, ok := r.heroes[id]; ok {
		return hero, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeHeroRepo) FindByName(ctx context.Context, name string) (*model.Hero, error) {
	for _, hero := range r.heroes {
		if hero.Name == name {
			return hero, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeHeroRepo) FindAll(ctx context.Context, team string) ([]*model.Hero, error) {
	var all []*model.Hero
	for _, hero := range r.heroes {
		if team == "" || hero.Team == team {
			all = append(all, hero)
		}
	}
	return all, nil
}

func (r *fakeHeroRepo) Update(ctx context.Context, hero *model.Hero) error {
	r.heroes[hero.ID] = hero
	return nil
}

func (r *fakeHeroRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.heroes, id)
	return nil
}

type fakePillarRepo struct {
	pillars map[uuid.UUID]*model.Pillar
}

func newFakePillarRepo(pillars ...*model.Pillar) *fakePillarRepo {
	repo := &fakePillarRepo{pillars: make(map[uuid.UUID]*model.Pillar)}
	for _, p := range pillars {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		repo.pillars[p.ID] = p
	}
	return repo
}

func (r *fakePillarRepo) Create(ctx context.Context, pillar *model.Pillar) error {
	if pillar.ID == uuid.Nil {
		pillar.ID = uuid.New()
	}
	r.pillars[pillar.ID] = pillar
	return nil
}

func (r *fakePillarRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pillar, error) {
	if pillar, ok := r.pillars[id]; ok {
		return pillar, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePillarRepo) FindByName(ctx context.Context, name string) (*model.Pillar, error) {
	for _, pillar := range r.pillars {
		if pillar.Name == name {
			return pillar, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePillarRepo) FindAll(ctx context.Context) ([]*model.Pillar, error) {
	var all []*model.Pillar
	for _, pillar := range r.pillars {
		all = append(all, pillar)
	}
	return all, nil
}

func (r *fakePillarRepo) Update(ctx context.Context, pillar *model.Pillar) error {
	r.pillars[pillar.ID] = pillar
	return nil
}

func (r *fakePillarRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.pillars, id)
	return nil
}

type fakeMissionRepo struct {
	missions map[uuid.UUID]*model.Mission
}

func newFakeMissionRepo(missions ...*model.Mission) *fakeMissionRepo {
	repo := &fakeMissionRepo{missions: make(map[uuid.UUID]*model.Mission)}
	for _, m := range missions {
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		repo.missions[m.ID] = m
	}
	return repo
}

func (r *fakeMissionRepo) Create(ctx context.Context, mission *model.Mission) error {
	if mission.ID == uuid.Nil {
		mission.ID = uuid.New()
	}
	r.missions[mission.ID] = mission
	return nil
}

func (r *fakeMissionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Mission, error) {
	if mission, ok := r.missions[id]; ok {
		return mission, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMissionRepo) FindAll(ctx context.Context, pillarID *uuid.UUID) ([]*model.Mission, error) {
	var all []*model.Mission
	for _, mission := range r.missions {
		if pillarID == nil || mission.PillarID == *pillarID {
			all = append(all, mission)
		}
	}
	return all, nil
}

func (r *fakeMissionRepo) Update(ctx context.Context, mission *model.Mission) error {
	r.missions[mission.ID] = mission
	return nil
}

func (r *fakeMissionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.missions, id)
	return nil
}

func (r *fakeMissionRepo) CountByPillar(ctx context.Context, pillarID uuid.UUID) (int64, error) {
	var count int64
	for _, mission := range r.missions {
		if mission.PillarID == pillarID {
			count++
		}
	}
	return count, nil
}

type fakeNominationRepo struct {
	nominations map[uuid.UUID]*model.Nomination
	records     []model.NominationRecord
}

func newFakeNominationRepo() *fakeNominationRepo {
	return &fakeNominationRepo{nominations: make(map[uuid.UUID]*model.Nomination)}
}

func (r *fakeNominationRepo) Create(ctx context.Context, nomination *model.Nomination) error {
	if nomination.ID == uuid.Nil {
		nomination.ID = uuid.New()
	}
	if nomination.CreatedAt.IsZero() {
		nomination.CreatedAt = time.Now()
	}
	r.nominations[nomination.ID] = nomination
	return nil
}

func (r *fakeNominationRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Nomination, error) {
	if nomination, ok := r.nominations[id]; ok {
		return nomination, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeNominationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	nomination, ok := r.nominations[id]
	if !ok {
		return apperror.ErrNotFound
	}
	nomination.Status = status
	return nil
}

func (r *fakeNominationRepo) ListRecords(ctx context.Context, filter repository.NominationFilter) ([]model.NominationRecord, error) {
	if r.records != nil {
		return r.records, nil
	}
	records := []model.NominationRecord{}
	for _, n := range r.nominations {
		if filter.Status != "" && n.Status != filter.Status {
			continue
		}
		records = append(records, model.NominationRecord{
			ID:            n.ID,
			CreatedAt:     n.CreatedAt,
			Status:        n.Status,
			Justification: n.Justification,
			Evidence:      n.Evidence,
		})
	}
	return records, nil
}

func (r *fakeNominationRepo) CountByHero(ctx context.Context, heroID uuid.UUID) (int64, error) {
	var count int64
	for _, n := range r.nominations {
		if n.NominatorID == heroID || n.NomineeID == heroID {
			count++
		}
	}
	return count, nil
}

func (r *fakeNominationRepo) CountByMission(ctx context.Context, missionID uuid.UUID) (int64, error) {
	var count int64
	for _, n := range r.nominations {
		if n.MissionID == missionID {
			count++
		}
	}
	return count, nil
}
