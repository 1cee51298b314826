// Package service provides business logic layer for dashboard module.
package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	checkModel "github.com/hong13131/godlife/internal/check/model"
	"github.com/hong13131/godlife/internal/dashboard/model"
	"github.com/hong13131/godlife/internal/dashboard/repository"
	goalModel "github.com/hong13131/godlife/internal/goal/model"
	userModel "github.com/hong13131/godlife/internal/user/model"
)

// recentCheckLimit is how many of a member's latest check-ins are shown.
const recentCheckLimit = 3

// displayZone is the fixed civil timezone for rendered dates (UTC+9).
var displayZone = time.FixedZone("KST", 9*60*60)

// Service defines the interface for dashboard business logic operations.
type Service interface {
	// TeamSummary builds the shared dashboard for the caller's team.
	TeamSummary(ctx context.Context, caller *userModel.User) (*model.TeamSummaryResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new dashboard service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// TeamSummary builds the shared dashboard for the caller's team.
func (s *service) TeamSummary(ctx context.Context, caller *userModel.User) (*model.TeamSummaryResponse, error) {
	if caller.TeamID == nil {
		return nil, model.ErrNoTeam
	}

	team, err := s.repo.GetTeam(ctx, *caller.TeamID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.GetMembers(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	memberIDs := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ID)
	}

	goals, err := s.repo.GetGoalsWithChecks(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	goalsByUser := make(map[uuid.UUID][]goalModel.Goal, len(members))
	for _, g := range goals {
		goalsByUser[g.UserID] = append(goalsByUser[g.UserID], g)
	}

	summaries := make([]model.MemberSummary, 0, len(members))
	for _, m := range members {
		summaries = append(summaries, summarizeMember(m, goalsByUser[m.ID]))
	}

	resp := &model.TeamSummaryResponse{
		Team: model.TeamInfo{
			ID:   team.ID,
			Name: team.Name,
		},
		Members: summaries,
		MeRole:  caller.Role,
	}
	// The invite code is an authorization-gated read; members never see it.
	if caller.Role.CanManageTeam() {
		resp.Team.InviteCode = team.InviteCode
	}

	s.logger.Debugw("team summary built", "team_id", team.ID, "member_count", len(summaries))
	return resp, nil
}

// summarizeMember aggregates one member's goals and checks.
func summarizeMember(member userModel.User, goals []goalModel.Goal) model.MemberSummary {
	totalTarget := 0
	totalChecked := 0.0
	details := make([]model.GoalDetail, 0, len(goals))

	type recentEntry struct {
		check checkModel.Check
		title string
	}
	var recent []recentEntry

	for _, g := range goals {
		done := 0.0
		for _, c := range g.Checks {
			done += c.Value
			recent = append(recent, recentEntry{check: c, title: g.Title})
		}

		totalTarget += g.TargetCount
		totalChecked += done

		details = append(details, model.GoalDetail{
			ID:          g.ID,
			Title:       g.Title,
			TargetCount: g.TargetCount,
			Unit:        g.Unit,
			Progress:    percentage(done, g.TargetCount),
			Checks:      done,
		})
	}

	sort.SliceStable(recent, func(i, j int) bool {
		if !recent[i].check.Date.Equal(recent[j].check.Date) {
			return recent[i].check.Date.After(recent[j].check.Date)
		}
		return recent[i].check.CreatedAt.After(recent[j].check.CreatedAt)
	})
	if len(recent) > recentCheckLimit {
		recent = recent[:recentCheckLimit]
	}

	recentChecks := make([]model.RecentCheck, 0, len(recent))
	for _, e := range recent {
		recentChecks = append(recentChecks, model.RecentCheck{
			Date:      e.check.Date.In(displayZone),
			GoalTitle: e.title,
		})
	}

	return model.MemberSummary{
		ID:           member.ID,
		Name:         member.Name,
		Email:        member.Email,
		Role:         member.Role,
		Completion:   percentage(totalChecked, totalTarget),
		Goals:        len(goals),
		GoalsDetail:  details,
		RecentChecks: recentChecks,
	}
}

// percentage returns round(100*done/target) clamped to [0, 100]; 0 when
// target is not positive.
func percentage(done float64, target int) int {
	if target <= 0 {
		return 0
	}
	p := int(math.Round(100 * done / float64(target)))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
