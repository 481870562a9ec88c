package team

import (
	"errors"

	"github.com/apexarena/backend/internal/models"
	"github.com/apexarena/backend/internal/roster"
	"gorm.io/gorm"
)

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	CreateTeam(team *Team) error
	// GetTeamByID returns (nil, nil) when the team does not exist.
	GetTeamByID(id uint) (*Team, error)
	// GetOwnedTeam loads a team only if it belongs to the given captain;
	// (nil, nil) covers both missing and not-owned.
	GetOwnedTeam(id, captainID uint) (*Team, error)
	GetTeamByCaptainAndSport(captainID uint, sport string) (*Team, error)
	GetTeamsByCaptain(captainID uint) ([]Team, error)
	GetAllTeams(sport string) ([]Team, error)
	DeleteOwnedTeam(id, captainID uint) (int64, error)
	DeleteTeam(id uint) error

	// EligiblePlayers narrows candidate ids down to approved players owned
	// by the captain in the given department. Ids that fail the filter are
	// silently dropped.
	EligiblePlayers(ids []uint, captainID uint, department string) ([]roster.DepartmentPlayer, error)
	AddPlayer(team *Team, player *roster.DepartmentPlayer) error
	RemovePlayer(team *Team, playerID uint) error

	// ApplyResult bumps the winner's wins and the loser's losses in two
	// atomic counter updates inside one transaction. A missing team id
	// simply affects zero rows.
	ApplyResult(winnerID, loserID uint) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateTeam(team *Team) error {
	return r.db.Create(team).Error
}

func (r *teamRepository) GetTeamByID(id uint) (*Team, error) {
	var team Team
	if err := r.db.Preload("Players").Preload("Captain").First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetOwnedTeam(id, captainID uint) (*Team, error) {
	var team Team
	err := r.db.Preload("Players").Preload("Captain").
		Where("id = ? AND captain_id = ?", id, captainID).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamByCaptainAndSport(captainID uint, sport string) (*Team, error) {
	var team Team
	err := r.db.Where("captain_id = ? AND sport = ?", captainID, sport).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamsByCaptain(captainID uint) ([]Team, error) {
	var teams []Team
	err := r.db.Preload("Players").Preload("Captain").
		Where("captain_id = ?", captainID).
		Order("created_at desc").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) GetAllTeams(sport string) ([]Team, error) {
	var teams []Team
	query := r.db.Preload("Players").Preload("Captain").Order("wins desc, created_at asc")
	if sport != "" {
		query = query.Where("sport = ?", sport)
	}
	if err := query.Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) DeleteOwnedTeam(id, captainID uint) (int64, error) {
	// Hard delete: a soft-deleted row would still occupy the
	// (captain_id, sport) unique index and block recreating the team.
	result := r.db.Unscoped().Where("id = ? AND captain_id = ?", id, captainID).Delete(&Team{})
	return result.RowsAffected, result.Error
}

func (r *teamRepository) DeleteTeam(id uint) error {
	return r.db.Unscoped().Delete(&Team{}, id).Error
}

func (r *teamRepository) EligiblePlayers(ids []uint, captainID uint, department string) ([]roster.DepartmentPlayer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var players []roster.DepartmentPlayer
	err := r.db.
		Where("id IN ? AND captain_id = ? AND department = ? AND status = ?",
			ids, captainID, department, models.StatusApproved).
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *teamRepository) AddPlayer(team *Team, player *roster.DepartmentPlayer) error {
	return r.db.Model(team).Association("Players").Append(player)
}

func (r *teamRepository) RemovePlayer(team *Team, playerID uint) error {
	return r.db.Model(team).Association("Players").Delete(&roster.DepartmentPlayer{Model: gorm.Model{ID: playerID}})
}

func (r *teamRepository) ApplyResult(winnerID, loserID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Team{}).Where("id = ?", winnerID).
			Update("wins", gorm.Expr("wins + 1")).Error; err != nil {
			return err
		}
		return tx.Model(&Team{}).Where("id = ?", loserID).
			Update("losses", gorm.Expr("losses + 1")).Error
	})
}
