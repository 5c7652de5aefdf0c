package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
)

type skillEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Target   string `json:"target"`
	MPCost   int    `json:"mp_cost"`
	Power    int    `json:"power"`
	Accuracy int    `json:"accuracy"`
	Priority int    `json:"priority"`
}

type monsterEntry struct {
	Name          string   `json:"name"`
	Level         int      `json:"level"`
	PrimaryType   string   `json:"primary_type"`
	SecondaryType string   `json:"secondary_type"`
	MaxHP         int      `json:"max_hp"`
	MaxMP         int      `json:"max_mp"`
	Attack        int      `json:"attack"`
	Defense       int      `json:"defense"`
	Agility       int      `json:"agility"`
	Magic         int      `json:"magic"`
	Wisdom        int      `json:"wisdom"`
	SkillIDs      []string `json:"skill_ids"`
}

type itemEntry struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	CaptureRate float64 `json:"capture_rate"`
}

type rawConfig struct {
	Skills   []skillEntry   `json:"skill_list"`
	Monsters []monsterEntry `json:"monster_list"`
	Items    []itemEntry    `json:"item_list"`
	Server   *struct {
		Address string `json:"address"`
	} `json:"server"`
	PacingIntervalMS     int `json:"pacing_interval_ms"`
	ActionTimeoutSeconds int `json:"action_timeout_seconds"`
}

// LoadedConfig is the validated server configuration: the skill catalog,
// the monster templates battles are built from, and the capture item rates.
type LoadedConfig struct {
	Skills         []game.Skill
	Templates      map[string]game.Monster // keyed by lowercase template name
	CaptureRates   map[string]float64
	ServerAddress  string
	PacingInterval time.Duration
	ActionTimeout  time.Duration
}

var validCategories = map[string]game.SkillCategory{
	string(game.SkillPhysical): game.SkillPhysical,
	string(game.SkillMagical):  game.SkillMagical,
	string(game.SkillHealing):  game.SkillHealing,
	string(game.SkillSupport):  game.SkillSupport,
}

// Load reads and validates the configuration file at path.
func Load(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if len(rc.Skills) == 0 {
		return nil, fmt.Errorf("config file %s: skill_list is empty", path)
	}
	if len(rc.Monsters) == 0 {
		return nil, fmt.Errorf("config file %s: monster_list is empty", path)
	}

	skills := make([]game.Skill, 0, len(rc.Skills))
	skillSet := make(map[string]struct{}, len(rc.Skills))
	for _, s := range rc.Skills {
		if s.ID == "" {
			return nil, fmt.Errorf("config file %s: skill entry missing 'id'", path)
		}
		if _, exists := skillSet[s.ID]; exists {
			return nil, fmt.Errorf("config file %s: duplicate skill id '%s'", path, s.ID)
		}
		skillSet[s.ID] = struct{}{}
		cat, ok := validCategories[s.Category]
		if !ok {
			return nil, fmt.Errorf("config file %s: skill '%s' has unknown category '%s'", path, s.ID, s.Category)
		}
		if s.Accuracy < 1 || s.Accuracy > 100 {
			return nil, fmt.Errorf("config file %s: skill '%s' accuracy must be in 1..100", path, s.ID)
		}
		if s.Power < 0 {
			return nil, fmt.Errorf("config file %s: skill '%s' power must not be negative", path, s.ID)
		}
		target := game.TargetEnemy
		if s.Target == string(game.TargetSelf) {
			target = game.TargetSelf
		}
		skills = append(skills, game.Skill{
			ID:       s.ID,
			Name:     s.Name,
			Category: cat,
			Target:   target,
			MPCost:   s.MPCost,
			Power:    s.Power,
			Accuracy: s.Accuracy,
			Priority: s.Priority,
		})
	}

	templates := make(map[string]game.Monster, len(rc.Monsters))
	for _, m := range rc.Monsters {
		if m.Name == "" {
			return nil, fmt.Errorf("config file %s: monster entry missing 'name'", path)
		}
		key := strings.ToLower(strings.TrimSpace(m.Name))
		if _, exists := templates[key]; exists {
			return nil, fmt.Errorf("config file %s: duplicate monster name '%s'", path, m.Name)
		}
		for _, id := range m.SkillIDs {
			if _, known := skillSet[id]; !known {
				return nil, fmt.Errorf("config file %s: monster '%s' references unknown skill '%s'", path, m.Name, id)
			}
		}
		if m.MaxHP <= 0 {
			return nil, fmt.Errorf("config file %s: monster '%s' max_hp must be positive", path, m.Name)
		}
		templates[key] = game.Monster{
			Name:          m.Name,
			Level:         m.Level,
			PrimaryType:   game.ElementType(m.PrimaryType),
			SecondaryType: game.ElementType(m.SecondaryType),
			MaxHP:         m.MaxHP,
			MaxMP:         m.MaxMP,
			Attack:        m.Attack,
			Defense:       m.Defense,
			Agility:       m.Agility,
			Magic:         m.Magic,
			Wisdom:        m.Wisdom,
			SkillIDs:      strings.Join(m.SkillIDs, ","),
		}
	}

	rates := make(map[string]float64, len(rc.Items))
	for _, it := range rc.Items {
		if it.ID == "" {
			return nil, fmt.Errorf("config file %s: item entry missing 'id'", path)
		}
		if it.CaptureRate <= 0 || it.CaptureRate > 1 {
			return nil, fmt.Errorf("config file %s: item '%s' capture_rate must be in (0,1]", path, it.ID)
		}
		rates[it.ID] = it.CaptureRate
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}
	pacing := 600 * time.Millisecond
	if rc.PacingIntervalMS > 0 {
		pacing = time.Duration(rc.PacingIntervalMS) * time.Millisecond
	}
	timeout := 5 * time.Minute
	if rc.ActionTimeoutSeconds > 0 {
		timeout = time.Duration(rc.ActionTimeoutSeconds) * time.Second
	}

	return &LoadedConfig{
		Skills:         skills,
		Templates:      templates,
		CaptureRates:   rates,
		ServerAddress:  addr,
		PacingInterval: pacing,
		ActionTimeout:  timeout,
	}, nil
}
