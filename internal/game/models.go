package game

import (
	"strings"

	"gorm.io/gorm"
)

// ElementType is the elemental category used by the type-effectiveness chart.
type ElementType string

const (
	TypeNormal   ElementType = "normal"
	TypeFire     ElementType = "fire"
	TypeWater    ElementType = "water"
	TypeGrass    ElementType = "grass"
	TypeElectric ElementType = "electric"
	TypeIce      ElementType = "ice"
	TypeFlying   ElementType = "flying"
	TypeRock     ElementType = "rock"
	TypePsychic  ElementType = "psychic"
	TypeDark     ElementType = "dark"
)

// SkillCategory splits skills into the damage and non-damage families the
// executor routes on.
type SkillCategory string

const (
	SkillPhysical SkillCategory = "physical"
	SkillMagical  SkillCategory = "magical"
	SkillHealing  SkillCategory = "healing"
	SkillSupport  SkillCategory = "support"
)

// TargetSelector says which active monster a skill applies to.
type TargetSelector string

const (
	TargetEnemy TargetSelector = "enemy"
	TargetSelf  TargetSelector = "self"
)

// Skill is an immutable catalog entry. Skills live in the server config and
// are never persisted in the database.
type Skill struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category SkillCategory  `json:"category"`
	Target   TargetSelector `json:"target"`
	MPCost   int            `json:"mp_cost"`
	Power    int            `json:"power"`
	Accuracy int            `json:"accuracy"`
	Priority int            `json:"priority"`
}

// IsDamaging reports whether the skill goes through the damage calculator.
// Power-0 skills are routed around it entirely.
func (s Skill) IsDamaging() bool {
	return s.Power > 0 && (s.Category == SkillPhysical || s.Category == SkillMagical)
}

// BasicAttackSkill is the built-in skill synthesized for a plain Attack
// action.
func BasicAttackSkill() Skill {
	return Skill{
		ID:       "basic_attack",
		Name:     "Attack",
		Category: SkillPhysical,
		Target:   TargetEnemy,
		MPCost:   0,
		Power:    50,
		Accuracy: 95,
		Priority: 0,
	}
}

// ActionKind is the closed set of things a combatant can do on its turn.
type ActionKind string

const (
	ActionAttack   ActionKind = "attack"
	ActionUseSkill ActionKind = "use_skill"
	ActionDefend   ActionKind = "defend"
	ActionFlee     ActionKind = "flee"
	ActionCapture  ActionKind = "capture"
)

// Side indexes into Battle.Sides. The player always occupies slot 0.
const (
	SidePlayer = 0
	SideEnemy  = 1
)

// Action binds one chosen ActionKind to the acting side. SkillID and ItemID
// are meaningful only for ActionUseSkill and ActionCapture respectively.
// Priority is the ordering tier; it is 0 for everything except skills that
// carry their own tier.
type Action struct {
	Kind     ActionKind `json:"kind"`
	Side     int        `json:"side"`
	SkillID  string     `json:"skill_id,omitempty"`
	ItemID   string     `json:"item_id,omitempty"`
	Priority int        `json:"priority"`
}

// Monster is one combatant. Current values are always clamped to [0, max];
// use ApplyDamage/Heal/SpendMP instead of writing the fields directly.
type Monster struct {
	gorm.Model
	SideID        uint        `json:"-"`
	Slot          int         `json:"slot"`
	Name          string      `json:"name"`
	Level         int         `json:"level"`
	PrimaryType   ElementType `json:"primary_type"`
	SecondaryType ElementType `json:"secondary_type"` // empty for single-typed monsters
	MaxHP         int         `json:"max_hp"`
	CurrentHP     int         `json:"current_hp"`
	MaxMP         int         `json:"max_mp"`
	CurrentMP     int         `json:"current_mp"`
	Attack        int         `json:"attack"`
	Defense       int         `json:"defense"`
	Agility       int         `json:"agility"`
	Magic         int         `json:"magic"`
	Wisdom        int         `json:"wisdom"`
	// SkillIDs is a comma-separated list of catalog skill ids this monster
	// has learned.
	SkillIDs     string `json:"skill_ids"`
	DefendStance bool   `json:"defend_stance"`
}

// Fainted reports whether the monster is out of the fight.
func (m *Monster) Fainted() bool { return m.CurrentHP <= 0 }

// LearnedSkills splits SkillIDs into individual catalog ids.
func (m *Monster) LearnedSkills() []string {
	if strings.TrimSpace(m.SkillIDs) == "" {
		return nil
	}
	parts := strings.Split(m.SkillIDs, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ApplyDamage subtracts dmg from current HP, clamped at 0.
func (m *Monster) ApplyDamage(dmg int) {
	m.CurrentHP -= dmg
	if m.CurrentHP < 0 {
		m.CurrentHP = 0
	}
}

// Heal restores amount HP, clamped at MaxHP.
func (m *Monster) Heal(amount int) {
	m.CurrentHP += amount
	if m.CurrentHP > m.MaxHP {
		m.CurrentHP = m.MaxHP
	}
}

// SpendMP subtracts cost from current MP, clamped at 0.
func (m *Monster) SpendMP(cost int) {
	m.CurrentMP -= cost
	if m.CurrentMP < 0 {
		m.CurrentMP = 0
	}
}

// Side is one party in a battle. Monsters are addressed by their stable slot
// index, never by value equality.
type Side struct {
	gorm.Model
	BattleID    uint      `json:"-"`
	Index       int       `json:"index" gorm:"column:side_index"`
	TrainerName string    `json:"trainer_name"`
	ActiveSlot  int       `json:"active_slot"`
	Monsters    []Monster `json:"monsters"`
}

func (Side) TableName() string { return "battle_sides" }

// Active returns the monster in the active slot, or nil when the slot is out
// of range.
func (s *Side) Active() *Monster {
	for i := range s.Monsters {
		if s.Monsters[i].Slot == s.ActiveSlot {
			return &s.Monsters[i]
		}
	}
	return nil
}

// Exhausted reports whether every monster on the side is at 0 HP.
func (s *Side) Exhausted() bool {
	for i := range s.Monsters {
		if !s.Monsters[i].Fainted() {
			return false
		}
	}
	return len(s.Monsters) > 0
}

// Battle status values.
const (
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

// Battle lifecycle phases.
const (
	PhaseSelecting = "selecting"
	PhaseResolving = "resolving"
	PhaseVictory   = "victory"
	PhaseDefeat    = "defeat"
	PhaseCaptured  = "captured"
	PhaseEscaped   = "escaped"
)

// TerminalPhase reports whether the phase ends the battle.
func TerminalPhase(phase string) bool {
	switch phase {
	case PhaseVictory, PhaseDefeat, PhaseCaptured, PhaseEscaped:
		return true
	}
	return false
}

// Battle is the authoritative state of one encounter. The engine never
// mutates a Battle it is handed; every turn produces a fresh value via
// Clone, so callers keep a consistent snapshot.
type Battle struct {
	gorm.Model
	JoinCode        string `json:"join_code" gorm:"unique"`
	Status          string `json:"status"`
	Phase           string `json:"phase"`
	TurnCount       int    `json:"turn_count"`
	Winner          string `json:"winner"`
	Message         string `json:"message"`
	LastTurnSummary string `json:"last_turn_summary"`
	IsWildEncounter bool   `json:"is_wild_encounter"`
	CanFlee         bool   `json:"can_flee"`
	CanCapture      bool   `json:"can_capture"`
	Sides           []Side `json:"sides"`
}

// Side returns the party at the given index, or nil when absent.
func (b *Battle) Side(index int) *Side {
	for i := range b.Sides {
		if b.Sides[i].Index == index {
			return &b.Sides[i]
		}
	}
	return nil
}

// PlayerSide is the caller-controlled party.
func (b *Battle) PlayerSide() *Side { return b.Side(SidePlayer) }

// EnemySide is the opposing party.
func (b *Battle) EnemySide() *Side { return b.Side(SideEnemy) }

// Clone deep-copies the battle so a turn can be resolved without touching
// the caller's snapshot.
func (b Battle) Clone() Battle {
	out := b
	out.Sides = make([]Side, len(b.Sides))
	for i := range b.Sides {
		out.Sides[i] = b.Sides[i]
		out.Sides[i].Monsters = make([]Monster, len(b.Sides[i].Monsters))
		copy(out.Sides[i].Monsters, b.Sides[i].Monsters)
	}
	return out
}
