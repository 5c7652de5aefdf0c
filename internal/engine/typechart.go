package engine

import "github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"

// Effectiveness multipliers. Every chart entry is one of these; pairs not in
// the chart are neutral.
const (
	SuperEffective = 1.5
	Resisted       = 0.5
	Neutral        = 1.0
)

type typePair struct {
	attacking game.ElementType
	defending game.ElementType
}

var typeChart = map[typePair]float64{
	{game.TypeNormal, game.TypeRock}: Resisted,

	{game.TypeFire, game.TypeGrass}: SuperEffective,
	{game.TypeFire, game.TypeIce}:   SuperEffective,
	{game.TypeFire, game.TypeFire}:  Resisted,
	{game.TypeFire, game.TypeWater}: Resisted,
	{game.TypeFire, game.TypeRock}:  Resisted,

	{game.TypeWater, game.TypeFire}:  SuperEffective,
	{game.TypeWater, game.TypeRock}:  SuperEffective,
	{game.TypeWater, game.TypeWater}: Resisted,
	{game.TypeWater, game.TypeGrass}: Resisted,

	{game.TypeGrass, game.TypeWater}:  SuperEffective,
	{game.TypeGrass, game.TypeRock}:   SuperEffective,
	{game.TypeGrass, game.TypeFire}:   Resisted,
	{game.TypeGrass, game.TypeGrass}:  Resisted,
	{game.TypeGrass, game.TypeFlying}: Resisted,

	{game.TypeElectric, game.TypeWater}:    SuperEffective,
	{game.TypeElectric, game.TypeFlying}:   SuperEffective,
	{game.TypeElectric, game.TypeElectric}: Resisted,
	{game.TypeElectric, game.TypeGrass}:    Resisted,

	{game.TypeIce, game.TypeGrass}:  SuperEffective,
	{game.TypeIce, game.TypeFlying}: SuperEffective,
	{game.TypeIce, game.TypeFire}:   Resisted,
	{game.TypeIce, game.TypeWater}:  Resisted,
	{game.TypeIce, game.TypeIce}:    Resisted,

	{game.TypeFlying, game.TypeGrass}:    SuperEffective,
	{game.TypeFlying, game.TypeElectric}: Resisted,
	{game.TypeFlying, game.TypeRock}:     Resisted,

	{game.TypeRock, game.TypeFire}:   SuperEffective,
	{game.TypeRock, game.TypeIce}:    SuperEffective,
	{game.TypeRock, game.TypeFlying}: SuperEffective,
	{game.TypeRock, game.TypeRock}:   Resisted,

	{game.TypePsychic, game.TypePsychic}: Resisted,
	{game.TypePsychic, game.TypeDark}:    Resisted,

	{game.TypeDark, game.TypePsychic}: SuperEffective,
	{game.TypeDark, game.TypeDark}:    Resisted,
}

// TypeEffectiveness returns the damage multiplier for an attacking type
// against a defending type. Only primary types are consulted; secondary
// types do not participate in the chart.
func TypeEffectiveness(attacking, defending game.ElementType) float64 {
	if m, ok := typeChart[typePair{attacking, defending}]; ok {
		return m
	}
	return Neutral
}
