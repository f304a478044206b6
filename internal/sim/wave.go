package sim

import "github.com/mcschied/bumblebees/internal/config"

// GenerateWave produces the enemy grid for the given wave number (1-based).
//
// The grid has base_rows + wave rows and a constant column count, generated
// column-major: column i sits at x = origin_x + i*column_spacing, row j at
// y = origin_y + j*row_spacing. Enemies start moving right. The result is a
// pure function of the wave number and config, so repeated calls yield
// identical formations.
func GenerateWave(wave int, cfg config.WaveConfig) []Enemy {
	rows := cfg.BaseRows + wave

	enemies := make([]Enemy, 0, rows*cfg.Columns)
	for i := 0; i < cfg.Columns; i++ {
		for j := 0; j < rows; j++ {
			enemies = append(enemies, NewEnemy(
				cfg.OriginX+float64(i)*cfg.ColumnSpacing,
				cfg.OriginY+float64(j)*cfg.RowSpacing,
				1.0,
				typeForRow(wave, j),
			))
		}
	}

	return enemies
}

// typeForRow picks the enemy type for a grid row. Wave 1 is all Standard;
// Fast rows appear from wave 2, Swooper rows from wave 3 and a leading Tank
// row from wave 4. Deterministic so the same wave always produces the same
// formation.
func typeForRow(wave, row int) EnemyType {
	switch {
	case wave >= 4 && row == 0:
		return EnemyTank
	case wave >= 3 && row%4 == 2:
		return EnemySwooper
	case wave >= 2 && row%3 == 1:
		return EnemyFast
	default:
		return EnemyStandard
	}
}
