package game

// defaultLayout is the reference 28x31 maze. The grid is a static asset; see
// ParseLayout for the symbol vocabulary.
var defaultLayout = []string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"######.##### ## #####.######",
	"######.##          ##.######",
	"######.## ###--### ##.######",
	"######.## #HHHHHH# ##.######",
	"TTTTTT.   #H0123H#   .TTTTTT",
	"######.## #HHHHHH# ##.######",
	"######.## ######## ##.######",
	"######.##          ##.######",
	"######.## ######## ##.######",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#o..##.......P .......##..o#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// DefaultLayout returns a copy of the reference layout rows.
func DefaultLayout() []string {
	rows := make([]string, len(defaultLayout))
	copy(rows, defaultLayout)
	return rows
}
