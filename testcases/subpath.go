package testcases

var subpathCases = []TestCase{
	{
		Name:       "two_squares",
		Path:       concat(rectangle(4, 4, 20, 20), rectangle(30, 30, 50, 50)),
		Width:      64,
		Height:     64,
		Rule:       NonZero,
		Area:       16*16 + 20*20,
		Components: 2,
	},
	{
		Name:       "frame_evenodd",
		Path:       concat(rectangle(8, 8, 56, 56), rectangle(20, 20, 44, 44)),
		Width:      64,
		Height:     64,
		Rule:       EvenOdd,
		Area:       48*48 - 24*24,
		Components: 1,
	},
	{
		Name:       "frame_nonzero",
		Path:       concat(rectangle(8, 8, 56, 56), rectangle(20, 20, 44, 44)),
		Width:      64,
		Height:     64,
		Rule:       NonZero,
		Area:       48 * 48,
		Components: 1,
	},
	{
		// the squares only meet at a corner
		Name:       "diagonal",
		Path:       concat(rectangle(0, 0, 8, 8), rectangle(8, 8, 16, 16)),
		Width:      64,
		Height:     64,
		Rule:       NonZero,
		Area:       2 * 8 * 8,
		Components: 2,
	},
	{
		// rows 2 to 5 are empty, the occupied rows next to the gap
		// overlap in x and so the two parts form one component
		Name:       "row_gap",
		Path:       concat(rectangle(0, 0, 4, 2), rectangle(0, 6, 4, 8)),
		Width:      64,
		Height:     64,
		Rule:       NonZero,
		Area:       2 * 4 * 2,
		Components: 1,
	},
}
