package theme

// Defaults returns the built-in theme set, in display order. The first
// entry is the fallback when no selection is stored or the stored name
// is unknown.
func Defaults() []Theme {
	return []Theme{
		{
			Name:       "Light",
			Background: RGB{240, 240, 245},
			Text:       RGB{60, 60, 70},
			Headings: [6]RGB{
				{100, 100, 180},
				{90, 90, 170},
				{80, 80, 160},
				{70, 70, 150},
				{60, 60, 140},
				{50, 50, 130},
			},
		},
		{
			Name:       "Dark",
			Background: RGB{40, 44, 52},
			Text:       RGB{220, 223, 228},
			Headings: [6]RGB{
				{255, 180, 100},
				{230, 160, 90},
				{210, 140, 80},
				{190, 120, 70},
				{170, 100, 60},
				{150, 80, 50},
			},
		},
		{
			Name:       "Solarized",
			Background: RGB{0, 43, 54},
			Text:       RGB{131, 148, 150},
			Headings: [6]RGB{
				{181, 137, 0},
				{203, 75, 22},
				{220, 50, 47},
				{211, 54, 130},
				{108, 113, 196},
				{38, 139, 210},
			},
		},
		{
			Name:       "After Dark",
			Background: RGB{32, 29, 101},
			Text:       RGB{172, 171, 213},
			Headings: [6]RGB{
				{254, 243, 199},
				{123, 121, 181},
				{172, 171, 213},
				{125, 211, 252},
				{167, 243, 208},
				{254, 240, 138},
			},
		},
		{
			Name:       "Her",
			Background: RGB{101, 29, 29},
			Text:       RGB{213, 171, 171},
			Headings: [6]RGB{
				{254, 243, 199},
				{181, 121, 121},
				{213, 171, 171},
				{125, 211, 252},
				{167, 243, 208},
				{254, 240, 138},
			},
		},
		{
			Name:       "Forest",
			Background: RGB{5, 46, 22},
			Text:       RGB{134, 239, 172},
			Headings: [6]RGB{
				{254, 243, 199},
				{74, 222, 128},
				{134, 239, 172},
				{125, 211, 252},
				{167, 243, 208},
				{254, 240, 138},
			},
		},
		{
			Name:       "Sky",
			Background: RGB{8, 47, 73},
			Text:       RGB{125, 211, 252},
			Headings: [6]RGB{
				{254, 243, 199},
				{56, 189, 248},
				{125, 211, 252},
				{167, 243, 208},
				{254, 240, 138},
				{252, 165, 165},
			},
		},
		{
			Name:       "Clays",
			Background: RGB{69, 26, 3},
			Text:       RGB{245, 158, 11},
			Headings: [6]RGB{
				{254, 243, 199},
				{217, 119, 6},
				{245, 158, 11},
				{125, 211, 252},
				{167, 243, 208},
				{254, 240, 138},
			},
		},
		{
			Name:       "Stones",
			Background: RGB{41, 37, 36},
			Text:       RGB{156, 163, 175},
			Headings: [6]RGB{
				{254, 243, 199},
				{107, 114, 128},
				{156, 163, 175},
				{125, 211, 252},
				{167, 243, 208},
				{254, 240, 138},
			},
		},
	}
}
