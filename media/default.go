package media

// Default returns the stock library
func Default() Library {
	return Library{
		Intro: Item{
			ID:  "https://media.giphy.com/media/LnKonfpQ44fNvuGLkA/giphy.gif",
			Alt: "Cute Valentine",
			Art: []string{
				"  ʕ •ᴥ•ʔ  ♥ ",
				" ／つ♥と＼   ",
				"  (  ❤  )    ",
			},
		},
		Happy: []Item{
			{ID: "https://media.giphy.com/media/MDJ9IbxxvDUQM/giphy.gif", Alt: "Happy bear", Art: []string{
				"  ʕ ˶ᵔ ᵕ ᵔ˶ ʔ ",
				"  ♥ /   \\ ♥  ",
				"    (_ _)     ",
			}},
			{ID: "https://media.giphy.com/media/108M7gCS1JSoO4/giphy.gif", Alt: "Happy jumping", Art: []string{
				"   \\(^o^)/   ",
				"     | |      ",
				"    /   \\  ♥ ",
			}},
			{ID: "https://media.giphy.com/media/DhstvI3zZ598Nb1rFf/giphy.gif", Alt: "Cute dance", Art: []string{
				" ♪ (ﾉ◕ヮ◕)ﾉ ♪ ",
				"     / |      ",
				"    ♥  ♥      ",
			}},
			{ID: "https://media.giphy.com/media/chzz1FQgqhytWRWbp3/giphy.gif", Alt: "Happy cat", Art: []string{
				"   /\\_/\\  ♥  ",
				"  ( ^.^ )    ",
				"   > ♥ <     ",
			}},
			{ID: "https://media.giphy.com/media/MeIucAjPKoA120R7sN/giphy.gif", Alt: "Happy dance", Art: []string{
				" ┏(＾0＾)┛ ♪ ",
				" ┗(＾0＾)┓ ♥ ",
				" ┏(＾0＾)┛ ♪ ",
			}},
		},
		Sad: []Item{
			{ID: "https://media.giphy.com/media/L95W4wv8nnb9K/giphy.gif", Alt: "Crying cat", Art: []string{
				"   /\\_/\\     ",
				"  ( T.T )    ",
				"   > ~ <     ",
			}},
			{ID: "https://media.giphy.com/media/d2lcHJTG5Tscg/giphy.gif", Alt: "Crying baby", Art: []string{
				"   .-\"\"-.    ",
				"  ( ಥ﹏ಥ )   ",
				"   '-..-'    ",
			}},
			{ID: "https://media.giphy.com/media/OPU6wzx8JrHna/giphy.gif", Alt: "Crying cat 2", Art: []string{
				"   /\\_/\\     ",
				"  ( ;_; )    ",
				"  o(   )o    ",
			}},
			{ID: "https://media.giphy.com/media/2rtQMJvhzOnRe/giphy.gif", Alt: "Sad bear", Art: []string{
				"  ʕ ´•ᴥ•`ʔ   ",
				"   /  ︶ \\   ",
				"    (_ _)    ",
			}},
			{ID: "https://media.giphy.com/media/qQdL532ZANbjy/giphy.gif", Alt: "Sad cat", Art: []string{
				"   /\\_/\\     ",
				"  ( ._. )  💔",
				"   (   )     ",
			}},
		},
	}
}
