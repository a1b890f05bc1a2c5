package catalog

// definitions is the feature table in declaration order. Ids must be unique.
var definitions = []FeatureDefinition{
	{
		ID:          Stress,
		Name:        "Word Stress",
		Description: "Primary and secondary stress patterns in multi-syllable words",
		Explanation: "English uses stress timing - stressed syllables are longer, louder, and higher pitch. Stress changes word meaning (e.g., 'REcord' noun vs 'reCORD' verb).",
		Rules: []string{
			"Primary stress (1): Longest, loudest, clearest vowel",
			"Secondary stress (2): Medium prominence",
			"Unstressed (0): Shortest, often reduced to schwa",
		},
		Examples: []Example{
			{Word: "photograph", Transcription: "F OW1 T AH0 G R AE2 F", Note: "Primary on 1st, secondary on 3rd"},
			{Word: "photography", Transcription: "F AH0 T AA1 G R AH0 F IY0", Note: "Stress shifts to 2nd syllable"},
			{Word: "banana", Transcription: "B AH0 N AE1 N AH0", Note: "Only middle syllable stressed"},
		},
		CommonMistakes: []string{
			"Equal stress on all syllables (sounds robotic)",
			"Wrong syllable stressed (changes meaning)",
		},
	},
	{
		ID:          Rhythm,
		Name:        "Rhythm & Timing",
		Description: "English stress-timed rhythm (vs syllable-timed languages)",
		Explanation: "English rhythm is stress-timed: stressed syllables occur at regular intervals, while unstressed syllables are compressed. This creates a 'bouncy' rhythm.",
		Rules: []string{
			"Stressed syllables: Equal time intervals",
			"Unstressed syllables: Squeezed between stresses",
			"Content words (nouns, verbs) stressed; function words (the, a, to) reduced",
		},
		Examples: []Example{
			{Word: "comfortable", Transcription: "K AH1 M F ER0 T AH0 B AH0 L", Note: "COMF-ta-ble (3 syllables sound like 2)"},
			{Word: "chocolate", Transcription: "CH AO1 K AH0 L AH0 T", Note: "CHOC-late (3→2 syllables)"},
			{Word: "interesting", Transcription: "IH1 N T ER0 EH0 S T IH0 NG", Note: "IN-tres-ting (compressed middle)"},
		},
		CommonMistakes: []string{
			"Pronouncing every syllable equally (syllable-timed)",
			"Too slow, mechanically pronouncing all vowels",
		},
	},
	{
		ID:          Reduction,
		Name:        "Vowel Reduction",
		Description: "Unstressed vowels reduce to schwa (ə) or disappear completely",
		Explanation: "In natural American speech, unstressed vowels often reduce to schwa [ə] (the 'uh' sound). This is the most common vowel sound in English!",
		Rules: []string{
			"Unstressed syllables: Full vowel → schwa (AH0)",
			"Function words: 'to' → tuh, 'can' → kn, 'and' → nd",
			"Helps maintain stress-timed rhythm",
		},
		Examples: []Example{
			{Word: "about", Transcription: "AH0 B AW1 T", Note: "'a' reduces to schwa"},
			{Word: "banana", Transcription: "B AH0 N AE1 N AH0", Note: "Both unstressed vowels = schwa"},
			{Word: "police", Transcription: "P AH0 L IY1 S", Note: "'po' reduces from 'poh' to 'puh'"},
			{Word: "photograph", Transcription: "F OW1 T AH0 G R AE2 F", Note: "Middle 'o' → schwa"},
		},
		CommonMistakes: []string{
			"Pronouncing full vowels in unstressed syllables",
			"Using native language vowels instead of schwa",
		},
	},
	{
		ID:          Linking,
		Name:        "Linking & Liaison",
		Description: "Connecting words together smoothly in connected speech",
		Explanation: "Americans link words together without pauses. Consonants link to following vowels, and similar sounds blend together.",
		Rules: []string{
			"Consonant-to-vowel: 'an apple' → 'a-napple'",
			"Vowel-to-vowel: Insert /y/ or /w/ glide ('see it' → 'see-yit')",
			"Same consonants: Hold once, not twice ('good day' → 'goo-day')",
		},
		Examples: []Example{
			{Word: "check_it_out", Transcription: "CH EH1 K IH0 T AW1 T", Note: "che-ki-tout (smooth connection)"},
			{Word: "turn_it_off", Transcription: "T ER1 N IH0 T AO1 F", Note: "tur-ni-toff"},
			{Word: "pick_up", Transcription: "P IH1 K AH1 P", Note: "pi-kup (k links to next syllable)"},
		},
		CommonMistakes: []string{
			"Pausing between every word",
			"Pronouncing consonants twice ('good day' as 'good-d-day')",
		},
	},
	{
		ID:          Assimilation,
		Name:        "Sound Assimilation",
		Description: "Sounds change to become more like neighboring sounds",
		Explanation: "Adjacent sounds influence each other. Common assimilations include: /t/ + /y/ → /ch/, /d/ + /y/ → /j/, /n/ changes place before different consonants.",
		Rules: []string{
			"/t/ + /y/ → 'ch': 'won't you' → 'won-choo'",
			"/d/ + /y/ → 'j': 'did you' → 'di-joo'",
			"/n/ assimilates: 'in Paris' → 'im Paris' (n→m before p)",
		},
		Examples: []Example{
			{Word: "won't_you", Transcription: "W OW1 N CH UW0", Note: "t+y → ch sound"},
			{Word: "did_you", Transcription: "D IH1 JH UW0", Note: "d+y → j sound"},
			{Word: "got_you", Transcription: "G AA1 CH UW0", Note: "gotcha (t+y → ch)"},
			{Word: "would_you", Transcription: "W UH1 JH UW0", Note: "wou-joo (d+y → j)"},
		},
		CommonMistakes: []string{
			"Pronouncing 't' and 'y' separately",
			"Over-enunciating in fast speech",
		},
	},
	{
		ID:          TFlap,
		Name:        "T/D Flapping",
		Description: "T and D between vowels become a quick tap (like Spanish 'r')",
		Explanation: "When T or D appears between two vowels (or before syllabic L/R), it becomes a flap [ɾ] - like the 'r' in Spanish 'caro'. This makes 'writer' and 'rider' sound identical!",
		Rules: []string{
			"T/D between vowels → flap: 'water' → 'wader'",
			"After stressed vowel works best",
			"Sounds like quick 'd' or Spanish single 'r'",
		},
		Examples: []Example{
			{Word: "water", Transcription: "W AA1 DX ER0", Note: "t → flap (sounds like 'wader')"},
			{Word: "better", Transcription: "B EH1 DX ER0", Note: "tt → single flap"},
			{Word: "city", Transcription: "S IH1 DX IY0", Note: "t → flap ('siddy')"},
			{Word: "matter", Transcription: "M AE1 DX ER0", Note: "tt → flap"},
			{Word: "party", Transcription: "P AA1 R DX IY0", Note: "t → flap"},
		},
		CommonMistakes: []string{
			"Pronouncing clear 't' sound",
			"Making it too strong (should be very quick)",
		},
	},
	{
		ID:          DarkL,
		Name:        "Dark L (Velarization)",
		Description: "L at syllable end becomes 'dark' - tongue back raised",
		Explanation: "English has two L sounds: 'light L' [l] at syllable start ('like', 'love') and 'dark L' [ɫ] at syllable end ('feel', 'milk'). Dark L sounds deeper, like an 'oo-l' or 'w' sound.",
		Rules: []string{
			"Syllable-initial: Light L (tongue tip touches)",
			"Syllable-final: Dark L (back of tongue raises toward velum)",
			"Think: 'fee-oo' instead of 'feel'",
		},
		Examples: []Example{
			{Word: "feel", Transcription: "F IY1 L", Note: "Dark L at end (fee-ul)"},
			{Word: "milk", Transcription: "M IH1 L K", Note: "Dark L before K"},
			{Word: "people", Transcription: "P IY1 P AH0 L", Note: "Final L is dark"},
			{Word: "bottle", Transcription: "B AA1 T AH0 L", Note: "Dark L, often syllabic"},
			{Word: "table", Transcription: "T EY1 B AH0 L", Note: "Dark L at end"},
		},
		CommonMistakes: []string{
			"Using light L everywhere",
			"Not raising back of tongue for dark L",
		},
	},
	{
		ID:          Glottalization,
		Name:        "Glottal Stop (T-glottalization)",
		Description: "T becomes glottal stop [ʔ] before N or at word end",
		Explanation: "Instead of releasing 't', the airflow stops at the glottis (vocal cords). Common in words like 'button', 'mountain', 'important'. The T almost disappears!",
		Rules: []string{
			"T + N: 'button' → 'bu'on' (glottal stop replaces t)",
			"T at syllable end: 'cat' → 'ca?' (often before pause)",
			"Very common in American casual speech",
		},
		Examples: []Example{
			{Word: "button", Transcription: "B AH1 T N", Note: "T → glottal stop (bu'n)"},
			{Word: "mountain", Transcription: "M AW1 N T N", Note: "T → glottal stop (moun'n)"},
			{Word: "important", Transcription: "IH0 M P AO1 R T N T", Note: "T+N → glottal stop"},
			{Word: "cotton", Transcription: "K AA1 T N", Note: "co'on (dropped T)"},
			{Word: "sentence", Transcription: "S EH1 N T N S", Note: "sen'nce"},
		},
		CommonMistakes: []string{
			"Pronouncing clear 't' sound",
			"Over-enunciating in casual contexts",
		},
	},
	{
		ID:          RColoring,
		Name:        "R-coloring (Rhoticity)",
		Description: "American English pronounces R everywhere; vowels before R are 'r-colored'",
		Explanation: "American English is rhotic - we pronounce R in all positions. Vowels before R get 'r-colored' quality (tongue curls back). This is a major American accent marker!",
		Rules: []string{
			"R after vowel: Always pronounced ('car', 'bird', 'hear')",
			"Vowel + R → r-colored vowel (retroflex)",
			"Tongue tip curls back toward roof of mouth",
		},
		Examples: []Example{
			{Word: "car", Transcription: "K AA1 R", Note: "Strong R at end"},
			{Word: "bird", Transcription: "B ER1 D", Note: "ER = r-colored vowel"},
			{Word: "butter", Transcription: "B AH1 DX ER0", Note: "Final ER is r-colored"},
			{Word: "park", Transcription: "P AA1 R K", Note: "R before K pronounced"},
			{Word: "lawyer", Transcription: "L AO1 Y ER0", Note: "Final R strong"},
		},
		CommonMistakes: []string{
			"Dropping R (British style: 'cah' instead of 'car')",
			"Not curling tongue back enough",
			"German/French-style uvular R",
		},
	},
	{
		ID:          Aspiration,
		Name:        "Aspiration (P/T/K)",
		Description: "Voiceless stops P, T, K release with strong air burst at word/syllable start",
		Explanation: "At the beginning of stressed syllables, P, T, and K are pronounced with a strong puff of air (aspiration). Hold your hand in front of your mouth - you should feel the air!",
		Rules: []string{
			"p, t, k at start of stressed syllable → aspirated [pʰ tʰ kʰ]",
			"After s: not aspirated ('spin', 'stop', 'skip')",
			"Strong air burst distinguishes from b, d, g",
		},
		Examples: []Example{
			{Word: "pin", Transcription: "P IH1 N", Note: "Strong aspiration on P"},
			{Word: "top", Transcription: "T AA1 P", Note: "Aspirated T at start"},
			{Word: "cat", Transcription: "K AE1 T", Note: "Aspirated K"},
			{Word: "potato", Transcription: "P AH0 T EY1 T OW0", Note: "2nd P and T aspirated"},
			{Word: "car", Transcription: "K AA1 R", Note: "Strong K aspiration"},
		},
		CommonMistakes: []string{
			"No aspiration (sounds like b, d, g)",
			"Too weak - should feel air burst",
			"Aspirating after 's' (should be unaspirated)",
		},
	},
	{
		ID:          NasalFlap,
		Name:        "Nasal Flap (/nt/ cluster)",
		Description: "NT sequence often becomes flap + nasal, especially in fast speech",
		Explanation: "The sequence /nt/ between vowels often changes: the T becomes a flap, and nasalization spreads. 'Winter' sounds like 'winner', 'twenty' like 'twenny'.",
		Rules: []string{
			"/nt/ between vowels → flap + nasal",
			"T may delete entirely in casual speech",
			"Previous vowel becomes nasalized",
		},
		Examples: []Example{
			{Word: "winter", Transcription: "W IH1 N DX ER0", Note: "nt → n+flap (winner)"},
			{Word: "twenty", Transcription: "T W EH1 N DX IY0", Note: "nt → flap (twenny)"},
			{Word: "center", Transcription: "S EH1 N DX ER0", Note: "nt → n+flap"},
			{Word: "international", Transcription: "IH2 N DX ER0 N AE1 SH AH0 N AH0 L", Note: "nt → flap"},
			{Word: "advantage", Transcription: "AH0 D V AE1 N DX IH0 JH", Note: "nt → flap"},
		},
		CommonMistakes: []string{
			"Clear T pronunciation in casual speech",
			"Not nasalizing the preceding vowel",
		},
	},
	{
		ID:          Intonation,
		Name:        "Intonation Patterns",
		Description: "Pitch changes that signal statement, question, emphasis, or emotion",
		Explanation: "American English uses pitch patterns (intonation) to convey meaning beyond words. Rising pitch = questions/uncertainty. Falling pitch = statements/certainty. High pitch = emphasis.",
		Rules: []string{
			"Statements: Rise then fall (↗↘) on stressed syllable",
			"Yes/no questions: Rise at end (↗)",
			"Wh-questions: Fall at end (↘)",
			"List items: Rise (↗) until last item falls (↘)",
		},
		Examples: []Example{
			{Word: "statement", Transcription: "S T EY1 T M AH0 N T", Note: "Pitch: ↗ on STAY, ↘ on ment"},
			{Word: "question", Transcription: "K W EH1 S CH AH0 N", Note: "Pitch rises ↗ at end for yes/no Q"},
			{Word: "really", Transcription: "R IY1 L IY0", Note: "High pitch = surprise/emphasis"},
			{Word: "understand", Transcription: "AH2 N D ER0 S T AE1 N D", Note: "Pitch peaks on -STAND"},
		},
		CommonMistakes: []string{
			"Flat/monotone speech (no pitch variation)",
			"Rising on statements (sounds uncertain)",
			"Falling on yes/no questions (sounds rude)",
		},
	},
	{
		ID:          Contractions,
		Name:        "Informal Contractions",
		Description: "Casual speech reductions: gonna, wanna, gotta, etc.",
		Explanation: "In fast, casual American English, common word combinations get reduced to shorter forms. These aren't written in formal contexts but are extremely common in spoken English. Native speakers use these unconsciously in everyday conversation.",
		Rules: []string{
			"going to → gonna (only before verbs, not locations)",
			"want to → wanna; got to → gotta; have to → hafta",
			"let me → lemme; give me → gimme",
			"out of → outta; kind of → kinda; sort of → sorta",
			"Used in casual/informal speech, not formal writing",
		},
		Examples: []Example{
			{Word: "going_to", Transcription: "G AH1 N AH0", Note: "gonna - 'I'm gonna go'"},
			{Word: "want_to", Transcription: "W AA1 N AH0", Note: "wanna - 'I wanna try'"},
			{Word: "got_to", Transcription: "G AA1 T AH0", Note: "gotta - 'I gotta leave'"},
			{Word: "have_to", Transcription: "HH AE1 F T AH0", Note: "hafta - 'You hafta see this'"},
			{Word: "let_me", Transcription: "L EH1 M IY0", Note: "lemme - 'Lemme help you'"},
			{Word: "give_me", Transcription: "G IH1 M IY0", Note: "gimme - 'Gimme that'"},
		},
		CommonMistakes: []string{
			"Using 'gonna' before places (✗ 'gonna store' → ✓ 'going to the store')",
			"Writing these forms in formal emails or essays",
			"Over-pronouncing in casual contexts ('going to' instead of 'gonna')",
		},
	},
}
