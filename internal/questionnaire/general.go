package questionnaire

var painIntensity4 = []Option{
	{"Nenhuma", 0},
	{"Leve", 1},
	{"Moderada", 2},
	{"Forte", 3},
}

var mcGillShort = Definition{
	Type:        McGillShort,
	Title:       "McGill de Dor (SF-MPQ - Brasil)",
	Description: "Avaliação multidimensional da dor (Sensorial, Afetiva e Avaliativa).",
	Instruction: "Abaixo está uma lista de palavras que descrevem algumas das diferentes qualidades da dor. Por favor, selecione a intensidade que melhor descreve a sua dor AGORA.",
	Questions: []Question{
		{ID: "q1", Text: "Latejante", Kind: KindScale, Options: painIntensity4},
		{ID: "q2", Text: "Fisgada", Kind: KindScale, Options: painIntensity4},
		{ID: "q3", Text: "Puxada", Kind: KindScale, Options: painIntensity4},
		{ID: "q4", Text: "Queimação", Kind: KindScale, Options: painIntensity4},
		{ID: "q5", Text: "Cortante", Kind: KindScale, Options: painIntensity4},
		{ID: "q6", Text: "Cólicas", Kind: KindScale, Options: painIntensity4},
		{ID: "q7", Text: "Dor Surda", Kind: KindScale, Options: painIntensity4},
		{ID: "q8", Text: "Premente", Kind: KindScale, Options: painIntensity4},
		{ID: "q9", Text: "Roendo", Kind: KindScale, Options: painIntensity4},
		{ID: "q10", Text: "Dolorida", Kind: KindScale, Options: painIntensity4},
		{ID: "q11", Text: "Pesada", Kind: KindScale, Options: painIntensity4},
		{ID: "q12", Text: "Sensível", Kind: KindScale, Options: painIntensity4},
		{ID: "q13", Text: "Cansativa", Kind: KindScale, Options: painIntensity4},
		{ID: "q14", Text: "Enjoada", Kind: KindScale, Options: painIntensity4},
		{ID: "q15", Text: "Castigante", Kind: KindScale, Options: painIntensity4},
		{ID: "vas", Text: "Escala Visual Analógica (0-10)", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "ppi", Text: "Intensidade de Dor Presente (PPI)", Kind: KindScale, Options: []Option{
			{"Sem dor", 0},
			{"Leve", 1},
			{"Desconfortável", 2},
			{"Angustiante", 3},
			{"Horrível", 4},
			{"Excruciante", 5},
		}},
	},
}

var psfs = Definition{
	Type:        PSFS,
	Title:       "PSFS - Escala Funcional Específica do Paciente",
	Description: "Paciente identifica 3 atividades difíceis e pontua (0-10).",
	Instruction: "Por favor, identifique atividades importantes que você tem dificuldade para realizar ou não consegue realizar devido ao seu problema. Avalie sua capacidade de realizar cada atividade em uma escala de 0 a 10, onde 0 é \"Incapaz\" e 10 é \"Capaz de realizar como antes do problema\".",
	Questions: []Question{
		{ID: "q1", Text: "Atividade 1 (Descreva na Evolução)", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q2", Text: "Atividade 2 (Descreva na Evolução)", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q3", Text: "Atividade 3 (Descreva na Evolução)", Kind: KindVisualAnalog, Min: 0, Max: 10},
	},
}
