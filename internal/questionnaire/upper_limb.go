package questionnaire

var dashDifficulty = []Option{
	{"Nenhuma", 1},
	{"Pequena", 2},
	{"Média", 3},
	{"Muita", 4},
	{"Incapaz", 5},
}

var dashSeverity = []Option{
	{"Nenhuma", 1},
	{"Leve", 2},
	{"Moderada", 3},
	{"Grave", 4},
	{"Muito Grave", 5},
}

var quickDASH = Definition{
	Type:        QuickDASH,
	Title:       "QuickDASH (Membro Superior)",
	Description: "Incapacidade do braço, ombro e mão.",
	Instruction: "Por favor, avalie sua capacidade de realizar atividades na ÚLTIMA SEMANA, independentemente de qual braço ou mão você usa.",
	Questions: []Question{
		{ID: "q1", Text: "Abrir um vidro novo ou com a tampa muito apertada", Kind: KindScale, Options: dashDifficulty},
		{ID: "q2", Text: "Realizar tarefas domésticas pesadas (esfregar parede, lavar chão)", Kind: KindScale, Options: dashDifficulty},
		{ID: "q3", Text: "Carregar uma sacola de compras ou uma pasta", Kind: KindScale, Options: dashDifficulty},
		{ID: "q4", Text: "Lavar", Kind: KindScale, Options: dashDifficulty},
		{ID: "q5", Text: "Usar uma faca para cortar comida", Kind: KindScale, Options: dashDifficulty},
		{ID: "q6", Text: "Atividades recreativas que exigem força ou impacto (vôlei, martelar)", Kind: KindScale, Options: dashDifficulty},
		{ID: "q7", Text: "Durante a semana passada, a dor no braço, ombro ou mão interferiu em suas atividades sociais?", Kind: KindScale, Options: dashDifficulty},
		{ID: "q8", Text: "Durante a semana passada, seu trabalho foi limitado?", Kind: KindScale, Options: dashDifficulty},
		{ID: "q9", Text: "Gravidade da dor no braço, ombro ou mão", Kind: KindScale, Options: dashSeverity},
		{ID: "q10", Text: "Formigamento no braço, ombro ou mão", Kind: KindScale, Options: dashSeverity},
		{ID: "q11", Text: "Dificuldade para dormir devido à dor", Kind: KindScale, Options: dashDifficulty},
	},
}

var spadi = Definition{
	Type:        SPADI,
	Title:       "SPADI - Índice de Dor e Incapacidade do Ombro",
	Description: "Avaliação de dor e incapacidade funcional do ombro.",
	Instruction: "Por favor, responda às perguntas pensando na sua dor e dificuldade no ombro durante a ÚLTIMA SEMANA.",
	Questions: []Question{
		{ID: "q1", Text: "Dor no seu pior momento?", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q2", Text: "Dor quando deitado sobre o lado envolvido?", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q3", Text: "Dor quando pega algo numa prateleira elevada?", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q4", Text: "Dor quando toca na parte de trás do pescoço?", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q5", Text: "Dor quando empurra com o braço envolvido?", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q6", Text: "Dificuldade em lavar o cabelo?", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q7", Text: "Dificuldade em lavar?", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q8", Text: "Dificuldade em vestir uma camiseta/suéter?", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q9", Text: "Dificuldade em vestir uma camisa com botões à frente?", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q10", Text: "Dificuldade em vestir?", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q11", Text: "Dificuldade em colocar um objeto numa prateleira alta?", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q12", Text: "Dificuldade em carregar um objeto pesado (4.5kg)?", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q13", Text: "Dificuldade em retirar algo do bolso de trás?", Kind: KindVisualAnalog, Min: 0, Max: 10},
	},
}

var prwe = Definition{
	Type:        PRWE,
	Title:       "PRWE - Avaliação do Punho pelo Paciente",
	Description: "Patient-Rated Wrist Evaluation (Rodrigues et al, 2014).",
	Instruction: "As perguntas abaixo referem-se à dor e dificuldade que você pode ter sentido no seu punho/mão durante a ÚLTIMA SEMANA.",
	Questions: []Question{
		{ID: "q1", Text: "Dor em repouso", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q2", Text: "Dor ao fazer tarefa com movimento repetitivo", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q3", Text: "Dor ao levantar objeto pesado", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q4", Text: "Dor no seu pior momento", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q5", Text: "Com que frequência sente dor", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q6", Text: "Dificuldade: Virar maçaneta", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q7", Text: "Dificuldade: Cortar carne com faca", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q8", Text: "Dificuldade: Abotoar camisa", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q9", Text: "Dificuldade: Usar a mão para puxar cadeira", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q10", Text: "Dificuldade: Carregar objeto de 5kg", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q11", Text: "Dificuldade: Usar papel higiênico", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q12", Text: "Dificuldade: Autocuidado (vestir, comer, lavar)", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q13", Text: "Dificuldade: Atividades domésticas (limpeza, etc)", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q14", Text: "Dificuldade: Atividades laborais", Kind: KindVisualAnalog, Min: 0, Max: 10},
		{ID: "q15", Text: "Dificuldade: Atividades de lazer/recreação", Kind: KindVisualAnalog, Min: 0, Max: 10},
	},
}
