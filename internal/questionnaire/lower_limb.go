package questionnaire

var lefsDifficulty = []Option{
	{"Extrema dificuldade/Incapaz", 0},
	{"Muita dificuldade", 1},
	{"Moderada dificuldade", 2},
	{"Pouca dificuldade", 3},
	{"Nenhuma dificuldade", 4},
}

var faamAbility = []Option{
	{"Nenhuma dificuldade (4)", 4},
	{"Pouca/leve dificuldade (3)", 3},
	{"Moderada dificuldade (2)", 2},
	{"Extrema dificuldade (1)", 1},
	{"Incapaz (0)", 0},
}

var lefs = Definition{
	Type:        LEFS,
	Title:       "LEFS (Membro Inferior)",
	Description: "Lower Extremity Functional Scale (Função dos membros inferiores).",
	Instruction: "Gostaríamos de saber se você está tendo qualquer dificuldade com listadas abaixo devido ao seu problema no membro inferior. Por favor, marque uma resposta para cada atividade para HOJE.",
	Questions: []Question{
		{ID: "q1", Text: "Qualquer ativ. habitual de trabalho", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q2", Text: "Ativ. habituais de lazer/esporte", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q3", Text: "Entrar/sair do banho", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q4", Text: "Andar entre cômodos", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q5", Text: "Calçar sapatos/meias", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q6", Text: "Agachar", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q7", Text: "Levantar objeto do chão", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q8", Text: "Rolalar na cama", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q9", Text: "Entrar/sair do carro", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q10", Text: "Andar 2 quarteirões", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q11", Text: "Andar 1,5km", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q12", Text: "Subir/descer escadas", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q13", Text: "Ficar em pé 1h", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q14", Text: "Sentar 1h", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q15", Text: "Correr terreno plano", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q16", Text: "Correr terreno irregular", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q17", Text: "Mudanças bruscas de direção", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q18", Text: "Saltar", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q19", Text: "Chutar bola", Kind: KindScale, Options: lefsDifficulty},
		{ID: "q20", Text: "Ficar na ponta dos pés", Kind: KindScale, Options: lefsDifficulty},
	},
}

var lysholm = Definition{
	Type:        Lysholm,
	Title:       "Escala Lysholm (Joelho)",
	Description: "Lysholm Knee Scoring Scale - Avaliação de Ligamento Cruzado Anterior.",
	Instruction: "Por favor, responda às perguntas abaixo escolhendo a afirmação que melhor descreve a condição do seu joelho HOJE.",
	Questions: []Question{
		{ID: "limp", Text: "Mancar", Kind: KindScale, Options: []Option{
			{"Nenhum", 5},
			{"Leve ou periódico", 3},
			{"Grave e constante", 0},
		}},
		{ID: "support", Text: "Apoio", Kind: KindScale, Options: []Option{
			{"Nenhum", 5},
			{"Bengala ou muleta", 2},
			{"Incapaz de apoiar", 0},
		}},
		{ID: "locking", Text: "Bloqueio", Kind: KindScale, Options: []Option{
			{"Nenhum", 15},
			{"Sensação de \"prender\", mas sem bloquear", 10},
			{"Bloqueio ocasional", 6},
			{"Bloqueio frequente", 2},
			{"Bloqueado no momento", 0},
		}},
		{ID: "instability", Text: "Instabilidade", Kind: KindScale, Options: []Option{
			{"Nunca falseia", 25},
			{"Raramente, durante exercícios intensos", 20},
			{"Frequentemente, durante exercícios", 15},
			{"Ocasionalmente, atividades diárias", 10},
			{"Frequentemente, atividades diárias", 5},
			{"A cada passo", 0},
		}},
		{ID: "pain", Text: "Dor", Kind: KindScale, Options: []Option{
			{"Nenhuma", 25},
			{"Leve/Inconstante em esforço forte", 20},
			{"Marcante em esforço forte", 15},
			{"Marcante após caminhar > 2km", 10},
			{"Marcante após caminhar < 2km", 5},
			{"Constante", 0},
		}},
		{ID: "swelling", Text: "Inchaço", Kind: KindScale, Options: []Option{
			{"Nenhum", 10},
			{"Apenas após esforço intenso", 6},
			{"Após esforço habitual", 2},
			{"Constante", 0},
		}},
		{ID: "stairs", Text: "Subir Escadas", Kind: KindScale, Options: []Option{
			{"Sem problemas", 10},
			{"Leve dificuldade", 6},
			{"Um degrau por vez", 2},
			{"Impossível", 0},
		}},
		{ID: "squat", Text: "Agachamento", Kind: KindScale, Options: []Option{
			{"Sem problemas", 5},
			{"Leve dificuldade", 4},
			{"Não ultrapassa 90 graus", 2},
			{"Impossível", 0},
		}},
	},
}

var faam = Definition{
	Type:        FAAM,
	Title:       "FAAM (Tornozelo e Pé)",
	Description: "Foot and Ankle Ability Measure (ADL + Sports).",
	Instruction: "Por favor, responda a cada pergunta com a opção que melhor descreve a condição do seu pé/tornozelo durante a ÚLTIMA SEMANA.",
	Questions: []Question{
		{ID: "adl_1", Text: "1. Ficar em pé", Kind: KindScale, Options: faamAbility},
		{ID: "adl_2", Text: "2. Caminhar no plano, em superfície regular", Kind: KindScale, Options: faamAbility},
		{ID: "adl_3", Text: "3. Caminhar no plano, em superfície regular, descalço", Kind: KindScale, Options: faamAbility},
		{ID: "adl_4", Text: "4. Subir morro", Kind: KindScale, Options: faamAbility},
		{ID: "adl_5", Text: "5. Descer morro", Kind: KindScale, Options: faamAbility},
		{ID: "adl_6", Text: "6. Subir escada", Kind: KindScale, Options: faamAbility},
		{ID: "adl_7", Text: "7. Descer escada", Kind: KindScale, Options: faamAbility},
		{ID: "adl_8", Text: "8. Caminhar no plano, em superfície irregular", Kind: KindScale, Options: faamAbility},
		{ID: "adl_9", Text: "9. Subir e descer meio-fio", Kind: KindScale, Options: faamAbility},
		{ID: "adl_10", Text: "10. Agachar", Kind: KindScale, Options: faamAbility},
		{ID: "adl_11", Text: "11. Ficar na ponta dos pés", Kind: KindScale, Options: faamAbility},
		{ID: "adl_12", Text: "12. Começar a caminhar", Kind: KindScale, Options: faamAbility},
		{ID: "adl_13", Text: "13. Caminhar 5 minutos ou menos", Kind: KindScale, Options: faamAbility},
		{ID: "adl_14", Text: "14. Caminhar aproximadamente 10 minutos", Kind: KindScale, Options: faamAbility},
		{ID: "adl_15", Text: "15. Caminhar 15 minutos ou mais", Kind: KindScale, Options: faamAbility},
		{ID: "adl_16", Text: "16. Atividades domésticas", Kind: KindScale, Options: faamAbility},
		{ID: "adl_17", Text: "17. Atividades de vida diária", Kind: KindScale, Options: faamAbility},
		{ID: "adl_18", Text: "18. Cuidado pessoal", Kind: KindScale, Options: faamAbility},
		{ID: "adl_19", Text: "19. Trabalho leve a moderado que exija caminhar ou ficar em pé", Kind: KindScale, Options: faamAbility},
		{ID: "adl_20", Text: "20. Trabalho pesado (empurrar/puxar, subir/descer escada, carregar)", Kind: KindScale, Options: faamAbility},
		{ID: "adl_21", Text: "21. Atividades recreativas", Kind: KindScale, Options: faamAbility},
		{ID: "sport_1", Text: "Esporte 1. Correr", Kind: KindScale, Options: faamAbility},
		{ID: "sport_2", Text: "Esporte 2. Pular", Kind: KindScale, Options: faamAbility},
		{ID: "sport_3", Text: "Esporte 3. Amortecer o salto", Kind: KindScale, Options: faamAbility},
		{ID: "sport_4", Text: "Esporte 4. Arrancar e parar bruscamente", Kind: KindScale, Options: faamAbility},
		{ID: "sport_5", Text: "Esporte 5. Realizar passadas laterais rápidas, com mudança brusca de direção", Kind: KindScale, Options: faamAbility},
		{ID: "sport_6", Text: "Esporte 6. Atividades de baixo impacto", Kind: KindScale, Options: faamAbility},
		{ID: "sport_7", Text: "Esporte 7. Capacidade em desempenhar a atividade com sua técnica normal", Kind: KindScale, Options: faamAbility},
		{ID: "sport_8", Text: "Esporte 8. Capacidade em praticar o seu esporte desejado pelo tempo que você gostaria", Kind: KindScale, Options: faamAbility},
	},
}

var aofas = Definition{
	Type:        AOFAS,
	Title:       "AOFAS (Tornozelo/Retropé)",
	Description: "American Orthopaedic Foot and Ankle Society Score (Clínico + Subjetivo).",
	Instruction: "Por favor, responda às perguntas sobre a dor e função do seu pé/tornozelo HOJE.",
	Questions: []Question{
		{ID: "q1", Text: "Dor (40 pontos)", Kind: KindScale, Options: []Option{
			{"Nenhuma", 40},
			{"Leve, ocasional", 30},
			{"Moderada, diária", 20},
			{"Grave, quase sempre", 0},
		}},
		{ID: "q2", Text: "Limitação de Atividades", Kind: KindScale, Options: []Option{
			{"Sem limitação", 10},
			{"Limita atividades recreacionais", 7},
			{"Limita atividades diárias e recreacionais", 4},
			{"Limitação grave", 0},
		}},
		{ID: "q3", Text: "Distância de Caminhada", Kind: KindScale, Options: []Option{
			{"> 6 quarteirões", 5},
			{"4-6 quarteirões", 4},
			{"1-3 quarteirões", 2},
			{"< 1 quarteirão", 0},
		}},
		{ID: "q4", Text: "Dificuldade em Superfícies", Kind: KindScale, Options: []Option{
			{"Nenhuma", 5},
			{"Alguma", 3},
			{"Muita", 0},
		}},
		{ID: "q5", Text: "Anormalidade de Marcha", Kind: KindScale, Options: []Option{
			{"Nenhuma", 8},
			{"Visível", 4},
			{"Marcada", 0},
		}},
		{ID: "q6", Text: "Mobilidade Sagital (Flexão+Extensão)", Kind: KindScale, Options: []Option{
			{"Normal (>30°)", 8},
			{"Moderada (15-29°)", 4},
			{"Grave (<15°)", 0},
		}},
		{ID: "q7", Text: "Mobilidade Retropé", Kind: KindScale, Options: []Option{
			{"Normal (75-100%)", 6},
			{"Moderada (25-74%)", 3},
			{"Grave (<25%)", 0},
		}},
		{ID: "q8", Text: "Estabilidade do Tornozelo-Retropé", Kind: KindScale, Options: []Option{
			{"Estável", 8},
			{"Instável", 0},
		}},
		{ID: "q9", Text: "Alinhamento", Kind: KindScale, Options: []Option{
			{"Bom", 10},
			{"Regular", 5},
			{"Ruim", 0},
		}},
	},
}

// The long joint scales below are bound to the paper form: their items are
// numbered placeholders, not transcriptions of the instrument.

var severity0to4 = []Option{
	{"Nenhuma (0)", 0},
	{"Leve (1)", 1},
	{"Moderada (2)", 2},
	{"Forte (3)", 3},
	{"Extrema (4)", 4},
}

var womacSeverity = []Option{
	{"Nenhuma", 0},
	{"Leve", 1},
	{"Moderada", 2},
	{"Forte", 3},
	{"Muito Forte", 4},
}

var ikdcAbility = []Option{
	{"Incapaz (0)", 0},
	{"Difícil (1)", 1},
	{"Moderada (2)", 2},
	{"Leve (3)", 3},
	{"Sem dificuldade (4)", 4},
}

// WOMAC keeps the domain prefixes the scorer groups by: 5 pain, 2 stiffness
// and 16 function items.
var womac = Definition{
	Type:        WOMAC,
	Title:       "WOMAC (Osteoartrite)",
	Description: "Western Ontario and McMaster Universities Osteoarthritis Index.",
	Instruction: "Por favor, indique a quantidade de dor, rigidez ou dificuldade que você sentiu no seu quadril ou joelho nas ÚLTIMAS 48 HORAS ao realizar atividades.",
	Questions: concat(
		placeholders("p", "Dor", 5, KindScale, womacSeverity),
		placeholders("s", "Rigidez", 2, KindScale, womacSeverity),
		placeholders("f", "Dificuldade", 16, KindScale, womacSeverity),
	),
}

var hoos = Definition{
	Type:        HOOS,
	Title:       "HOOS (Hip Disability and OA Outcome Score)",
	Description: "Avaliação de sintomas e função do quadril.",
	Instruction: "Por favor, responda a cada pergunta pensando nos seus sintomas e dificuldades durante a ÚLTIMA SEMANA.",
	Questions:   placeholders("q", "", 40, KindScale, severity0to4),
}

var ikdc = Definition{
	Type:        IKDC,
	Title:       "IKDC Subjetivo (Joelho)",
	Description: "International Knee Documentation Committee Subjective Knee Form.",
	Instruction: "As perguntas a seguir dizem respeito aos sintomas do seu joelho e sua capacidade de realizar atividades. Por favor, responda pensando na condição do seu joelho nos ÚLTIMOS 7 DIAS.",
	Questions:   placeholders("q", "", 18, KindScale, ikdcAbility),
}

var koos = Definition{
	Type:        KOOS,
	Title:       "KOOS (Joelho)",
	Description: "Knee Injury and Osteoarthritis Outcome Score.",
	Instruction: "Este questionário pede sua opinião sobre seu joelho e como ele funciona. Por favor, responda a cada pergunta pensando nos seus sintomas e dificuldades durante a ÚLTIMA SEMANA.",
	Questions:   placeholders("q", "", 42, KindScale, severity0to4),
}

var faos = Definition{
	Type:        FAOS,
	Title:       "FAOS (Tornozelo e Pé)",
	Description: "Foot and Ankle Outcome Score.",
	Instruction: "Este questionário pede sua opinião sobre seu pé/tornozelo e como ele funciona. Responda pensando nos seus sintomas e dificuldades durante a ÚLTIMA SEMANA.",
	Questions:   placeholders("q", "", 42, KindScale, severity0to4),
}

// IHOTSideKey is the side selector of iHOT-33. It is not a scored item.
const IHOTSideKey = "q0_side"

var ihot33 = Definition{
	Type:        IHOT33,
	Title:       "iHOT-33 (International Hip Outcome Tool)",
	Description: "Qualidade de vida e função em pacientes jovens e ativos com problemas no quadril.",
	Instruction: `Para qual quadril será este questionário?
Se te pediram para responder sobre um lado em particular marque ele. Se não marque o que te causa mais problemas.

Estas questões perguntam sobre problemas que você possa estar sentindo no seu quadril, como eles afetam sua vida e que você pode sentir por causa deles.
• Por favor, arraste o marcador na barra no ponto que melhor representa sua situação.
• Se você posicionar o marcador no lado extremo da esquerda, significa que você sente que está "Muito prejudicado" / "Muito difícil" / "Extrema dificuldade".
• Se você posicionar o marcador no lado extremo da direita, significa que você sente que "Não há problema" / "Nenhuma dor" / "Nenhuma dificuldade".
• Considere o último mês para responder.`,
	Questions: concat(
		[]Question{{ID: IHOTSideKey, Text: "Lado do Quadril Avaliado", Kind: KindMultipleChoice, Options: []Option{
			{"Esquerdo", 1},
			{"Direito", 2},
		}}},
		visualPlaceholders("q", 33, 0, 100, "Muito prejudicado", "Não há problema"),
	),
}

func concat(groups ...[]Question) []Question {
	var out []Question
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
