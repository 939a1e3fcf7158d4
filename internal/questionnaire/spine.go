package questionnaire

// STarT Back item 9 is dichotomized at the option level: only "Muito" and
// "Extremamente" count toward the total and the psychosocial subscale.
var startBackBothersome = []Option{
	{"Nada", 0},
	{"Um pouco", 0},
	{"Moderadamente", 0},
	{"Muito", 1},
	{"Extremamente", 1},
}

var noYes = []Option{
	{"Não", 0},
	{"Sim", 1},
}

var quebecDifficulty = []Option{
	{"Nada difícil", 0},
	{"Pouco difícil", 1},
	{"Alguma dificuldade", 2},
	{"Muito difícil", 3},
	{"Extremamente difícil", 4},
	{"Incapaz", 5},
}

var agreement4 = []Option{
	{"Discordo Totalmente", 1},
	{"Discordo Parcialmente", 2},
	{"Concordo Parcialmente", 3},
	{"Concordo Totalmente", 4},
}

var startBack = Definition{
	Type:        StartBack,
	Title:       "STarT Back Screening Tool (SBST-Brasil)",
	Description: "Ferramenta de triagem para risco de mau prognóstico em dor lombar.",
	Instruction: "Por favor, pensando nas DUAS ÚLTIMAS SEMANAS, marque a opção que melhor descreve como você se sente.",
	Questions: []Question{
		{ID: "q1", Text: "Minha dor nas costas espalhou-se, descendo pelas pernas, nas últimas 2 semanas.", Kind: KindBinary, Options: noYes},
		{ID: "q2", Text: "Eu tive dor no ombro ou no pescoço em algum momento nas últimas 2 semanas.", Kind: KindBinary, Options: noYes},
		{ID: "q3", Text: "Eu evito andar longas distâncias por causa da minha dor nas costas.", Kind: KindBinary, Options: noYes},
		{ID: "q4", Text: "Nas últimas 2 semanas, tenho me vestido mais devagar por causa da minha dor nas costas.", Kind: KindBinary, Options: noYes},
		{ID: "q5", Text: "Não é seguro para uma pessoa com o meu problema ser fisicamente ativa.", Kind: KindBinary, Options: noYes},
		{ID: "q6", Text: "Preocupar-me afeta minha dor nas costas.", Kind: KindBinary, Options: noYes},
		{ID: "q7", Text: "Sinto que minha dor nas costas é terrível e que nunca vai melhorar.", Kind: KindBinary, Options: noYes},
		{ID: "q8", Text: "Em geral, não tenho gostado de todas que eu costumava gostar.", Kind: KindBinary, Options: noYes},
		{ID: "q9", Text: "Ao todo, o quanto a sua dor nas costas incomodou você nas últimas 2 semanas?", Kind: KindMultipleChoice, Options: startBackBothersome},
	},
}

var rolandMorris = Definition{
	Type:        RolandMorris,
	Title:       "Roland-Morris (RMDQ-Brasil)",
	Description: "Questionário de Incapacidade Roland-Morris para Dor Lombar.",
	Instruction: "Quando suas costas doem, você pode achar difícil fazer algumas das coisas que normalmente faz. Esta lista contém frases que usam para se descrever. Leia todas e marque apenas aquelas que descrevem você HOJE. Se a frase não se aplicar, deixe em branco.",
	Questions: []Question{
		{ID: "q1", Text: "Fico em casa a maior parte do tempo por causa das minhas costas.", Kind: KindBinary, Options: noYes},
		{ID: "q2", Text: "Mudo de posição frequentemente para tentar deixar minhas costas confortáveis.", Kind: KindBinary, Options: noYes},
		{ID: "q3", Text: "Ando mais devagar do que o habitual por causa das minhas costas.", Kind: KindBinary, Options: noYes},
		{ID: "q4", Text: "Por causa das minhas costas, eu não estou fazendo nenhum dos trabalhos que, habitualmente, eu faço em casa.", Kind: KindBinary, Options: noYes},
		{ID: "q5", Text: "Por causa das minhas costas, uso o corrimão para subir escadas.", Kind: KindBinary, Options: noYes},
		{ID: "q6", Text: "Por causa das minhas costas, deito-me para descansar, com mais frequência.", Kind: KindBinary, Options: noYes},
		{ID: "q7", Text: "Por causa das minhas costas, tenho que me segurar em alguma coisa para me levantar de uma poltrona ou sofá.", Kind: KindBinary, Options: noYes},
		{ID: "q8", Text: "Por causa das minhas costas, tento conseguir que outras pessoas façam para mim.", Kind: KindBinary, Options: noYes},
		{ID: "q9", Text: "Visto-me mais devagar do que o habitual por causa das minhas costas.", Kind: KindBinary, Options: noYes},
		{ID: "q10", Text: "Eu apenas fico em pé por períodos curtos de tempo por causa das minhas costas.", Kind: KindBinary, Options: noYes},
		{ID: "q11", Text: "Por causa das minhas costas, tento não me abaixar ou me ajoelhar.", Kind: KindBinary, Options: noYes},
		{ID: "q12", Text: "Encontro dificuldade em levantar-me de uma cadeira por causa das minhas costas.", Kind: KindBinary, Options: noYes},
		{ID: "q13", Text: "As minhas costas doem quase o tempo todo.", Kind: KindBinary, Options: noYes},
		{ID: "q14", Text: "Tenho dificuldade em me virar na cama por causa das minhas costas.", Kind: KindBinary, Options: noYes},
		{ID: "q15", Text: "O meu apetite não é muito bom por causa de dor nas minhas costas.", Kind: KindBinary, Options: noYes},
		{ID: "q16", Text: "Tenho problemas para colocar minhas meias (ou meia-calça) por causa das dores nas minhas costas.", Kind: KindBinary, Options: noYes},
		{ID: "q17", Text: "Caminho apenas curtas distâncias por causa de dores nas minhas costas.", Kind: KindBinary, Options: noYes},
		{ID: "q18", Text: "Não durmo tão bem por causa das minhas costas.", Kind: KindBinary, Options: noYes},
		{ID: "q19", Text: "Por causa de dores nas costas, eu me visto com ajuda de outras pessoas.", Kind: KindBinary, Options: noYes},
		{ID: "q20", Text: "Fico sentado a maior parte do dia por causa das minhas costas.", Kind: KindBinary, Options: noYes},
		{ID: "q21", Text: "Evito trabalhos pesados em casa por causa das minhas costas.", Kind: KindBinary, Options: noYes},
		{ID: "q22", Text: "Por causa de dores nas costas, fico mais irritado e mal humorado com do que o habitual.", Kind: KindBinary, Options: noYes},
		{ID: "q23", Text: "Por causa das minhas costas subo escadas mais devagar do que o habitual.", Kind: KindBinary, Options: noYes},
		{ID: "q24", Text: "Fico na cama a maior parte do tempo por causa das minhas costas.", Kind: KindBinary, Options: noYes},
	},
}

var oswestry = Definition{
	Type:        Oswestry,
	Title:       "Índice de Incapacidade Oswestry (ODI 2.0 - Brasil)",
	Description: "Avaliação quantitativa da incapacidade por dor lombar.",
	Instruction: "Estas perguntas foram elaboradas para nos dar informações sobre como sua dor nas costas (ou perna) afetou sua capacidade de administrar sua vida cotidiana. Por favor, marque apenas a CAIXA ÚNICA em cada seção que melhor descreve sua condição HOJE.",
	Questions: []Question{
		{ID: "q1", Text: "Seção 1 - Intensidade da Dor", Kind: KindScale, Options: []Option{
			{"Sem dor no momento", 0},
			{"Dor muito leve", 1},
			{"Dor moderada", 2},
			{"Dor razoavelmente intensa", 3},
			{"Dor muito intensa", 4},
			{"A pior dor imaginável", 5},
		}},
		{ID: "q2", Text: "Seção 2 - Cuidados Pessoais", Kind: KindScale, Options: []Option{
			{"Posso cuidar de mim mesmo sem causar dor extra", 0},
			{"Posso cuidar de mim mesmo, mas causa dor extra", 1},
			{"É doloroso cuidar de mim e sou lento e cuidadoso", 2},
			{"Preciso de ajuda, mas consigo fazer a maior parte dos cuidados", 3},
			{"Preciso de ajuda todos os dias na maioria dos cuidados", 4},
			{"Não me visto, lavo com dificuldade e fico na cama", 5},
		}},
		{ID: "q3", Text: "Seção 3 - Levantar pesos", Kind: KindScale, Options: []Option{
			{"Levanto pesos pesados sem dor extra", 0},
			{"Levanto pesos pesados, mas sinto dor extra", 1},
			{"A dor me impede de levantar pesos pesados do chão, mas consigo se estiverem na mesa", 2},
			{"A dor me impede de levantar pesos pesados, mas levanto leves/médios em posição cômoda", 3},
			{"Só consigo levantar coisas muito leves", 4},
			{"Não consigo levantar ou carregar nada", 5},
		}},
		{ID: "q4", Text: "Seção 4 - Caminhar", Kind: KindScale, Options: []Option{
			{"A dor não me impede de caminhar qualquer distância", 0},
			{"A dor me impede de caminhar mais de 1,5 km (± 15 quadras)", 1},
			{"A dor me impede de caminhar mais de 500 m (± 5 quadras)", 2},
			{"A dor me impede de caminhar mais de 100 m (± 1 quadra)", 3},
			{"Só consigo caminhar usando bengala ou muletas", 4},
			{"Fico na cama a maior parte do tempo e tenho que me arrastar para o banheiro", 5},
		}},
		{ID: "q5", Text: "Seção 5 - Sentar", Kind: KindScale, Options: []Option{
			{"Consigo sentar em qualquer cadeira pelo tempo que quiser", 0},
			{"Consigo sentar na minha cadeira favorita pelo tempo que quiser", 1},
			{"A dor me impede de ficar sentado mais de 1 hora", 2},
			{"A dor me impede de ficar sentado mais de 30 minutos", 3},
			{"A dor me impede de ficar sentado mais de 10 minutos", 4},
			{"A dor me impede de sentar", 5},
		}},
		{ID: "q6", Text: "Seção 6 - Ficar de pé", Kind: KindScale, Options: []Option{
			{"Consigo ficar de pé pelo tempo que quiser sem dor extra", 0},
			{"Consigo ficar de pé pelo tempo que quiser, mas sinto dor extra", 1},
			{"A dor me impede de ficar de pé mais de 1 hora", 2},
			{"A dor me impede de ficar de pé mais de 30 minutos", 3},
			{"A dor me impede de ficar de pé mais de 10 minutos", 4},
			{"A dor me impede de ficar de pé", 5},
		}},
		{ID: "q7", Text: "Seção 7 - Dormir", Kind: KindScale, Options: []Option{
			{"A dor não me impede de dormir bem", 0},
			{"Durmo bem, usando comprimidos", 1},
			{"Durmo menos de 6 horas, mesmo com comprimidos", 2},
			{"Durmo menos de 4 horas, mesmo com comprimidos", 3},
			{"Durmo menos de 2 horas, mesmo com comprimidos", 4},
			{"A dor me impede totalmente de dormir", 5},
		}},
		{ID: "q8", Text: "Seção 8 - Vida Sexual (se aplicável)", Kind: KindScale, Options: []Option{
			{"Minha vida sexual é normal e não causa dor extra", 0},
			{"Minha vida sexual é normal, mas causa dor extra", 1},
			{"Minha vida sexual é quase normal, mas é muito dolorosa", 2},
			{"Minha vida sexual é severamente restrita pela dor", 3},
			{"Minha vida sexual é quase inexistente devido à dor", 4},
			{"A dor me impede de ter qualquer atividade sexual", 5},
		}},
		{ID: "q9", Text: "Seção 9 - Vida Social", Kind: KindScale, Options: []Option{
			{"Minha vida social é normal e não sinto dor extra", 0},
			{"Minha vida social é normal, mas aumenta o grau de dor", 1},
			{"A dor não afeta minha vida social, exceto atividades mais enérgicas (dançar, etc)", 2},
			{"A dor restringiu minha vida social e não saio muito de casa", 3},
			{"A dor restringiu minha vida social ao meu lar", 4},
			{"Não tenho vida social devido à dor", 5},
		}},
		{ID: "q10", Text: "Seção 10 - Viagens", Kind: KindScale, Options: []Option{
			{"Posso viajar para qualquer lugar sem dor", 0},
			{"Posso viajar para qualquer lugar, mas sinto dor extra", 1},
			{"A dor é ruim, mas aguento viagens de mais de 2 horas", 2},
			{"A dor restringe viagens a menos de 1 hora", 3},
			{"A dor restringe viagens a menos de 30 minutos", 4},
			{"A dor me impede de viajar, exceto para ir ao médico", 5},
		}},
	},
}

var quebec = Definition{
	Type:        Quebec,
	Title:       "Escala de Quebec (QBPDS-Brasil)",
	Description: "Avaliação de incapacidade funcional na dor lombar (Quebec Back Pain Disability Scale).",
	Instruction: "Este questionário pergunta sobre como sua dor nas costas afeta sua vida diária. Para cada atividade, indique quão difícil é realizá-la HOJE.",
	Questions: []Question{
		{ID: "q1", Text: "Levantar-se da cama", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q2", Text: "Dormir toda a noite", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q3", Text: "Virar-se na cama", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q4", Text: "Andar de carro", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q5", Text: "Estar des pé durante 20-30 minutos", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q6", Text: "Estar sentado numa cadeira por várias horas", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q7", Text: "Subir um lance de escadas", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q8", Text: "Andar 300-400 metros (alguns quarteirões)", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q9", Text: "Andar vários quilômetros", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q10", Text: "Alcançar prateleiras altas", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q11", Text: "Jogar uma bola", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q12", Text: "Correr cerca de 100 metros", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q13", Text: "Tirar comida da geladeira", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q14", Text: "Fazer a cama", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q15", Text: "Calçar meias", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q16", Text: "Dobrar-se à frente para limpar a banheira/chão", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q17", Text: "Mover uma cadeira", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q18", Text: "Puxar ou empurrar portas pesadas", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q19", Text: "Carregar dois sacos de compras", Kind: KindScale, Options: quebecDifficulty},
		{ID: "q20", Text: "Levantar e carregar uma mala pesada", Kind: KindScale, Options: quebecDifficulty},
	},
}

var ndi = Definition{
	Type:        NDI,
	Title:       "Índice de Incapacidade Cervical (NDI-Brasil)",
	Description: "Neck Disability Index: Avaliação da dor cervical na vida diária.",
	Instruction: "Este questionário foi elaborado para nos dar informações sobre como sua dor no pescoço afetou sua capacidade de administrar sua vida cotidiana. Por favor, marque a opção que melhor descreve sua condição HOJE.",
	Questions: []Question{
		{ID: "q1", Text: "Seção 1 - Intensidade da Dor", Kind: KindScale, Options: []Option{
			{"Sem dor no momento", 0},
			{"Dor muito leve", 1},
			{"Dor moderada", 2},
			{"Dor razoavelmente intensa", 3},
			{"Dor muito intensa", 4},
			{"A pior dor imaginável", 5},
		}},
		{ID: "q2", Text: "Seção 2 - Cuidados Pessoais (Lavar-se, vestir-se, etc.)", Kind: KindScale, Options: []Option{
			{"Posso cuidar de mim sem causar dor extra", 0},
			{"Posso cuidar de mim, mas causa dor extra", 1},
			{"É doloroso cuidar de mim e sou lento/cuidadoso", 2},
			{"Preciso de alguma ajuda mas consigo fazer a maior parte", 3},
			{"Preciso de ajuda todos os dias na maioria dos cuidados", 4},
			{"Não consigo me vestir/lavar e fico na cama", 5},
		}},
		{ID: "q3", Text: "Seção 3 - Levantar Pesos", Kind: KindScale, Options: []Option{
			{"Levanto pesos pesados sem dor extra", 0},
			{"Levanto pesos pesados mas sinto dor extra", 1},
			{"A dor impede de levantar pesos do chão, mas consigo se estiverem na mesa", 2},
			{"A dor impede de levantar pesos, mas levanto leves/médios", 3},
			{"Só levanto coisas muito leves", 4},
			{"Não consigo levantar ou carregar nada", 5},
		}},
		{ID: "q4", Text: "Seção 4 - Leitura", Kind: KindScale, Options: []Option{
			{"Leio tanto quanto quero sem dor", 0},
			{"Leio tanto quanto quero com leve dor", 1},
			{"Leio tanto quanto quero com dor moderada", 2},
			{"Não leio tanto quanto quero pela dor moderada", 3},
			{"Mal consigo ler pela dor severa", 4},
			{"Não consigo ler nada", 5},
		}},
		{ID: "q5", Text: "Seção 5 - Dor de Cabeça", Kind: KindScale, Options: []Option{
			{"Não tenho dor de cabeça", 0},
			{"Dores leves e pouco frequentes", 1},
			{"Dores moderadas e pouco frequentes", 2},
			{"Dores moderadas e frequentes", 3},
			{"Dores severas e frequentes", 4},
			{"Dores de cabeça o tempo todo", 5},
		}},
		{ID: "q6", Text: "Seção 6 - Concentração", Kind: KindScale, Options: []Option{
			{"Consigo me concentrar totalmente sem dificuldade", 0},
			{"Consigo me concentrar totalmente com leve dificuldade", 1},
			{"Tenho razoável dificuldade em me concentrar", 2},
			{"Tenho muita dificuldade em me concentrar", 3},
			{"Tenho extrema dificuldade em me concentrar", 4},
			{"Não consigo me concentrar em nada", 5},
		}},
		{ID: "q7", Text: "Seção 7 - Trabalho", Kind: KindScale, Options: []Option{
			{"Posso trabalhar tanto quanto quero", 0},
			{"Posso fazer meu trabalho habitual, mas com dor extra", 1},
			{"Posso fazer a maior parte do trabalho, mas não todo", 2},
			{"Não posso fazer meu trabalho habitual", 3},
			{"Mal consigo fazer qualquer trabalho", 4},
			{"Não consigo trabalhar", 5},
		}},
		{ID: "q8", Text: "Seção 8 - Dirigir", Kind: KindScale, Options: []Option{
			{"Posso dirigir sem dor", 0},
			{"Posso dirigir tanto quanto quero com leve dor", 1},
			{"Posso dirigir tanto quanto quero com dor moderada", 2},
			{"Não posso dirigir tanto quanto quero pela dor moderada", 3},
			{"Mal consigo dirigir pela dor severa", 4},
			{"Não consigo dirigir", 5},
		}},
		{ID: "q9", Text: "Seção 9 - Dormir", Kind: KindScale, Options: []Option{
			{"Não tenho problemas para dormir", 0},
			{"Meu sono é levemente perturbado (menos de 1h de insônia)", 1},
			{"Meu sono é moderadamente perturbado (1-2h de insônia)", 2},
			{"Meu sono é moderadamente perturbado (2-3h de insônia)", 3},
			{"Meu sono é muito perturbado (3-5h de insônia)", 4},
			{"Meu sono é completamente perturbado (5-7h de insônia)", 5},
		}},
		{ID: "q10", Text: "Seção 10 - Recreação/Lazer", Kind: KindScale, Options: []Option{
			{"Consigo fazer todas atividades de lazer sem dor", 0},
			{"Consigo fazer todas atividades de lazer com alguma dor", 1},
			{"Consigo fazer a maioria das atividades de lazer, mas não todas", 2},
			{"Consigo fazer poucas atividades de lazer pela dor", 3},
			{"Mal consigo fazer qualquer atividade de lazer", 4},
			{"Não consigo fazer nenhuma atividade de lazer", 5},
		}},
	},
}

var tampa = Definition{
	Type:        Tampa,
	Title:       "Escala Tampa de Cinesiofobia (TSK-17)",
	Description: "Avaliação do medo de movimento/(re)lesão.",
	Instruction: "Por favor, indique o quanto você concorda ou discorda de cada uma das afirmações abaixo, pensando na sua dor e condição ATUAL.",
	Questions: []Question{
		{ID: "q1", Text: "Tenho medo de me machucar acidentalmente", Kind: KindScale, Options: agreement4},
		{ID: "q2", Text: "Se eu tentasse vencer a dor, ela aumentaria", Kind: KindScale, Options: agreement4},
		{ID: "q3", Text: "Meu corpo está me dizendo que tenho algo perigoso", Kind: KindScale, Options: agreement4},
		{ID: "q4", Text: "Embora sinta muita dor, eu não acho que o meu corpo esteja de fato com problema", Kind: KindScale, Inverted: true, Options: agreement4},
		{ID: "q5", Text: "As pessoas não estão levando a minha condição médica a sério", Kind: KindScale, Options: agreement4},
		{ID: "q6", Text: "Meu acidente colocou meu corpo em risco pelo resto da minha vida", Kind: KindScale, Options: agreement4},
		{ID: "q7", Text: "A dor significa que eu estou lesionando o meu corpo", Kind: KindScale, Options: agreement4},
		{ID: "q8", Text: "Eu não teria tanta dor se houvesse algo de fato perigoso acontecendo no meu corpo", Kind: KindScale, Inverted: true, Options: agreement4},
		{ID: "q9", Text: "Tenho medo de machucar-me acidentalmente", Kind: KindScale, Options: agreement4},
		{ID: "q10", Text: "A coisa mais segura que posso fazer para prevenir a minha dor de piorar é simplesmente não fazer nada desnecessário", Kind: KindScale, Options: agreement4},
		{ID: "q11", Text: "Eu não deveria fazer exercícios físicos mesmo que a minha dor melhorasse", Kind: KindScale, Options: agreement4},
		{ID: "q12", Text: "Embora doa, eu não acho que estejamos machucando meu corpo", Kind: KindScale, Inverted: true, Options: agreement4},
		{ID: "q13", Text: "A dor me diz quando parar o exercício, senão posso machucar-me", Kind: KindScale, Options: agreement4},
		{ID: "q14", Text: "Para o meu corpo melhorar é necessário que passe a dor", Kind: KindScale, Options: agreement4},
		{ID: "q15", Text: "Eu não posso fazer tudo o que pessoas fazem porque é muito fácil para eu me machucar", Kind: KindScale, Options: agreement4},
		{ID: "q16", Text: "Mesmo que alguma coisa me cause muita dor, eu não acho que isso seja perigoso de fato", Kind: KindScale, Inverted: true, Options: agreement4},
		{ID: "q17", Text: "Ninguém deveria ter que se exercitar quando sente dor", Kind: KindScale, Options: agreement4},
	},
}
