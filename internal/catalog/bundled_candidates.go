package catalog

import "transparency/models"

var bundledCandidates = []models.Candidate{
	{
		ID:                "c-001",
		Name:              "María Elena Quispe Huamán",
		Role:              "Jueza Superior",
		Institution:       "Poder Judicial",
		CommissionID:      ptr("com-jnj-2024"),
		Specialization:    "Derecho Constitucional",
		Status:            models.CandidateActive,
		YearsOfExperience: 28,
		Summary:           ptr("Magistrada con amplia trayectoria en procesos de amparo y hábeas corpus."),
		ProfessionalExperience: ptr("Presidió la Sala Constitucional de Lima entre 2015 y 2020."),
		AcademicExperience:     ptr("Docente de Derecho Constitucional en la Universidad Nacional Mayor de San Marcos."),
		HumanProjection:        ptr("Promotora de programas de acceso a la justicia en comunidades andinas."),
		Education: []models.Degree{
			{Degree: "Abogada", Institution: "Universidad Nacional Mayor de San Marcos", Year: 1994},
			{Degree: "Doctora en Derecho", Institution: "Pontificia Universidad Católica del Perú", Year: 2008},
		},
		Experience: []models.Position{
			{Title: "Jueza Superior", Institution: "Corte Superior de Justicia de Lima", StartYear: 2012},
			{Title: "Jueza Especializada", Institution: "Poder Judicial", StartYear: 2001, EndYear: ptr(2012)},
		},
		Certifications: []string{"Gestión Pública", "Derechos Humanos"},
		Publications:   []string{"El amparo contra resoluciones judiciales (2016)"},
		Awards:         []string{"Premio a la Excelencia Judicial 2018"},
		CVURL:          ptr("https://example.org/cv/c-001.pdf"),
	},
	{
		ID:                "c-002",
		Name:              "José Antonio Ñahui Torres",
		Role:              "Fiscal Superior",
		Institution:       "Ministerio Público",
		CommissionID:      ptr("com-jnj-2024"),
		Specialization:    "Derecho Penal",
		Status:            models.CandidateActive,
		YearsOfExperience: 31,
		Summary:           ptr("Fiscal especializado en delitos de corrupción de funcionarios."),
		Education: []models.Degree{
			{Degree: "Abogado", Institution: "Universidad Nacional de San Agustín", Year: 1991},
			{Degree: "Magíster en Derecho Penal", Institution: "Universidad de Salamanca", Year: 2002},
		},
		Experience: []models.Position{
			{Title: "Fiscal Superior Anticorrupción", Institution: "Ministerio Público", StartYear: 2010},
		},
		Certifications: []string{"Litigación Oral", "Derechos Humanos"},
		DeclarationURL: ptr("https://example.org/dj/c-002.pdf"),
	},
	{
		ID:                "c-003",
		Name:              "Ana Lucía Benavides Soto",
		Role:              "Catedrática",
		Institution:       "Academia de la Magistratura",
		CommissionID:      ptr("com-jnj-2024"),
		Specialization:    "Derecho Administrativo",
		Status:            models.CandidateActive,
		YearsOfExperience: 26,
		Summary:           ptr("Investigadora en ética pública y control gubernamental."),
		Education: []models.Degree{
			{Degree: "Abogada", Institution: "Universidad de Lima", Year: 1996},
		},
		Experience: []models.Position{
			{Title: "Directora Académica", Institution: "Academia de la Magistratura", StartYear: 2017},
		},
		Publications: []string{"Ética y función pública (2019)", "Control gubernamental en el Perú (2021)"},
	},
	{
		ID:                "c-004",
		Name:              "Luis Alberto Zegarra Ríos",
		Role:              "Abogado Litigante",
		Institution:       "Defensoría del Pueblo",
		CommissionID:      ptr("com-jnj-2024"),
		Specialization:    "Derechos Humanos",
		Status:            models.CandidateInactive,
		YearsOfExperience: 25,
		Education: []models.Degree{
			{Degree: "Abogado", Institution: "Universidad Nacional de Trujillo", Year: 1998},
		},
		Experience: []models.Position{
			{Title: "Adjunto para los Derechos Humanos", Institution: "Defensoría del Pueblo", StartYear: 2009, EndYear: ptr(2019)},
		},
	},
	{
		ID:                "c-005",
		Name:              "Óscar Gonzalo Paredes Lima",
		Role:              "Juez Supremo Provisional",
		Institution:       "Poder Judicial",
		CommissionID:      ptr("com-jnj-2024"),
		Specialization:    "Derecho Civil",
		Status:            models.CandidateActive,
		YearsOfExperience: 33,
		Summary:           ptr("Especialista en derecho de familia y sucesiones."),
		Education: []models.Degree{
			{Degree: "Abogado", Institution: "Universidad Nacional de San Antonio Abad del Cusco", Year: 1989},
		},
		Experience: []models.Position{
			{Title: "Juez Supremo Provisional", Institution: "Corte Suprema de Justicia", StartYear: 2020},
		},
		Awards: []string{"Medalla de la Magistratura 2015"},
	},
	{
		ID:                "c-006",
		Name:              "Carla Inés Villanueva Rojas",
		Role:              "Fiscal Adjunta Suprema",
		Institution:       "Ministerio Público",
		CommissionID:      ptr("com-fiscales-supremos-2023"),
		Specialization:    "Derecho Penal",
		Status:            models.CandidateActive,
		YearsOfExperience: 19,
		Summary:           ptr("Coordinó equipos especiales contra el crimen organizado."),
		Education: []models.Degree{
			{Degree: "Abogada", Institution: "Universidad de Piura", Year: 2003},
		},
		Experience: []models.Position{
			{Title: "Fiscal Adjunta Suprema", Institution: "Ministerio Público", StartYear: 2018},
		},
		Certifications: []string{"Litigación Oral"},
	},
	{
		ID:                "c-007",
		Name:              "Ricardo Manuel Ccori Apaza",
		Role:              "Fiscal Superior",
		Institution:       "Ministerio Público",
		CommissionID:      ptr("com-fiscales-supremos-2023"),
		Specialization:    "Derecho Ambiental",
		Status:            models.CandidateActive,
		YearsOfExperience: 14,
		Education: []models.Degree{
			{Degree: "Abogado", Institution: "Universidad Nacional del Altiplano", Year: 2008},
		},
		Experience: []models.Position{
			{Title: "Fiscal Superior en Materia Ambiental", Institution: "Ministerio Público", StartYear: 2016},
		},
	},
	{
		ID:                "c-008",
		Name:              "Patricia Alejandra Núñez Vela",
		Role:              "Fiscal Provincial",
		Institution:       "Ministerio Público",
		CommissionID:      ptr("com-fiscales-supremos-2023"),
		Specialization:    "Derecho Penal",
		Status:            models.CandidateRetired,
		YearsOfExperience: 5,
		Education: []models.Degree{
			{Degree: "Abogada", Institution: "Universidad San Martín de Porres", Year: 2016},
		},
		Experience: []models.Position{
			{Title: "Fiscal Provincial", Institution: "Ministerio Público", StartYear: 2019, EndYear: ptr(2024)},
		},
	},
	{
		ID:                "c-009",
		Name:              "Fernando Javier Alarcón Díaz",
		Role:              "Juez Especializado",
		Institution:       "Poder Judicial",
		CommissionID:      ptr("com-jueces-superiores-2025"),
		Specialization:    "Derecho Laboral",
		Status:            models.CandidateActive,
		YearsOfExperience: 11,
		Summary:           ptr("Juez laboral con experiencia en la nueva ley procesal del trabajo."),
		Education: []models.Degree{
			{Degree: "Abogado", Institution: "Universidad Católica de Santa María", Year: 2010},
		},
		Experience: []models.Position{
			{Title: "Juez Especializado de Trabajo", Institution: "Corte Superior de Arequipa", StartYear: 2017},
		},
	},
	{
		ID:                "c-010",
		Name:              "Gabriela Sofía Herrera Campos",
		Role:              "Jueza Especializada",
		Institution:       "Poder Judicial",
		CommissionID:      ptr("com-jueces-superiores-2025"),
		Specialization:    "Derecho Civil",
		Status:            models.CandidateActive,
		YearsOfExperience: 9,
		Education: []models.Degree{
			{Degree: "Abogada", Institution: "Universidad del Pacífico", Year: 2012},
		},
		Experience: []models.Position{
			{Title: "Jueza Civil", Institution: "Corte Superior de Lima Norte", StartYear: 2018},
		},
		Certifications: []string{"Conciliación Extrajudicial"},
	},
	{
		ID:                "c-011",
		Name:              "Eduardo Martín Salas Cornejo",
		Role:              "Magistrado del Tribunal",
		Institution:       "Tribunal Constitucional",
		CommissionID:      ptr("com-ratificacion-2022"),
		Specialization:    "Derecho Constitucional",
		Status:            models.CandidateRetired,
		YearsOfExperience: 40,
		Education: []models.Degree{
			{Degree: "Abogado", Institution: "Pontificia Universidad Católica del Perú", Year: 1980},
		},
		Experience: []models.Position{
			{Title: "Magistrado", Institution: "Tribunal Constitucional", StartYear: 2014, EndYear: ptr(2021)},
		},
	},
	{
		ID:                "c-012",
		Name:              "Lucía Fernanda Arce Miranda",
		Role:              "Jueza de Paz Letrada",
		Institution:       "Poder Judicial",
		CommissionID:      ptr("com-ratificacion-2022"),
		Specialization:    "Derecho de Familia",
		Status:            models.CandidateActive,
		YearsOfExperience: 3,
		Education: []models.Degree{
			{Degree: "Abogada", Institution: "Universidad Nacional de Piura", Year: 2019},
		},
		Experience: []models.Position{
			{Title: "Jueza de Paz Letrada", Institution: "Corte Superior de Piura", StartYear: 2021},
		},
	},
}
