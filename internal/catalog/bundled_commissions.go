package catalog

import "transparency/models"

var bundledCommissions = []models.Commission{
	{
		ID:                 "com-jnj-2024",
		Name:               "Comisión Especial para la Selección de Miembros de la JNJ 2024",
		Type:               "Comisión Especial",
		Status:             models.CommissionInProgress,
		Description:        ptr("Conduce el concurso público de méritos para elegir a los miembros titulares y suplentes de la Junta Nacional de Justicia."),
		StartDate:          "2024-03-01",
		EndDate:            "2024-12-15",
		CandidatesCount:    5,
		PositionsAvailable: 7,
		Phases: []models.Phase{
			{Name: "Convocatoria", Description: "Publicación de bases y cronograma.", Status: models.CommissionCompleted, StartDate: "2024-03-01", EndDate: "2024-03-31"},
			{Name: "Evaluación curricular", Description: "Calificación de hojas de vida.", Status: models.CommissionInProgress, StartDate: "2024-04-01", EndDate: "2024-06-30"},
			{Name: "Entrevista personal", Description: "Entrevistas públicas transmitidas en vivo.", Status: models.CommissionPending, StartDate: "2024-07-01", EndDate: "2024-12-15"},
		},
		Members: []models.Member{
			{Name: "Defensor del Pueblo", Role: "Presidente", Institution: "Defensoría del Pueblo"},
			{Name: "Presidente del Poder Judicial", Role: "Miembro", Institution: "Poder Judicial"},
			{Name: "Fiscal de la Nación", Role: "Miembro", Institution: "Ministerio Público"},
			{Name: "Presidente del Tribunal Constitucional", Role: "Miembro", Institution: "Tribunal Constitucional"},
		},
		Requirements: []string{
			"Ser peruano de nacimiento.",
			"Tener más de 45 años y menos de 75.",
			"Ser abogado con experiencia profesional no menor de 25 años.",
		},
		Documents: []models.Document{
			{Title: "Bases del concurso", Type: "PDF", URL: "https://example.org/docs/bases-jnj-2024.pdf"},
			{Title: "Cronograma", Type: "PDF", URL: "https://example.org/docs/cronograma-jnj-2024.pdf"},
		},
	},
	{
		ID:                 "com-fiscales-supremos-2023",
		Name:               "Concurso de Fiscales Supremos 2023",
		Type:               "Concurso Público",
		Status:             models.CommissionCompleted,
		StartDate:          "2023-02-10",
		EndDate:            "2023-11-30",
		CandidatesCount:    3,
		PositionsAvailable: 2,
		Phases: []models.Phase{
			{Name: "Convocatoria", Description: "Publicación de plazas.", Status: models.CommissionCompleted, StartDate: "2023-02-10", EndDate: "2023-03-10"},
			{Name: "Examen de conocimientos", Description: "Prueba escrita.", Status: models.CommissionCompleted, StartDate: "2023-04-01", EndDate: "2023-05-15"},
			{Name: "Nombramiento", Description: "Juramentación de los fiscales.", Status: models.CommissionFinalized, StartDate: "2023-11-01", EndDate: "2023-11-30"},
		},
		Members: []models.Member{
			{Name: "Hernán Castillo Vega", Role: "Presidente", Institution: "Junta Nacional de Justicia"},
		},
		Requirements: []string{"Haber sido fiscal superior titular por 10 años."},
		Documents:    []models.Document{
			{Title: "Resultados finales", Type: "PDF", URL: "https://example.org/docs/resultados-fs-2023.pdf"},
		},
	},
	{
		ID:                 "com-jueces-superiores-2025",
		Name:               "Convocatoria de Jueces Superiores 2025",
		Type:               "Concurso Público",
		Status:             models.CommissionPending,
		StartDate:          "2025-02-01",
		EndDate:            "2025-09-30",
		CandidatesCount:    2,
		PositionsAvailable: 12,
		Phases: []models.Phase{
			{Name: "Convocatoria", Description: "Publicación de plazas.", Status: models.CommissionPending, StartDate: "2025-02-01", EndDate: "2025-02-28"},
			{Name: "Evaluación", Description: "Examen y evaluación curricular.", Status: models.CommissionPending, StartDate: "2025-03-01", EndDate: "2025-06-30"},
		},
		Members: []models.Member{
			{Name: "Rosa Medina Paredes", Role: "Presidenta", Institution: "Junta Nacional de Justicia"},
		},
		Requirements: []string{"Haber sido juez especializado por 5 años."},
		Documents:    []models.Document{},
	},
	{
		ID:                 "com-ratificacion-2022",
		Name:               "Evaluación Integral y Ratificación 2022",
		Type:               "Ratificación",
		Status:             models.CommissionFinalized,
		StartDate:          "2022-05-02",
		EndDate:            "2022-12-20",
		CandidatesCount:    2,
		PositionsAvailable: 0,
		Phases:             []models.Phase{},
		Members:            []models.Member{},
		Requirements:       []string{},
		Documents:          []models.Document{},
	},
}
