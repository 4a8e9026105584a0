package catalog

import "transparency/models"

var bundledNews = []models.NewsArticle{
	{
		ID:       "n-001",
		Title:    "Comisión Especial publica la lista de postulantes aptos",
		Excerpt:  "La relación incluye a los candidatos que superaron la etapa de evaluación curricular.",
		Date:     "2024-06-28",
		ImageURL: "https://example.org/img/n-001.jpg",
		Category: "Convocatorias",
		Author:   ptr("Redacción"),
		ReadTime: ptr("3 min"),
		Views:    ptr(1840),
		Featured: true,
		Tags:     []string{"jnj", "comisión especial", "postulantes"},
	},
	{
		ID:       "n-002",
		Title:    "¿Cómo se elige a los miembros de la Junta Nacional de Justicia?",
		Excerpt:  "Explicamos paso a paso el concurso público de méritos y sus etapas.",
		Date:     "2024-03-05",
		ImageURL: "https://example.org/img/n-002.jpg",
		Category: "Explicadores",
		Author:   ptr("Valeria Gutiérrez"),
		ReadTime: ptr("6 min"),
		Views:    ptr(5230),
		Tags:     []string{"jnj", "concurso"},
	},
	{
		ID:       "n-003",
		Title:    "Concluye el concurso de fiscales supremos",
		Excerpt:  "Los fiscales elegidos juramentaron ante el pleno de la Junta.",
		Date:     "2023-11-30",
		ImageURL: "https://example.org/img/n-003.jpg",
		Category: "Resultados",
		Author:   ptr("Redacción"),
		Views:    ptr(980),
		Tags:     []string{"fiscales", "resultados"},
	},
	{
		ID:       "n-004",
		Title:    "Entrevistas públicas se transmitirán en vivo",
		Excerpt:  "La ciudadanía podrá seguir las entrevistas personales a través de la web institucional.",
		Date:     "2024-07-02",
		ImageURL: "https://example.org/img/n-004.jpg",
		Category: "Convocatorias",
		Views:    ptr(2410),
		Featured: true,
		Tags:     []string{"entrevistas", "transparencia"},
	},
	{
		ID:       "n-005",
		Title:    "Análisis: el perfil de los postulantes a la JNJ",
		Excerpt:  "Edad promedio, especialidades y trayectoria de quienes buscan integrar la Junta.",
		Date:     "2024-05-18",
		ImageURL: "https://example.org/img/n-005.jpg",
		Category: "Análisis",
		Author:   ptr("Martín Okada"),
		ReadTime: ptr("8 min"),
		Views:    ptr(3105),
		Tags:     []string{"jnj", "postulantes", "datos"},
	},
	{
		ID:       "n-006",
		Title:    "Academia de la Magistratura abre nuevo programa de formación",
		Excerpt:  "El programa está dirigido a aspirantes a jueces y fiscales de todo el país.",
		Date:     "2024-01-22",
		ImageURL: "https://example.org/img/n-006.jpg",
		Category: "Institucional",
		Tags:     []string{"amag", "formación"},
	},
	{
		ID:       "n-007",
		Title:    "Convocatoria de jueces superiores se iniciará en febrero",
		Excerpt:  "Se ofertarán doce plazas en distintos distritos judiciales.",
		Date:     "2024-12-10",
		ImageURL: "https://example.org/img/n-007.jpg",
		Category: "Convocatorias",
		Author:   ptr("Valeria Gutiérrez"),
		Views:    ptr(760),
		Tags:     []string{"jueces", "concurso"},
	},
	{
		ID:       "n-008",
		Title:    "Entrevista: «La transparencia fortalece la confianza en la justicia»",
		Excerpt:  "Conversamos con especialistas sobre el rol de la ciudadanía en la vigilancia de los concursos.",
		Date:     "2024-04-14",
		ImageURL: "https://example.org/img/n-008.jpg",
		Category: "Entrevistas",
		Author:   ptr("Martín Okada"),
		ReadTime: ptr("5 min"),
		Views:    ptr(1320),
		Tags:     []string{"transparencia", "ciudadanía"},
	},
}
