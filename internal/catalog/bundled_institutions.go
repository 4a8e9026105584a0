package catalog

import "transparency/models"

func ptr[T any](v T) *T { return &v }

var bundledInstitutions = []models.Institution{
	{
		ID:          "jnj",
		Name:        "Junta Nacional de Justicia",
		Type:        "Organismo Constitucional Autónomo",
		Description: "Selecciona, nombra, ratifica y evalúa a jueces y fiscales de todos los niveles.",
		Phone:       "(01) 202-6060",
		Email:       "informes@jnj.gob.pe",
		Website:     "https://www.jnj.gob.pe",
		Address:     "Av. Paseo de la República 3285, San Isidro, Lima",
		Schedule:    "Lunes a viernes de 8:30 a 16:30",
		Mission:     ptr("Garantizar la idoneidad de los jueces y fiscales mediante procesos transparentes."),
		Vision:      ptr("Ser una institución reconocida por la ciudadanía por su integridad y eficiencia."),
		Authorities: []models.Authority{
			{Name: "Hernán Castillo Vega", Position: "Presidente"},
			{Name: "Rosa Medina Paredes", Position: "Vicepresidenta"},
		},
		BudgetHistory: []models.BudgetEntry{
			{Year: 2022, Amount: 61_500_000, Currency: "PEN"},
			{Year: 2023, Amount: 64_800_000, Currency: "PEN"},
			{Year: 2024, Amount: 70_200_000, Currency: "PEN"},
		},
	},
	{
		ID:          "poder-judicial",
		Name:        "Poder Judicial",
		Type:        "Poder del Estado",
		Description: "Administra justicia a través de sus órganos jerárquicos con arreglo a la Constitución.",
		Phone:       "(01) 410-1010",
		Email:       "consultas@pj.gob.pe",
		Website:     "https://www.pj.gob.pe",
		Address:     "Av. Paseo de la República s/n, Palacio de Justicia, Lima",
		Schedule:    "Lunes a viernes de 8:00 a 16:45",
		Mission:     ptr("Resolver conflictos de manera oportuna, predecible y con calidad."),
		Authorities: []models.Authority{
			{Name: "Carmen Salazar Ruiz", Position: "Presidenta de la Corte Suprema"},
		},
		BudgetHistory: []models.BudgetEntry{
			{Year: 2023, Amount: 3_210_000_000, Currency: "PEN"},
			{Year: 2024, Amount: 3_450_000_000, Currency: "PEN"},
		},
	},
	{
		ID:            "ministerio-publico",
		Name:          "Ministerio Público",
		Type:          "Organismo Constitucional Autónomo",
		Description:   "Defiende la legalidad, los derechos ciudadanos y los intereses públicos; conduce la investigación del delito.",
		Phone:         "(01) 625-5555",
		Email:         "atencion@mpfn.gob.pe",
		Website:       "https://www.gob.pe/mpfn",
		Address:       "Av. Abancay cdra. 5 s/n, Cercado de Lima",
		Schedule:      "Lunes a viernes de 8:00 a 16:00",
		Vision:        ptr("Una institución autónoma, confiable y cercana a la población."),
		BudgetHistory: []models.BudgetEntry{
			{Year: 2024, Amount: 2_380_000_000, Currency: "PEN"},
		},
	},
	{
		ID:          "tribunal-constitucional",
		Name:        "Tribunal Constitucional",
		Type:        "Organismo Constitucional Autónomo",
		Description: "Órgano de control de la Constitución; resuelve procesos de inconstitucionalidad y de amparo.",
		Phone:       "(01) 427-5100",
		Email:       "mesadepartes@tc.gob.pe",
		Website:     "https://www.tc.gob.pe",
		Address:     "Jr. Ancash 390, Cercado de Lima",
		Schedule:    "Lunes a viernes de 8:30 a 16:30",
	},
	{
		ID:          "academia-magistratura",
		Name:        "Academia de la Magistratura",
		Type:        "Organismo Académico",
		Description: "Forma y capacita a jueces y fiscales en todos sus niveles para su desempeño profesional.",
		Phone:       "(01) 428-0300",
		Email:       "informes@amag.edu.pe",
		Website:     "https://www.amag.edu.pe",
		Address:     "Jr. Camaná 669, Cercado de Lima",
		Schedule:    "Lunes a viernes de 8:00 a 17:00",
		Mission:     ptr("Formar magistrados éticos, competentes y comprometidos con el servicio de justicia."),
	},
	{
		ID:          "defensoria",
		Name:        "Defensoría del Pueblo",
		Type:        "Organismo Constitucional Autónomo",
		Description: "Protege los derechos constitucionales y fundamentales de la persona y de la comunidad.",
		Phone:       "0800-15-170",
		Email:       "consulta@defensoria.gob.pe",
		Website:     "https://www.defensoria.gob.pe",
		Address:     "Jr. Ucayali 394, Cercado de Lima",
		Schedule:    "Lunes a viernes de 8:30 a 16:30",
	},
}
