package catalog

import "github.com/ridaofranco/eventdesk/internal/models"

var standardTemplates = map[Department][]Template{
	Art: {
		{
			ID:      "art-stage-design",
			Title:   "Diseño de escenario",
			Summary: "Definir la propuesta visual del escenario y validarla con producción.",
			Questions: []string{
				"¿Cuáles son las medidas del escenario y la altura libre?",
				"¿El venue permite colgar estructuras del techo?",
				"¿Hay restricciones de materiales inflamables?",
			},
			Department:  Art,
			Assignee:    "Martina",
			Priority:    models.PriorityHigh,
			Criticality: models.CriticalityCritical,
		},
		{
			ID:      "art-visuals",
			Title:   "Contenido visual para pantallas",
			Summary: "Preparar loops y visuales en la resolución de las pantallas del venue.",
			Questions: []string{
				"¿Qué resolución y relación de aspecto tienen las pantallas?",
				"¿Quién opera las visuales durante el show?",
			},
			Department:  Art,
			Assignee:    "Martina",
			Priority:    models.PriorityMedium,
			Criticality: models.CriticalityImportant,
		},
		{
			ID:      "art-lighting",
			Title:   "Plano de luces",
			Summary: "Enviar el rider de iluminación y acordar el plano con el proveedor.",
			Questions: []string{
				"¿El proveedor de luces es del venue o externo?",
				"¿Hay consola disponible o se lleva una propia?",
				"¿Cuánto tiempo de programación hay el día del evento?",
			},
			Department:  Art,
			Assignee:    "Joaquín",
			Priority:    models.PriorityHigh,
			Criticality: models.CriticalityCritical,
		},
		{
			ID:      "art-signage",
			Title:   "Señalética y cartelería",
			Summary: "Diseñar e imprimir la señalética de accesos, barras y baños.",
			Questions: []string{
				"¿Cuántos accesos y barras tiene el venue?",
				"¿El venue tiene soportes propios para cartelería?",
			},
			Department:  Art,
			Assignee:    "Joaquín",
			Priority:    models.PriorityLow,
			Criticality: models.CriticalityNormal,
		},
		{
			ID:      "art-decor",
			Title:   "Ambientación del espacio",
			Summary: "Coordinar la ambientación de sectores VIP y foyer.",
			Questions: []string{
				"¿Qué elementos de ambientación aporta el venue?",
				"¿Cuál es el horario de montaje permitido?",
			},
			Department:  Art,
			Assignee:    "Martina",
			Priority:    models.PriorityMedium,
			Criticality: models.CriticalityNormal,
		},
	},
	Booking: {
		{
			ID:      "booking-contract",
			Title:   "Contrato del artista firmado",
			Summary: "Obtener el contrato firmado por ambas partes antes de anunciar.",
			Questions: []string{
				"¿Está definido el cachet y la forma de pago?",
				"¿Hay cláusula de exclusividad territorial?",
				"¿Quién paga impuestos y retenciones?",
			},
			Department:  Booking,
			Assignee:    "Franco",
			Priority:    models.PriorityUrgent,
			Criticality: models.CriticalityCritical,
		},
		{
			ID:      "booking-rider",
			Title:   "Rider técnico y de hospitalidad",
			Summary: "Recibir los riders y confirmar qué puntos cubre el venue.",
			Questions: []string{
				"¿El backline pedido está disponible localmente?",
				"¿Hay requerimientos de catering especiales?",
			},
			Department:  Booking,
			Assignee:    "Franco",
			Priority:    models.PriorityHigh,
			Criticality: models.CriticalityCritical,
		},
		{
			ID:      "booking-advance",
			Title:   "Pago del anticipo",
			Summary: "Transferir el anticipo pactado y archivar el comprobante.",
			Questions: []string{
				"¿En qué moneda se paga el anticipo?",
				"¿Se necesita factura del exterior?",
			},
			Department:  Booking,
			Assignee:    "Valentina",
			Priority:    models.PriorityHigh,
			Criticality: models.CriticalityImportant,
		},
		{
			ID:      "booking-schedule",
			Title:   "Horarios de prueba de sonido y show",
			Summary: "Acordar con el management los horarios de llegada, prueba y set.",
			Questions: []string{
				"¿Hay artistas soporte que también prueban?",
				"¿Cuál es el horario de cierre del venue?",
			},
			Department:  Booking,
			Assignee:    "Franco",
			Priority:    models.PriorityMedium,
			Criticality: models.CriticalityImportant,
		},
		{
			ID:      "booking-guestlist",
			Title:   "Lista de invitados del artista",
			Summary: "Solicitar la lista de invitados y acreditaciones al management.",
			Questions: []string{
				"¿Cuántos lugares de invitados incluye el contrato?",
				"¿Hay pedidos de acreditación de prensa?",
			},
			Department:  Booking,
			Assignee:    "Valentina",
			Priority:    models.PriorityLow,
			Criticality: models.CriticalityNormal,
		},
		{
			ID:      "booking-settlement",
			Title:   "Planilla de liquidación",
			Summary: "Preparar la planilla de liquidación para cerrar cuentas la noche del show.",
			Questions: []string{
				"¿El acuerdo incluye porcentaje sobre la taquilla?",
				"¿Quién firma la liquidación por parte del artista?",
			},
			Department:  Booking,
			Assignee:    "Valentina",
			Priority:    models.PriorityMedium,
			Criticality: models.CriticalityNormal,
		},
	},
	Marketing: {
		{
			ID:      "mkt-announcement",
			Title:   "Anuncio oficial del evento",
			Summary: "Publicar el anuncio coordinado con el artista y la ticketera.",
			Questions: []string{
				"¿El artista aprobó el arte del anuncio?",
				"¿Está confirmada la fecha de inicio de venta?",
			},
			Department:  Marketing,
			Assignee:    "Sofía",
			Priority:    models.PriorityHigh,
			Criticality: models.CriticalityCritical,
		},
		{
			ID:      "mkt-ticketing",
			Title:   "Configuración de la ticketera",
			Summary: "Cargar sectores, precios y tandas en la plataforma de venta.",
			Questions: []string{
				"¿Cuántas tandas de precios habrá?",
				"¿Se ofrecen cuotas o descuentos bancarios?",
				"¿Cuál es la capacidad habilitada por sector?",
			},
			Department:  Marketing,
			Assignee:    "Sofía",
			Priority:    models.PriorityHigh,
			Criticality: models.CriticalityCritical,
		},
		{
			ID:      "mkt-ads",
			Title:   "Campaña de pauta en redes",
			Summary: "Planificar la inversión en pauta y los segmentos de público.",
			Questions: []string{
				"¿Cuál es el presupuesto total de pauta?",
				"¿Qué ciudades se segmentan?",
			},
			Department:  Marketing,
			Assignee:    "Tomás",
			Priority:    models.PriorityMedium,
			Criticality: models.CriticalityImportant,
		},
		{
			ID:      "mkt-press",
			Title:   "Gacetilla de prensa",
			Summary: "Redactar y enviar la gacetilla a medios y periodistas.",
			Questions: []string{
				"¿El artista acepta entrevistas previas?",
				"¿Qué medios tienen prioridad?",
			},
			Department:  Marketing,
			Assignee:    "Tomás",
			Priority:    models.PriorityLow,
			Criticality: models.CriticalityNormal,
		},
		{
			ID:      "mkt-content",
			Title:   "Cobertura de foto y video",
			Summary: "Contratar fotógrafo y videógrafo para el día del evento.",
			Questions: []string{
				"¿El artista permite registro durante todo el show?",
				"¿En cuánto tiempo se entregan las fotos?",
			},
			Department:  Marketing,
			Assignee:    "Sofía",
			Priority:    models.PriorityMedium,
			Criticality: models.CriticalityNormal,
		},
	},
}
