package catalog

import "github.com/ridaofranco/eventdesk/internal/models"

var venueTemplates = []VenueTemplate{
	{
		ID:            "venue-travel",
		Title:         "Pasajes y traslados del equipo",
		Description:   "Reservar vuelos o micros para artistas y staff técnico.",
		Category:      "Logística",
		Priority:      models.PriorityHigh,
		LeadDays:      7,
		International: true,
		Domestic:      true,
	},
	{
		ID:            "venue-lodging",
		Title:         "Alojamiento",
		Description:   "Confirmar hotel, cantidad de habitaciones y horarios de check-in.",
		Category:      "Logística",
		Priority:      models.PriorityMedium,
		LeadDays:      10,
		International: true,
		Domestic:      true,
	},
	{
		ID:          "venue-ground",
		Title:       "Transporte terrestre de equipos",
		Description: "Coordinar flete del backline y horarios de carga y descarga.",
		Category:    "Logística",
		Priority:    models.PriorityMedium,
		LeadDays:    14,
		Domestic:    true,
	},
	{
		ID:            "venue-customs-out",
		Title:         "Documentación aduanera de salida",
		Description:   "Preparar ATA Carnet o lista de equipos para declarar en la salida.",
		Category:      "Aduana",
		Priority:      models.PriorityUrgent,
		LeadDays:      5,
		International: true,
	},
	{
		ID:            "venue-customs-return",
		Title:         "Documentación aduanera de regreso",
		Description:   "Verificar que la declaración de reingreso coincida con la de salida.",
		Category:      "Aduana",
		Priority:      models.PriorityHigh,
		LeadDays:      14,
		International: true,
	},
}
