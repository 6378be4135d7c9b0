package venue

var internationalCities = []City{
	{Name: "Montevideo", Country: "Uruguay"},
	{Name: "Punta del Este", Country: "Uruguay"},
	{Name: "Colonia del Sacramento", Country: "Uruguay"},
	{Name: "Santiago de Chile", Country: "Chile"},
	{Name: "Viña del Mar", Country: "Chile"},
	{Name: "Valparaíso", Country: "Chile"},
	{Name: "Asunción", Country: "Paraguay"},
	{Name: "Asuncion", Country: "Paraguay"},
	{Name: "São Paulo", Country: "Brasil"},
	{Name: "Sao Paulo", Country: "Brasil"},
	{Name: "Rio de Janeiro", Country: "Brasil"},
	{Name: "Florianópolis", Country: "Brasil"},
	{Name: "Florianopolis", Country: "Brasil"},
	{Name: "Lima", Country: "Perú"},
	{Name: "Bogotá", Country: "Colombia"},
	{Name: "Bogota", Country: "Colombia"},
	{Name: "Medellín", Country: "Colombia"},
	{Name: "Medellin", Country: "Colombia"},
	{Name: "Ciudad de México", Country: "México"},
	{Name: "CDMX", Country: "México"},
	{Name: "La Paz", Country: "Bolivia"},
	{Name: "Quito", Country: "Ecuador"},
	{Name: "Madrid", Country: "España"},
	{Name: "Barcelona", Country: "España"},
	{Name: "Miami", Country: "Estados Unidos"},
}

var domesticCities = []string{
	"Normandina",
	"Buenos Aires",
	"CABA",
	"Córdoba",
	"Cordoba",
	"Rosario",
	"Mendoza",
	"Mar del Plata",
	"La Plata",
	"Tucumán",
	"Tucuman",
	"Salta",
	"Bariloche",
	"Neuquén",
	"Neuquen",
	"Santa Fe",
	"Santiago del Estero",
	"San Juan",
	"Luna Park",
	"Niceto",
	"Palermo",
	"Tecnópolis",
	"Costanera Sur",
}
